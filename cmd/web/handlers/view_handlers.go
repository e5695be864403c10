package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"blog-list/cmd/web/dto"
	"blog-list/cmd/web/pagination"
	"blog-list/cmd/web/services"
)

// CreateViewHandler godoc
// @Summary      Open a blog list display
// @Description  Mounts a new display and starts its one-shot fetch. With wait=true the response is sent once the fetch has settled.
// @Tags         views
// @Param        wait  query  bool  false  "Wait until the display leaves the loading phase"
// @Produce      json
// @Success      201  {object}  dto.ViewDTO
// @Router       /views [post]
func CreateViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var view dto.ViewDTO
		if c.Query("wait") == "true" {
			view = svc.OpenAndWait(c.Request.Context())
		} else {
			view = svc.Open(c.Request.Context())
		}
		c.JSON(http.StatusCreated, view)
	}
}

// GetViewHandler godoc
// @Summary      Get a display
// @Description  Current phase, search state, cards of the current page and pagination control
// @Tags         views
// @Param        id   path   string  true  "Display ID"
// @Produce      json
// @Success      200  {object}  dto.ViewDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /views/{id} [get]
func GetViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Get(c.Param("id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// UpdateQueryHandler godoc
// @Summary      Set the search query
// @Description  Replaces the query and resets the display to page 1
// @Tags         views
// @Param        id    path  string                     true  "Display ID"
// @Param        body  body  dto.UpdateQueryRequestDTO  true  "Query"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ViewDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /views/{id}/query [put]
func UpdateQueryHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateQueryRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		view, err := svc.Search(c.Param("id"), req.Query)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// ClearQueryHandler godoc
// @Summary      Clear the search query
// @Description  Empties the query and resets the display to page 1
// @Tags         views
// @Param        id   path   string  true  "Display ID"
// @Produce      json
// @Success      200  {object}  dto.ViewDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /views/{id}/query [delete]
func ClearQueryHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.ClearSearch(c.Param("id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// ChangePageHandler godoc
// @Summary      Change page
// @Description  Activates a pagination button. location is the URL the client should push onto its history.
// @Tags         views
// @Param        id    path  string                    true  "Display ID"
// @Param        body  body  dto.ChangePageRequestDTO  true  "Page"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ViewDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /views/{id}/page [put]
func ChangePageHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ChangePageRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		nav := &pagination.LocationRecorder{}
		if req.CurrentURL != "" {
			if u, err := url.Parse(req.CurrentURL); err == nil {
				nav.Base = u
			}
		}

		view, err := svc.ChangePage(c.Param("id"), req.Page, nav)
		if err != nil {
			abortWithError(c, err)
			return
		}
		view.Location = nav.Location
		c.JSON(http.StatusOK, view)
	}
}

// CloseViewHandler godoc
// @Summary      Close a display
// @Description  Drops the display. An in-flight fetch completes but its result is discarded.
// @Tags         views
// @Param        id   path   string  true  "Display ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /views/{id} [delete]
func CloseViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Close(c.Param("id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
