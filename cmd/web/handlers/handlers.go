package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-list/cmd/web/bloglist"
	"blog-list/cmd/web/dto"
	"blog-list/cmd/web/services"
	"blog-list/cmd/web/viewstore"
)

// HealthHandler godoc
// @Summary      Health check
// @Description  Liveness of the web service and the number of live displays
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthDTO
// @Router       /health [get]
func HealthHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthDTO{Status: "ok", Views: svc.Count()})
	}
}

// errorStatus 는 서비스 에러를 HTTP 상태 코드와 에러 코드로 바꾼다.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, viewstore.ErrNotFound):
		return http.StatusNotFound, "view_not_found"
	case errors.Is(err, bloglist.ErrNotReady):
		return http.StatusConflict, "view_not_ready"
	case errors.Is(err, bloglist.ErrPageNotSelectable):
		return http.StatusBadRequest, "page_not_selectable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func abortWithError(c *gin.Context, err error) {
	status, code := errorStatus(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.ErrorResponseDTO{Error: code})
}
