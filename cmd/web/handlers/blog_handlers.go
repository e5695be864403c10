package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-list/cmd/internal/logger"
	"blog-list/cmd/web/pagination"
	"blog-list/cmd/web/services"
	"blog-list/cmd/web/viewstore"
)

// ViewHeader 는 htmx 요청이 자신의 display id 를 실어 보내는 헤더다.
// 페이지의 #blog-list 요소에 hx-headers 로 렌더링되므로 탭마다 값이 다르다.
const ViewHeader = "X-Blog-View"

// 템플릿 이름
const (
	templatePage    = "blog.html"
	templateList    = "list"
	templateResults = "results"
	templateSearch  = "search_response"
)

// BlogPageHandler 는 새 display 로 전체 페이지를 렌더링한다.
// 페이지를 열 때마다 새 목록이 만들어지고 각자 fetch 를 한 번 한다.
func BlogPageHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view := svc.Open(c.Request.Context())

		c.Header("Cache-Control", "no-store")
		c.HTML(http.StatusOK, templatePage, view)
	}
}

// ListFragmentHandler 는 현재 display 의 목록 전체를 다시 그린다.
// loading 조각이 fetch 가 끝날 때까지 이 엔드포인트를 polling 한다.
func ListFragmentHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := viewID(c)
		view, err := svc.Get(id)
		if err != nil {
			refreshOnMissing(c, err)
			return
		}
		c.HTML(http.StatusOK, templateList, view)
	}
}

// SearchHandler 는 검색 입력("q") 한 번을 반영하고 결과와 함께
// clear 버튼을 out-of-band 로 갱신한다.
func SearchHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Search(viewID(c), c.PostForm("q"))
		if err != nil {
			if errors.Is(err, viewstore.ErrNotFound) {
				refreshOnMissing(c, err)
				return
			}
			// 아직 로딩 중이면 목록 전체를 다시 그리게 한다.
			c.Header("HX-Retarget", "#blog-list")
			c.Header("HX-Reswap", "outerHTML")
			c.HTML(http.StatusOK, templateList, view)
			return
		}
		c.HTML(http.StatusOK, templateSearch, view)
	}
}

// ClearSearchHandler 는 검색어를 비우고 입력창을 포함한 목록 전체를 다시 그린다.
func ClearSearchHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.ClearSearch(viewID(c))
		if errors.Is(err, viewstore.ErrNotFound) {
			refreshOnMissing(c, err)
			return
		}
		c.HTML(http.StatusOK, templateList, view)
	}
}

// PageHandler 는 pagination 버튼("page")을 누른다. 받아들여진 변경은
// HX-Push-Url 헤더로 브라우저 history 에 새 URL 을 남긴다.
func PageHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := viewID(c)
		page, err := strconv.Atoi(c.PostForm("page"))
		if err != nil {
			page = 0
		}

		nav := pagination.NewHXPushURL(c.Writer, c.Request)
		view, err := svc.ChangePage(id, page, nav)
		switch {
		case errors.Is(err, viewstore.ErrNotFound):
			refreshOnMissing(c, err)
			return
		case err != nil:
			logger.DebugWithFields("page change ignored", logger.Fields{
				"view_id": id,
				"page":    page,
				"error":   err.Error(),
			})
		}
		c.HTML(http.StatusOK, templateResults, view)
	}
}

func viewID(c *gin.Context) string {
	return c.GetHeader(ViewHeader)
}

// refreshOnMissing 는 display 가 LRU 에서 밀려났거나 id 가 없을 때 htmx 에 전체 새로고침을 요청한다.
func refreshOnMissing(c *gin.Context, err error) {
	_ = c.Error(err)
	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
