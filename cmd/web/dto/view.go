package dto

import (
	"blog-list/cmd/web/pagination"
	"blog-list/cmd/web/postcard"
)

// ViewDTO 는 렌더링된 블로그 목록 display 하나다: phase, 검색 상태, 현재 페이지의 카드,
// pagination control (페이지가 하나 이하면 없음).
// HTML 템플릿과 JSON API 가 같은 값을 쓴다.
type ViewDTO struct {
	ID            string              `json:"id" example:"0b8f6c7e-3f1a-4a53-9a44-6a1f0e0c9d21"`
	Phase         string              `json:"phase" example:"ready" enums:"loading,error,ready"`
	Error         string              `json:"error,omitempty" example:"Failed to fetch blog posts"`
	Query         string              `json:"query" example:"gopher"`
	CurrentPage   int                 `json:"current_page" example:"1"`
	TotalPages    int                 `json:"total_pages" example:"3"`
	FilteredCount int                 `json:"filtered_count" example:"14"`
	Cards         []postcard.Card     `json:"cards"`
	Pagination    *pagination.Control `json:"pagination,omitempty"`
	// Location 은 페이지 변경 후 클라이언트가 주소창에 반영할 URL 이다.
	Location string `json:"location,omitempty" example:"/?page=2"`
}

// UpdateQueryRequestDTO 는 PUT /views/{id}/query 요청 바디다.
type UpdateQueryRequestDTO struct {
	Query string `json:"query" example:"gopher"`
}

// ChangePageRequestDTO 는 PUT /views/{id}/page 요청 바디다.
type ChangePageRequestDTO struct {
	Page int `json:"page" binding:"required" example:"2"`
	// CurrentURL 은 현재 주소창 URL 이다. 비어 있으면 "/" 기준으로 location 을 만든다.
	CurrentURL string `json:"current_url,omitempty" example:"https://blog.example.com/?page=1"`
}
