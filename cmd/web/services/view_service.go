package services

import (
	"context"

	"blog-list/cmd/web/bloglist"
	"blog-list/cmd/web/dto"
	"blog-list/cmd/web/pagination"
	"blog-list/cmd/web/postcard"
	"blog-list/cmd/web/viewstore"
)

// ViewService 는 블로그 목록 display 들을 다루고 스냅샷을 DTO 로 바꾼다.
//
// - store: display id 별 bloglist.List 보관소
// - cards: 포스트를 카드 뷰 모델로 변환한다 (이미지 URL, 날짜, 기본값 처리).
type ViewService struct {
	store *viewstore.Store
	cards postcard.Builder
}

func NewViewService(store *viewstore.Store, cards postcard.Builder) *ViewService {
	return &ViewService{store: store, cards: cards}
}

// Open 은 새 display 를 만들고 첫 스냅샷을 돌려준다. 보통은 아직 loading 상태다.
func (s *ViewService) Open(ctx context.Context) dto.ViewDTO {
	id, list := s.store.Open(ctx)
	return s.toDTO(id, list.Snapshot())
}

// OpenAndWait 는 새 display 의 fetch 가 끝나거나 ctx 가 끝날 때까지 기다린다.
func (s *ViewService) OpenAndWait(ctx context.Context) dto.ViewDTO {
	id, list := s.store.Open(ctx)
	select {
	case <-list.Done():
	case <-ctx.Done():
	}
	return s.toDTO(id, list.Snapshot())
}

func (s *ViewService) Get(id string) (dto.ViewDTO, error) {
	list, err := s.store.Get(id)
	if err != nil {
		return dto.ViewDTO{}, err
	}
	return s.toDTO(id, list.Snapshot()), nil
}

// Search 는 검색어 입력 한 번을 반영한다. 검색어가 바뀌면 1페이지로 돌아간다.
func (s *ViewService) Search(id, query string) (dto.ViewDTO, error) {
	list, err := s.store.Get(id)
	if err != nil {
		return dto.ViewDTO{}, err
	}
	if err := list.Search(query); err != nil {
		return s.toDTO(id, list.Snapshot()), err
	}
	return s.toDTO(id, list.Snapshot()), nil
}

func (s *ViewService) ClearSearch(id string) (dto.ViewDTO, error) {
	list, err := s.store.Get(id)
	if err != nil {
		return dto.ViewDTO{}, err
	}
	if err := list.ClearSearch(); err != nil {
		return s.toDTO(id, list.Snapshot()), err
	}
	return s.toDTO(id, list.Snapshot()), nil
}

// ChangePage 는 display 의 pagination 버튼을 누른다.
// 주소창 갱신(nav)이 먼저 일어나고 그 다음 페이지가 바뀐다.
func (s *ViewService) ChangePage(id string, page int, nav pagination.Navigator) (dto.ViewDTO, error) {
	list, err := s.store.Get(id)
	if err != nil {
		return dto.ViewDTO{}, err
	}
	if err := list.Activate(page, nav); err != nil {
		return s.toDTO(id, list.Snapshot()), err
	}
	return s.toDTO(id, list.Snapshot()), nil
}

func (s *ViewService) Close(id string) error {
	return s.store.Close(id)
}

// Count 는 살아 있는 display 수다.
func (s *ViewService) Count() int {
	return s.store.Len()
}

func (s *ViewService) toDTO(id string, v bloglist.View) dto.ViewDTO {
	return dto.ViewDTO{
		ID:            id,
		Phase:         v.Phase.String(),
		Error:         v.Error,
		Query:         v.Query,
		CurrentPage:   v.CurrentPage,
		TotalPages:    v.TotalPages,
		FilteredCount: v.FilteredCount,
		Cards:         s.cards.BuildAll(v.Posts),
		Pagination:    pagination.New(v.TotalPages, v.CurrentPage),
	}
}
