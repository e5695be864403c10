package bloglist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-list/cmd/web/clients/contentclient"
	"blog-list/cmd/web/pagination"
	"blog-list/models"
)

// MockFetcher is a testify mock of PostFetcher.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) ListPosts(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]models.Post)
	return posts, args.Error(1)
}

func makePosts(n int) []models.Post {
	posts := make([]models.Post, 0, n)
	for i := 1; i <= n; i++ {
		posts = append(posts, models.Post{
			ID:      int64(i),
			Title:   fmt.Sprintf("Post %d", i),
			Excerpt: fmt.Sprintf("Excerpt for post %d", i),
		})
	}
	return posts
}

func readyList(t *testing.T, posts []models.Post) *List {
	t.Helper()
	fetcher := new(MockFetcher)
	fetcher.On("ListPosts", mock.Anything).Return(posts, nil).Once()

	l := New(fetcher)
	l.Load(context.Background())
	require.Equal(t, PhaseReady, l.Snapshot().Phase)
	return l
}

func TestNewStartsLoading(t *testing.T) {
	l := New(new(MockFetcher))
	v := l.Snapshot()

	assert.Equal(t, PhaseLoading, v.Phase)
	assert.Equal(t, 1, v.CurrentPage)
	assert.Empty(t, v.Posts)
	assert.ErrorIs(t, l.Search("x"), ErrNotReady)
	assert.ErrorIs(t, l.SetPage(2), ErrNotReady)
}

func TestLoadFetchesOnlyOnce(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("ListPosts", mock.Anything).Return(makePosts(3), nil).Once()

	l := New(fetcher)
	l.Start(context.Background())
	l.Start(context.Background())
	<-l.Done()
	l.Load(context.Background())

	fetcher.AssertNumberOfCalls(t, "ListPosts", 1)
	assert.Equal(t, PhaseReady, l.Snapshot().Phase)
}

func TestLoadFailureMessages(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "non-success status",
			err:  &contentclient.StatusError{StatusCode: 500, Body: "boom"},
			want: MessageFetchFailed,
		},
		{
			name: "wrapped status",
			err:  fmt.Errorf("fetch: %w", &contentclient.StatusError{StatusCode: 503}),
			want: MessageFetchFailed,
		},
		{
			name: "transport failure keeps its message",
			err:  errors.New("dial tcp 10.0.0.1:443: connect: connection refused"),
			want: "dial tcp 10.0.0.1:443: connect: connection refused",
		},
		{
			name: "empty message falls back",
			err:  errors.New(""),
			want: MessageGeneric,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			fetcher := new(MockFetcher)
			fetcher.On("ListPosts", mock.Anything).Return(nil, testCase.err).Once()

			l := New(fetcher)
			l.Load(context.Background())
			v := l.Snapshot()

			assert.Equal(t, PhaseError, v.Phase)
			assert.Equal(t, testCase.want, v.Error)
			assert.Empty(t, v.Posts)
			assert.Zero(t, v.TotalPages)
			assert.ErrorIs(t, l.Search("x"), ErrNotReady)
		})
	}
}

func TestSnapshotFirstPage(t *testing.T) {
	l := readyList(t, makePosts(14))
	v := l.Snapshot()

	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, 3, v.TotalPages)
	assert.Equal(t, 14, v.FilteredCount)
	require.Len(t, v.Posts, PageSize)
	for i, p := range v.Posts {
		assert.Equal(t, int64(i+1), p.ID)
	}
}

func TestSnapshotLastPageIsPartial(t *testing.T) {
	l := readyList(t, makePosts(14))
	require.NoError(t, l.SetPage(3))

	v := l.Snapshot()
	require.Len(t, v.Posts, 2)
	assert.Equal(t, int64(13), v.Posts[0].ID)
	assert.Equal(t, int64(14), v.Posts[1].ID)
}

func TestSearchResetsPage(t *testing.T) {
	posts := makePosts(14)
	posts[1].Title = "Learning Gophers"
	posts[9].Excerpt = "all about GOPHERS"
	l := readyList(t, posts)

	require.NoError(t, l.SetPage(3))
	require.NoError(t, l.Search("gopher"))

	v := l.Snapshot()
	assert.Equal(t, "gopher", v.Query)
	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, 1, v.TotalPages)
	require.Len(t, v.Posts, 2)
	assert.Equal(t, int64(2), v.Posts[0].ID)
	assert.Equal(t, int64(10), v.Posts[1].ID)
}

func TestClearSearchResetsQueryAndPage(t *testing.T) {
	l := readyList(t, makePosts(14))

	require.NoError(t, l.Search("post"))
	require.NoError(t, l.SetPage(2))
	require.NoError(t, l.ClearSearch())

	v := l.Snapshot()
	assert.Empty(t, v.Query)
	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, 14, v.FilteredCount)
}

func TestActivateMovesPageAfterNavigation(t *testing.T) {
	l := readyList(t, makePosts(14))

	var pushed []int
	nav := pagination.NavigatorFunc(func(page int) {
		pushed = append(pushed, page)
	})

	require.NoError(t, l.Activate(3, nav))
	assert.Equal(t, []int{3}, pushed)
	assert.Equal(t, 3, l.Snapshot().CurrentPage)

	// Next is disabled on the last page.
	assert.ErrorIs(t, l.Activate(4, nav), ErrPageNotSelectable)
	assert.Equal(t, []int{3}, pushed)
	assert.Equal(t, 3, l.Snapshot().CurrentPage)
}

func TestActivateUsesRangeAfterSearch(t *testing.T) {
	posts := makePosts(14)
	posts[3].Title = "Gopher tips"
	l := readyList(t, posts)

	// Page 3 was selectable before the search; afterwards there is a single page.
	before := l.Snapshot()
	require.Equal(t, 3, before.TotalPages)
	require.NoError(t, l.Search("gopher"))

	called := false
	err := l.Activate(3, pagination.NavigatorFunc(func(int) { called = true }))
	assert.ErrorIs(t, err, ErrPageNotSelectable)
	assert.False(t, called)

	v := l.Snapshot()
	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, 1, v.TotalPages)
	assert.Len(t, v.Posts, 1)
}

func TestActivateBeforeReady(t *testing.T) {
	l := New(new(MockFetcher))
	assert.ErrorIs(t, l.Activate(1, nil), ErrNotReady)
}

func TestActivateConcurrentWithSearchKeepsPageInRange(t *testing.T) {
	posts := makePosts(14)
	posts[3].Title = "Gopher tips"
	l := readyList(t, posts)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = l.Search("gopher")
			} else {
				_ = l.Search("")
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			_ = l.Activate(1+i%3, nil)
		}(i)
	}
	wg.Wait()

	for _, query := range []string{"gopher", ""} {
		require.NoError(t, l.Search(query))
		for page := 1; page <= 3; page++ {
			_ = l.Activate(page, nil)
			v := l.Snapshot()
			assert.GreaterOrEqual(t, v.CurrentPage, 1)
			assert.LessOrEqual(t, v.CurrentPage, max(1, v.TotalPages))
		}
	}

	v := l.Snapshot()
	assert.GreaterOrEqual(t, v.CurrentPage, 1)
	assert.LessOrEqual(t, v.CurrentPage, max(1, v.TotalPages))
}

func TestSnapshotEmptyCollection(t *testing.T) {
	l := readyList(t, nil)
	v := l.Snapshot()

	assert.Equal(t, PhaseReady, v.Phase)
	assert.Zero(t, v.TotalPages)
	assert.Empty(t, v.Posts)
}

// blockingFetcher never answers until released, to observe the Loading phase.
type blockingFetcher struct {
	release chan struct{}
}

func (b *blockingFetcher) ListPosts(ctx context.Context) ([]models.Post, error) {
	<-b.release
	return makePosts(1), nil
}

func TestStartIsAsynchronous(t *testing.T) {
	fetcher := &blockingFetcher{release: make(chan struct{})}
	l := New(fetcher)

	l.Start(context.Background())
	assert.Equal(t, PhaseLoading, l.Snapshot().Phase)

	close(fetcher.release)
	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("fetch did not settle")
	}
	assert.Equal(t, PhaseReady, l.Snapshot().Phase)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "error", PhaseError.String())
	assert.Equal(t, "ready", PhaseReady.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
