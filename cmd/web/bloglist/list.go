// Package bloglist holds the state of one blog list display: the one-shot post fetch,
// the search query and the current page. Filtered and paged views are recomputed on
// every Snapshot.
package bloglist

import (
	"context"
	"errors"
	"sync"

	"blog-list/cmd/internal/logger"
	"blog-list/cmd/web/clients/contentclient"
	"blog-list/cmd/web/pagination"
	"blog-list/models"
)

const (
	MessageFetchFailed = "Failed to fetch blog posts"
	MessageGeneric     = "Something went wrong"
)

// ErrNotReady is returned by search and page operations before the posts are loaded.
var ErrNotReady = errors.New("blog list is not ready")

// ErrPageNotSelectable is returned by Activate for a page no enabled pagination
// button requests.
var ErrPageNotSelectable = errors.New("page is not selectable")

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// PostFetcher loads the full post collection. *contentclient.Client implements it.
type PostFetcher interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
}

// View is a derived, read-only picture of the list at one instant.
type View struct {
	Phase         Phase
	Error         string
	Query         string
	CurrentPage   int
	TotalPages    int
	FilteredCount int
	Posts         []models.Post
}

// List is the state of a single display. It is safe for concurrent use: the fetch
// goroutine and request handlers share it.
type List struct {
	fetcher PostFetcher

	startOnce sync.Once
	once      sync.Once
	done      chan struct{}

	mu    sync.Mutex
	phase Phase
	err   string
	posts []models.Post
	query string
	page  int
}

func New(fetcher PostFetcher) *List {
	return &List{
		fetcher: fetcher,
		done:    make(chan struct{}),
		phase:   PhaseLoading,
		page:    1,
	}
}

// Start triggers the fetch in the background. Only the first call has an effect.
func (l *List) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		go l.Load(ctx)
	})
}

// Load fetches the posts and settles the list into Ready or Error. Only the first
// call fetches; later calls wait for it to settle.
func (l *List) Load(ctx context.Context) {
	l.once.Do(func() {
		defer close(l.done)

		posts, err := l.fetcher.ListPosts(ctx)

		l.mu.Lock()
		defer l.mu.Unlock()
		if err != nil {
			l.phase = PhaseError
			l.err = errorMessage(err)
			logger.ErrorWithFields("blog posts fetch failed", logger.Fields{"error": err.Error()})
			return
		}
		l.phase = PhaseReady
		l.posts = posts
		logger.DebugWithFields("blog posts fetched", logger.Fields{"count": len(posts)})
	})
	<-l.done
}

// Done is closed once the fetch has settled.
func (l *List) Done() <-chan struct{} {
	return l.done
}

// Search replaces the query and goes back to the first page.
func (l *List) Search(query string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.phase != PhaseReady {
		return ErrNotReady
	}
	l.query = query
	l.page = 1
	return nil
}

// ClearSearch empties the query. Like any query change it resets the page.
func (l *List) ClearSearch() error {
	return l.Search("")
}

// SetPage moves to page without clamping; the pagination control only offers pages
// that exist.
func (l *List) SetPage(page int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.phase != PhaseReady {
		return ErrNotReady
	}
	l.page = page
	return nil
}

// Activate clicks the pagination button requesting page. The control is built from
// the current filtered count and nav is pushed before the page moves, all under the
// list lock, so a concurrent Search cannot leave the page outside the new range.
func (l *List) Activate(page int, nav pagination.Navigator) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.phase != PhaseReady {
		return ErrNotReady
	}

	total := TotalPages(len(Filter(l.posts, l.query)), PageSize)
	control := pagination.New(total, l.page)
	if !control.Activate(page, nav, func(p int) { l.page = p }) {
		return ErrPageNotSelectable
	}
	return nil
}

func (l *List) Snapshot() View {
	l.mu.Lock()
	defer l.mu.Unlock()

	v := View{
		Phase:       l.phase,
		Error:       l.err,
		Query:       l.query,
		CurrentPage: l.page,
	}
	if l.phase != PhaseReady {
		return v
	}

	filtered := Filter(l.posts, l.query)
	v.FilteredCount = len(filtered)
	v.TotalPages = TotalPages(len(filtered), PageSize)
	v.Posts = PageSlice(filtered, l.page, PageSize)
	return v
}

func errorMessage(err error) string {
	var statusErr *contentclient.StatusError
	if errors.As(err, &statusErr) {
		return MessageFetchFailed
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MessageGeneric
}
