package pagination

import (
	"net/http"
	"net/url"
	"strconv"
)

// PageParam is the query parameter kept in sync with the current page.
const PageParam = "page"

// Navigator performs the address-bar side effect of a page change.
type Navigator interface {
	PushPage(page int)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(page int)

func (f NavigatorFunc) PushPage(page int) { f(page) }

// WithPage returns u with the page parameter added or overwritten. u is not modified.
func WithPage(u *url.URL, page int) string {
	if u == nil {
		u = &url.URL{Path: "/"}
	}
	next := *u
	q := next.Query()
	q.Set(PageParam, strconv.Itoa(page))
	next.RawQuery = q.Encode()
	return next.String()
}

// HXPushURL asks htmx to push the new location onto the browser history
// (history.pushState) without a navigation.
type HXPushURL struct {
	Header  http.Header
	Current *url.URL
}

// NewHXPushURL takes the current browser URL from the HX-Current-URL request header.
// A missing or unparseable header falls back to "/".
func NewHXPushURL(w http.ResponseWriter, r *http.Request) *HXPushURL {
	current := &url.URL{Path: "/"}
	if raw := r.Header.Get("HX-Current-URL"); raw != "" {
		if u, err := url.Parse(raw); err == nil {
			current = u
		}
	}
	return &HXPushURL{Header: w.Header(), Current: current}
}

func (n *HXPushURL) PushPage(page int) {
	n.Header.Set("HX-Push-Url", WithPage(n.Current, page))
}

// LocationRecorder keeps the location a client should push for API consumers that
// manage their own history.
type LocationRecorder struct {
	Base     *url.URL
	Location string
}

func (n *LocationRecorder) PushPage(page int) {
	n.Location = WithPage(n.Base, page)
}
