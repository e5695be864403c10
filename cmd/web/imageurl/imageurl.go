// Package imageurl turns asset paths returned by the content API into absolute URLs.
package imageurl

import "strings"

// Resolver resolves a possibly relative asset URL against a fixed base URL.
type Resolver func(url string) string

// NewResolver binds baseURL so card rendering only has to pass the asset path.
func NewResolver(baseURL string) Resolver {
	return func(url string) string {
		return Resolve(url, baseURL)
	}
}

// Resolve returns url unchanged when it already carries an http(s) scheme.
// Otherwise one trailing slash of baseURL and one leading slash of url are dropped
// and both are joined with a single slash. An empty baseURL yields an
// origin-relative path.
func Resolve(url, baseURL string) string {
	if strings.HasPrefix(url, "http") {
		return url
	}
	base := strings.TrimSuffix(baseURL, "/")
	path := strings.TrimPrefix(url, "/")
	return base + "/" + path
}
