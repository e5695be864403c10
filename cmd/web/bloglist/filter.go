package bloglist

import (
	"strings"

	"blog-list/models"
)

// PageSize is the number of cards shown per page.
const PageSize = 6

// Filter keeps the posts whose title or excerpt contains query, ignoring case.
// An empty query keeps everything. The input slice is never modified.
func Filter(posts []models.Post, query string) []models.Post {
	if query == "" {
		return posts
	}
	needle := strings.ToLower(query)
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Excerpt), needle) {
			out = append(out, p)
		}
	}
	return out
}

// TotalPages is ceil(n / size); zero items means zero pages.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// PageSlice returns posts[(page-1)*size : page*size], bounded to the slice.
// Pages outside the range yield an empty slice.
func PageSlice(posts []models.Post, page, size int) []models.Post {
	if page < 1 || size <= 0 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(posts) {
		return nil
	}
	end := start + size
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end]
}
