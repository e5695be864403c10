package imageurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name    string
		url     string
		baseURL string
		want    string
	}{
		{
			name:    "relative path with trailing slash base",
			url:     "/img/a.jpg",
			baseURL: "https://cdn.x.com/",
			want:    "https://cdn.x.com/img/a.jpg",
		},
		{
			name:    "relative path without leading slash",
			url:     "img/a.jpg",
			baseURL: "https://cdn.x.com",
			want:    "https://cdn.x.com/img/a.jpg",
		},
		{
			name:    "only one slash is stripped on each side",
			url:     "//img/a.jpg",
			baseURL: "https://cdn.x.com//",
			want:    "https://cdn.x.com///img/a.jpg",
		},
		{
			name:    "empty base is origin relative",
			url:     "/uploads/cover.png",
			baseURL: "",
			want:    "/uploads/cover.png",
		},
		{
			name:    "empty base and bare path",
			url:     "uploads/cover.png",
			baseURL: "",
			want:    "/uploads/cover.png",
		},
		{
			name:    "absolute https passthrough",
			url:     "https://cdn.x.com/img/a.jpg",
			baseURL: "https://other.example.com/",
			want:    "https://cdn.x.com/img/a.jpg",
		},
		{
			name:    "absolute http passthrough",
			url:     "http://cdn.x.com/img/a.jpg",
			baseURL: "",
			want:    "http://cdn.x.com/img/a.jpg",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Resolve(testCase.url, testCase.baseURL))
		})
	}
}

func TestResolveAbsoluteIgnoresAnyBase(t *testing.T) {
	abs := "https://cdn.x.com/img/a.jpg"
	for _, base := range []string{"", "/", "https://a.example.com", "https://b.example.com/", "relative/base"} {
		assert.Equal(t, abs, Resolve(abs, base), "base=%q", base)
	}
}

func TestNewResolverBindsBase(t *testing.T) {
	resolve := NewResolver("https://cdn.x.com/")
	assert.Equal(t, "https://cdn.x.com/img/a.jpg", resolve("/img/a.jpg"))
	assert.Equal(t, "https://elsewhere.example.com/b.jpg", resolve("https://elsewhere.example.com/b.jpg"))
}
