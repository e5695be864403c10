package models

// Image format names. The content API sends several variants; the listing uses these two.
const (
	FormatMedium    = "medium"
	FormatThumbnail = "thumbnail"
)

// Post represents a single blog post returned by the content API.
// Body is decoded but not rendered in the listing (reserved for a detail view).
type Post struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	Excerpt         string      `json:"excerpt"`
	Body            string      `json:"body"`
	PublicationDate string      `json:"publication_date"`
	Author          *Author     `json:"author"`
	Cover           *CoverImage `json:"cover,omitempty"`
}

// Author is the post writer. Avatar is optional.
type Author struct {
	ID        int64   `json:"id"`
	FullName  string  `json:"full_name"`
	CreatedAt string  `json:"created_at"`
	Avatar    *Avatar `json:"avatar,omitempty"`
}

// CoverImage holds named format variants of the post cover.
type CoverImage struct {
	ID              int64                   `json:"id"`
	Name            string                  `json:"name"`
	AlternativeText string                  `json:"alternativeText"`
	Formats         map[string]*ImageFormat `json:"formats"`
}

// Avatar holds named format variants of the author picture.
type Avatar struct {
	Formats map[string]*ImageFormat `json:"formats"`
}

// ImageFormat is one variant of an uploaded image. Path is null for remote uploads.
type ImageFormat struct {
	Path *string `json:"path"`
	URL  string  `json:"url"`
}

// CoverFormat returns the named cover variant, if the post has one.
func (p Post) CoverFormat(name string) (ImageFormat, bool) {
	if p.Cover == nil {
		return ImageFormat{}, false
	}
	return lookupFormat(p.Cover.Formats, name)
}

// AvatarFormat returns the named avatar variant of the post author, if any.
func (p Post) AvatarFormat(name string) (ImageFormat, bool) {
	if p.Author == nil || p.Author.Avatar == nil {
		return ImageFormat{}, false
	}
	return lookupFormat(p.Author.Avatar.Formats, name)
}

// AuthorName returns the author display name or "" when absent.
func (p Post) AuthorName() string {
	if p.Author == nil {
		return ""
	}
	return p.Author.FullName
}

// CoverAlt returns the cover alternative text or "" when absent.
func (p Post) CoverAlt() string {
	if p.Cover == nil {
		return ""
	}
	return p.Cover.AlternativeText
}

// A variant sent as null counts as missing.
func lookupFormat(formats map[string]*ImageFormat, name string) (ImageFormat, bool) {
	f, ok := formats[name]
	if !ok || f == nil {
		return ImageFormat{}, false
	}
	return *f, true
}
