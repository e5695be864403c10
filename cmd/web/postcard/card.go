// Package postcard maps one post to the view model of a listing card.
package postcard

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"blog-list/cmd/web/imageurl"
	"blog-list/models"
)

const (
	// DefaultImage is the bundled placeholder used when an image variant is missing.
	DefaultImage = "/static/images/default-image.svg"

	// FallbackAuthor is shown when the author has no display name.
	FallbackAuthor = "Author"

	// PostLink is where the title and "Read More" point. There is no detail route yet.
	PostLink = "/"

	dateLayout = "January 2, 2006"
)

// Card is everything the card template needs. It carries no behaviour.
type Card struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	CoverURL  string `json:"cover_url"`
	CoverAlt  string `json:"cover_alt"`
	AvatarURL string `json:"avatar_url"`
	AvatarAlt string `json:"avatar_alt"`
	Date      string `json:"date"`
	Byline    string `json:"byline"`
	Link      string `json:"link"`
}

// Builder renders cards. A nil Resolve leaves asset URLs untouched and a nil Location
// means UTC.
type Builder struct {
	Resolve  imageurl.Resolver
	Location *time.Location
}

func (b Builder) Build(p models.Post) Card {
	author := p.AuthorName()
	if author == "" {
		author = FallbackAuthor
	}

	coverAlt := p.CoverAlt()
	if coverAlt == "" {
		coverAlt = p.Title
	}

	return Card{
		ID:        p.ID,
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		CoverURL:  b.imageURL(p.CoverFormat(models.FormatMedium)),
		CoverAlt:  coverAlt,
		AvatarURL: b.imageURL(p.AvatarFormat(models.FormatThumbnail)),
		AvatarAlt: author,
		Date:      b.FormatDate(p.PublicationDate),
		Byline:    "By " + author,
		Link:      PostLink,
	}
}

// BuildAll keeps the order of posts.
func (b Builder) BuildAll(posts []models.Post) []Card {
	cards := make([]Card, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, b.Build(p))
	}
	return cards
}

func (b Builder) imageURL(f models.ImageFormat, ok bool) string {
	if !ok {
		return DefaultImage
	}
	if b.Resolve == nil {
		return f.URL
	}
	return b.Resolve(f.URL)
}

// FormatDate renders a publication timestamp as a long-form date ("January 5, 2024").
// Input that cannot be parsed is returned as is.
func (b Builder) FormatDate(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}
	loc := b.Location
	if loc == nil {
		loc = time.UTC
	}
	t, err := dateparse.ParseIn(raw, loc)
	if err != nil {
		return raw
	}
	return t.In(loc).Format(dateLayout)
}
