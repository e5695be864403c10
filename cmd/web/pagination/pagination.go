// Package pagination builds the page navigation control of the blog list.
//
// Control is a pure function of (totalPages, currentPage). Activating a page goes
// through a Navigator, the only place allowed to touch the browser address.
package pagination

import "strconv"

const (
	LabelPrevious = "Prev"
	LabelNext     = "Next"
)

// Button is one clickable control. Page is the page it requests when activated.
type Button struct {
	Label    string `json:"label"`
	Page     int    `json:"page"`
	Disabled bool   `json:"disabled"`
	Active   bool   `json:"active"`
}

// Control is the rendered pagination bar.
type Control struct {
	TotalPages  int      `json:"total_pages"`
	CurrentPage int      `json:"current_page"`
	Previous    Button   `json:"previous"`
	Pages       []Button `json:"pages"`
	Next        Button   `json:"next"`
}

// New returns nil when there is at most one page: the control is not rendered at all.
func New(totalPages, currentPage int) *Control {
	if totalPages <= 1 {
		return nil
	}

	c := &Control{
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		Previous: Button{
			Label:    LabelPrevious,
			Page:     currentPage - 1,
			Disabled: currentPage == 1,
		},
		Next: Button{
			Label:    LabelNext,
			Page:     currentPage + 1,
			Disabled: currentPage == totalPages,
		},
		Pages: make([]Button, 0, totalPages),
	}
	for page := 1; page <= totalPages; page++ {
		c.Pages = append(c.Pages, Button{
			Label:  strconv.Itoa(page),
			Page:   page,
			Active: page == currentPage,
		})
	}
	return c
}

// Enabled reports whether some enabled button of the control requests page.
func (c *Control) Enabled(page int) bool {
	if c == nil {
		return false
	}
	if !c.Previous.Disabled && c.Previous.Page == page {
		return true
	}
	if !c.Next.Disabled && c.Next.Page == page {
		return true
	}
	return page >= 1 && page <= c.TotalPages
}

// Activate handles a click on the button requesting page. The address is synchronized
// through nav before onChange is called. Pages no enabled button requests are
// ignored and false is returned.
func (c *Control) Activate(page int, nav Navigator, onChange func(page int)) bool {
	if !c.Enabled(page) {
		return false
	}
	if nav != nil {
		nav.PushPage(page)
	}
	if onChange != nil {
		onChange(page)
	}
	return true
}
