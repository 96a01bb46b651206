package views

import "github.com/charmbracelet/bubbles/paginator"

// Paginator keeps a cursor over a list shown one page at a time. Paging
// itself is delegated to bubbles/paginator; the cursor always stays on the
// visible page.
type Paginator struct {
	pages  paginator.Model
	cursor int
	total  int
}

// NewPaginator creates a paginator showing pageSize items per page
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	pages := paginator.New()
	pages.Type = paginator.Arabic
	pages.ArabicFormat = "Page %d/%d"
	pages.PerPage = pageSize
	return &Paginator{pages: pages}
}

// SetTotal sets the number of items, keeping the cursor in range
func (p *Paginator) SetTotal(total int) {
	p.total = max(total, 0)
	p.pages.TotalPages = 1
	p.pages.SetTotalPages(p.total)
	p.SetCursor(p.cursor)
}

// Cursor returns the absolute index under the cursor
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor, turning to its page
func (p *Paginator) SetCursor(pos int) {
	p.cursor = min(max(pos, 0), max(p.total-1, 0))
	p.pages.Page = p.cursor / p.pages.PerPage
}

// CursorUp moves the cursor up, across pages if needed
func (p *Paginator) CursorUp() {
	p.SetCursor(p.cursor - 1)
}

// CursorDown moves the cursor down, across pages if needed
func (p *Paginator) CursorDown() {
	p.SetCursor(p.cursor + 1)
}

// NextPage turns the page and puts the cursor on its first item
func (p *Paginator) NextPage() {
	if p.pages.OnLastPage() {
		return
	}
	p.pages.NextPage()
	p.cursor = p.pages.Page * p.pages.PerPage
}

// PrevPage turns back a page and puts the cursor on its first item
func (p *Paginator) PrevPage() {
	if p.pages.Page == 0 {
		return
	}
	p.pages.PrevPage()
	p.cursor = p.pages.Page * p.pages.PerPage
}

// VisibleRange returns the [start, end) indices of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pages.GetSliceBounds(p.total)
}

// TotalPages returns the page count, at least 1
func (p *Paginator) TotalPages() int {
	return max(p.pages.TotalPages, 1)
}

// CurrentPage returns the 1-based page number
func (p *Paginator) CurrentPage() int {
	return p.pages.Page + 1
}

// View renders the page indicator
func (p *Paginator) View() string {
	return p.pages.View()
}

// Reset empties the list and returns to the first page
func (p *Paginator) Reset() {
	p.cursor = 0
	p.SetTotal(0)
}
