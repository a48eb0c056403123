// Package listview derives the rows a table screen displays
package listview

import "github.com/amourdesk/amourdesk-go/models/records"

// PageSizes is the fixed set the page-size selector offers.
var PageSizes = []int{5, 10, 25, 50}

// DefaultPageSize matches the table screens' initial "Show 10 entries".
const DefaultPageSize = 10

// Controller owns the UI-local list state for one table screen: search term,
// single-column sort, current page and page size. It is independent of the
// entity store; Rows derives the visible rows from whatever collection it is
// handed.
type Controller[E records.Record] struct {
	searchTerm string
	sortKey    string
	sortDir    Direction
	page       int
	pageSize   int
}

// View is the derived result for one render: the visible rows plus the
// pagination facts the controls bind to.
type View[E records.Record] struct {
	Rows        []E   `json:"rows"`
	Total       int   `json:"total"`
	TotalPages  int   `json:"totalPages"`
	Page        int   `json:"page"`
	PageSize    int   `json:"pageSize"`
	StartIndex  int   `json:"startIndex"`
	EndIndex    int   `json:"endIndex"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
	PageNumbers []int `json:"pageNumbers"`
}

// NewController creates a controller with the screens' initial state: no
// search, no sort, page 1 of 10.
func NewController[E records.Record]() *Controller[E] {
	return &Controller[E]{sortDir: Asc, page: 1, pageSize: DefaultPageSize}
}

// SetSearch replaces the search term and resets to the first page.
func (c *Controller[E]) SetSearch(term string) {
	c.searchTerm = term
	c.page = 1
}

// SetPageSize replaces the page size and resets to the first page. Sizes
// outside PageSizes are ignored.
func (c *Controller[E]) SetPageSize(size int) {
	for _, allowed := range PageSizes {
		if size == allowed {
			c.pageSize = size
			c.page = 1
			return
		}
	}
}

// SetPage moves to the given page. Pages below 1 are ignored; pages past the
// end are accepted and simply render empty (the page is never clamped against
// the filtered count).
func (c *Controller[E]) SetPage(page int) {
	if page >= 1 {
		c.page = page
	}
}

// ToggleSort sorts by the given column, flipping the direction when the
// column is already the sort key and resetting to ascending when it is not.
// Sorting never changes the current page.
func (c *Controller[E]) ToggleSort(key string) {
	if c.sortKey == key && c.sortDir == Asc {
		c.sortDir = Desc
	} else {
		c.sortKey = key
		c.sortDir = Asc
	}
}

// SetSort sets the sort column and direction directly (query-parameter
// driven screens).
func (c *Controller[E]) SetSort(key string, dir Direction) {
	c.sortKey = key
	if dir == Desc {
		c.sortDir = Desc
	} else {
		c.sortDir = Asc
	}
}

// SearchTerm returns the current search term.
func (c *Controller[E]) SearchTerm() string { return c.searchTerm }

// Sort returns the current sort column and direction.
func (c *Controller[E]) Sort() (string, Direction) { return c.sortKey, c.sortDir }

// Page returns the current page.
func (c *Controller[E]) Page() int { return c.page }

// PageSize returns the current page size.
func (c *Controller[E]) PageSize() int { return c.pageSize }

// Rows runs the fixed filter -> sort -> paginate pipeline over the collection
// and returns the derived view. The derivation is a pure function of the
// collection and the controller state.
func (c *Controller[E]) Rows(collection []E) View[E] {
	filtered := Filter(collection, c.searchTerm)
	sorted := Sort(filtered, c.sortKey, c.sortDir)
	rows := Paginate(sorted, c.page, c.pageSize)

	total := len(sorted)
	totalPages := TotalPages(total, c.pageSize)
	start := (c.page - 1) * c.pageSize
	end := start + len(rows)

	return View[E]{
		Rows:        rows,
		Total:       total,
		TotalPages:  totalPages,
		Page:        c.page,
		PageSize:    c.pageSize,
		StartIndex:  start,
		EndIndex:    end,
		HasPrevious: c.page > 1,
		HasNext:     c.page < totalPages,
		PageNumbers: PageNumbers(c.page, totalPages),
	}
}
