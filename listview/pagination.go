// Package listview derives the rows a table screen displays
package listview

// Ellipsis marks a compressed gap in a page-number strip.
const Ellipsis = -1

// PageNumbers returns the numbered page buttons with ellipsis compression:
// every page when there are seven or fewer, otherwise the first page, a gap
// once the current page moves past 3, the window around the current page, a
// gap until the current page nears the end, and the last page.
func PageNumbers(current, total int) []int {
	if total <= 0 {
		return []int{}
	}
	if total <= 7 {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	pages := []int{1}
	if current > 3 {
		pages = append(pages, Ellipsis)
	}
	lo := current - 1
	if lo < 2 {
		lo = 2
	}
	hi := current + 1
	if hi > total-1 {
		hi = total - 1
	}
	for i := lo; i <= hi; i++ {
		pages = append(pages, i)
	}
	if current < total-2 {
		pages = append(pages, Ellipsis)
	}
	return append(pages, total)
}
