package utils

import "strconv"

// Page is one bounded window over an ordered result set.
type Page struct {
	Number   int // 1-based, already clamped
	PerPage  int
	NumPages int
	Total    int64
}

// Paginate turns the raw page parameter into a valid page number for the
// given total. Missing or non-numeric input means page 1, anything below 1
// clamps to 1, anything past the end clamps to the last page.
func Paginate(total int64, perPage int, requested string) Page {
	numPages := int((total + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		numPages = 1
	}
	number, err := strconv.Atoi(requested)
	if err != nil || number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}
	return Page{Number: number, PerPage: perPage, NumPages: numPages, Total: total}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) NextNumber() int {
	return p.Number + 1
}

func (p Page) PrevNumber() int {
	return p.Number - 1
}
