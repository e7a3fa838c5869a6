// Package listing implements a listing page: a fixed source list, the list
// currently displayed, and the search input that recomputes it.
package listing

import (
	"github.com/damoang/angple-forum/internal/domain"
	"github.com/damoang/angple-forum/internal/search"
)

// Page headings
const (
	HeadingBoards = "Доски"
	HeadingPosts  = "Посты"
)

// Row is one rendered list item, keyed by record id
type Row struct {
	Key  int64
	Text string
}

// Page owns one source list for its whole lifetime. Displayed is always a
// subsequence of source and equals it while the query is empty.
type Page struct {
	kind      domain.Kind
	heading   string
	source    []domain.Record
	displayed []domain.Record
	input     *search.Input
}

// NewPage copies source and wires a fresh search input to it.
// Duplicate ids in source are not checked.
func NewPage(kind domain.Kind, heading string, source []domain.Record) *Page {
	p := &Page{
		kind:    kind,
		heading: heading,
		source:  clone(source),
	}
	p.displayed = clone(p.source)
	p.input = search.NewInput(p.handleSearch)
	return p
}

// HeadingFor returns the default heading of a kind
func HeadingFor(kind domain.Kind) string {
	if kind == domain.KindPost {
		return HeadingPosts
	}
	return HeadingBoards
}

func (p *Page) handleSearch(query string) {
	p.displayed = search.Filter(p.source, query)
}

// Kind returns the record kind listed on this page
func (p *Page) Kind() domain.Kind { return p.kind }

// Heading returns the page heading
func (p *Page) Heading() string { return p.heading }

// Input returns the page's search input
func (p *Page) Input() *search.Input { return p.input }

// Query returns the current query text
func (p *Page) Query() string { return p.input.Value() }

// Search replaces the query, as if the field had been changed to q
func (p *Page) Search(q string) {
	p.input.SetValue(q)
}

// Source returns a copy of the source list
func (p *Page) Source() []domain.Record {
	return clone(p.source)
}

// Displayed returns a copy of the displayed list
func (p *Page) Displayed() []domain.Record {
	return clone(p.displayed)
}

// Rows returns one row per displayed record, in display order
func (p *Page) Rows() []Row {
	rows := make([]Row, len(p.displayed))
	for i, r := range p.displayed {
		rows[i] = Row{Key: r.ID, Text: r.Text}
	}
	return rows
}

// Len returns the number of displayed records
func (p *Page) Len() int { return len(p.displayed) }

func clone(records []domain.Record) []domain.Record {
	out := make([]domain.Record, len(records))
	copy(out, records)
	return out
}
