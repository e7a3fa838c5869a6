package routes

import "github.com/damoang/angple-forum/internal/domain"

// PageID identifies a top-level page
type PageID string

const (
	PageHome   PageID = "home"
	PageBoards PageID = "boards"
	PagePosts  PageID = "posts"
)

// Entry maps a fixed path to a page
type Entry struct {
	Path  string
	Page  PageID
	Label string
}

// Table is the fixed path-to-page mapping, in navigation order
var Table = []Entry{
	{Path: "/", Page: PageHome, Label: "Главная"},
	{Path: "/boards", Page: PageBoards, Label: "Доски"},
	{Path: "/posts", Page: PagePosts, Label: "Посты"},
}

// Lookup returns the page mapped to path. Paths match exactly: no
// parameters, no trailing-slash folding. NewEngine disables gin's
// trailing-slash redirect to keep the same contract.
func Lookup(path string) (PageID, bool) {
	for _, e := range Table {
		if e.Path == path {
			return e.Page, true
		}
	}
	return "", false
}

// KindOf returns the record kind listed by page; ok is false for the home page
func KindOf(page PageID) (domain.Kind, bool) {
	switch page {
	case PageBoards:
		return domain.KindBoard, true
	case PagePosts:
		return domain.KindPost, true
	}
	return "", false
}
