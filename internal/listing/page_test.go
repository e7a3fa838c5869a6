package listing

import (
	"testing"

	"github.com/damoang/angple-forum/internal/domain"
	"github.com/damoang/angple-forum/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage_DisplaysSourceInOrder(t *testing.T) {
	page := NewPage(domain.KindBoard, HeadingBoards, domain.SeedRecords(domain.KindBoard))

	assert.Equal(t, "Доски", page.Heading())
	assert.Equal(t, domain.KindBoard, page.Kind())
	assert.Equal(t, page.Source(), page.Displayed())
	assert.Equal(t, 3, page.Len())
	assert.Equal(t, "", page.Query())
	assert.Equal(t, search.StateEmpty, page.Input().State())
}

func TestPage_SearchScenarios(t *testing.T) {
	boards := domain.SeedRecords(domain.KindBoard)
	posts := domain.SeedRecords(domain.KindPost)

	tests := []struct {
		name     string
		source   []domain.Record
		query    string
		expected []domain.Record
	}{
		{
			name:     "react board",
			source:   boards,
			query:    "react",
			expected: []domain.Record{{ID: 1, Text: "React проекты"}},
		},
		{
			name:     "empty query restores all",
			source:   boards,
			query:    "",
			expected: boards,
		},
		{
			name:     "smart contract post",
			source:   posts,
			query:    "смарт",
			expected: []domain.Record{{ID: 2, Text: "Пишу смарт-контракт"}},
		},
		{
			name:     "no match",
			source:   boards,
			query:    "zzz",
			expected: []domain.Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(domain.KindBoard, HeadingBoards, tt.source)
			page.Search(tt.query)
			assert.Equal(t, tt.expected, page.Displayed())
			assert.Len(t, page.Rows(), len(tt.expected))
		})
	}
}

func TestPage_TypingRecomputesFromSource(t *testing.T) {
	page := NewPage(domain.KindPost, HeadingPosts, domain.SeedRecords(domain.KindPost))

	page.Input().InsertString("zz")
	assert.Equal(t, 0, page.Len())

	// recomputed from the full source, not from the previous result
	page.Input().Backspace()
	page.Input().Backspace()
	assert.Equal(t, 3, page.Len())

	page.Input().InsertString("REACT")
	require.Equal(t, 1, page.Len())
	assert.Equal(t, int64(1), page.Displayed()[0].ID)
}

func TestPage_SourceIsNotAliased(t *testing.T) {
	source := []domain.Record{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}
	page := NewPage(domain.KindBoard, HeadingBoards, source)

	source[0].Text = "mutated"
	assert.Equal(t, "a", page.Source()[0].Text)

	shown := page.Displayed()
	shown[1].Text = "mutated"
	assert.Equal(t, "b", page.Displayed()[1].Text)
}

func TestPage_EmptySource(t *testing.T) {
	page := NewPage(domain.KindBoard, HeadingBoards, nil)
	assert.Empty(t, page.Rows())
	page.Search("anything")
	assert.Empty(t, page.Rows())
	page.Search("")
	assert.Empty(t, page.Rows())
}

func TestPage_RowsKeyedByID(t *testing.T) {
	page := NewPage(domain.KindPost, HeadingPosts, domain.SeedRecords(domain.KindPost))
	page.Search("к")

	rows := page.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Key: 2, Text: "Пишу смарт-контракт"}, rows[0])
	assert.Equal(t, Row{Key: 3, Text: "Готовлюсь к экзамену"}, rows[1])
}

func TestHeadingFor(t *testing.T) {
	assert.Equal(t, HeadingBoards, HeadingFor(domain.KindBoard))
	assert.Equal(t, HeadingPosts, HeadingFor(domain.KindPost))
}
