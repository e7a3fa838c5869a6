package domain

// Kind identifies which source list a record belongs to
type Kind string

const (
	KindBoard Kind = "board"
	KindPost  Kind = "post"
)

// Valid reports whether k is a known record kind
func (k Kind) Valid() bool {
	return k == KindBoard || k == KindPost
}

// Record is the display shape shared by boards and posts
type Record struct {
	ID   int64
	Text string
}

// RecordResponse record DTO
type RecordResponse struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// ToResponse converts Record to its DTO
func (r Record) ToResponse() RecordResponse {
	return RecordResponse{ID: r.ID, Text: r.Text}
}

// Board 게시판 (discussion category, shown by title only)
type Board struct {
	ID          int64  `gorm:"column:id;primaryKey" json:"id"`
	Slug        string `gorm:"column:slug;type:varchar(50);uniqueIndex" json:"slug"`
	Title       string `gorm:"column:title;type:varchar(255)" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	OrderNum    int    `gorm:"column:order_num;default:0" json:"order_num"`
}

func (Board) TableName() string { return "forum_boards" }

// Record returns the board as a listing record keyed by id, text = title
func (b Board) Record() Record {
	return Record{ID: b.ID, Text: b.Title}
}

// BoardResponse board DTO
type BoardResponse struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ToResponse converts Board to its DTO
func (b Board) ToResponse() BoardResponse {
	return BoardResponse{ID: b.ID, Slug: b.Slug, Title: b.Title, Description: b.Description}
}

// Post 게시글 (short free-text content)
type Post struct {
	ID      int64  `gorm:"column:id;primaryKey" json:"id"`
	BoardID int64  `gorm:"column:board_id;index" json:"board_id"`
	Content string `gorm:"column:content;type:text" json:"content"`
}

func (Post) TableName() string { return "forum_posts" }

// Record returns the post as a listing record keyed by id, text = content
func (p Post) Record() Record {
	return Record{ID: p.ID, Text: p.Content}
}

// PostResponse post DTO. BoardID 0 means the post belongs to no board.
type PostResponse struct {
	ID      int64  `json:"id"`
	BoardID int64  `json:"board_id"`
	Content string `json:"content"`
}

// ToResponse converts Post to its DTO
func (p Post) ToResponse() PostResponse {
	return PostResponse{ID: p.ID, BoardID: p.BoardID, Content: p.Content}
}

// PostResponses converts a post list, never returning nil
func PostResponses(posts []Post) []PostResponse {
	out := make([]PostResponse, len(posts))
	for i, p := range posts {
		out[i] = p.ToResponse()
	}
	return out
}

// BoardResponses converts a board list, never returning nil
func BoardResponses(boards []Board) []BoardResponse {
	out := make([]BoardResponse, len(boards))
	for i, b := range boards {
		out[i] = b.ToResponse()
	}
	return out
}

// BoardWithPostsResponse a board together with its (filtered) posts
type BoardWithPostsResponse struct {
	Board BoardResponse  `json:"board"`
	Posts []PostResponse `json:"posts"`
}

// SearchResponse combined board and post hits
type SearchResponse struct {
	Boards []BoardResponse `json:"boards"`
	Posts  []PostResponse  `json:"posts"`
}

// SeedBoards fixed board list, insertion order = display order
func SeedBoards() []Board {
	return []Board{
		{ID: 1, Slug: "react", Title: "React проекты", Description: "Компоненты, хуки и сборка фронтенда", OrderNum: 1},
		{ID: 2, Slug: "solidity", Title: "Solidity смарт-контракты", Description: "Контракты, аудит и газ", OrderNum: 2},
		{ID: 3, Slug: "security", Title: "Кибербезопасность", Description: "Уязвимости, CTF и защита приложений", OrderNum: 3},
	}
}

// SeedPosts fixed post list, insertion order = display order
func SeedPosts() []Post {
	return []Post{
		{ID: 1, BoardID: 1, Content: "Изучаю React"},
		{ID: 2, BoardID: 2, Content: "Пишу смарт-контракт"},
		{ID: 3, BoardID: 0, Content: "Готовлюсь к экзамену"},
	}
}

// SeedRecords returns the literal source list for a kind (nil for unknown kinds)
func SeedRecords(kind Kind) []Record {
	switch kind {
	case KindBoard:
		boards := SeedBoards()
		records := make([]Record, len(boards))
		for i, b := range boards {
			records[i] = b.Record()
		}
		return records
	case KindPost:
		posts := SeedPosts()
		records := make([]Record, len(posts))
		for i, p := range posts {
			records[i] = p.Record()
		}
		return records
	}
	return nil
}
