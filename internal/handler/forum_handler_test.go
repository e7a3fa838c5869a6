package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/damoang/angple-forum/internal/domain"
	"github.com/damoang/angple-forum/internal/repository"
	"github.com/damoang/angple-forum/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boardResponse struct {
	Data domain.BoardWithPostsResponse `json:"data"`
	Meta struct {
		Query string `json:"query"`
		Total int    `json:"total"`
	} `json:"meta"`
}

func TestGetBoard(t *testing.T) {
	r := newTestRouter(t, repository.NewStaticRecordRepository())

	w := get(r, "/api/v1/boards/react")
	require.Equal(t, http.StatusOK, w.Code)

	var body boardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "react", body.Data.Board.Slug)
	assert.Equal(t, "React проекты", body.Data.Board.Title)
	assert.Equal(t, []domain.PostResponse{{ID: 1, BoardID: 1, Content: "Изучаю React"}}, body.Data.Posts)
	assert.Equal(t, 1, body.Meta.Total)
}

func TestGetBoard_FiltersPosts(t *testing.T) {
	r := newTestRouter(t, repository.NewStaticRecordRepository())

	w := get(r, "/api/v1/boards/react?q=zzz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"posts":[]`)
	assert.Contains(t, w.Body.String(), `"query":"zzz"`)

	w = get(r, "/api/v1/boards/react?q="+strings.Repeat("a", search.MaxQueryLength+1))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBoard_UnknownSlug(t *testing.T) {
	r := newTestRouter(t, repository.NewStaticRecordRepository())

	w := get(r, "/api/v1/boards/clubs")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestGetPost(t *testing.T) {
	r := newTestRouter(t, repository.NewStaticRecordRepository())

	w := get(r, "/api/v1/posts/3")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data domain.PostResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, domain.PostResponse{ID: 3, BoardID: 0, Content: "Готовлюсь к экзамену"}, body.Data)
}

func TestGetPost_Errors(t *testing.T) {
	r := newTestRouter(t, repository.NewStaticRecordRepository())

	tests := []struct {
		target string
		status int
	}{
		{"/api/v1/posts/42", http.StatusNotFound},
		{"/api/v1/posts/abc", http.StatusBadRequest},
		{"/api/v1/posts/0", http.StatusBadRequest},
		{"/api/v1/posts/-1", http.StatusBadRequest},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, get(r, tt.target).Code, tt.target)
	}
}

func TestSearch_Combined(t *testing.T) {
	r := newTestRouter(t, repository.NewStaticRecordRepository())

	w := get(r, "/api/v1/search?q="+url.QueryEscape("Смарт"))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data domain.SearchResponse `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Boards, 1)
	assert.Equal(t, "solidity", body.Data.Boards[0].Slug)
	assert.Equal(t, []domain.PostResponse{{ID: 2, BoardID: 2, Content: "Пишу смарт-контракт"}}, body.Data.Posts)
	assert.Equal(t, 2, body.Meta.Total)
}

func TestSearch_NoHitsAreEmptyArrays(t *testing.T) {
	r := newTestRouter(t, repository.NewStaticRecordRepository())

	w := get(r, "/api/v1/search?q=zzz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"boards":[]`)
	assert.Contains(t, w.Body.String(), `"posts":[]`)
}

func TestSearch_RequiresQuery(t *testing.T) {
	r := newTestRouter(t, repository.NewStaticRecordRepository())

	w := get(r, "/api/v1/search")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BAD_REQUEST")
}

func TestForum_RepositoryFailure(t *testing.T) {
	r := newTestRouter(t, failingRepo{})

	for _, target := range []string{"/api/v1/boards/react", "/api/v1/posts/1", "/api/v1/search?q=a"} {
		w := get(r, target)
		assert.Equal(t, http.StatusInternalServerError, w.Code, target)
		assert.NotContains(t, w.Body.String(), "db down", target)
	}
}
