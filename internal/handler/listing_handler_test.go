package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/damoang/angple-forum/internal/domain"
	"github.com/damoang/angple-forum/internal/repository"
	"github.com/damoang/angple-forum/internal/search"
	"github.com/damoang/angple-forum/internal/service"
	"github.com/damoang/angple-forum/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepo struct{}

func (failingRepo) ListRecords(context.Context, domain.Kind) ([]domain.Record, error) {
	return nil, errors.New("db down")
}

func (failingRepo) ListBoards(context.Context) ([]domain.Board, error) {
	return nil, errors.New("db down")
}

func (failingRepo) ListPosts(context.Context) ([]domain.Post, error) {
	return nil, errors.New("db down")
}

func (failingRepo) FindBoardBySlug(context.Context, string) (*domain.Board, error) {
	return nil, errors.New("db down")
}

func (failingRepo) ListPostsByBoard(context.Context, int64) ([]domain.Post, error) {
	return nil, errors.New("db down")
}

func (failingRepo) FindPostByID(context.Context, int64) (*domain.Post, error) {
	return nil, errors.New("db down")
}

func newTestRouter(t *testing.T, repo repository.RecordRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := view.Templates()
	require.NoError(t, err)

	svc := service.NewListingService(repo, nil)
	pages := NewPageHandler(svc, []view.NavLink{{Path: "/", Label: "Главная"}})
	listings := NewListingHandler(svc)
	forum := NewForumHandler(svc)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/", pages.Home)
	r.GET("/boards", pages.Listing(domain.KindBoard))
	r.GET("/posts", pages.Listing(domain.KindPost))
	r.NoRoute(pages.NotFound)
	r.GET("/api/v1/boards", listings.ListBoards)
	r.GET("/api/v1/posts", listings.ListPosts)
	r.GET("/api/v1/boards/:slug", forum.GetBoard)
	r.GET("/api/v1/posts/:id", forum.GetPost)
	r.GET("/api/v1/search", forum.Search)
	return r
}

type listResponse struct {
	Data []domain.RecordResponse `json:"data"`
	Meta struct {
		Kind  string `json:"kind"`
		Query string `json:"query"`
		Total int    `json:"total"`
	} `json:"meta"`
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listResponse {
	t.Helper()
	var body listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListBoards_Query(t *testing.T) {
	r := newTestRouter(t, repository.NewStaticRecordRepository())

	w := get(r, "/api/v1/boards?q=react")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeList(t, w)
	assert.Equal(t, []domain.RecordResponse{{ID: 1, Text: "React проекты"}}, body.Data)
	assert.Equal(t, "board", body.Meta.Kind)
	assert.Equal(t, "react", body.Meta.Query)
	assert.Equal(t, 1, body.Meta.Total)
}

func TestListBoards_EmptyQueryReturnsAll(t *testing.T) {
	r := newTestRouter(t, repository.NewStaticRecordRepository())

	body := decodeList(t, get(r, "/api/v1/boards"))
	require.Len(t, body.Data, 3)
	assert.Equal(t, int64(1), body.Data[0].ID)
	assert.Equal(t, int64(2), body.Data[1].ID)
	assert.Equal(t, int64(3), body.Data[2].ID)
}

func TestListPosts_CyrillicQuery(t *testing.T) {
	r := newTestRouter(t, repository.NewStaticRecordRepository())

	body := decodeList(t, get(r, "/api/v1/posts?q="+url.QueryEscape("смарт")))
	assert.Equal(t, []domain.RecordResponse{{ID: 2, Text: "Пишу смарт-контракт"}}, body.Data)
}

func TestListPosts_NoMatchIsEmptyArray(t *testing.T) {
	r := newTestRouter(t, repository.NewStaticRecordRepository())

	w := get(r, "/api/v1/posts?q=zzz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestList_QueryTooLong(t *testing.T) {
	r := newTestRouter(t, repository.NewStaticRecordRepository())

	ok := get(r, "/api/v1/boards?q="+url.QueryEscape(strings.Repeat("ы", search.MaxQueryLength)))
	assert.Equal(t, http.StatusOK, ok.Code)

	w := get(r, "/api/v1/boards?q="+strings.Repeat("a", search.MaxQueryLength+1))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BAD_REQUEST")
}

func TestList_RepositoryFailure(t *testing.T) {
	r := newTestRouter(t, failingRepo{})

	w := get(r, "/api/v1/boards")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")

	w = get(r, "/boards")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSearchRequest_BoundMatchesMaxQueryLength(t *testing.T) {
	field, ok := reflect.TypeOf(SearchRequest{}).FieldByName("Q")
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf("max=%d", search.MaxQueryLength), field.Tag.Get("binding"))
}
