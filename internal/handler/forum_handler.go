package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/damoang/angple-forum/internal/common"
	"github.com/damoang/angple-forum/internal/domain"
	"github.com/damoang/angple-forum/internal/middleware"
	"github.com/damoang/angple-forum/internal/service"
	"github.com/gin-gonic/gin"
)

// ForumHandler board, post and combined search lookups
type ForumHandler struct {
	service *service.ListingService
}

func NewForumHandler(service *service.ListingService) *ForumHandler {
	return &ForumHandler{service: service}
}

// GetBoard godoc
// @Summary      게시판 조회
// @Description  Board by slug with its posts whose content contains q, case-insensitive
// @Tags         boards
// @Produce      json
// @Param        slug path      string  true   "board slug"
// @Param        q    query     string  false  "search query"
// @Success      200  {object}  common.APIResponse{data=domain.BoardWithPostsResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /boards/{slug} [get]
func (h *ForumHandler) GetBoard(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid search query", err)
		return
	}

	page, err := h.service.Board(c.Request.Context(), c.Param("slug"), req.Q)
	if err != nil {
		h.fail(c, err, "Board not found", "Failed to fetch board")
		return
	}

	common.SuccessResponse(c, domain.BoardWithPostsResponse{
		Board: page.Board.ToResponse(),
		Posts: domain.PostResponses(page.Posts),
	}, &common.Meta{
		Kind:  string(domain.KindPost),
		Query: page.Query,
		Total: len(page.Posts),
	})
}

// GetPost godoc
// @Summary      게시글 조회
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "post id"
// @Success      200  {object}  common.APIResponse{data=domain.PostResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/{id} [get]
func (h *ForumHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post id", common.ErrInvalidInput)
		return
	}

	post, err := h.service.Post(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Post not found", "Failed to fetch post")
		return
	}

	common.SuccessResponse(c, post.ToResponse(), nil)
}

// Search godoc
// @Summary      통합 검색
// @Description  Boards whose title or description contains q and posts whose content contains q. q is required.
// @Tags         search
// @Produce      json
// @Param        q    query     string  true  "search query"
// @Success      200  {object}  common.APIResponse{data=domain.SearchResponse}
// @Failure      400  {object}  common.APIResponse
// @Router       /search [get]
func (h *ForumHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid search query", err)
		return
	}

	result, err := h.service.SearchAll(c.Request.Context(), req.Q)
	if err != nil {
		h.fail(c, err, "", "Search failed")
		return
	}

	common.SuccessResponse(c, domain.SearchResponse{
		Boards: domain.BoardResponses(result.Boards),
		Posts:  domain.PostResponses(result.Posts),
	}, &common.Meta{
		Query: result.Query,
		Total: len(result.Boards) + len(result.Posts),
	})
}

// fail maps service errors to responses: ErrNotFound to 404, ErrInvalidInput
// to 400, anything else to 500 without details.
func (h *ForumHandler) fail(c *gin.Context, err error, notFound, internal string) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, notFound, nil)
	case errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, "Search query is required", err)
	default:
		middleware.Logger(c).Error().Err(err).Str("path", c.Request.URL.Path).Msg(internal)
		common.ErrorResponse(c, http.StatusInternalServerError, internal, nil)
	}
}
