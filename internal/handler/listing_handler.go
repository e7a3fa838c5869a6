package handler

import (
	"errors"
	"net/http"

	"github.com/damoang/angple-forum/internal/common"
	"github.com/damoang/angple-forum/internal/domain"
	"github.com/damoang/angple-forum/internal/middleware"
	"github.com/damoang/angple-forum/internal/service"
	"github.com/gin-gonic/gin"
)

// SearchRequest query parameters of the listing and search endpoints. The
// bound equals search.MaxQueryLength.
type SearchRequest struct {
	Q string `form:"q" binding:"max=200"`
}

type ListingHandler struct {
	service *service.ListingService
}

func NewListingHandler(service *service.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// ListBoards godoc
// @Summary      게시판 목록 검색
// @Description  Boards whose title contains q, case-insensitive. Empty q returns all boards.
// @Tags         listing
// @Produce      json
// @Param        q   query     string  false  "search query"
// @Success      200 {object}  common.APIResponse{data=[]domain.RecordResponse}
// @Failure      400 {object}  common.APIResponse
// @Router       /boards [get]
func (h *ListingHandler) ListBoards(c *gin.Context) {
	h.list(c, domain.KindBoard)
}

// ListPosts godoc
// @Summary      게시글 목록 검색
// @Description  Posts whose content contains q, case-insensitive. Empty q returns all posts.
// @Tags         listing
// @Produce      json
// @Param        q   query     string  false  "search query"
// @Success      200 {object}  common.APIResponse{data=[]domain.RecordResponse}
// @Failure      400 {object}  common.APIResponse
// @Router       /posts [get]
func (h *ListingHandler) ListPosts(c *gin.Context) {
	h.list(c, domain.KindPost)
}

func (h *ListingHandler) list(c *gin.Context, kind domain.Kind) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid search query", err)
		return
	}

	page, err := h.service.Search(c.Request.Context(), kind, req.Q)
	if err != nil {
		if errors.Is(err, common.ErrUnknownKind) {
			common.ErrorResponse(c, http.StatusNotFound, "Unknown listing", err)
			return
		}
		middleware.Logger(c).Error().Err(err).Str("kind", string(kind)).Msg("listing failed")
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch records", nil)
		return
	}

	// Response DTO로 변환
	displayed := page.Displayed()
	responses := make([]domain.RecordResponse, len(displayed))
	for i, r := range displayed {
		responses[i] = r.ToResponse()
	}

	common.SuccessResponse(c, responses, &common.Meta{
		Kind:  string(kind),
		Query: req.Q,
		Total: len(responses),
	})
}
