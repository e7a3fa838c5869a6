package handler

import (
	"net/http"

	"github.com/damoang/angple-forum/internal/domain"
	"github.com/damoang/angple-forum/internal/middleware"
	"github.com/damoang/angple-forum/internal/service"
	"github.com/damoang/angple-forum/internal/view"
	"github.com/gin-gonic/gin"
)

// PageHandler renders the HTML pages. The engine must have the view
// templates installed with SetHTMLTemplate.
type PageHandler struct {
	service *service.ListingService
	nav     []view.NavLink
}

func NewPageHandler(service *service.ListingService, nav []view.NavLink) *PageHandler {
	return &PageHandler{service: service, nav: nav}
}

// Home - 홈 (GET /)
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", view.HomeView{
		Title: view.SiteTitle,
		Nav:   h.nav,
		Intro: view.HomeIntro(),
	})
}

// Listing returns the handler of a listing page (GET /boards, GET /posts).
// The query comes from ?q= and is applied as one input change.
func (h *PageHandler) Listing(kind domain.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SearchRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.String(http.StatusBadRequest, "Некорректный поисковый запрос")
			return
		}

		page, err := h.service.Search(c.Request.Context(), kind, req.Q)
		if err != nil {
			middleware.Logger(c).Error().Err(err).Str("kind", string(kind)).Msg("listing page failed")
			c.String(http.StatusInternalServerError, "Ошибка при получении списка")
			return
		}

		c.HTML(http.StatusOK, "listing.html", view.NewListingView(c.Request.URL.Path, h.nav, page))
	}
}

// NotFound renders the not-found page for any unmapped path
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", view.NotFoundView{
		Title: view.SiteTitle,
		Nav:   h.nav,
		Path:  c.Request.URL.Path,
	})
}
