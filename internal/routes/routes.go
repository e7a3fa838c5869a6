package routes

import (
	"github.com/damoang/angple-forum/internal/handler"
	"github.com/damoang/angple-forum/internal/view"
	"github.com/gin-gonic/gin"
)

// Setup configures the page and API routes
func Setup(
	router *gin.Engine,
	pageHandler *handler.PageHandler,
	listingHandler *handler.ListingHandler,
	forumHandler *handler.ForumHandler,
) {
	// Pages, one per table entry
	for _, e := range Table {
		switch e.Page {
		case PageHome:
			router.GET(e.Path, pageHandler.Home)
		case PageBoards, PagePosts:
			kind, _ := KindOf(e.Page)
			router.GET(e.Path, pageHandler.Listing(kind))
		}
	}

	// Unknown paths
	router.NoRoute(pageHandler.NotFound)

	// JSON API
	api := router.Group("/api/v1")
	api.GET("/boards", listingHandler.ListBoards)
	api.GET("/posts", listingHandler.ListPosts)
	api.GET("/boards/:slug", forumHandler.GetBoard)
	api.GET("/posts/:id", forumHandler.GetPost)
	api.GET("/search", forumHandler.Search)
}

// NavLinks returns header navigation built from the table
func NavLinks() []view.NavLink {
	links := make([]view.NavLink, len(Table))
	for i, e := range Table {
		links[i] = view.NavLink{Path: e.Path, Label: e.Label}
	}
	return links
}
