package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/damoang/angple-forum/internal/common"
	"github.com/damoang/angple-forum/internal/domain"
	"github.com/damoang/angple-forum/internal/listing"
	"github.com/damoang/angple-forum/internal/repository"
	"github.com/damoang/angple-forum/internal/search"
	pkgcache "github.com/damoang/angple-forum/pkg/cache"
	pkglogger "github.com/damoang/angple-forum/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var searchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "forum_searches_total",
		Help: "Listing searches by record kind and outcome",
	},
	[]string{"kind", "outcome"},
)

// ListingService builds listing pages from the record store
type ListingService struct {
	repo  repository.RecordRepository
	cache pkgcache.Service
}

// NewListingService creates a new ListingService. cache may be nil.
func NewListingService(repo repository.RecordRepository, cache pkgcache.Service) *ListingService {
	return &ListingService{repo: repo, cache: cache}
}

// Page returns a fresh page for kind with an empty query
func (s *ListingService) Page(ctx context.Context, kind domain.Kind) (*listing.Page, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownKind, kind)
	}

	source, err := s.sourceList(ctx, kind)
	if err != nil {
		return nil, err
	}
	return listing.NewPage(kind, listing.HeadingFor(kind), source), nil
}

// Search returns a fresh page for kind with query applied
func (s *ListingService) Search(ctx context.Context, kind domain.Kind, query string) (*listing.Page, error) {
	page, err := s.Page(ctx, kind)
	if err != nil {
		return nil, err
	}
	if query == "" {
		searchesTotal.WithLabelValues(string(kind), "empty").Inc()
		return page, nil
	}

	page.Search(query)
	outcome := "hit"
	if page.Len() == 0 {
		outcome = "miss"
	}
	searchesTotal.WithLabelValues(string(kind), outcome).Inc()
	return page, nil
}

// BoardPage is a board together with those of its posts matching Query
type BoardPage struct {
	Board domain.Board
	Query string
	Posts []domain.Post
}

// SearchResult holds the board and post hits of a combined search
type SearchResult struct {
	Query  string
	Boards []domain.Board
	Posts  []domain.Post
}

// Board returns the board with slug and its posts whose content contains
// query. An empty query keeps every post of the board.
func (s *ListingService) Board(ctx context.Context, slug, query string) (*BoardPage, error) {
	board, err := s.repo.FindBoardBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	posts, err := s.repo.ListPostsByBoard(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("load posts of board %q: %w", slug, err)
	}

	return &BoardPage{
		Board: *board,
		Query: query,
		Posts: search.FilterFunc(posts, query, func(p domain.Post) string { return p.Content }),
	}, nil
}

// SearchAll matches query against board titles and descriptions and post
// content. Unlike the listings, an empty query is rejected.
func (s *ListingService) SearchAll(ctx context.Context, query string) (*SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", common.ErrInvalidInput)
	}

	boards, err := s.repo.ListBoards(ctx)
	if err != nil {
		return nil, fmt.Errorf("load boards: %w", err)
	}
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}

	result := &SearchResult{
		Query:  query,
		Boards: make([]domain.Board, 0, len(boards)),
		Posts:  search.FilterFunc(posts, query, func(p domain.Post) string { return p.Content }),
	}
	for _, b := range boards {
		if search.Matches(b.Title, query) || search.Matches(b.Description, query) {
			result.Boards = append(result.Boards, b)
		}
	}

	outcome := "hit"
	if len(result.Boards)+len(result.Posts) == 0 {
		outcome = "miss"
	}
	searchesTotal.WithLabelValues("all", outcome).Inc()
	return result, nil
}

// Post returns the post with id
func (s *ListingService) Post(ctx context.Context, id int64) (*domain.Post, error) {
	return s.repo.FindPostByID(ctx, id)
}

func (s *ListingService) sourceList(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	if s.cache != nil {
		records, err := s.cache.GetRecords(ctx, kind)
		if err == nil {
			return records, nil
		}
		if !errors.Is(err, pkgcache.ErrMiss) {
			pkglogger.GetLogger().Warn().Err(err).Str("kind", string(kind)).Msg("record cache read failed")
		}
	}

	records, err := s.repo.ListRecords(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s records: %w", kind, err)
	}

	if s.cache != nil {
		if err := s.cache.SetRecords(ctx, kind, records); err != nil {
			pkglogger.GetLogger().Warn().Err(err).Str("kind", string(kind)).Msg("record cache write failed")
		}
	}
	return records, nil
}
