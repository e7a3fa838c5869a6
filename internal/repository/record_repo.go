package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/damoang/angple-forum/internal/common"
	"github.com/damoang/angple-forum/internal/domain"
	"gorm.io/gorm"
)

// RecordRepository board and post data access
type RecordRepository interface {
	ListRecords(ctx context.Context, kind domain.Kind) ([]domain.Record, error)

	ListBoards(ctx context.Context) ([]domain.Board, error)
	ListPosts(ctx context.Context) ([]domain.Post, error)
	FindBoardBySlug(ctx context.Context, slug string) (*domain.Board, error)
	ListPostsByBoard(ctx context.Context, boardID int64) ([]domain.Post, error)
	FindPostByID(ctx context.Context, id int64) (*domain.Post, error)
}

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a gorm-backed RecordRepository
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) ListRecords(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	switch kind {
	case domain.KindBoard:
		boards, err := r.ListBoards(ctx)
		if err != nil {
			return nil, err
		}
		return boardRecords(boards), nil
	case domain.KindPost:
		posts, err := r.ListPosts(ctx)
		if err != nil {
			return nil, err
		}
		return postRecords(posts), nil
	}
	return nil, fmt.Errorf("%w: %q", common.ErrUnknownKind, kind)
}

func (r *recordRepository) ListBoards(ctx context.Context) ([]domain.Board, error) {
	var boards []domain.Board
	if err := r.db.WithContext(ctx).Order("order_num ASC").Order("id ASC").Find(&boards).Error; err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return boards, nil
}

func (r *recordRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *recordRepository) FindBoardBySlug(ctx context.Context, slug string) (*domain.Board, error) {
	var board domain.Board
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("board %q: %w", slug, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find board %q: %w", slug, err)
	}
	return &board, nil
}

func (r *recordRepository) ListPostsByBoard(ctx context.Context, boardID int64) ([]domain.Post, error) {
	var posts []domain.Post
	if err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts of board %d: %w", boardID, err)
	}
	return posts, nil
}

func (r *recordRepository) FindPostByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("post %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find post %d: %w", id, err)
	}
	return &post, nil
}

func boardRecords(boards []domain.Board) []domain.Record {
	records := make([]domain.Record, len(boards))
	for i, b := range boards {
		records[i] = b.Record()
	}
	return records
}

func postRecords(posts []domain.Post) []domain.Record {
	records := make([]domain.Record, len(posts))
	for i, p := range posts {
		records[i] = p.Record()
	}
	return records
}

type staticRecordRepository struct{}

// NewStaticRecordRepository serves the literal seed lists without a database
func NewStaticRecordRepository() RecordRepository {
	return staticRecordRepository{}
}

func (staticRecordRepository) ListRecords(_ context.Context, kind domain.Kind) ([]domain.Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownKind, kind)
	}
	return domain.SeedRecords(kind), nil
}

func (staticRecordRepository) ListBoards(context.Context) ([]domain.Board, error) {
	return domain.SeedBoards(), nil
}

func (staticRecordRepository) ListPosts(context.Context) ([]domain.Post, error) {
	return domain.SeedPosts(), nil
}

func (staticRecordRepository) FindBoardBySlug(_ context.Context, slug string) (*domain.Board, error) {
	for _, b := range domain.SeedBoards() {
		if b.Slug == slug {
			return &b, nil
		}
	}
	return nil, fmt.Errorf("board %q: %w", slug, common.ErrNotFound)
}

func (staticRecordRepository) ListPostsByBoard(_ context.Context, boardID int64) ([]domain.Post, error) {
	posts := []domain.Post{}
	for _, p := range domain.SeedPosts() {
		if p.BoardID == boardID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (staticRecordRepository) FindPostByID(_ context.Context, id int64) (*domain.Post, error) {
	for _, p := range domain.SeedPosts() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("post %d: %w", id, common.ErrNotFound)
}
