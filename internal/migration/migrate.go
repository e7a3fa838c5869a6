package migration

import (
	"github.com/damoang/angple-forum/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for the forum tables and seeds default data if empty.
func Run(db *gorm.DB) error {
	// 1. AutoMigrate - 테이블 없으면 생성, 있으면 skip
	if err := db.AutoMigrate(&domain.Board{}, &domain.Post{}); err != nil {
		return err
	}

	// 2. Seed - 테이블이 비어있을 때만 기본 데이터 삽입
	var count int64
	if err := db.Model(&domain.Board{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		boards := domain.SeedBoards()
		if err := db.Create(&boards).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&domain.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		posts := domain.SeedPosts()
		return db.Create(&posts).Error
	}

	return nil
}
