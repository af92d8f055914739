package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
)

const (
	articleCacheKeyPrefix = "article:"
	cacheExpiration       = 30 * time.Minute
)

// BrowseOptions filters and orders the reader-facing listing. Only approved
// articles are ever returned through Browse; hiding drafts is not the
// caller's job to remember.
type BrowseOptions struct {
	Query      string
	CategoryID uint
	Sort       string // "recent" or "views"
	Page       int
	PageSize   int
}

type StatusCounts struct {
	Pending  int64
	Approved int64
	Rejected int64
}

type ArticleRepository interface {
	Create(article *models.Article) error
	FindByID(id uint) (*models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error

	FindByAuthor(authorID uint) ([]models.Article, error)
	FindPending() ([]models.Article, error)
	Browse(opts BrowseOptions) ([]models.Article, error)
	SearchAllApproved(query string, categoryID uint) ([]models.Article, error)

	RecordView(articleID uint, userID *uint) error

	CountByStatus() (StatusCounts, error)
	CountByAuthorAndStatus(authorID uint) (int64, StatusCounts, error)
	TopViewed(limit int, approvedOnly bool, authorID uint) ([]models.Article, error)
	RecentApproved(limit int) ([]models.Article, error)
}

type articleRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db, redis: nil, ctx: context.Background()}
}

// NewCachedArticleRepository caches single-article reads in Redis. Every
// mutation (including view recording, which bumps the counter) invalidates
// the cached entry.
func NewCachedArticleRepository(db *gorm.DB, redisClient *redis.Client) ArticleRepository {
	return &articleRepository{db: db, redis: redisClient, ctx: context.Background()}
}

func getCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", articleCacheKeyPrefix, id)
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) FindByID(id uint) (*models.Article, error) {
	if r.redis != nil {
		cachedData, err := r.redis.Get(r.ctx, getCacheKey(id)).Result()
		if err == nil {
			var article models.Article
			if err := json.Unmarshal([]byte(cachedData), &article); err == nil {
				return &article, nil
			}
			log.Printf("Failed to unmarshal cached article: %v", err)
		}
	}

	var article models.Article
	err := r.db.Preload("Category").Preload("Author").First(&article, id).Error
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		articleJSON, err := json.Marshal(article)
		if err == nil {
			if err := r.redis.Set(r.ctx, getCacheKey(id), articleJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache article ID %d: %v", id, err)
			}
		}
	}

	return &article, nil
}

func (r *articleRepository) Update(article *models.Article) error {
	// view_count is only ever touched by RecordView's atomic increment;
	// writing it back from a stale snapshot would undo concurrent views.
	if err := r.db.Omit("view_count").Save(article).Error; err != nil {
		return err
	}
	r.invalidateCache(article.ID)
	return nil
}

func (r *articleRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Article{}, id).Error; err != nil {
		return err
	}
	r.invalidateCache(id)
	return nil
}

func (r *articleRepository) invalidateCache(id uint) {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(r.ctx, getCacheKey(id)).Err(); err != nil {
		log.Printf("Failed to invalidate cache for article ID %d: %v", id, err)
	}
}

func (r *articleRepository) FindByAuthor(authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) FindPending() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").Preload("Author").
		Where("status = ?", models.StatusPending).
		Order("created_at DESC").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Browse(opts BrowseOptions) ([]models.Article, error) {
	query := r.db.Preload("Category").Preload("Author").
		Where("status = ?", models.StatusApproved)

	if opts.Query != "" {
		pattern := "%" + opts.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if opts.CategoryID != 0 {
		query = query.Where("category_id = ?", opts.CategoryID)
	}

	if opts.Sort == "views" {
		query = query.Order("view_count DESC").Order("approved_at DESC")
	} else {
		query = query.Order("approved_at DESC").Order("created_at DESC")
	}

	offset := (opts.Page - 1) * opts.PageSize

	var articles []models.Article
	err := query.Offset(offset).Limit(opts.PageSize).Find(&articles).Error
	return articles, err
}

func (r *articleRepository) SearchAllApproved(query string, categoryID uint) ([]models.Article, error) {
	q := r.db.Preload("Category").Preload("Author").
		Where("status = ?", models.StatusApproved)

	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}

	var articles []models.Article
	err := q.Order("created_at DESC").Find(&articles).Error
	return articles, err
}

// RecordView appends an audit row and bumps the denormalized counter in one
// transaction. The increment is a SQL-level add so concurrent views never
// lose updates.
func (r *articleRepository) RecordView(articleID uint, userID *uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		view := models.ArticleView{ArticleID: articleID, UserID: userID}
		if err := tx.Create(&view).Error; err != nil {
			return err
		}
		return tx.Model(&models.Article{}).
			Where("id = ?", articleID).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
	})
	if err != nil {
		return err
	}
	r.invalidateCache(articleID)
	return nil
}

func (r *articleRepository) CountByStatus() (StatusCounts, error) {
	var counts StatusCounts
	type row struct {
		Status models.ArticleStatus
		Total  int64
	}
	var rows []row
	err := r.db.Model(&models.Article{}).
		Select("status, count(*) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return counts, err
	}
	for _, row := range rows {
		switch row.Status {
		case models.StatusPending:
			counts.Pending = row.Total
		case models.StatusApproved:
			counts.Approved = row.Total
		case models.StatusRejected:
			counts.Rejected = row.Total
		}
	}
	return counts, nil
}

func (r *articleRepository) CountByAuthorAndStatus(authorID uint) (int64, StatusCounts, error) {
	var counts StatusCounts
	type row struct {
		Status models.ArticleStatus
		Total  int64
	}
	var rows []row
	err := r.db.Model(&models.Article{}).
		Select("status, count(*) as total").
		Where("author_id = ?", authorID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return 0, counts, err
	}
	var total int64
	for _, row := range rows {
		total += row.Total
		switch row.Status {
		case models.StatusPending:
			counts.Pending = row.Total
		case models.StatusApproved:
			counts.Approved = row.Total
		case models.StatusRejected:
			counts.Rejected = row.Total
		}
	}
	return total, counts, nil
}

// TopViewed returns the most viewed articles. With approvedOnly it is scoped
// to published content; with a non-zero authorID to one contributor's
// articles regardless of status.
func (r *articleRepository) TopViewed(limit int, approvedOnly bool, authorID uint) ([]models.Article, error) {
	query := r.db.Model(&models.Article{})
	if approvedOnly {
		query = query.Where("status = ?", models.StatusApproved)
	}
	if authorID != 0 {
		query = query.Where("author_id = ?", authorID)
	}

	var articles []models.Article
	err := query.Order("view_count DESC").Order("approved_at DESC").
		Limit(limit).Find(&articles).Error
	return articles, err
}

func (r *articleRepository) RecentApproved(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("status = ?", models.StatusApproved).
		Order("approved_at DESC").Order("created_at DESC").
		Limit(limit).Find(&articles).Error
	return articles, err
}
