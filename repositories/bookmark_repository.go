// File: /repositories/bookmark_repository.go
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"motolinks-api/models"
)

// BookmarkRepository is owner-scoped: lookups take the owning user id and
// never return another user's bookmarks.
type BookmarkRepository interface {
	Create(b *models.Bookmark) error
	FindByID(id, userID uint) (*models.Bookmark, error)
	URLTaken(url string, excludeID uint) (bool, error)
	ShortCodeTaken(code string) (bool, error)
	ListByOwner(userID uint, page, perPage int) ([]models.Bookmark, PageMeta, error)
	ByOwner(userID uint) ([]models.Bookmark, error)
	Update(b *models.Bookmark, fields map[string]interface{}) error
	Delete(id, userID uint) error
	Resolve(code string) (*models.Bookmark, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Create(b *models.Bookmark) error {
	if err := r.db.Create(b).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *bookmarkRepository) FindByID(id, userID uint) (*models.Bookmark, error) {
	var b models.Bookmark
	err := r.db.First(&b, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookmarkRepository) URLTaken(url string, excludeID uint) (bool, error) {
	q := r.db.Model(&models.Bookmark{}).Where("LOWER(url) = LOWER(?)", url)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *bookmarkRepository) ShortCodeTaken(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Bookmark{}).
		Where("LOWER(short_url) = LOWER(?)", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *bookmarkRepository) ListByOwner(userID uint, page, perPage int) ([]models.Bookmark, PageMeta, error) {
	q := r.db.Model(&models.Bookmark{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, PageMeta{}, err
	}

	var items []models.Bookmark
	err := q.Order("created_at").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&items).Error
	if err != nil {
		return nil, PageMeta{}, err
	}
	return items, buildPageMeta(page, perPage, total), nil
}

func (r *bookmarkRepository) ByOwner(userID uint) ([]models.Bookmark, error) {
	var items []models.Bookmark
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *bookmarkRepository) Update(b *models.Bookmark, fields map[string]interface{}) error {
	if err := r.db.Model(b).Updates(fields).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *bookmarkRepository) Delete(id, userID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Bookmark{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *bookmarkRepository) Resolve(code string) (*models.Bookmark, error) {
	var b models.Bookmark
	err := r.db.First(&b, "LOWER(short_url) = LOWER(?)", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&b).
		UpdateColumn("visits", gorm.Expr("visits + ?", 1)).Error
	if err != nil {
		return nil, err
	}
	b.Visits++
	return &b, nil
}
