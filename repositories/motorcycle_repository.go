// File: /repositories/motorcycle_repository.go
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"motolinks-api/models"
)

// MotorcycleFilter holds the recognized list filters. Empty fields are not
// applied; non-empty ones combine with AND, each matched case-insensitively.
type MotorcycleFilter struct {
	Brand    string
	Model    string
	Year     string
	Category string
}

func (f MotorcycleFilter) Empty() bool {
	return f.Brand == "" && f.Model == "" && f.Year == "" && f.Category == ""
}

type MotorcycleRepository interface {
	Create(m *models.Motorcycle) error
	FindByNIV(niv string) (*models.Motorcycle, error)
	URLTaken(url, excludeNIV string) (bool, error)
	NIVTaken(niv string) (bool, error)
	ShortCodeTaken(code string) (bool, error)
	List(filter MotorcycleFilter, page, perPage int) ([]models.Motorcycle, PageMeta, error)
	Update(m *models.Motorcycle, fields map[string]interface{}) error
	Delete(niv string) error
	ByOwner(userID uint) ([]models.Motorcycle, error)
	// Resolve maps a short code to its record and increments the visit
	// counter without touching updated_at.
	Resolve(code string) (*models.Motorcycle, error)
}

type motorcycleRepository struct {
	db *gorm.DB
}

func NewMotorcycleRepository(db *gorm.DB) MotorcycleRepository {
	return &motorcycleRepository{db: db}
}

func (r *motorcycleRepository) Create(m *models.Motorcycle) error {
	if err := r.db.Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *motorcycleRepository) FindByNIV(niv string) (*models.Motorcycle, error) {
	var m models.Motorcycle
	err := r.db.First(&m, "LOWER(niv) = LOWER(?)", niv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *motorcycleRepository) URLTaken(url, excludeNIV string) (bool, error) {
	q := r.db.Model(&models.Motorcycle{}).Where("LOWER(url) = LOWER(?)", url)
	if excludeNIV != "" {
		q = q.Where("niv <> ?", excludeNIV)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *motorcycleRepository) NIVTaken(niv string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Motorcycle{}).
		Where("LOWER(niv) = LOWER(?)", niv).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *motorcycleRepository) ShortCodeTaken(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Motorcycle{}).
		Where("LOWER(short_url) = LOWER(?)", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *motorcycleRepository) List(filter MotorcycleFilter, page, perPage int) ([]models.Motorcycle, PageMeta, error) {
	q := r.db.Model(&models.Motorcycle{})
	if filter.Brand != "" {
		q = q.Where("LOWER(brand) LIKE LOWER(?)", filter.Brand)
	}
	if filter.Model != "" {
		q = q.Where("LOWER(model) LIKE LOWER(?)", filter.Model)
	}
	if filter.Year != "" {
		q = q.Where("year = ?", filter.Year)
	}
	if filter.Category != "" {
		q = q.Where("LOWER(category) LIKE LOWER(?)", filter.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, PageMeta{}, err
	}

	var items []models.Motorcycle
	err := q.Order("created_at").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&items).Error
	if err != nil {
		return nil, PageMeta{}, err
	}
	return items, buildPageMeta(page, perPage, total), nil
}

func (r *motorcycleRepository) Update(m *models.Motorcycle, fields map[string]interface{}) error {
	if err := r.db.Model(m).Updates(fields).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *motorcycleRepository) Delete(niv string) error {
	res := r.db.Where("LOWER(niv) = LOWER(?)", niv).Delete(&models.Motorcycle{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *motorcycleRepository) ByOwner(userID uint) ([]models.Motorcycle, error) {
	var items []models.Motorcycle
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *motorcycleRepository) Resolve(code string) (*models.Motorcycle, error) {
	var m models.Motorcycle
	err := r.db.First(&m, "LOWER(short_url) = LOWER(?)", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// UpdateColumn keeps updated_at untouched; only field mutations refresh it.
	err = r.db.Model(&m).
		UpdateColumn("visits", gorm.Expr("visits + ?", 1)).Error
	if err != nil {
		return nil, err
	}
	m.Visits++
	return &m, nil
}
