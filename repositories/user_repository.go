// File: /repositories/user_repository.go
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"motolinks-api/models"
)

type UserRepository interface {
	// Create persists a new user. Email uniqueness is checked before
	// username so a request violating both reports the email conflict.
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	if existing, err := r.FindByEmail(user.Email); err != nil {
		return err
	} else if existing != nil {
		return ErrDuplicateEmail
	}

	if existing, err := r.FindByUsername(user.Username); err != nil {
		return err
	} else if existing != nil {
		return ErrDuplicateUsername
	}

	if err := r.db.Create(user).Error; err != nil {
		// The unique indexes close the race the pre-checks leave open.
		// Re-discriminate so the caller still gets a field-specific conflict.
		if isDuplicateKey(err) {
			if u, lookupErr := r.FindByEmail(user.Email); lookupErr == nil && u != nil {
				return ErrDuplicateEmail
			}
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
