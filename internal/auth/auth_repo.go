package auth

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RohanKadam-7/boxgames/internal/common"
	"github.com/RohanKadam-7/boxgames/internal/user"
)

type UserRepository interface {
	CreateUser(u *user.User) error
	GetUserByEmail(email string) (*user.User, error)
	EmailOrUsernameTaken(email, username string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(u *user.User) error {
	if err := r.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) GetUserByEmail(email string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) EmailOrUsernameTaken(email, username string) (bool, error) {
	var count int64
	err := r.db.Model(&user.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
