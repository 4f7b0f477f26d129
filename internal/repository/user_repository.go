package repository

import (
	"time"

	"qudurat_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByPhone(phone string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("phone = ?", phone).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).
		Update("last_login", time.Now()).Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).
		Update("last_seen", time.Now()).Error
}

func (r *UserRepository) MarkPhoneVerified(phone string) error {
	return r.DB.Model(&model.User{}).Where("phone = ?", phone).
		Update("phone_verified", true).Error
}

func (r *UserRepository) UpdateApprovalStatus(userID uint, status model.ApprovalStatus) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).
		Update("approval_status", status).Error
}

// ListStudentsByParentPhone returns the students linked to a parent account
// through the parent phone reference.
func (r *UserRepository) ListStudentsByParentPhone(parentPhone string) ([]model.User, error) {
	var students []model.User
	err := r.DB.Where("role = ? AND parent_phone = ?", model.Student, parentPhone).
		Order("created_at asc").Find(&students).Error
	return students, err
}
