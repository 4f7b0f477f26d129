package repository

import (
	"time"

	"qudurat_backend/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) ListPlans() ([]model.SubscriptionPlan, error) {
	var plans []model.SubscriptionPlan
	err := r.DB.Where("enabled = ?", true).Order("price_halalas asc").Find(&plans).Error
	return plans, err
}

func (r *SubscriptionRepository) FindPlanByID(id uint) (*model.SubscriptionPlan, error) {
	var plan model.SubscriptionPlan
	err := r.DB.First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *SubscriptionRepository) Create(sub *model.Subscription) error {
	return r.DB.Create(sub).Error
}

func (r *SubscriptionRepository) FindByID(id uint) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Preload("Plan").First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Update(sub *model.Subscription) error {
	return r.DB.Save(sub).Error
}

func (r *SubscriptionRepository) ListByUser(userID uint) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.DB.Preload("Plan").Where("user_id = ?", userID).
		Order("created_at desc").Find(&subs).Error
	return subs, err
}

// FindActiveByUser returns the user's current active subscription, if any.
func (r *SubscriptionRepository) FindActiveByUser(userID uint) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Preload("Plan").
		Where("user_id = ? AND status = ? AND ends_at > ?", userID, model.SubscriptionActive, time.Now()).
		Order("ends_at desc").First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ExpireDue marks active subscriptions whose end date has passed.
func (r *SubscriptionRepository) ExpireDue() error {
	return r.DB.Model(&model.Subscription{}).
		Where("status = ? AND ends_at <= ?", model.SubscriptionActive, time.Now()).
		Update("status", model.SubscriptionExpired).Error
}
