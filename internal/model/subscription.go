package model

import "time"

// swagger:model SubscriptionPlan
type SubscriptionPlan struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	PriceHalalas int    `gorm:"not null" json:"priceHalalas"`
	DurationDays int    `gorm:"not null" json:"durationDays"`
	Enabled      bool   `gorm:"default:true" json:"enabled"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

type SubscriptionStatus string

const (
	SubscriptionPending  SubscriptionStatus = "pending"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionExpired  SubscriptionStatus = "expired"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// swagger:model Subscription
type Subscription struct {
	BaseModel
	UserID     uint               `gorm:"index;type:bigint unsigned" json:"userId"`
	PlanID     uint               `gorm:"index;type:bigint unsigned" json:"planId"`
	Plan       *SubscriptionPlan  `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	Status     SubscriptionStatus `gorm:"size:20;default:'pending'" json:"status"`
	PaymentRef string             `gorm:"size:100;index" json:"paymentRef"`
	StartsAt   *time.Time         `json:"startsAt,omitempty"`
	EndsAt     *time.Time         `json:"endsAt,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
