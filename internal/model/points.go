package model

// PointsTransaction is an append-only ledger entry; the user's balance is the
// sum of deltas, cached on the user row.
// swagger:model PointsTransaction
type PointsTransaction struct {
	BaseModel
	UserID    uint   `gorm:"index;type:bigint unsigned" json:"userId"`
	Delta     int    `gorm:"not null" json:"delta"`
	Reason    string `gorm:"size:50;not null" json:"reason"`
	Reference string `gorm:"size:100" json:"reference,omitempty"`
}

func (PointsTransaction) TableName() string {
	return "points_transactions"
}

// swagger:model Reward
type Reward struct {
	BaseModel
	Title   string `gorm:"size:255;not null" json:"title"`
	Cost    int    `gorm:"not null" json:"cost"`
	Enabled bool   `gorm:"default:true" json:"enabled"`
}

func (Reward) TableName() string {
	return "rewards"
}

// swagger:model RewardRedemption
type RewardRedemption struct {
	BaseModel
	UserID   uint    `gorm:"index;type:bigint unsigned" json:"userId"`
	RewardID uint    `gorm:"index;type:bigint unsigned" json:"rewardId"`
	Reward   *Reward `gorm:"foreignKey:RewardID" json:"reward,omitempty"`
	Cost     int     `gorm:"not null" json:"cost"`
}

func (RewardRedemption) TableName() string {
	return "reward_redemptions"
}
