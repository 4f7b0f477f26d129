package repository

import (
	"qudurat_backend/internal/model"

	"gorm.io/gorm"
)

type PointsRepository struct {
	DB *gorm.DB
}

func NewPointsRepository(db *gorm.DB) *PointsRepository {
	return &PointsRepository{DB: db}
}

// Record appends a ledger entry and adjusts the cached user balance in one
// transaction.
func (r *PointsRepository) Record(txn *model.PointsTransaction) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).Where("id = ?", txn.UserID).
			Update("points", gorm.Expr("points + ?", txn.Delta)).Error
	})
}

func (r *PointsRepository) ListByUser(userID uint, page, limit int) ([]model.PointsTransaction, int64, error) {
	query := r.DB.Model(&model.PointsTransaction{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txns []model.PointsTransaction
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&txns).Error
	return txns, total, err
}

func (r *PointsRepository) Balance(userID uint) (int, error) {
	var balance int64
	err := r.DB.Model(&model.PointsTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(delta), 0)").Scan(&balance).Error
	return int(balance), err
}

func (r *PointsRepository) ListRewards() ([]model.Reward, error) {
	var rewards []model.Reward
	err := r.DB.Where("enabled = ?", true).Order("cost asc").Find(&rewards).Error
	return rewards, err
}

func (r *PointsRepository) FindRewardByID(id uint) (*model.Reward, error) {
	var reward model.Reward
	err := r.DB.First(&reward, id).Error
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

func (r *PointsRepository) CreateRedemption(redemption *model.RewardRedemption) error {
	return r.DB.Create(redemption).Error
}
