package repository

import (
	"errors"

	"qudurat_backend/internal/model"

	"gorm.io/gorm"
)

type PlacementResultRepository struct {
	DB *gorm.DB
}

func NewPlacementResultRepository(db *gorm.DB) *PlacementResultRepository {
	return &PlacementResultRepository{DB: db}
}

// Upsert stores a finalized result keyed by user. A repeated submission by
// the same user overwrites the previous row instead of duplicating it.
func (r *PlacementResultRepository) Upsert(result *model.PlacementResult) error {
	var existing model.PlacementResult
	err := r.DB.Where("user_id = ?", result.UserID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.DB.Create(result).Error
		}
		return err
	}

	existing.QuantCorrect = result.QuantCorrect
	existing.QuantTotal = result.QuantTotal
	existing.QuantPercentage = result.QuantPercentage
	existing.VerbalCorrect = result.VerbalCorrect
	existing.VerbalTotal = result.VerbalTotal
	existing.VerbalPercentage = result.VerbalPercentage
	existing.CompletedAt = result.CompletedAt
	return r.DB.Save(&existing).Error
}

func (r *PlacementResultRepository) FindByUser(userID uint) (*model.PlacementResult, error) {
	var result model.PlacementResult
	err := r.DB.Where("user_id = ?", userID).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *PlacementResultRepository) ListAll(page, limit int) ([]model.PlacementResult, int64, error) {
	var total int64
	if err := r.DB.Model(&model.PlacementResult{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []model.PlacementResult
	offset := (page - 1) * limit
	err := r.DB.Preload("User").Order("completed_at desc").
		Offset(offset).Limit(limit).Find(&results).Error
	return results, total, err
}
