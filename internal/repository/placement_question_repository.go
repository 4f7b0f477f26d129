package repository

import (
	"qudurat_backend/internal/model"

	"gorm.io/gorm"
)

type PlacementQuestionRepository struct {
	DB *gorm.DB
}

func NewPlacementQuestionRepository(db *gorm.DB) *PlacementQuestionRepository {
	return &PlacementQuestionRepository{DB: db}
}

func (r *PlacementQuestionRepository) Create(q *model.PlacementQuestion) error {
	return r.DB.Create(q).Error
}

func (r *PlacementQuestionRepository) FindByID(id uint) (*model.PlacementQuestion, error) {
	var q model.PlacementQuestion
	err := r.DB.First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *PlacementQuestionRepository) Update(q *model.PlacementQuestion) error {
	return r.DB.Save(q).Error
}

func (r *PlacementQuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.PlacementQuestion{}, id).Error
}

// ListBySection returns a section's questions in presentation order. An empty
// result is not an error.
func (r *PlacementQuestionRepository) ListBySection(section model.Section) ([]model.PlacementQuestion, error) {
	var qs []model.PlacementQuestion
	err := r.DB.Where("section = ?", section).
		Order("`order` asc, created_at asc").Find(&qs).Error
	return qs, err
}

func (r *PlacementQuestionRepository) ListAll(page, limit int) ([]model.PlacementQuestion, int64, error) {
	var total int64
	query := r.DB.Model(&model.PlacementQuestion{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var qs []model.PlacementQuestion
	offset := (page - 1) * limit
	err := r.DB.Order("section asc, `order` asc").
		Offset(offset).Limit(limit).Find(&qs).Error
	return qs, total, err
}
