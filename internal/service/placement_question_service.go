package service

import (
	"errors"

	"qudurat_backend/internal/model"
	"qudurat_backend/internal/repository"
)

// PlacementQuestionService is the admin-side management of the question bank.
type PlacementQuestionService struct {
	Repo *repository.PlacementQuestionRepository
}

func NewPlacementQuestionService(repo *repository.PlacementQuestionRepository) *PlacementQuestionService {
	return &PlacementQuestionService{Repo: repo}
}

type PlacementQuestionRequest struct {
	Section       model.Section   `json:"section" binding:"required"`
	Order         int             `json:"order"`
	Content       string          `json:"content"`
	ContentImage  string          `json:"contentImage"`
	OptionA       string          `json:"optionA"`
	OptionAImage  string          `json:"optionAImage"`
	OptionB       string          `json:"optionB"`
	OptionBImage  string          `json:"optionBImage"`
	OptionC       string          `json:"optionC"`
	OptionCImage  string          `json:"optionCImage"`
	OptionD       string          `json:"optionD"`
	OptionDImage  string          `json:"optionDImage"`
	CorrectOption model.OptionKey `json:"correctOption" binding:"required"`
}

func (req *PlacementQuestionRequest) validate() error {
	if req.Section != model.SectionQuantitative && req.Section != model.SectionVerbal {
		return errors.New("section must be quantitative or verbal")
	}
	if req.Content == "" && req.ContentImage == "" {
		return errors.New("question needs text or an image")
	}
	if !req.CorrectOption.Valid() {
		return errors.New("correct option must be one of A-D")
	}
	return nil
}

func (req *PlacementQuestionRequest) apply(q *model.PlacementQuestion) {
	q.Section = req.Section
	q.Order = req.Order
	q.Content = req.Content
	q.ContentImage = req.ContentImage
	q.OptionA = req.OptionA
	q.OptionAImage = req.OptionAImage
	q.OptionB = req.OptionB
	q.OptionBImage = req.OptionBImage
	q.OptionC = req.OptionC
	q.OptionCImage = req.OptionCImage
	q.OptionD = req.OptionD
	q.OptionDImage = req.OptionDImage
	q.CorrectOption = req.CorrectOption
}

func (s *PlacementQuestionService) Create(req PlacementQuestionRequest) (*model.PlacementQuestion, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	q := &model.PlacementQuestion{}
	req.apply(q)
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *PlacementQuestionService) Update(id uint, req PlacementQuestionRequest) (*model.PlacementQuestion, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	q, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	req.apply(q)
	if err := s.Repo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *PlacementQuestionService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *PlacementQuestionService) Get(id uint) (*model.PlacementQuestion, error) {
	return s.Repo.FindByID(id)
}

func (s *PlacementQuestionService) List(page, limit int) ([]model.PlacementQuestion, int64, error) {
	return s.Repo.ListAll(page, limit)
}
