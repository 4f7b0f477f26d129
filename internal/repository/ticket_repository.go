package repository

import (
	"qudurat_backend/internal/model"

	"gorm.io/gorm"
)

type TicketRepository struct {
	DB *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{DB: db}
}

func (r *TicketRepository) Create(ticket *model.Ticket) error {
	return r.DB.Create(ticket).Error
}

func (r *TicketRepository) FindByID(id string) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.DB.First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) Update(ticket *model.Ticket) error {
	return r.DB.Save(ticket).Error
}

func (r *TicketRepository) ListByUser(userID uint) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *TicketRepository) ListAll(page, limit int, status string) ([]model.Ticket, int64, error) {
	query := r.DB.Model(&model.Ticket{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tickets []model.Ticket
	offset := (page - 1) * limit
	err := query.Preload("User").Order("created_at desc").
		Offset(offset).Limit(limit).Find(&tickets).Error
	return tickets, total, err
}

func (r *TicketRepository) CreateReply(reply *model.TicketReply) error {
	return r.DB.Create(reply).Error
}

func (r *TicketRepository) ListReplies(ticketID string) ([]model.TicketReply, error) {
	var replies []model.TicketReply
	err := r.DB.Where("ticket_id = ?", ticketID).
		Order("created_at asc").Find(&replies).Error
	return replies, err
}
