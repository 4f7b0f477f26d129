package service

import (
	"qudurat_backend/internal/model"
	"qudurat_backend/internal/repository"
)

type NotificationService struct {
	Repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{Repo: repo}
}

// Notify creates an in-app notification for the user.
func (s *NotificationService) Notify(userID uint, kind model.NotificationKind, title, body string) error {
	return s.Repo.Create(&model.Notification{
		UserID: userID,
		Title:  title,
		Body:   body,
		Kind:   kind,
	})
}

func (s *NotificationService) List(userID uint, page, limit int) ([]model.Notification, int64, error) {
	return s.Repo.ListByUser(userID, page, limit)
}

func (s *NotificationService) MarkRead(userID, id uint) error {
	return s.Repo.MarkRead(userID, id)
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.Repo.MarkAllRead(userID)
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.Repo.UnreadCount(userID)
}
