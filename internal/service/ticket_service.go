package service

import (
	"qudurat_backend/internal/model"
	"qudurat_backend/internal/repository"
	"qudurat_backend/internal/util"
)

type TicketService struct {
	Repo     *repository.TicketRepository
	Notifier *NotificationService
}

func NewTicketService(repo *repository.TicketRepository, notifier *NotificationService) *TicketService {
	return &TicketService{Repo: repo, Notifier: notifier}
}

type CreateTicketRequest struct {
	Subject       string `json:"subject" binding:"required"`
	Body          string `json:"body" binding:"required"`
	AttachmentURL string `json:"attachmentUrl"`
}

func (s *TicketService) Create(userID uint, req CreateTicketRequest) (*model.Ticket, error) {
	ticket := &model.Ticket{
		UserID:        userID,
		Subject:       req.Subject,
		Body:          req.Body,
		AttachmentURL: req.AttachmentURL,
		Status:        model.TicketOpen,
	}
	if err := s.Repo.Create(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) ListMine(userID uint) ([]model.Ticket, error) {
	return s.Repo.ListByUser(userID)
}

func (s *TicketService) ListAll(page, limit int, status string) ([]model.Ticket, int64, error) {
	return s.Repo.ListAll(page, limit, status)
}

type TicketDetail struct {
	Ticket  *model.Ticket       `json:"ticket"`
	Replies []model.TicketReply `json:"replies"`
}

func (s *TicketService) Detail(ticketID string, requester *util.Claims) (*TicketDetail, error) {
	ticket, err := s.Repo.FindByID(ticketID)
	if err != nil {
		return nil, err
	}
	if requester.Role != model.Admin && ticket.UserID != requester.UserID {
		return nil, util.ErrPermissionDenied
	}

	replies, err := s.Repo.ListReplies(ticketID)
	if err != nil {
		return nil, err
	}

	return &TicketDetail{Ticket: ticket, Replies: replies}, nil
}

type ReplyRequest struct {
	Body string `json:"body" binding:"required"`
}

// Reply appends a message to the ticket. A staff reply flips the status to
// answered and notifies the owner; an owner reply reopens the ticket.
func (s *TicketService) Reply(ticketID string, author *util.Claims, req ReplyRequest) (*model.TicketReply, error) {
	ticket, err := s.Repo.FindByID(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == model.TicketClosed {
		return nil, util.ErrTicketClosed
	}
	if author.Role != model.Admin && ticket.UserID != author.UserID {
		return nil, util.ErrPermissionDenied
	}

	reply := &model.TicketReply{
		TicketID:   ticketID,
		AuthorID:   author.UserID,
		AuthorRole: author.Role,
		Body:       req.Body,
	}
	if err := s.Repo.CreateReply(reply); err != nil {
		return nil, err
	}

	if author.Role == model.Admin {
		ticket.Status = model.TicketAnswered
		if s.Notifier != nil {
			_ = s.Notifier.Notify(ticket.UserID, model.NotifyTicketReply,
				"رد جديد على تذكرتك",
				"تم الرد على تذكرتك: "+ticket.Subject)
		}
	} else {
		ticket.Status = model.TicketOpen
	}
	if err := s.Repo.Update(ticket); err != nil {
		return nil, err
	}

	return reply, nil
}

func (s *TicketService) Close(ticketID string) error {
	ticket, err := s.Repo.FindByID(ticketID)
	if err != nil {
		return err
	}
	ticket.Status = model.TicketClosed
	return s.Repo.Update(ticket)
}
