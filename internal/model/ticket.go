package model

type TicketStatus string

const (
	TicketOpen     TicketStatus = "open"
	TicketAnswered TicketStatus = "answered"
	TicketClosed   TicketStatus = "closed"
)

// swagger:model Ticket
type Ticket struct {
	UUIDBase
	UserID        uint         `gorm:"index;type:bigint unsigned" json:"userId"`
	User          *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Subject       string       `gorm:"size:255;not null" json:"subject"`
	Body          string       `gorm:"type:text;not null" json:"body"`
	AttachmentURL string       `gorm:"size:255" json:"attachmentUrl,omitempty"`
	Status        TicketStatus `gorm:"size:20;default:'open'" json:"status"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// swagger:model TicketReply
type TicketReply struct {
	UUIDBase
	TicketID   string   `gorm:"index;type:varchar(36)" json:"ticketId"`
	AuthorID   uint     `gorm:"type:bigint unsigned" json:"authorId"`
	AuthorRole UserRole `gorm:"size:20" json:"authorRole"`
	Body       string   `gorm:"type:text;not null" json:"body"`
}

func (TicketReply) TableName() string {
	return "ticket_replies"
}
