package model

type NotificationKind string

const (
	NotifyTicketReply  NotificationKind = "ticket_reply"
	NotifyApproval     NotificationKind = "parent_approval"
	NotifySubscription NotificationKind = "subscription"
	NotifyReward       NotificationKind = "reward"
)

// swagger:model Notification
type Notification struct {
	BaseModel
	UserID uint             `gorm:"index;type:bigint unsigned" json:"userId"`
	Title  string           `gorm:"size:255;not null" json:"title"`
	Body   string           `gorm:"type:text" json:"body"`
	Kind   NotificationKind `gorm:"size:30" json:"kind"`
	Read   bool             `gorm:"default:false;index" json:"read"`
}

func (Notification) TableName() string {
	return "notifications"
}
