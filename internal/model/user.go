package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Parent  UserRole = "parent"
	Admin   UserRole = "admin"
)

type ApprovalStatus string

const (
	ApprovalNone    ApprovalStatus = "none"
	ApprovalPending ApprovalStatus = "pending"
	ApprovalGranted ApprovalStatus = "approved"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Phone    string   `gorm:"size:20;unique;not null" json:"phone"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('student','parent','admin');default:'student'" json:"role"`

	// ParentPhone links a student to the parent account that must approve
	// the placement result. Empty for parent and admin accounts.
	ParentPhone    string         `gorm:"size:20;index" json:"parentPhone,omitempty"`
	PhoneVerified  bool           `gorm:"default:false" json:"phoneVerified"`
	ApprovalStatus ApprovalStatus `gorm:"size:20;default:'none'" json:"approvalStatus"`

	Points    int       `gorm:"default:0" json:"points"`
	Language  string    `gorm:"size:10;default:'ar'" json:"language"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
