package models

import "time"

// Contact message statuses. Resolution happens only through an explicit
// admin action.
const (
	ContactStatusPending  = "pending"
	ContactStatusResolved = "resolved"
)

// ContactMessage is a support-queue entry
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message" gorm:"type:text"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateContactMessageRequest defines the request body for the contact form
type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}
