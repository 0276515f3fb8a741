package types

import "time"

// Contact statuses, by convention. The status column is free-form and the
// API does not enforce transitions between these values.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// Contact is a submitted inquiry. Name, email and message are immutable
// after creation; only Status is mutated afterwards.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Email     string    `gorm:"not null;column:email" json:"email"`
	Message   string    `gorm:"not null;column:message" json:"message"`
	Status    string    `gorm:"not null;default:new;column:status" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Contact) TableName() string {
	return "contact"
}
