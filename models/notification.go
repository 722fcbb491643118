package models

import "time"

// RelatedType tags the entity a notification's weak reference points at.
type RelatedType string

const (
	RelatedNone            RelatedType = ""
	RelatedProductionOrder RelatedType = "production_order"
	RelatedQuotation       RelatedType = "quotation"
	RelatedInvoice         RelatedType = "invoice"
)

// RelatedRef is an optional weak reference from a notification to another
// entity. It carries no ownership; it only exists to build a deep link.
type RelatedRef struct {
	Type RelatedType
	ID   uint
}

// Notification represents a per-user notification. Only IsRead is mutable
// after creation; rows are never deleted by the application.
type Notification struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	UserID      uint        `json:"user_id" gorm:"not null;index:idx_notifications_user_unread,priority:1"`
	Message     string      `json:"message" gorm:"type:text;not null"`
	RelatedID   *uint       `json:"related_id,omitempty"`
	RelatedType RelatedType `json:"related_type,omitempty" gorm:"type:varchar(30)"`
	IsRead      bool        `json:"is_read" gorm:"not null;default:false;index:idx_notifications_user_unread,priority:2"`
	CreatedAt   time.Time   `json:"created_at" gorm:"autoCreateTime"`
}

// Related returns the weak reference carried by the notification, or a
// zero RelatedRef when none is set.
func (n *Notification) Related() RelatedRef {
	if n.RelatedID == nil || n.RelatedType == RelatedNone {
		return RelatedRef{}
	}
	return RelatedRef{Type: n.RelatedType, ID: *n.RelatedID}
}

type NotificationResponse struct {
	ID          uint      `json:"id"`
	Message     string    `json:"message"`
	RelatedType string    `json:"related_type,omitempty"`
	Link        string    `json:"link,omitempty"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}
