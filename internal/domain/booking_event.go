package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EventCreated  = "CREATED"
	EventApproved = "APPROVED"
	EventRejected = "REJECTED"
)

// BookingEvent is an audit row written in the same transaction as the
// booking mutation it records. Rows cascade away with their booking.
type BookingEvent struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BookingID uint           `gorm:"column:booking_id;not null;index" json:"booking_id"`
	Booking   Booking        `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"-"`
	EventType string         `gorm:"column:event_type;not null" json:"event_type"`
	EventData datatypes.JSON `gorm:"column:event_data" json:"event_data"`
	TraceID   string         `gorm:"column:trace_id" json:"trace_id"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (BookingEvent) TableName() string {
	return "BookingEvents"
}
