package domain

import "time"

type BookingStatus string

const (
	StatusPending  BookingStatus = "Pending"
	StatusApproved BookingStatus = "Approved"
	StatusRejected BookingStatus = "Rejected"
)

// IsDecision reports whether s is a valid outcome for a pending booking.
func (s BookingStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// Booking is a customer's request to rent a Listing over an inclusive
// date range. Dates are stored as YYYY-MM-DD text so lexicographic order
// matches calendar order.
type Booking struct {
	ID           uint          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ListingID    uint          `gorm:"column:listing_id;not null;index" json:"listing_id"`
	Listing      Listing       `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
	CustomerName string        `gorm:"column:customer_name;not null;check:chk_bookings_customer,length(customer_name) > 0" json:"customer_name"`
	StartDate    string        `gorm:"column:start_date;not null;check:chk_bookings_range,start_date <= end_date" json:"start_date"`
	EndDate      string        `gorm:"column:end_date;not null" json:"end_date"`
	Status       BookingStatus `gorm:"column:status;type:text;not null;default:'Pending';check:chk_bookings_status,status IN ('Pending','Approved','Rejected')" json:"status"`
	CreatedAt    time.Time     `gorm:"column:created_at" json:"created_at"`
}

func (Booking) TableName() string {
	return "Bookings"
}
