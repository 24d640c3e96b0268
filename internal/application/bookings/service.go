package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"house-rental/internal/domain"
	"house-rental/internal/validation"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	ListingID    uint
	CustomerName string
	StartDate    string
	EndDate      string
	TraceID      string // optional; generated when empty
}

// Create inserts a new Pending booking after an availability check. The
// existence check, overlap check, insert and audit event run in a single
// transaction so two near-simultaneous attempts cannot both observe
// "available" and both commit.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Booking, error) {
	customer, err := validation.RequireNonEmpty(in.CustomerName)
	if err != nil {
		return nil, fmt.Errorf("customer name: %w", err)
	}
	if err := validation.ValidateRange(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}
	days, err := validation.DaysInclusive(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	traceID := in.TraceID
	if traceID == "" {
		traceID = uuid.New().String()
	}

	booking := &domain.Booking{
		ListingID:    in.ListingID,
		CustomerName: customer,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Status:       domain.StatusPending,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listing domain.Listing
		if err := tx.First(&listing, in.ListingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrListingNotFound
			}
			return err
		}
		ok, err := available(tx, in.ListingID, in.StartDate, in.EndDate, 0)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotAvailable
		}
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return writeEvent(tx, booking.ID, domain.EventCreated, traceID, map[string]interface{}{
			"listing_id": in.ListingID,
			"start_date": in.StartDate,
			"end_date":   in.EndDate,
			"days":       days,
		})
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

type DecideInput struct {
	BookingID uint
	Status    domain.BookingStatus // exactly Approved or Rejected
	TraceID   string
}

// Decide moves a Pending booking to Approved or Rejected. Approval
// re-runs the availability check so a booking whose range has since been
// approved for the same listing cannot be double-booked.
func (s *Service) Decide(ctx context.Context, in DecideInput) (*domain.Booking, error) {
	if !in.Status.IsDecision() {
		return nil, domain.ErrInvalidStatus
	}
	traceID := in.TraceID
	if traceID == "" {
		traceID = uuid.New().String()
	}

	var booking domain.Booking
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, in.BookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBookingNotFound
			}
			return err
		}
		if booking.Status != domain.StatusPending {
			return domain.ErrAlreadyDecided
		}
		if in.Status == domain.StatusApproved {
			ok, err := available(tx, booking.ListingID, booking.StartDate, booking.EndDate, booking.ID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrNotAvailable
			}
		}
		if err := tx.Model(&booking).Update("status", in.Status).Error; err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		booking.Status = in.Status
		eventType := domain.EventRejected
		if in.Status == domain.StatusApproved {
			eventType = domain.EventApproved
		}
		return writeEvent(tx, booking.ID, eventType, traceID, map[string]interface{}{
			"status": in.Status,
		})
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel deletes a booking that is still Pending. Decided bookings are
// refused and left unchanged.
func (s *Service) Cancel(ctx context.Context, bookingID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking domain.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBookingNotFound
			}
			return err
		}
		if booking.Status != domain.StatusPending {
			return domain.ErrAlreadyDecided
		}
		if err := tx.Delete(&booking).Error; err != nil {
			return fmt.Errorf("delete booking: %w", err)
		}
		return nil
	})
}

// IsAvailable reports whether the listing has no Approved booking
// overlapping [start, end]. Pending and Rejected bookings never block.
func (s *Service) IsAvailable(ctx context.Context, listingID uint, start, end string) (bool, error) {
	if err := validation.ValidateRange(start, end); err != nil {
		return false, err
	}
	return available(s.DB.WithContext(ctx), listingID, start, end, 0)
}

// AvailableListings returns every listing with no Approved booking
// overlapping [start, end].
func (s *Service) AvailableListings(ctx context.Context, start, end string) ([]domain.Listing, error) {
	if err := validation.ValidateRange(start, end); err != nil {
		return nil, err
	}
	var listings []domain.Listing
	if err := s.DB.WithContext(ctx).
		Where(`id NOT IN (SELECT listing_id FROM "Bookings" WHERE status = ? AND NOT (end_date < ? OR start_date > ?))`,
			domain.StatusApproved, start, end).
		Order("id").
		Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("fetch available listings: %w", err)
	}
	return listings, nil
}

// Row is a booking joined with its listing title for display.
type Row struct {
	ID           uint                 `json:"id"`
	ListingTitle string               `json:"listing_title"`
	CustomerName string               `json:"customer_name"`
	StartDate    string               `json:"start_date"`
	EndDate      string               `json:"end_date"`
	Status       domain.BookingStatus `json:"status"`
}

func (s *Service) List(ctx context.Context) ([]Row, error) {
	var rows []Row
	if err := s.DB.WithContext(ctx).Model(&domain.Booking{}).
		Select(`"Bookings".id, "Listings".title AS listing_title, "Bookings".customer_name, "Bookings".start_date, "Bookings".end_date, "Bookings".status`).
		Joins(`JOIN "Listings" ON "Listings".id = "Bookings".listing_id`).
		Order(`"Bookings".id`).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch bookings: %w", err)
	}
	return rows, nil
}

func (s *Service) Pending(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := s.DB.WithContext(ctx).
		Where("status = ?", domain.StatusPending).
		Order("id").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("fetch pending bookings: %w", err)
	}
	return bookings, nil
}

// available counts Approved bookings of the listing whose inclusive range
// overlaps [start, end]: NOT (end_date < start OR start_date > end).
// Ranges sharing exactly one day overlap. excludeID skips the booking
// being decided so it does not conflict with itself.
func available(tx *gorm.DB, listingID uint, start, end string, excludeID uint) (bool, error) {
	q := tx.Model(&domain.Booking{}).
		Where("listing_id = ? AND status = ?", listingID, domain.StatusApproved).
		Where("NOT (end_date < ? OR start_date > ?)", start, end)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, fmt.Errorf("count conflicting bookings: %w", err)
	}
	return n == 0, nil
}

func writeEvent(tx *gorm.DB, bookingID uint, eventType, traceID string, data map[string]interface{}) error {
	payload, _ := json.Marshal(data)
	if err := tx.Create(&domain.BookingEvent{
		BookingID: bookingID,
		EventType: eventType,
		EventData: datatypes.JSON(payload),
		TraceID:   traceID,
	}).Error; err != nil {
		return fmt.Errorf("create booking event: %w", err)
	}
	return nil
}
