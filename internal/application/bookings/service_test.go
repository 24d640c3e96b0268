package bookings

import (
	"context"
	"testing"

	"house-rental/internal/database"
	"house-rental/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupBookingsTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return &Service{DB: db}, db
}

func createListing(t *testing.T, db *gorm.DB, price float64) *domain.Listing {
	listing := &domain.Listing{
		Title:       "Modern Apartment",
		Location:    "Nairobi, Westlands",
		PricePerDay: price,
		HostName:    "Alice Mwangi",
	}
	require.NoError(t, db.Create(listing).Error)
	return listing
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending booking with event", func(t *testing.T) {
		svc, db := setupBookingsTest(t)
		listing := createListing(t, db, 80)

		booking, err := svc.Create(ctx, CreateInput{
			ListingID:    listing.ID,
			CustomerName: "Alice Njeri",
			StartDate:    "2025-01-05",
			EndDate:      "2025-01-10",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, booking.Status)
		assert.NotZero(t, booking.ID)

		var event domain.BookingEvent
		require.NoError(t, db.Where("booking_id = ?", booking.ID).First(&event).Error)
		assert.Equal(t, domain.EventCreated, event.EventType)
		assert.NotEmpty(t, event.TraceID)
	})

	t.Run("rejects unknown listing", func(t *testing.T) {
		svc, _ := setupBookingsTest(t)
		_, err := svc.Create(ctx, CreateInput{
			ListingID:    999,
			CustomerName: "Alice Njeri",
			StartDate:    "2025-01-05",
			EndDate:      "2025-01-10",
		})
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})

	t.Run("rejects empty customer name", func(t *testing.T) {
		svc, db := setupBookingsTest(t)
		listing := createListing(t, db, 80)
		_, err := svc.Create(ctx, CreateInput{
			ListingID:    listing.ID,
			CustomerName: "   ",
			StartDate:    "2025-01-05",
			EndDate:      "2025-01-10",
		})
		assert.ErrorIs(t, err, domain.ErrEmptyField)
	})

	t.Run("rejects malformed and inverted dates", func(t *testing.T) {
		svc, db := setupBookingsTest(t)
		listing := createListing(t, db, 80)

		_, err := svc.Create(ctx, CreateInput{
			ListingID:    listing.ID,
			CustomerName: "Alice Njeri",
			StartDate:    "05/01/2025",
			EndDate:      "2025-01-10",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidDate)

		_, err = svc.Create(ctx, CreateInput{
			ListingID:    listing.ID,
			CustomerName: "Alice Njeri",
			StartDate:    "2025-01-10",
			EndDate:      "2025-01-05",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

		var count int64
		require.NoError(t, db.Model(&domain.Booking{}).Count(&count).Error)
		assert.Zero(t, count, "no row may be written on a failed create")
	})

	t.Run("overlap with approved booking blocks create", func(t *testing.T) {
		svc, db := setupBookingsTest(t)
		listing := createListing(t, db, 80)
		require.NoError(t, db.Create(&domain.Booking{
			ListingID: listing.ID, CustomerName: "Peter Ochieng",
			StartDate: "2025-01-05", EndDate: "2025-01-10", Status: domain.StatusApproved,
		}).Error)

		_, err := svc.Create(ctx, CreateInput{
			ListingID:    listing.ID,
			CustomerName: "Grace Wambui",
			StartDate:    "2025-01-08",
			EndDate:      "2025-01-12",
		})
		assert.ErrorIs(t, err, domain.ErrNotAvailable)
	})
}

func TestIsAvailable(t *testing.T) {
	ctx := context.Background()
	svc, db := setupBookingsTest(t)
	listing := createListing(t, db, 80)
	other := createListing(t, db, 120)
	require.NoError(t, db.Create(&domain.Booking{
		ListingID: listing.ID, CustomerName: "Alice Njeri",
		StartDate: "2025-01-05", EndDate: "2025-01-10", Status: domain.StatusApproved,
	}).Error)

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"inside approved range", "2025-01-08", "2025-01-09", false},
		{"identical range", "2025-01-05", "2025-01-10", false},
		{"shares only the end day", "2025-01-10", "2025-01-12", false},
		{"shares only the start day", "2025-01-01", "2025-01-05", false},
		{"straddles whole range", "2025-01-01", "2025-01-20", false},
		{"ends the day before", "2025-01-01", "2025-01-04", true},
		{"starts the day after", "2025-01-11", "2025-01-12", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.IsAvailable(ctx, listing.ID, tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("other listings are unaffected", func(t *testing.T) {
		got, err := svc.IsAvailable(ctx, other.ID, "2025-01-05", "2025-01-10")
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("pending and rejected bookings never block", func(t *testing.T) {
		require.NoError(t, db.Create(&domain.Booking{
			ListingID: other.ID, CustomerName: "John Mwangi",
			StartDate: "2025-02-01", EndDate: "2025-02-10", Status: domain.StatusPending,
		}).Error)
		require.NoError(t, db.Create(&domain.Booking{
			ListingID: other.ID, CustomerName: "Mary Onyango",
			StartDate: "2025-02-01", EndDate: "2025-02-10", Status: domain.StatusRejected,
		}).Error)

		got, err := svc.IsAvailable(ctx, other.ID, "2025-02-01", "2025-02-10")
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("malformed range is an error", func(t *testing.T) {
		_, err := svc.IsAvailable(ctx, listing.ID, "2025-01-10", "2025-01-05")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})
}

func TestAvailableListings(t *testing.T) {
	ctx := context.Background()
	svc, db := setupBookingsTest(t)
	booked := createListing(t, db, 80)
	free := createListing(t, db, 120)
	require.NoError(t, db.Create(&domain.Booking{
		ListingID: booked.ID, CustomerName: "Alice Njeri",
		StartDate: "2025-01-05", EndDate: "2025-01-10", Status: domain.StatusApproved,
	}).Error)

	rows, err := svc.AvailableListings(ctx, "2025-01-08", "2025-01-09")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, free.ID, rows[0].ID)

	rows, err = svc.AvailableListings(ctx, "2025-01-11", "2025-01-12")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestDecide(t *testing.T) {
	ctx := context.Background()

	createPending := func(t *testing.T, svc *Service, listingID uint, start, end string) *domain.Booking {
		booking, err := svc.Create(ctx, CreateInput{
			ListingID:    listingID,
			CustomerName: "Grace Wambui",
			StartDate:    start,
			EndDate:      end,
		})
		require.NoError(t, err)
		return booking
	}

	t.Run("approves a pending booking exactly once", func(t *testing.T) {
		svc, db := setupBookingsTest(t)
		listing := createListing(t, db, 80)
		booking := createPending(t, svc, listing.ID, "2025-01-05", "2025-01-10")

		decided, err := svc.Decide(ctx, DecideInput{BookingID: booking.ID, Status: domain.StatusApproved})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, decided.Status)

		var event domain.BookingEvent
		require.NoError(t, db.Where("booking_id = ? AND event_type = ?", booking.ID, domain.EventApproved).First(&event).Error)

		_, err = svc.Decide(ctx, DecideInput{BookingID: booking.ID, Status: domain.StatusRejected})
		assert.ErrorIs(t, err, domain.ErrAlreadyDecided)
	})

	t.Run("rejects a pending booking", func(t *testing.T) {
		svc, db := setupBookingsTest(t)
		listing := createListing(t, db, 80)
		booking := createPending(t, svc, listing.ID, "2025-01-05", "2025-01-10")

		decided, err := svc.Decide(ctx, DecideInput{BookingID: booking.ID, Status: domain.StatusRejected})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, decided.Status)
	})

	t.Run("invalid status text mutates nothing", func(t *testing.T) {
		svc, db := setupBookingsTest(t)
		listing := createListing(t, db, 80)
		booking := createPending(t, svc, listing.ID, "2025-01-05", "2025-01-10")

		_, err := svc.Decide(ctx, DecideInput{BookingID: booking.ID, Status: "Confirmed"})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
		_, err = svc.Decide(ctx, DecideInput{BookingID: booking.ID, Status: "Pending"})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)

		var got domain.Booking
		require.NoError(t, db.First(&got, booking.ID).Error)
		assert.Equal(t, domain.StatusPending, got.Status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _ := setupBookingsTest(t)
		_, err := svc.Decide(ctx, DecideInput{BookingID: 42, Status: domain.StatusApproved})
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})

	t.Run("approval re-checks availability", func(t *testing.T) {
		svc, db := setupBookingsTest(t)
		listing := createListing(t, db, 80)
		first := createPending(t, svc, listing.ID, "2025-01-05", "2025-01-10")
		second := createPending(t, svc, listing.ID, "2025-01-08", "2025-01-12")

		_, err := svc.Decide(ctx, DecideInput{BookingID: first.ID, Status: domain.StatusApproved})
		require.NoError(t, err)

		_, err = svc.Decide(ctx, DecideInput{BookingID: second.ID, Status: domain.StatusApproved})
		assert.ErrorIs(t, err, domain.ErrNotAvailable)

		var got domain.Booking
		require.NoError(t, db.First(&got, second.ID).Error)
		assert.Equal(t, domain.StatusPending, got.Status, "failed approval leaves the booking pending")

		// Rejection needs no availability; it must still go through.
		_, err = svc.Decide(ctx, DecideInput{BookingID: second.ID, Status: domain.StatusRejected})
		assert.NoError(t, err)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	svc, db := setupBookingsTest(t)
	listing := createListing(t, db, 80)

	pending, err := svc.Create(ctx, CreateInput{
		ListingID: listing.ID, CustomerName: "Grace Wambui",
		StartDate: "2025-02-10", EndDate: "2025-02-15",
	})
	require.NoError(t, err)

	approved := &domain.Booking{
		ListingID: listing.ID, CustomerName: "Alice Njeri",
		StartDate: "2025-01-05", EndDate: "2025-01-10", Status: domain.StatusApproved,
	}
	require.NoError(t, db.Create(approved).Error)

	require.NoError(t, svc.Cancel(ctx, pending.ID))
	var count int64
	require.NoError(t, db.Model(&domain.Booking{}).Where("id = ?", pending.ID).Count(&count).Error)
	assert.Zero(t, count)

	err = svc.Cancel(ctx, approved.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyDecided)
	var got domain.Booking
	require.NoError(t, db.First(&got, approved.ID).Error)
	assert.Equal(t, domain.StatusApproved, got.Status)

	assert.ErrorIs(t, svc.Cancel(ctx, 999), domain.ErrBookingNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	svc, db := setupBookingsTest(t)
	listing := createListing(t, db, 80)
	_, err := svc.Create(ctx, CreateInput{
		ListingID: listing.ID, CustomerName: "Grace Wambui",
		StartDate: "2025-02-10", EndDate: "2025-02-15",
	})
	require.NoError(t, err)

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Modern Apartment", rows[0].ListingTitle)
	assert.Equal(t, domain.StatusPending, rows[0].Status)

	pending, err := svc.Pending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

// Full booking lifecycle against one listing: create, approve, then a
// conflicting range is refused while a disjoint one goes through.
func TestBookingLifecycleEndToEnd(t *testing.T) {
	ctx := context.Background()
	svc, db := setupBookingsTest(t)
	listing := createListing(t, db, 80)

	first, err := svc.Create(ctx, CreateInput{
		ListingID: listing.ID, CustomerName: "Alice Njeri",
		StartDate: "2025-01-05", EndDate: "2025-01-10",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, first.Status)

	decided, err := svc.Decide(ctx, DecideInput{BookingID: first.ID, Status: domain.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, decided.Status)

	_, err = svc.Create(ctx, CreateInput{
		ListingID: listing.ID, CustomerName: "John Mwangi",
		StartDate: "2025-01-08", EndDate: "2025-01-09",
	})
	assert.ErrorIs(t, err, domain.ErrNotAvailable)

	third, err := svc.Create(ctx, CreateInput{
		ListingID: listing.ID, CustomerName: "John Mwangi",
		StartDate: "2025-01-11", EndDate: "2025-01-12",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, third.Status)
}
