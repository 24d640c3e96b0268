package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"house-rental/internal/application/bookings"
	"house-rental/internal/application/earnings"
	"house-rental/internal/application/listings"
	"house-rental/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Menu drives the interactive loop. Every operation runs to completion
// before the next choice is read; errors are reported and the loop
// continues.
type Menu struct {
	Listings *listings.Service
	Bookings *bookings.Service
	Earnings *earnings.Service
	Prompt   *Prompter
	Out      io.Writer
	Symbol   string
}

func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.Out, "Welcome to House Rental CLI!")
	for {
		fmt.Fprintln(m.Out, "\n--- House Rental CLI ---")
		fmt.Fprintln(m.Out, "1. Add Listing")
		fmt.Fprintln(m.Out, "2. View All Listings")
		fmt.Fprintln(m.Out, "3. Search Listings")
		fmt.Fprintln(m.Out, "4. Check Availability")
		fmt.Fprintln(m.Out, "5. Create Booking")
		fmt.Fprintln(m.Out, "6. Approve/Reject Booking")
		fmt.Fprintln(m.Out, "7. Cancel Booking")
		fmt.Fprintln(m.Out, "8. View Earnings Report")
		fmt.Fprintln(m.Out, "9. Exit")

		choice, err := m.Prompt.Line("Select an option (1-9): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			err = m.run(ctx, "add_listing", m.addListing)
		case "2":
			err = m.run(ctx, "view_listings", m.viewListings)
		case "3":
			err = m.run(ctx, "search_listings", m.searchListings)
		case "4":
			err = m.run(ctx, "check_availability", m.checkAvailability)
		case "5":
			err = m.run(ctx, "create_booking", m.createBooking)
		case "6":
			err = m.run(ctx, "manage_booking", m.manageBooking)
		case "7":
			err = m.run(ctx, "cancel_booking", m.cancelBooking)
		case "8":
			err = m.run(ctx, "earnings_report", m.earningsReport)
		case "9":
			fmt.Fprintln(m.Out, "Thank you for using House Rental CLI. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.Out, "Invalid choice. Please enter a number between 1 and 9.")
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// run stamps the operation with a trace id and logs entry/exit. Known
// operation errors are printed and swallowed so the menu keeps running.
func (m *Menu) run(ctx context.Context, op string, fn func(ctx context.Context, traceID string) error) error {
	traceID := uuid.New().String()
	start := time.Now()
	log.Info().Str("trace_id", traceID).Str("op", op).Msg("Entering operation")
	err := fn(ctx, traceID)
	log.Info().Str("trace_id", traceID).Str("op", op).Int64("ms", time.Since(start).Milliseconds()).Msg("Exiting operation")
	if err != nil && !errors.Is(err, io.EOF) {
		log.Warn().Str("trace_id", traceID).Str("op", op).Err(err).Msg("Operation failed")
		fmt.Fprintf(m.Out, "Error: %v\n", err)
		return nil
	}
	return err
}

func (m *Menu) addListing(ctx context.Context, _ string) error {
	title, err := m.Prompt.NonEmpty("House/Apartment Title: ")
	if err != nil {
		if errors.Is(err, domain.ErrEmptyField) {
			fmt.Fprintln(m.Out, "Title cannot be empty.")
			return nil
		}
		return err
	}
	location, err := m.Prompt.NonEmpty("Location: ")
	if err != nil {
		if errors.Is(err, domain.ErrEmptyField) {
			fmt.Fprintln(m.Out, "Location cannot be empty.")
			return nil
		}
		return err
	}
	price, err := m.Prompt.PositiveFloat("Price per day: ")
	if err != nil {
		return err
	}
	hostName, err := m.Prompt.NonEmpty("Host name: ")
	if err != nil {
		if errors.Is(err, domain.ErrEmptyField) {
			fmt.Fprintln(m.Out, "Host name cannot be empty.")
			return nil
		}
		return err
	}

	if _, err := m.Listings.Create(ctx, listings.CreateInput{
		Title:       title,
		Location:    location,
		PricePerDay: price,
		HostName:    hostName,
	}); err != nil {
		return err
	}
	fmt.Fprintln(m.Out, "Listing added successfully!")
	return nil
}

func (m *Menu) viewListings(ctx context.Context, _ string) error {
	rows, err := m.Listings.List(ctx)
	if err != nil {
		return err
	}
	m.printListings(rows)
	return nil
}

func (m *Menu) searchListings(ctx context.Context, _ string) error {
	fmt.Fprintln(m.Out, "1. Search by location")
	fmt.Fprintln(m.Out, "2. Search by price range")
	choice, err := m.Prompt.Line("Choose search type: ")
	if err != nil {
		return err
	}

	var rows []domain.Listing
	switch choice {
	case "1":
		q, err := m.Prompt.Line("Enter location to search: ")
		if err != nil {
			return err
		}
		rows, err = m.Listings.SearchByLocation(ctx, q)
		if err != nil {
			return err
		}
	case "2":
		min, err := m.Prompt.PositiveFloat("Minimum price: ")
		if err != nil {
			return err
		}
		max, err := m.Prompt.PositiveFloat("Maximum price: ")
		if err != nil {
			return err
		}
		rows, err = m.Listings.SearchByPriceRange(ctx, min, max)
		if err != nil {
			return err
		}
	default:
		fmt.Fprintln(m.Out, "Invalid choice.")
		return nil
	}
	m.printListings(rows)
	return nil
}

func (m *Menu) checkAvailability(ctx context.Context, _ string) error {
	fmt.Fprintln(m.Out, "Check availability for a date range.")
	start, end, err := m.Prompt.DateRange()
	if err != nil {
		return err
	}
	rows, err := m.Bookings.AvailableListings(ctx, start, end)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(m.Out, "No available listings for these dates.")
		return nil
	}
	m.printListings(rows)
	return nil
}

func (m *Menu) createBooking(ctx context.Context, traceID string) error {
	if err := m.viewListings(ctx, traceID); err != nil {
		return err
	}
	listingID, err := m.Prompt.PositiveInt("Enter Listing ID to book: ")
	if err != nil {
		return err
	}
	customer, err := m.Prompt.NonEmpty("Customer Name: ")
	if err != nil {
		if errors.Is(err, domain.ErrEmptyField) {
			fmt.Fprintln(m.Out, "Customer name cannot be empty.")
			return nil
		}
		return err
	}
	start, end, err := m.Prompt.DateRange()
	if err != nil {
		return err
	}

	_, err = m.Bookings.Create(ctx, bookings.CreateInput{
		ListingID:    listingID,
		CustomerName: customer,
		StartDate:    start,
		EndDate:      end,
		TraceID:      traceID,
	})
	switch {
	case errors.Is(err, domain.ErrListingNotFound):
		fmt.Fprintln(m.Out, "Invalid listing ID.")
		return nil
	case errors.Is(err, domain.ErrNotAvailable):
		fmt.Fprintln(m.Out, "This listing is already booked for the selected dates.")
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintln(m.Out, "Booking created and is Pending approval!")
	return nil
}

func (m *Menu) manageBooking(ctx context.Context, traceID string) error {
	rows, err := m.Bookings.List(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(m.Out, "No bookings found.")
		return nil
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			strconv.FormatUint(uint64(r.ID), 10), r.ListingTitle, r.CustomerName,
			r.StartDate, r.EndDate, string(r.Status),
		})
	}
	RenderTable(m.Out, []string{"Booking ID", "Listing", "Customer", "Start", "End", "Status"}, table)

	bookingID, err := m.Prompt.PositiveInt("Enter Booking ID to update: ")
	if err != nil {
		return err
	}
	status, err := m.Prompt.Decision()
	if err != nil {
		return err
	}

	booking, err := m.Bookings.Decide(ctx, bookings.DecideInput{
		BookingID: bookingID,
		Status:    status,
		TraceID:   traceID,
	})
	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		fmt.Fprintln(m.Out, "Invalid booking ID.")
		return nil
	case errors.Is(err, domain.ErrAlreadyDecided):
		fmt.Fprintln(m.Out, "Booking is already decided. Only Pending bookings can be updated.")
		return nil
	case errors.Is(err, domain.ErrNotAvailable):
		fmt.Fprintln(m.Out, "Cannot approve: the listing is already booked for these dates.")
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(m.Out, "Booking %d updated to %s!\n", booking.ID, booking.Status)
	return nil
}

func (m *Menu) cancelBooking(ctx context.Context, _ string) error {
	pending, err := m.Bookings.Pending(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Fprintln(m.Out, "No pending bookings to cancel.")
		return nil
	}
	table := make([][]string, 0, len(pending))
	for _, b := range pending {
		table = append(table, []string{
			strconv.FormatUint(uint64(b.ID), 10), strconv.FormatUint(uint64(b.ListingID), 10),
			b.CustomerName, b.StartDate, b.EndDate, string(b.Status),
		})
	}
	RenderTable(m.Out, []string{"ID", "Listing", "Customer", "Start", "End", "Status"}, table)

	bookingID, err := m.Prompt.PositiveInt("Enter booking ID to cancel: ")
	if err != nil {
		return err
	}
	err = m.Bookings.Cancel(ctx, bookingID)
	switch {
	case errors.Is(err, domain.ErrBookingNotFound), errors.Is(err, domain.ErrAlreadyDecided):
		fmt.Fprintln(m.Out, "Booking not found or cannot be cancelled.")
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintln(m.Out, "Booking cancelled successfully!")
	return nil
}

func (m *Menu) earningsReport(ctx context.Context, _ string) error {
	report, err := m.Earnings.Report(ctx)
	if err != nil {
		return err
	}
	if len(report.Rows) == 0 {
		fmt.Fprintln(m.Out, "No earnings data found.")
		return nil
	}
	table := make([][]string, 0, len(report.Rows))
	for _, r := range report.Rows {
		table = append(table, []string{
			strconv.FormatUint(uint64(r.ListingID), 10), r.Title, r.HostName,
			Money(m.Symbol, r.Earnings),
		})
	}
	RenderTable(m.Out, []string{"Listing ID", "Title", "Host", "Earnings"}, table)
	fmt.Fprintf(m.Out, "\nTotal Earnings: %s\n", Money(m.Symbol, report.Total))
	return nil
}

func (m *Menu) printListings(rows []domain.Listing) {
	if len(rows) == 0 {
		fmt.Fprintln(m.Out, "No listings found.")
		return
	}
	table := make([][]string, 0, len(rows))
	for _, l := range rows {
		table = append(table, []string{
			strconv.FormatUint(uint64(l.ID), 10), l.Title, l.Location,
			Money(m.Symbol, l.PricePerDay), l.HostName,
		})
	}
	RenderTable(m.Out, []string{"ID", "Title", "Location", "Price/day", "Host"}, table)
}
