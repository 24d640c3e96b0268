package database

import (
	"house-rental/internal/domain"

	"gorm.io/gorm"
)

var sampleListings = []domain.Listing{
	{Title: "Modern Apartment", Location: "Nairobi, Westlands", PricePerDay: 80.00, HostName: "Alice Mwangi"},
	{Title: "Cozy Villa", Location: "Mombasa, Nyali", PricePerDay: 120.00, HostName: "John Otieno"},
	{Title: "Beachfront Bungalow", Location: "Diani Beach, Kwale", PricePerDay: 150.00, HostName: "Mary Wanjiku"},
	{Title: "Urban Studio", Location: "Kisumu, Milimani", PricePerDay: 60.00, HostName: "Peter Oduor"},
	{Title: "Countryside Cottage", Location: "Naivasha, Lake Naivasha", PricePerDay: 70.00, HostName: "Grace Njeri"},
	{Title: "Luxury Apartment", Location: "Nairobi, Karen", PricePerDay: 200.00, HostName: "James Kariuki"},
	{Title: "Seaside Apartment", Location: "Malindi, Bamburi", PricePerDay: 100.00, HostName: "Susan Karanja"},
	{Title: "Mountain Retreat", Location: "Nairobi, Ngong Hills", PricePerDay: 90.00, HostName: "David Mutua"},
}

var sampleBookings = []domain.Booking{
	{ListingID: 1, CustomerName: "Alice Njeri", StartDate: "2025-01-05", EndDate: "2025-01-10", Status: domain.StatusApproved},
	{ListingID: 2, CustomerName: "John Mwangi", StartDate: "2025-01-15", EndDate: "2025-01-18", Status: domain.StatusPending},
	{ListingID: 3, CustomerName: "Mary Onyango", StartDate: "2025-01-20", EndDate: "2025-01-25", Status: domain.StatusRejected},
	{ListingID: 1, CustomerName: "Peter Ochieng", StartDate: "2025-02-01", EndDate: "2025-02-03", Status: domain.StatusApproved},
	{ListingID: 4, CustomerName: "Grace Wambui", StartDate: "2025-02-10", EndDate: "2025-02-15", Status: domain.StatusPending},
}

// Seed inserts sample listings and bookings. Each table is populated only
// when empty, so seeding is safe to repeat.
func Seed(db *gorm.DB) error {
	var listings int64
	if err := db.Model(&domain.Listing{}).Count(&listings).Error; err != nil {
		return err
	}
	if listings == 0 {
		rows := make([]domain.Listing, len(sampleListings))
		copy(rows, sampleListings)
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}

	var bookings int64
	if err := db.Model(&domain.Booking{}).Count(&bookings).Error; err != nil {
		return err
	}
	if bookings == 0 {
		rows := make([]domain.Booking, len(sampleBookings))
		copy(rows, sampleBookings)
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}
