package earnings

import (
	"context"
	"fmt"

	"house-rental/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type Row struct {
	ListingID uint    `json:"listing_id"`
	Title     string  `json:"title"`
	HostName  string  `json:"host_name"`
	Earnings  float64 `json:"earnings"`
}

type Report struct {
	Rows  []Row   `json:"rows"`
	Total float64 `json:"total"`
}

// Report computes per-listing revenue over Approved bookings, prorated by
// inclusive stay length (julianday(end) - julianday(start) + 1 days).
// Every listing appears, zero-earning ones included, ordered by earnings
// descending.
func (s *Service) Report(ctx context.Context) (*Report, error) {
	var rows []Row
	err := s.DB.WithContext(ctx).Raw(`
		SELECT L.id AS listing_id, L.title, L.host_name,
		       COALESCE(SUM((julianday(B.end_date) - julianday(B.start_date) + 1) * L.price_per_day), 0) AS earnings
		FROM "Listings" L
		LEFT JOIN "Bookings" B ON L.id = B.listing_id AND B.status = ?
		GROUP BY L.id, L.title, L.host_name
		ORDER BY earnings DESC
	`, domain.StatusApproved).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("earnings report: %w", err)
	}

	report := &Report{Rows: rows}
	for _, r := range rows {
		report.Total += r.Earnings
	}
	return report, nil
}
