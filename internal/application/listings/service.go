package listings

import (
	"context"
	"errors"
	"fmt"

	"house-rental/internal/domain"
	"house-rental/internal/validation"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	Title       string
	Location    string
	PricePerDay float64
	HostName    string
}

// Create validates the input and inserts a new listing. The CHECK
// constraints on the table are the defensive fallback for writes that
// slip past this validation.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Listing, error) {
	title, err := validation.RequireNonEmpty(in.Title)
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	location, err := validation.RequireNonEmpty(in.Location)
	if err != nil {
		return nil, fmt.Errorf("location: %w", err)
	}
	hostName, err := validation.RequireNonEmpty(in.HostName)
	if err != nil {
		return nil, fmt.Errorf("host name: %w", err)
	}
	if in.PricePerDay <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	listing := &domain.Listing{
		Title:       title,
		Location:    location,
		PricePerDay: in.PricePerDay,
		HostName:    hostName,
	}
	if err := s.DB.WithContext(ctx).Create(listing).Error; err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	return listing, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := s.DB.WithContext(ctx).Order("id").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("fetch listings: %w", err)
	}
	return listings, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*domain.Listing, error) {
	var listing domain.Listing
	if err := s.DB.WithContext(ctx).First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// SearchByLocation matches listings whose location contains q.
func (s *Service) SearchByLocation(ctx context.Context, q string) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := s.DB.WithContext(ctx).
		Where("location LIKE ?", "%"+q+"%").
		Order("id").
		Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	return listings, nil
}

// SearchByPriceRange matches listings with min <= price_per_day <= max.
func (s *Service) SearchByPriceRange(ctx context.Context, min, max float64) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := s.DB.WithContext(ctx).
		Where("price_per_day BETWEEN ? AND ?", min, max).
		Order("id").
		Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	return listings, nil
}
