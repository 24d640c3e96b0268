package domain

import "errors"

var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotAvailable     = errors.New("listing is already booked for the selected dates")
	ErrAlreadyDecided   = errors.New("booking is no longer pending")
	ErrInvalidStatus    = errors.New("status must be Approved or Rejected")
	ErrEmptyField       = errors.New("required field is empty")
	ErrInvalidDate      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrInvalidPrice     = errors.New("price per day must be positive")
)
