package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"house-rental/internal/domain"
	"house-rental/internal/validation"
)

// Prompter reads user input field by field. Reader and writer are
// injected so prompt loops are testable with scripted input.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line prints the label and returns the next input line, trimmed.
// Returns io.EOF when input is exhausted (user closed stdin).
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// NonEmpty reads one line and rejects an empty result. No retry loop:
// the caller aborts the operation.
func (p *Prompter) NonEmpty(label string) (string, error) {
	s, err := p.Line(label)
	if err != nil {
		return "", err
	}
	return validation.RequireNonEmpty(s)
}

// PositiveFloat re-prompts until a parseable, strictly positive number is
// entered.
func (p *Prompter) PositiveFloat(label string) (float64, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		if v <= 0 {
			fmt.Fprintln(p.out, "Please enter a positive number.")
			continue
		}
		return v, nil
	}
}

// PositiveInt re-prompts until a parseable, strictly positive integer is
// entered.
func (p *Prompter) PositiveInt(label string) (uint, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		if v <= 0 {
			fmt.Fprintln(p.out, "Please enter a positive number.")
			continue
		}
		return uint(v), nil
	}
}

// Date re-prompts until a well-formed YYYY-MM-DD date is entered.
func (p *Prompter) Date(label string) (string, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if validation.IsValidDate(s) {
			return s, nil
		}
		fmt.Fprintln(p.out, "Invalid date format. Please use YYYY-MM-DD.")
	}
}

// DateRange reads a start date, then re-prompts the end date until it is
// well-formed and not before the start.
func (p *Prompter) DateRange() (start, end string, err error) {
	start, err = p.Date("Start Date (YYYY-MM-DD): ")
	if err != nil {
		return "", "", err
	}
	for {
		end, err = p.Date("End Date (YYYY-MM-DD): ")
		if err != nil {
			return "", "", err
		}
		if end >= start {
			return start, end, nil
		}
		fmt.Fprintln(p.out, "End date must be after start date.")
	}
}

// Decision re-prompts until the entered status capitalizes to Approved or
// Rejected.
func (p *Prompter) Decision() (domain.BookingStatus, error) {
	for {
		s, err := p.Line("Enter new status (Approved/Rejected): ")
		if err != nil {
			return "", err
		}
		status := domain.BookingStatus(capitalize(s))
		if status.IsDecision() {
			return status, nil
		}
		fmt.Fprintln(p.out, "Invalid status. Must be Approved or Rejected.")
	}
}

func capitalize(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
