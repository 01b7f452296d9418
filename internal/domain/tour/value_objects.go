package tour

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidTitle    = errors.New("title must be between 1 and 200 characters")
	ErrInvalidLocation = errors.New("location is required")
	ErrInvalidDuration = errors.New("duration is required")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrNegativeSeats   = errors.New("available seats must not be negative")
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n == 0 || n > 200 {
		return Title{}, ErrInvalidTitle
	}
	return Title{value: s}, nil
}

func (t Title) Value() string { return t.value }

// Price is kept in minor currency units; a single currency is assumed.
type Price struct {
	cents int64
}

func NewPrice(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{cents: cents}, nil
}

func (p Price) Cents() int64 { return p.cents }

type Seats struct {
	value int32
}

func NewSeats(n int32) (Seats, error) {
	if n < 0 {
		return Seats{}, ErrNegativeSeats
	}
	return Seats{value: n}, nil
}

func (s Seats) Value() int32 { return s.value }
