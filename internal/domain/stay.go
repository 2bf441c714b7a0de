package domain

import (
	"math"
	"time"
)

// Stay is a half-open [CheckIn, CheckOut) date range.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (s Stay) Valid() bool {
	return s.CheckIn.Before(s.CheckOut)
}

// Nights rounds partial days up and never returns less than one.
func (s Stay) Nights() int {
	nights := int(math.Ceil(s.CheckOut.Sub(s.CheckIn).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// Overlaps reports whether existing intersects the requested stay s.
func (s Stay) Overlaps(existing Stay) bool {
	// начало брони до/в момент заезда и окончание после заезда
	if !existing.CheckIn.After(s.CheckIn) && existing.CheckOut.After(s.CheckIn) {
		return true
	}
	// начало до выезда и окончание в/после выезда
	if existing.CheckIn.Before(s.CheckOut) && !existing.CheckOut.Before(s.CheckOut) {
		return true
	}
	// бронь целиком внутри запрошенного интервала
	return !existing.CheckIn.Before(s.CheckIn) && !existing.CheckOut.After(s.CheckOut)
}

// TotalPrice is the nightly rate multiplied by the number of nights.
func TotalPrice(pricePerNight float64, s Stay) float64 {
	return pricePerNight * float64(s.Nights())
}
