package booking

import (
	"time"

	"hotelBooker/internal/models"
)

// AvailabilityChecker decides whether a candidate date range on a room is
// free given the set of existing bookings.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityChecker
type AvailabilityChecker interface {
	IsAvailable(roomID int, checkIn, checkOut time.Time, existing []models.Booking) bool
}

// Overlaps reports whether two half-open date ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Ranges that only touch at a boundary do not
// overlap: a check-out on the day of another guest's check-in is fine.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DateRangeChecker is the default AvailabilityChecker.
type DateRangeChecker struct{}

func (DateRangeChecker) IsAvailable(roomID int, checkIn, checkOut time.Time, existing []models.Booking) bool {
	for _, b := range existing {
		if b.RoomID != roomID {
			continue
		}
		if Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			return false
		}
	}
	return true
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
