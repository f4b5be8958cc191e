package booking

import (
	"testing"
	"time"

	"hotelBooker/internal/models"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "Disjoint ranges",
			aStart: day(2024, 1, 10), aEnd: day(2024, 1, 12),
			bStart: day(2024, 1, 20), bEnd: day(2024, 1, 25),
			expected: false,
		},
		{
			name:   "Touching at boundary",
			aStart: day(2024, 1, 10), aEnd: day(2024, 1, 15),
			bStart: day(2024, 1, 15), bEnd: day(2024, 1, 20),
			expected: false,
		},
		{
			name:   "Touching at boundary reversed",
			aStart: day(2024, 1, 15), aEnd: day(2024, 1, 20),
			bStart: day(2024, 1, 10), bEnd: day(2024, 1, 15),
			expected: false,
		},
		{
			name:   "Partial overlap",
			aStart: day(2024, 1, 14), aEnd: day(2024, 1, 18),
			bStart: day(2024, 1, 10), bEnd: day(2024, 1, 15),
			expected: true,
		},
		{
			name:   "One range inside the other",
			aStart: day(2024, 1, 11), aEnd: day(2024, 1, 13),
			bStart: day(2024, 1, 10), bEnd: day(2024, 1, 15),
			expected: true,
		},
		{
			name:   "Identical ranges",
			aStart: day(2024, 1, 10), aEnd: day(2024, 1, 15),
			bStart: day(2024, 1, 10), bEnd: day(2024, 1, 15),
			expected: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// Предикат симметричен
			assert.Equal(t, tc.expected, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestDateRangeChecker(t *testing.T) {
	t.Parallel()

	existing := []models.Booking{
		{ID: 1, RoomID: 1, GuestID: "guest-a", CheckIn: day(2024, 1, 10), CheckOut: day(2024, 1, 15)},
		{ID: 2, RoomID: 2, GuestID: "guest-b", CheckIn: day(2024, 1, 1), CheckOut: day(2024, 2, 1)},
	}

	checker := DateRangeChecker{}

	assert.False(t, checker.IsAvailable(1, day(2024, 1, 14), day(2024, 1, 18), existing))
	assert.True(t, checker.IsAvailable(1, day(2024, 1, 15), day(2024, 1, 20), existing))

	// Бронь другой комнаты не мешает
	assert.True(t, checker.IsAvailable(3, day(2024, 1, 14), day(2024, 1, 18), existing))

	assert.True(t, checker.IsAvailable(1, day(2024, 1, 1), day(2024, 1, 5), nil))
}
