package booking

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrRoomUnavailable  = errors.New("room is not available for the requested dates")
	ErrBookingConflict  = errors.New("booking conflicts with another booking")
)

// BookingStore is the persistence boundary the manager works against.
// Save commits whatever Add/Update/Delete left pending.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingStore
type BookingStore interface {
	GetAll() ([]models.Booking, error)
	GetByID(id int) (models.Booking, error)
	Add(booking models.Booking) error
	Update(booking models.Booking) error
	Delete(id int) error
	Save() error
	GetRooms() ([]models.Room, error)
}

// Manager holds no booking state of its own: every operation re-reads the
// store. The mutex serializes the read-check-write sequences so two
// concurrent callers cannot both observe a room as free and insert
// overlapping bookings.
type Manager struct {
	mu      sync.Mutex
	store   BookingStore
	checker AvailabilityChecker
	clock   Clock
	log     *slog.Logger
}

func New(store BookingStore, checker AvailabilityChecker, clock Clock, log *slog.Logger) (*Manager, error) {
	if store == nil {
		return nil, errors.New("booking: store is nil")
	}
	if checker == nil {
		return nil, errors.New("booking: availability checker is nil")
	}
	if clock == nil {
		return nil, errors.New("booking: clock is nil")
	}
	if log == nil {
		return nil, errors.New("booking: logger is nil")
	}

	return &Manager{
		store:   store,
		checker: checker,
		clock:   clock,
		log:     log,
	}, nil
}

func (m *Manager) CreateBooking(roomID int, guestID string, checkIn, checkOut time.Time) (models.Booking, error) {
	const op = "booking.CreateBooking"

	if err := m.validateDates(checkIn, checkOut); err != nil {
		m.log.Error("invalid booking dates", slog.String("op", op), sl.Err(err))
		return models.Booking{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, err := m.store.GetAll()
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	if !m.checker.IsAvailable(roomID, checkIn, checkOut, existing) {
		m.log.Error("room is not available",
			slog.String("op", op),
			slog.Int("room_id", roomID),
			slog.Time("check_in", checkIn),
			slog.Time("check_out", checkOut),
		)
		return models.Booking{}, ErrRoomUnavailable
	}

	booking := models.Booking{
		ID:       nextID(existing),
		RoomID:   roomID,
		GuestID:  guestID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}

	if err = m.store.Add(booking); err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}
	if err = m.store.Save(); err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	m.log.Info("booking created",
		slog.Int("id", booking.ID),
		slog.Int("room_id", booking.RoomID),
		slog.String("guest_id", booking.GuestID),
	)

	return booking, nil
}

// CancelBooking reports whether the booking existed. An unknown id is a
// normal negative result, not an error, though it is still logged at
// error level.
func (m *Manager) CancelBooking(id int) (bool, error) {
	const op = "booking.CancelBooking"

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.store.GetByID(id); err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			m.log.Error("booking not found", slog.String("op", op), slog.Int("id", id))
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := m.store.Delete(id); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := m.store.Save(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	m.log.Info("booking cancelled", slog.Int("id", id))

	return true, nil
}

func (m *Manager) GetAllBookings() ([]models.Booking, error) {
	const op = "booking.GetAllBookings"

	bookings, err := m.store.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (m *Manager) GetBookingsForRoom(roomID int) ([]models.Booking, error) {
	const op = "booking.GetBookingsForRoom"

	bookings, err := m.store.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []models.Booking
	for _, b := range bookings {
		if b.RoomID == roomID {
			result = append(result, b)
		}
	}

	return result, nil
}

func (m *Manager) IsRoomAvailable(roomID int, from, to time.Time) (bool, error) {
	const op = "booking.IsRoomAvailable"

	bookings, err := m.store.GetAll()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return m.checker.IsAvailable(roomID, from, to, bookings), nil
}

// UpdateBooking replaces the stored booking with the same id. The stored
// record is left untouched when the new range conflicts with any other
// booking on the same room.
func (m *Manager) UpdateBooking(updated models.Booking) error {
	const op = "booking.UpdateBooking"

	if err := m.validateDates(updated.CheckIn, updated.CheckOut); err != nil {
		m.log.Error("invalid booking dates", slog.String("op", op), sl.Err(err))
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, err := m.store.GetAll()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, b := range existing {
		if b.ID == updated.ID || b.RoomID != updated.RoomID {
			continue
		}
		if Overlaps(updated.CheckIn, updated.CheckOut, b.CheckIn, b.CheckOut) {
			m.log.Error("booking conflict",
				slog.String("op", op),
				slog.Int("id", updated.ID),
				slog.Int("conflicting_id", b.ID),
				slog.Int("room_id", updated.RoomID),
			)
			return ErrBookingConflict
		}
	}

	if err = m.store.Update(updated); err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = m.store.Save(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m.log.Info("booking updated", slog.Int("id", updated.ID))

	return nil
}

// Filter narrows FilterBookings results. Nil fields mean no constraint.
type Filter struct {
	From   *time.Time
	To     *time.Time
	RoomID *int
}

// FilterBookings applies a containment filter: check-in at or after From,
// check-out at or before To. This is deliberately not the overlap
// predicate — a booking only half inside [From, To) still matches when
// just one bound is given.
func (m *Manager) FilterBookings(filter Filter) ([]models.Booking, error) {
	const op = "booking.FilterBookings"

	bookings, err := m.store.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []models.Booking
	for _, b := range bookings {
		if filter.From != nil && b.CheckIn.Before(*filter.From) {
			continue
		}
		if filter.To != nil && b.CheckOut.After(*filter.To) {
			continue
		}
		if filter.RoomID != nil && b.RoomID != *filter.RoomID {
			continue
		}
		result = append(result, b)
	}

	return result, nil
}

// GetAvailableRooms returns every room known to the store. It does not
// exclude rooms with current bookings.
func (m *Manager) GetAvailableRooms() ([]models.Room, error) {
	const op = "booking.GetAvailableRooms"

	rooms, err := m.store.GetRooms()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rooms, nil
}

func (m *Manager) validateDates(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return ErrInvalidDateRange
	}

	now := m.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		return ErrInvalidDateRange
	}

	return nil
}

func nextID(bookings []models.Booking) int {
	maxID := 0
	for _, b := range bookings {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	return maxID + 1
}
