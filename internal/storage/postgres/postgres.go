package postgres

import (
	"database/sql"
	"fmt"
	"sync"

	"hotelBooker/internal/config"
	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"

	_ "github.com/lib/pq"
)

// Storage buffers mutations in an open transaction until Save commits
// them. The transaction belongs to the writer only: reads always go to
// the database, so a caller has to Save before its own reads observe the
// change. A failed mutation rolls the pending transaction back so it can
// never poison later reads or fold into another caller's commit.
type Storage struct {
	DB *sql.DB

	mu sync.Mutex // guards tx
	tx *sql.Tx
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	s.mu.Lock()
	s.rollbackLocked()
	s.mu.Unlock()

	return s.DB.Close()
}

// pendingLocked lazily opens the write transaction. Callers must hold mu.
func (s *Storage) pendingLocked() (*sql.Tx, error) {
	if s.tx == nil {
		tx, err := s.DB.Begin()
		if err != nil {
			return nil, fmt.Errorf("failed to begin transaction: %w", err)
		}
		s.tx = tx
	}
	return s.tx, nil
}

// rollbackLocked discards the pending transaction. Callers must hold mu.
func (s *Storage) rollbackLocked() {
	if s.tx != nil {
		_ = s.tx.Rollback()
		s.tx = nil
	}
}

func (s *Storage) GetAll() ([]models.Booking, error) {
	query := `
		SELECT id, room_id, guest_id, check_in, check_out
		FROM bookings
		ORDER BY id ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.RoomID,
			&booking.GuestID,
			&booking.CheckIn,
			&booking.CheckOut,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) GetByID(id int) (models.Booking, error) {
	query := `
		SELECT id, room_id, guest_id, check_in, check_out
		FROM bookings
		WHERE id = $1`

	var booking models.Booking
	err := s.DB.QueryRow(query, id).Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.GuestID,
		&booking.CheckIn,
		&booking.CheckOut,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, storage.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

func (s *Storage) Add(booking models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.pendingLocked()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO bookings (id, room_id, guest_id, check_in, check_out)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = tx.Exec(query, booking.ID, booking.RoomID, booking.GuestID, booking.CheckIn, booking.CheckOut)
	if err != nil {
		s.rollbackLocked()
		return fmt.Errorf("failed to add booking: %w", err)
	}

	return nil
}

func (s *Storage) Update(booking models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.pendingLocked()
	if err != nil {
		return err
	}

	query := `
		UPDATE bookings
		SET room_id = $2, guest_id = $3, check_in = $4, check_out = $5
		WHERE id = $1`

	result, err := tx.Exec(query, booking.ID, booking.RoomID, booking.GuestID, booking.CheckIn, booking.CheckOut)
	if err != nil {
		s.rollbackLocked()
		return fmt.Errorf("failed to update booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		s.rollbackLocked()
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		s.rollbackLocked()
		return storage.ErrBookingNotFound
	}

	return nil
}

func (s *Storage) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.pendingLocked()
	if err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		s.rollbackLocked()
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		s.rollbackLocked()
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		s.rollbackLocked()
		return storage.ErrBookingNotFound
	}

	return nil
}

// Save commits the pending transaction. Calling Save with no pending
// changes is a no-op.
func (s *Storage) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx == nil {
		return nil
	}

	err := s.tx.Commit()
	s.tx = nil
	if err != nil {
		return fmt.Errorf("failed to commit bookings: %w", err)
	}

	return nil
}

func (s *Storage) GetRooms() ([]models.Room, error) {
	query := `
		SELECT id, number, description
		FROM rooms
		ORDER BY id ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		var room models.Room
		err = rows.Scan(&room.ID, &room.Number, &room.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rooms: %w", err)
	}

	return rooms, nil
}
