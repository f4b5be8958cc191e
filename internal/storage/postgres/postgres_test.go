package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB — минимальный драйвер database/sql, чтобы проверять работу
// Storage с отложенной транзакцией без настоящего postgres.
type fakeDB struct {
	mu        sync.Mutex
	failExec  error // следующий Exec вернёт эту ошибку
	affected  int64 // rows affected для UPDATE/DELETE
	bookings  [][]driver.Value
	rooms     [][]driver.Value
	commits   int
	rollbacks int
}

func (f *fakeDB) setFailExec(err error) {
	f.mu.Lock()
	f.failExec = err
	f.mu.Unlock()
}

func (f *fakeDB) counters() (commits, rollbacks int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commits, f.rollbacks
}

var (
	fakeMu  sync.Mutex
	fakeDBs = map[string]*fakeDB{}
)

func init() { sql.Register("postgresfake", fakeDriver{}) }

type fakeDriver struct{}

func (fakeDriver) Open(dsn string) (driver.Conn, error) {
	fakeMu.Lock()
	defer fakeMu.Unlock()
	db, ok := fakeDBs[dsn]
	if !ok {
		return nil, errors.New("unknown dsn")
	}
	return &fakeConn{db: db}, nil
}

type fakeConn struct{ db *fakeDB }

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeStmt{db: c.db, query: query}, nil
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) Begin() (driver.Tx, error) { return &fakeTx{db: c.db}, nil }

type fakeTx struct{ db *fakeDB }

func (t *fakeTx) Commit() error {
	t.db.mu.Lock()
	t.db.commits++
	t.db.mu.Unlock()
	return nil
}

func (t *fakeTx) Rollback() error {
	t.db.mu.Lock()
	t.db.rollbacks++
	t.db.mu.Unlock()
	return nil
}

type fakeStmt struct {
	db    *fakeDB
	query string
}

func (s *fakeStmt) Close() error { return nil }

func (s *fakeStmt) NumInput() int { return -1 }

func (s *fakeStmt) Exec(args []driver.Value) (driver.Result, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.failExec != nil {
		err := s.db.failExec
		s.db.failExec = nil
		return nil, err
	}

	if strings.Contains(s.query, "INSERT INTO bookings") {
		row := make([]driver.Value, len(args))
		copy(row, args)
		s.db.bookings = append(s.db.bookings, row)
		return driver.RowsAffected(1), nil
	}

	return driver.RowsAffected(s.db.affected), nil
}

func (s *fakeStmt) Query(args []driver.Value) (driver.Rows, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if strings.Contains(s.query, "FROM rooms") {
		return &fakeRows{
			cols: []string{"id", "number", "description"},
			rows: copyRows(s.db.rooms),
		}, nil
	}

	return &fakeRows{
		cols: []string{"id", "room_id", "guest_id", "check_in", "check_out"},
		rows: copyRows(s.db.bookings),
	}, nil
}

func copyRows(rows [][]driver.Value) [][]driver.Value {
	out := make([][]driver.Value, len(rows))
	copy(out, rows)
	return out
}

type fakeRows struct {
	cols []string
	rows [][]driver.Value
	i    int
}

func (r *fakeRows) Columns() []string { return r.cols }

func (r *fakeRows) Close() error { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.i >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.i])
	r.i++
	return nil
}

func newFakeStorage(t *testing.T) (*Storage, *fakeDB) {
	t.Helper()

	fdb := &fakeDB{affected: 1}

	fakeMu.Lock()
	fakeDBs[t.Name()] = fdb
	fakeMu.Unlock()

	db, err := sql.Open("postgresfake", t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &Storage{DB: db}, fdb
}

func testBooking(id int) models.Booking {
	return models.Booking{
		ID:       id,
		RoomID:   1,
		GuestID:  "guest-1",
		CheckIn:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestAddFailureRollsBackAndKeepsReadsWorking(t *testing.T) {
	s, fdb := newFakeStorage(t)

	require.NoError(t, s.Add(testBooking(1)))
	require.NoError(t, s.Save())

	// Нарушение внешнего ключа внутри отложенной транзакции
	fdb.setFailExec(errors.New(`pq: insert or update on table "bookings" violates foreign key constraint`))

	err := s.Add(testBooking(2))
	require.Error(t, err)

	commits, rollbacks := fdb.counters()
	assert.Equal(t, 1, commits)
	assert.Equal(t, 1, rollbacks, "failed mutation must roll the pending transaction back")

	// Чтения после неудачной мутации продолжают работать
	bookings, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, 1, bookings[0].ID)

	// Отменённая транзакция не попадает в следующий коммит
	require.NoError(t, s.Save())
	commits, _ = fdb.counters()
	assert.Equal(t, 1, commits)
}

func TestUpdateNotFoundDiscardsPendingTransaction(t *testing.T) {
	s, fdb := newFakeStorage(t)

	fdb.mu.Lock()
	fdb.affected = 0
	fdb.mu.Unlock()

	err := s.Update(testBooking(99))
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)

	commits, rollbacks := fdb.counters()
	assert.Equal(t, 0, commits)
	assert.Equal(t, 1, rollbacks)

	require.NoError(t, s.Save())
	commits, _ = fdb.counters()
	assert.Equal(t, 0, commits, "not-found update must not fold into a later commit")
}

func TestDeleteNotFoundDiscardsPendingTransaction(t *testing.T) {
	s, fdb := newFakeStorage(t)

	fdb.mu.Lock()
	fdb.affected = 0
	fdb.mu.Unlock()

	err := s.Delete(99)
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)

	_, rollbacks := fdb.counters()
	assert.Equal(t, 1, rollbacks)
}

// Гоняет лочащие мутации против безлоковых чтений; под -race проверяет,
// что доступ к отложенной транзакции синхронизирован.
func TestConcurrentReadsDuringMutations(t *testing.T) {
	s, _ := newFakeStorage(t)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 50; i++ {
			if err := s.Add(testBooking(i)); err != nil {
				t.Errorf("add: %v", err)
				return
			}
			if err := s.Save(); err != nil {
				t.Errorf("save: %v", err)
				return
			}
		}
	}()

	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if _, err := s.GetAll(); err != nil {
					t.Errorf("get all: %v", err)
					return
				}
				if _, err := s.GetRooms(); err != nil {
					t.Errorf("get rooms: %v", err)
					return
				}
			}
		}()
	}

	wg.Wait()
}
