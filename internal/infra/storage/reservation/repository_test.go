package reservation

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
	"github.com/m04kA/wedding-reservation-service/pkg/dbmetrics"
)

var testDate = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestInsert_AssignsIDAndTimestamps(t *testing.T) {
	repo, _, mock := newRepo(t)
	createdAt := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations (id,name,phone,date,time_slot,type,deck,request_content,status) VALUES")).
		WithArgs(sqlmock.AnyArg(), "Kim", "010-1234", testDate, "14:00", "visit", "", "", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, createdAt))

	res := &domain.Reservation{
		RequesterName:  "Kim",
		RequesterPhone: "010-1234",
		Date:           testDate,
		TimeSlot:       "14:00",
		Type:           "visit",
	}

	id, err := repo.Insert(context.Background(), res)
	require.NoError(t, err)

	assert.NotEmpty(t, id)
	assert.Equal(t, id, res.ID)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Equal(t, createdAt, res.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_UniqueViolationIsSlotTaken(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO reservations").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "ux_reservations_active_slot"})

	_, err := repo.Insert(context.Background(), &domain.Reservation{Date: testDate, TimeSlot: "14:00"})
	require.ErrorIs(t, err, ErrSlotTaken)
}

func TestInsert_OtherFailureIsExecError(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO reservations").WillReturnError(errors.New("connection reset"))

	_, err := repo.Insert(context.Background(), &domain.Reservation{Date: testDate, TimeSlot: "14:00"})
	require.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrSlotTaken)
}

func TestListByDate_LocksRowsOnlyInsideTransaction(t *testing.T) {
	repo, wrapped, mock := newRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(`FROM reservations WHERE date = \$1$`).
		WithArgs(testDate).
		WillReturnRows(reservationRows().
			AddRow("a", "Kim", "010", testDate, "14:00", "visit", "", "", "pending", testDate, testDate).
			AddRow("b", "Lee", "011", testDate, "15:00", "visit", "d1", "hi", "cancelled", testDate, testDate))

	list, err := repo.ListByDate(ctx, testDate)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "14:00", list[0].TimeSlot)
	assert.Equal(t, domain.StatusCancelled, list[1].Status)
	assert.Equal(t, "d1", list[1].Deck)

	mock.ExpectBegin()
	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)

	mock.ExpectQuery(`FROM reservations WHERE date = \$1 FOR UPDATE`).
		WithArgs(testDate).
		WillReturnRows(reservationRows())

	list, err = repo.ListByDate(dbmetrics.WithTx(ctx, tx), testDate)
	require.NoError(t, err)
	assert.Empty(t, list)

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAll_OrderedByCreation(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations ORDER BY created_at DESC")).
		WillReturnRows(reservationRows().
			AddRow("b", "Lee", "011", testDate, "15:00", "visit", "", "", "confirmed", testDate, testDate))

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.StatusConfirmed, list[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, _, mock := newRepo(t)

		mock.ExpectQuery(`FROM reservations WHERE id = \$1`).
			WithArgs("a").
			WillReturnRows(reservationRows().
				AddRow("a", "Kim", "010", testDate, "14:00", "visit", "", "", "pending", testDate, testDate))

		res, err := repo.GetByID(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, "Kim", res.RequesterName)
		assert.Equal(t, testDate, res.Date)
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, mock := newRepo(t)

		mock.ExpectQuery(`FROM reservations WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), "missing")
		require.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	query := regexp.QuoteMeta("UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = $2")

	t.Run("updated", func(t *testing.T) {
		repo, _, mock := newRepo(t)

		mock.ExpectExec(query).
			WithArgs("confirmed", "a").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStatus(context.Background(), "a", domain.StatusConfirmed))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, mock := newRepo(t)

		mock.ExpectExec(query).
			WithArgs("confirmed", "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), "missing", domain.StatusConfirmed)
		require.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("unique violation", func(t *testing.T) {
		repo, _, mock := newRepo(t)

		mock.ExpectExec(query).WillReturnError(&pq.Error{Code: "23505"})

		err := repo.UpdateStatus(context.Background(), "a", domain.StatusPending)
		require.ErrorIs(t, err, ErrSlotTaken)
	})
}
