package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/MC-AppointmentService/pkg/metrics"
)

func newTestManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	collector := metrics.NewWithRegistry("test-service", prometheus.NewRegistry())
	wrapped := dbmetrics.Wrap(db, collector, "test-service")

	return NewTransactionManager(wrapped), mock
}

func TestDoSerializable_CommitsOnSuccess(t *testing.T) {
	manager, mock := newTestManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var sawTx bool
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		sawTx = dbmetrics.IsInTransaction(ctx)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, sawTx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesOnSerializationFailure(t *testing.T) {
	manager, mock := newTestManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_GivesUpAfterMaxAttempts(t *testing.T) {
	manager, mock := newTestManager(t)

	for i := 0; i < maxSerializableAttempts; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})
	}

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerializationFailure)
	assert.Equal(t, maxSerializableAttempts, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_PassesThroughBusinessErrors(t *testing.T) {
	manager, mock := newTestManager(t)

	errBusiness := errors.New("slot is not available")

	mock.ExpectBegin()
	mock.ExpectRollback()

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return errBusiness
	})

	// Бизнес-ошибка возвращается как есть и не приводит к повторам
	require.ErrorIs(t, err, errBusiness)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_DoesNotRetryOtherCommitErrors(t *testing.T) {
	manager, mock := newTestManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "23505"})

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSerializationFailure)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_RollsBackOnError(t *testing.T) {
	manager, mock := newTestManager(t)

	errBoom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		return errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
