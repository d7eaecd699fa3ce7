package dbmetrics

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderStub struct {
	mu         sync.Mutex
	operations []string
	failed     []string
}

func (r *recorderStub) ObserveDBQuery(operation string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, operation)
	if err != nil {
		r.failed = append(r.failed, operation)
	}
}

func (r *recorderStub) SetPoolStats(sql.DBStats) {}

func TestDBRecordsOperations(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rec := &recorderStub{}
	wrapped := Wrap(db, rec)

	dbMock.ExpectExec(regexp.QuoteMeta("DELETE FROM stylists")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).
		WillReturnError(errors.New("boom"))

	_, err = wrapped.ExecContext(context.Background(), "DELETE FROM stylists")
	require.NoError(t, err)

	_, err = wrapped.QueryContext(context.Background(), "SELECT 1")
	require.Error(t, err)

	require.NoError(t, dbMock.ExpectationsWereMet())
	assert.Equal(t, []string{"exec", "query"}, rec.operations)
	assert.Equal(t, []string{"query"}, rec.failed)
}

func TestGetExecutorPrefersTransaction(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := Wrap(db, nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(wrapped), GetExecutor(ctx, wrapped))

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, wrapped))

	require.NoError(t, tx.Rollback())
	require.NoError(t, dbMock.ExpectationsWereMet())
}
