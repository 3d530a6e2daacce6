package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/salonworks/catalog-api/internal/domain"
	"github.com/salonworks/catalog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingDBTX fails the test if any query reaches the database. Used to
// prove that validation short-circuits before store access.
type failingDBTX struct {
	t *testing.T
}

func (f *failingDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.t.Fatal("unexpected database access")
	return nil, nil
}

func (f *failingDBTX) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	f.t.Fatal("unexpected database access")
	return nil, nil
}

func (f *failingDBTX) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	f.t.Fatal("unexpected database access")
	return nil
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("not a pg error")))
	assert.False(t, isUniqueViolation(nil))
}

func TestCreateValidatesBeforeStoreAccess(t *testing.T) {
	t.Parallel()

	s := NewPostgresServiceStore(&failingDBTX{t: t}, nil)

	err := s.Create(context.Background(), &domain.Service{ID: uuid.New(), Name: "", Price: 50})
	require.ErrorIs(t, err, store.ErrInvalidEntity)

	err = s.Create(context.Background(), &domain.Service{ID: uuid.New(), Name: "Haircut", Price: 0})
	require.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestUpdateByIDValidatesPatchBeforeStoreAccess(t *testing.T) {
	t.Parallel()

	s := NewPostgresServiceStore(&failingDBTX{t: t}, nil)

	emptyName := ""
	_, err := s.UpdateByID(context.Background(), uuid.New(), store.ServicePatch{Name: &emptyName})
	require.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrServiceNameEmpty)

	zeroPrice := 0.0
	_, err = s.UpdateByID(context.Background(), uuid.New(), store.ServicePatch{Price: &zeroPrice})
	require.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrServicePriceMissing)
}
