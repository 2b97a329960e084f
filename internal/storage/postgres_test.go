package storage_test

import (
	"context"
	"testing"

	"food-delivery/internal/domain"
	"food-delivery/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostgresBackend(t *testing.T) (*storage.PostgresBackend, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return storage.NewPostgresBackend(mockDB), mock
}

func TestPostgresBackend_EnsureSchema(t *testing.T) {
	backend, mock := setupPostgresBackend(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS collections").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, backend.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackend_NewRecordStoreEnsuresEveryCollection(t *testing.T) {
	backend, mock := setupPostgresBackend(t)

	for _, name := range storage.Collections {
		mock.ExpectExec("INSERT INTO collections").
			WithArgs(name).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	_, err := storage.NewRecordStore(context.Background(), backend)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackend_LoadAndSaveAccounts(t *testing.T) {
	ctx := context.Background()
	backend, mock := setupPostgresBackend(t)
	for range storage.Collections {
		mock.ExpectExec("INSERT INTO collections").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	store, err := storage.NewRecordStore(ctx, backend)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT body FROM collections").
		WithArgs(storage.CollectionAccounts).
		WillReturnRows(sqlmock.NewRows([]string{"body"}).
			AddRow([]byte(`[{"login":"alice","password":"abc123","role":"regular"}]`)))

	accounts, err := store.LoadAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "alice", accounts[0].Login)

	mock.ExpectExec("INSERT INTO collections").
		WithArgs(storage.CollectionAccounts, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	accounts = append(accounts, domain.Account{Login: "bob", Password: "b0b", Role: domain.RoleRegular})
	require.NoError(t, store.SaveAccounts(ctx, accounts))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackend_MissingRow(t *testing.T) {
	backend, mock := setupPostgresBackend(t)

	mock.ExpectQuery("SELECT body FROM collections").
		WithArgs(storage.CollectionOrders).
		WillReturnRows(sqlmock.NewRows([]string{"body"}))

	_, err := backend.Read(context.Background(), storage.CollectionOrders)
	assert.ErrorIs(t, err, storage.ErrMissingCollection)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackend_WriteError(t *testing.T) {
	backend, mock := setupPostgresBackend(t)

	mock.ExpectExec("INSERT INTO collections").
		WithArgs(storage.CollectionOrders, "[]").
		WillReturnError(assert.AnError)

	err := backend.Write(context.Background(), storage.CollectionOrders, []byte("[]"))
	assert.ErrorIs(t, err, assert.AnError)
}
