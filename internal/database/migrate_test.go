package database_test

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bertdev/bookmarks-api/internal/database"
)

func TestMigrate(t *testing.T) {
	t.Run("creates both tables", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS bookmarks").
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, database.Migrate(db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops on the first failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		boom := errors.New("ddl failed")
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(boom)

		assert.ErrorIs(t, database.Migrate(db), boom)
	})
}
