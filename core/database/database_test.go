package database

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "formshare",
			Driver:         DriverMySQL,
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, `unsupported database driver "oracle"`)
		assert.Nil(t, db)
	})

	t.Run("SQLite", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: "file:connect?mode=memory&cache=shared"})
		require.NoError(t, err)
		assert.NotNil(t, db)
	})
}

func TestDSN(t *testing.T) {
	dsn := DSN(Config{Host: "db", Port: 3307, User: "admin", Password: "p@ss", Name: "forms", TimeoutSeconds: 5})

	assert.True(t, strings.HasPrefix(dsn, "admin:p@ss@tcp(db:3307)/forms?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "timeout=5s")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestApply_Mock(t *testing.T) {
	stmts := []string{
		"ALTER TABLE maintable ADD COLUMN age int (3);",
		"ALTER TABLE maintable ADD INDEX DIDX1 (sex);",
		"ALTER TABLE maintable ADD CONSTRAINT DFK2 FOREIGN KEY (sex) REFERENCES lkpsex (sex_cod) ON DELETE RESTRICT ON UPDATE NO ACTION;",
	}

	t.Run("AllApplied", func(t *testing.T) {
		db, mock := setupMockDB(t)
		for _, stmt := range stmts {
			mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
		}

		var seen []int
		n, err := Apply(context.Background(), db, stmts, func(applied int) { seen = append(seen, applied) })

		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []int{1, 2, 3}, seen)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("StopsAtFirstFailure", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta(stmts[0])).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(stmts[1])).WillReturnError(errors.New("duplicate key name"))

		n, err := Apply(context.Background(), db, stmts, nil)

		assert.Equal(t, 1, n)
		var stmtErr *StatementError
		require.ErrorAs(t, err, &stmtErr)
		assert.Equal(t, 1, stmtErr.Index)
		assert.Equal(t, stmts[1], stmtErr.Statement)
		assert.EqualError(t, err, "statement 2 failed: duplicate key name")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CancelledContext", func(t *testing.T) {
		db, _ := setupMockDB(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		n, err := Apply(ctx, db, stmts, nil)
		assert.Equal(t, 0, n)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestApply_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: "file:apply?mode=memory&cache=shared"})
	require.NoError(t, err)

	n, err := Apply(context.Background(), db, []string{
		"CREATE TABLE IF NOT EXISTS lkpsex(sex_cod varchar (1) NOT NULL, PRIMARY KEY (sex_cod));",
		"ALTER TABLE lkpsex ADD COLUMN sex_des varchar (120);",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, db.Migrator().HasTable("lkpsex"))
	assert.True(t, db.Migrator().HasColumn("lkpsex", "sex_des"))
}
