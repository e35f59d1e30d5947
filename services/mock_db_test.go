package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB opens a gorm session over a sqlmock connection. Expectations are
// matched in order, so a test pins down both the statements issued and their
// sequence.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError:         true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

// recordingBoard captures room board invalidations for assertions.
type recordingBoard struct {
	calls [][2]uint
}

func (b *recordingBoard) InvalidateRoomBoard(tenantID, branchID uint) {
	b.calls = append(b.calls, [2]uint{tenantID, branchID})
}
