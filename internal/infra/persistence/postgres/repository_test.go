package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"fileshare/internal/domain/entity"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_CreateRejectsMissingIdentityBeforeWriting(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	err := repo.Create(context.Background(), &entity.User{Name: "Nobody"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByPhoneNumber_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE phone_number = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByPhoneNumber(context.Background(), "+15551234567")

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_IncrementAttempts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOTPRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "otp_codes" SET "attempts"=attempts \+ 1 WHERE id = \$1 AND verified = \$2 AND attempts = \$3`).
		WithArgs(sqlmock.AnyArg(), false, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := repo.IncrementAttempts(context.Background(), id, 1)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_IncrementAttempts_LostRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOTPRepository(db)

	mock.ExpectExec(`UPDATE "otp_codes" SET "attempts"=attempts \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.IncrementAttempts(context.Background(), uuid.New(), 0)

	assert.ErrorIs(t, err, repository.ErrOTPStateChanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_MarkVerified_LostRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOTPRepository(db)

	mock.ExpectExec(`UPDATE "otp_codes" SET "verified"=\$1 WHERE id = \$2 AND verified = \$3 AND attempts < \$4 AND expires_at >= \$5`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkVerified(context.Background(), uuid.New(), 3, time.Now())

	assert.ErrorIs(t, err, repository.ErrOTPStateChanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_DeleteExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOTPRepository(db)

	mock.ExpectExec(`DELETE FROM "otp_codes" WHERE expires_at <= \$1`).
		WillReturnResult(sqlmock.NewResult(0, 4))

	deleted, err := repo.DeleteExpired(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareRepository_RecordDownload(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShareRepository(db)
	token := "0123456789abcdef0123456789abcdef"
	shareID := uuid.New()

	mock.ExpectQuery(`UPDATE "file_shares" SET .*"download_count"=download_count \+ 1.* WHERE share_token = \$\d+ AND is_active = \$\d+ AND \(expires_at IS NULL OR expires_at > \$\d+\) RETURNING \*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "share_token", "file_name", "download_count", "is_active"}).
			AddRow(shareID.String(), token, "report.pdf", 3, true))

	share, err := repo.RecordDownload(context.Background(), token, time.Now())

	require.NoError(t, err)
	assert.Equal(t, shareID, share.ID)
	assert.Equal(t, int64(3), share.DownloadCount)
	assert.Equal(t, "report.pdf", share.FileName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareRepository_RecordDownload_NoQualifyingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShareRepository(db)

	mock.ExpectQuery(`UPDATE "file_shares" SET .* RETURNING \*`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.RecordDownload(context.Background(), "missing", time.Now())

	assert.ErrorIs(t, err, repository.ErrShareNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareRepository_Deactivate_NotOwnedOrInactive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShareRepository(db)

	mock.ExpectExec(`UPDATE "file_shares" SET .* WHERE id = \$\d+ AND uploaded_by = \$\d+ AND is_active = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Deactivate(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrShareNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareRepository_FindByToken_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShareRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "file_shares" WHERE share_token = \$1`).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.FindByToken(context.Background(), "abc")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConstraintErrors(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "users_phone_number_key" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("timeout")))
	assert.True(t, isForeignKeyConstraintViolation(errors.New("(SQLSTATE 23503)")))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
}

func TestMigrate(t *testing.T) {
	db, _ := newMockDB(t)

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var gotDir string
	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir

		return nil
	}
	require.NoError(t, Migrate(context.Background(), db))
	assert.Equal(t, ".", gotDir)

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	assert.ErrorContains(t, Migrate(context.Background(), db), "boom")
}
