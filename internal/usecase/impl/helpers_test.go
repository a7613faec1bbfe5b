package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fileshare/config"
	"fileshare/internal/domain/repository"
	mockRepo "fileshare/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:    &config.AuthConfig{TokenTTL: 7 * 24 * time.Hour, BcryptCost: 4},
		OTP:     &config.OTPConfig{CodeTTL: 5 * time.Minute, MaxAttempts: 3, CodeLength: 6, SweepInterval: time.Minute},
		Share:   &config.ShareConfig{MaxUploadSize: 1024},
		Storage: &config.StorageConfig{BucketURL: "mem://", PresignExpiry: 15 * time.Minute},
		SMS:     &config.SMSConfig{Provider: config.SMSProviderLog},
	}
	cfg.HTTP.PublicBaseURL = "https://share.example.com/"

	return cfg
}

// expectTx makes txManager run the transaction body against a factory prepared by setup and
// return whatever the body returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

// plainHasher stores codes verbatim so behavioral tests avoid bcrypt's cost.
type plainHasher struct{}

func (plainHasher) Hash(code string) (string, error) { return "plain:" + code, nil }

func (plainHasher) Check(code, hash string) bool { return "plain:"+code == hash }

func strPtr(s string) *string { return &s }
