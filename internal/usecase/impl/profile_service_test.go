package impl

import (
	"context"
	"testing"

	"fileshare/internal/domain/entity"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/domain/repository"
	mockRepo "fileshare/internal/mocks/repository"
	"fileshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockTransactionManager) {
	txManager := mockRepo.NewMockTransactionManager(t)

	return NewProfileService(txManager, newDiscardLogger()), txManager
}

func TestProfileService_GetProfile(t *testing.T) {
	srv, txManager := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Ada"}

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	})

	got, err := srv.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	srv, txManager := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	_, err := srv.GetProfile(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   *usecase.UpdateProfileInput
		wantErr error
		check   func(t *testing.T, u *entity.User)
	}{
		{
			name:  "trims name and lowercases email",
			input: &usecase.UpdateProfileInput{Name: strPtr("  Grace  "), Email: strPtr("Grace@Example.com ")},
			check: func(t *testing.T, u *entity.User) {
				assert.Equal(t, "Grace", u.Name)
				require.NotNil(t, u.Email)
				assert.Equal(t, "grace@example.com", *u.Email)
			},
		},
		{
			name:  "empty email clears it",
			input: &usecase.UpdateProfileInput{Email: strPtr("  ")},
			check: func(t *testing.T, u *entity.User) {
				assert.Nil(t, u.Email)
				assert.Equal(t, "Ada", u.Name)
			},
		},
		{
			name:  "picture only",
			input: &usecase.UpdateProfileInput{ProfilePicture: strPtr(" https://img.example.com/p.png ")},
			check: func(t *testing.T, u *entity.User) {
				assert.Equal(t, "https://img.example.com/p.png", u.ProfilePicture)
			},
		},
		{
			name:    "name too short",
			input:   &usecase.UpdateProfileInput{Name: strPtr(" A ")},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, txManager := createTestProfileService(t)
			user := &entity.User{ID: uuid.New(), PhoneNumber: strPtr(testPhone), Name: "Ada", Email: strPtr("ada@example.com")}

			expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
				userRepo := mockRepo.NewMockUserRepository(t)
				factory.EXPECT().NewUserRepository().Return(userRepo)
				userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
				if tt.wantErr == nil {
					userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
				}
			})

			got, err := srv.UpdateProfile(ctx, user.ID, tt.input)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}
