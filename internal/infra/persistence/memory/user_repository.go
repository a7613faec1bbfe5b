package memory

import (
	"context"
	"sort"
	"time"

	"fileshare/internal/domain/entity"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type userRepository struct {
	scope
}

func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	d, release := repo.acquire()
	defer release()

	return d.userByID(id)
}

func (repo *userRepository) FindByPhoneNumber(_ context.Context, phoneNumber string) (*entity.User, error) {
	d, release := repo.acquire()
	defer release()

	id, ok := d.usersByPhone[phoneNumber]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return d.userByID(id)
}

func (repo *userRepository) FindByExternalID(_ context.Context, externalID string) (*entity.User, error) {
	d, release := repo.acquire()
	defer release()

	id, ok := d.usersByExtID[externalID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return d.userByID(id)
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	if err := user.Validate(); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	d, release := repo.acquire()
	defer release()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if _, taken := d.users[user.ID]; taken {
		return repository.ErrUserAlreadyExists
	}
	if user.PhoneNumber != nil {
		if _, taken := d.usersByPhone[*user.PhoneNumber]; taken {
			return repository.ErrUserAlreadyExists
		}
	}
	if user.ExternalID != nil {
		if _, taken := d.usersByExtID[*user.ExternalID]; taken {
			return repository.ErrUserAlreadyExists
		}
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	d.putUser(*user)

	return nil
}

func (repo *userRepository) Update(_ context.Context, user *entity.User) error {
	if err := user.Validate(); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	d, release := repo.acquire()
	defer release()

	current, ok := d.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if user.ExternalID != nil {
		if owner, taken := d.usersByExtID[*user.ExternalID]; taken && owner != user.ID {
			return repository.ErrUserAlreadyExists
		}
	}

	if current.ExternalID != nil {
		delete(d.usersByExtID, *current.ExternalID)
	}
	current.ExternalID = user.ExternalID
	current.Name = user.Name
	current.Email = user.Email
	current.ProfilePicture = user.ProfilePicture
	current.UpdatedAt = time.Now()
	d.putUser(current)
	user.UpdatedAt = current.UpdatedAt

	return nil
}

func (repo *userRepository) MarkPhoneVerified(_ context.Context, id uuid.UUID) error {
	d, release := repo.acquire()
	defer release()

	user, ok := d.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.IsPhoneVerified = true
	user.UpdatedAt = time.Now()
	d.putUser(user)

	return nil
}

func (repo *userRepository) Count(_ context.Context) (int64, error) {
	d, release := repo.acquire()
	defer release()

	return int64(len(d.users)), nil
}

func (repo *userRepository) List(_ context.Context, limit int) ([]*entity.User, error) {
	d, release := repo.acquire()
	defer release()

	users := make([]*entity.User, 0, len(d.users))
	for _, user := range d.users {
		u := user
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}

	return users, nil
}

func (d *dataset) userByID(id uuid.UUID) (*entity.User, error) {
	user, ok := d.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (d *dataset) putUser(user entity.User) {
	d.users[user.ID] = user
	if user.PhoneNumber != nil {
		d.usersByPhone[*user.PhoneNumber] = user.ID
	}
	if user.ExternalID != nil {
		d.usersByExtID[*user.ExternalID] = user.ID
	}
}
