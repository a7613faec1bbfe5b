// Package memory is an in-process implementation of the persistence ports, used for local runs
// and behavioral tests. Transactions are serialized by one mutex and work on a copy of the data
// set that replaces the live one only on commit.
package memory

import (
	"context"
	"maps"
	"sync"

	"fileshare/internal/domain/entity"
	"fileshare/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds every record of the in-memory driver.
type Store struct {
	mu   sync.Mutex
	data *dataset
}

type dataset struct {
	users        map[uuid.UUID]entity.User
	usersByPhone map[string]uuid.UUID
	usersByExtID map[string]uuid.UUID

	otps map[uuid.UUID]entity.OTP
	// otpSeq orders codes created within the same clock tick.
	otpSeq  map[uuid.UUID]uint64
	nextSeq uint64

	shares        map[uuid.UUID]entity.FileShare
	sharesByToken map[string]uuid.UUID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		data: &dataset{
			users:         make(map[uuid.UUID]entity.User),
			usersByPhone:  make(map[string]uuid.UUID),
			usersByExtID:  make(map[string]uuid.UUID),
			otps:          make(map[uuid.UUID]entity.OTP),
			otpSeq:        make(map[uuid.UUID]uint64),
			shares:        make(map[uuid.UUID]entity.FileShare),
			sharesByToken: make(map[string]uuid.UUID),
		},
	}
}

func (d *dataset) clone() *dataset {
	return &dataset{
		users:         maps.Clone(d.users),
		usersByPhone:  maps.Clone(d.usersByPhone),
		usersByExtID:  maps.Clone(d.usersByExtID),
		otps:          maps.Clone(d.otps),
		otpSeq:        maps.Clone(d.otpSeq),
		nextSeq:       d.nextSeq,
		shares:        maps.Clone(d.shares),
		sharesByToken: maps.Clone(d.sharesByToken),
	}
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager over store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn against a private copy of the data set and publishes it if fn succeeds.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	tx := tm.store.data.clone()
	if err := fn(&repositoryFactory{data: tx}); err != nil {
		return err
	}
	tm.store.data = tx

	return nil
}

type repositoryFactory struct {
	data *dataset
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{scope: scope{tx: f.data}}
}

func (f *repositoryFactory) NewOTPRepository() repository.OTPRepository {
	return &otpRepository{scope: scope{tx: f.data}}
}

func (f *repositoryFactory) NewShareRepository() repository.ShareRepository {
	return &shareRepository{scope: scope{tx: f.data}}
}

// scope resolves the data set a repository works on: the transaction copy when bound to one,
// otherwise the live data set under the store lock. Repositories outside a transaction must not
// be called from inside Execute.
type scope struct {
	store *Store
	tx    *dataset
}

func (s scope) acquire() (*dataset, func()) {
	if s.tx != nil {
		return s.tx, func() {}
	}
	s.store.mu.Lock()

	return s.store.data, s.store.mu.Unlock
}

// NewUserRepository returns a UserRepository that works on the committed data.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{scope: scope{store: store}}
}

// NewOTPRepository returns an OTPRepository that works on the committed data.
func NewOTPRepository(store *Store) repository.OTPRepository {
	return &otpRepository{scope: scope{store: store}}
}

// NewShareRepository returns a ShareRepository that works on the committed data.
func NewShareRepository(store *Store) repository.ShareRepository {
	return &shareRepository{scope: scope{store: store}}
}
