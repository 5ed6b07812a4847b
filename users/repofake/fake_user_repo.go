package fakeuserrepo

import (
	"errors"
	"sync"

	apperrors "github.com/jrsteele09/go-roomshare-client/internal/errors"
	"github.com/jrsteele09/go-roomshare-client/users"
)

var _ users.Repo = (*FakeUserRepo)(nil)

var (
	ErrNotFound    = apperrors.ErrNotFound
	ErrEmailExists = errors.New("email already exists")
)

type FakeUserRepo struct {
	users    map[int64]*users.Account
	emailIds map[string]int64 // email to user id
	nextID   int64
	lock     sync.RWMutex
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		users:    make(map[int64]*users.Account),
		emailIds: make(map[string]int64),
	}
}

// Insert stores a new account and assigns its ID.
func (ur *FakeUserRepo) Insert(account *users.Account) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if _, ok := ur.emailIds[account.Email]; ok {
		return ErrEmailExists
	}
	ur.nextID++
	account.ID = ur.nextID
	stored := *account
	ur.users[account.ID] = &stored
	ur.emailIds[account.Email] = account.ID
	return nil
}

func (ur *FakeUserRepo) GetByEmail(email string) (*users.Account, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.emailIds[email]
	if !ok {
		return nil, ErrNotFound
	}
	account := *ur.users[id]
	return &account, nil
}

func (ur *FakeUserRepo) GetByID(id int64) (*users.Account, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	stored, ok := ur.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	account := *stored
	return &account, nil
}

func (ur *FakeUserRepo) UpdateProfile(id int64, profile users.ProfileUpdate) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	stored, ok := ur.users[id]
	if !ok {
		return ErrNotFound
	}
	stored.User = stored.User.ApplyProfile(profile)
	return nil
}
