package sessions

import (
	"encoding/json"
	"sync"

	"github.com/jrsteele09/go-roomshare-client/api"
	"github.com/jrsteele09/go-roomshare-client/internal/utils"
	"github.com/jrsteele09/go-roomshare-client/rooms"
	"github.com/jrsteele09/go-roomshare-client/storage"
	"github.com/jrsteele09/go-roomshare-client/users"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Store holds the client session and runs the API actions that change it.
// State changes only through SetAuthenticated, SetUser, SetCurrentRoom and
// the actions built on them.
type Store struct {
	storage storage.Store
	gateway Gateway
	saver   api.FileSaver
	log     zerolog.Logger

	lock          sync.RWMutex
	authenticated bool
	user          *users.User
	currentRoom   *rooms.Room
}

// Option defines a function type to modify the Store instance.
type Option func(*Store)

// WithLogger sets the logger (default: discard)
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithFileSaver sets where DownloadFile puts files (default: current directory)
func WithFileSaver(saver api.FileSaver) Option {
	return func(s *Store) {
		s.saver = saver
	}
}

// New loads the session from durable storage. The session is authenticated
// iff a non-empty token is stored; the token is not validated.
func New(store storage.Store, gateway Gateway, options ...Option) (*Store, error) {
	if store == nil {
		return nil, errors.New("[sessions New] storage is required")
	}
	if gateway == nil {
		return nil, errors.New("[sessions New] gateway is required")
	}

	s := &Store{
		storage: store,
		gateway: gateway,
		saver:   api.DirSaver{Dir: "."},
		log:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}

	tok, _, err := store.Get(storage.KeyToken)
	if err != nil {
		return nil, errors.Wrap(err, "[sessions New] read token")
	}
	s.authenticated = tok != ""

	rawUser, ok, err := store.Get(storage.KeyUser)
	if err != nil {
		return nil, errors.Wrap(err, "[sessions New] read user")
	}
	if ok && rawUser != "" && rawUser != "null" {
		var u users.User
		if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
			s.log.Warn().Err(err).Msg("ignoring unreadable stored user")
		} else {
			s.user = &u
		}
	}

	return s, nil
}

// SetAuthenticated sets the in-memory authenticated flag.
func (s *Store) SetAuthenticated(value bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.authenticated = value
}

// SetUser replaces the in-memory user. It does not touch durable storage.
func (s *Store) SetUser(user *users.User) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.user = utils.Clone(user)
}

// SetCurrentRoom selects the room the user is looking at. It is never persisted.
func (s *Store) SetCurrentRoom(room *rooms.Room) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.currentRoom = utils.Clone(room)
}

// IsAuthenticated reports whether a token was stored or a login succeeded.
func (s *Store) IsAuthenticated() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.authenticated
}

// User returns a copy of the current user, or nil.
func (s *Store) User() *users.User {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return utils.Clone(s.user)
}

// CurrentRoom returns a copy of the selected room, or nil.
func (s *Store) CurrentRoom() *rooms.Room {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return utils.Clone(s.currentRoom)
}

// Snapshot returns all three fields read under one lock.
func (s *Store) Snapshot() Session {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return Session{
		Authenticated: s.authenticated,
		User:          utils.Clone(s.user),
		CurrentRoom:   utils.Clone(s.currentRoom),
	}
}

// Logout forgets the session locally; the server is not called. The
// in-memory fields are always cleared, even if durable storage fails.
func (s *Store) Logout() error {
	tokenErr := s.storage.Remove(storage.KeyToken)
	userErr := s.storage.Remove(storage.KeyUser)

	s.SetAuthenticated(false)
	s.SetUser(nil)
	s.SetCurrentRoom(nil)

	if tokenErr != nil {
		return errors.Wrap(tokenErr, "[Store Logout] remove token")
	}
	return errors.Wrap(userErr, "[Store Logout] remove user")
}

// persistUser writes the user record to durable storage.
func (s *Store) persistUser(user users.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "[Store persistUser] marshal")
	}
	return errors.Wrap(s.storage.Set(storage.KeyUser, string(data)), "[Store persistUser]")
}

// failure turns err into a Result, preferring the server's message.
func (s *Store) failure(action string, err error, fallback string) Result {
	msg := api.ErrorMessage(err)
	if msg == "" {
		msg = fallback
	}
	s.log.Warn().Str("action", action).Err(err).Msg("action failed")
	return Result{Success: false, Error: msg}
}
