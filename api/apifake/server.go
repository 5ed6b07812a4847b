// Package apifake is an in-memory stand-in for the room-share REST API. It
// implements every endpoint the client calls, with the same status codes and
// error messages, so client code can be tested against httptest.Server.
package apifake

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jrsteele09/go-roomshare-client/token"
	"github.com/jrsteele09/go-roomshare-client/users"
	fakeuserrepo "github.com/jrsteele09/go-roomshare-client/users/repofake"
	"github.com/rs/zerolog"
)

const (
	// BasePath is where the API is mounted, matching the client's default base URL.
	BasePath = "/api"

	maxUploadSize = 100 << 20
	timeLayout    = "2006-01-02T15:04:05"
)

type room struct {
	ID        int64
	Name      string
	Passcode  string
	CreatedAt time.Time
	ExpiresAt *time.Time
	CreatorID int64
	members   map[int64]struct{}
}

type storedFile struct {
	ID           int64
	RoomID       int64
	UploaderID   int64
	OriginalName string
	StoredName   string
	UploadTime   time.Time
	Content      []byte
}

// Server is an http.Handler serving the fake API under BasePath.
type Server struct {
	router   chi.Router
	users    *fakeuserrepo.FakeUserRepo
	signer   token.Signer
	tokenTTL time.Duration
	nowTime  func() time.Time
	log      zerolog.Logger

	lock       sync.RWMutex
	rooms      map[int64]*room
	files      map[int64]*storedFile
	nextRoomID int64
	nextFileID int64
}

// Option configures a Server
type Option func(*Server)

// WithNowTime sets the clock used for tokens and room expiry
func WithNowTime(nowFunc func() time.Time) Option {
	return func(s *Server) {
		s.nowTime = nowFunc
	}
}

// WithTokenTTL sets the access token lifetime (default 1h)
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) {
		s.tokenTTL = ttl
	}
}

// WithSigner replaces the default HMAC signer
func WithSigner(signer token.Signer) Option {
	return func(s *Server) {
		s.signer = signer
	}
}

// WithLogger logs every request at debug level (default: discard)
func WithLogger(log zerolog.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// New creates an empty fake API.
func New(options ...Option) *Server {
	s := &Server{
		users:    fakeuserrepo.NewFakeUserRepo(),
		signer:   token.NewHMACSigner("apifake-secret"),
		tokenTTL: time.Hour,
		nowTime:  time.Now,
		log:      zerolog.Nop(),
		rooms:    make(map[int64]*room),
		files:    make(map[int64]*storedFile),
	}
	for _, opt := range options {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.recoverPanics, s.logRequests)
	r.Route(BasePath, func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireToken)

			r.Put("/profile", s.handleUpdateProfile)
			r.Post("/rooms", s.handleCreateRoom)
			r.Post("/rooms/join", s.handleJoinRoom)
			r.Get("/user/rooms", s.handleUserRooms)
			r.Get("/rooms/{roomID}", s.handleGetRoom)
			r.Delete("/rooms/{roomID}", s.handleDeleteRoom)
			r.Post("/rooms/{roomID}/leave", s.handleLeaveRoom)
			r.Get("/rooms/{roomID}/files", s.handleListFiles)
			r.Post("/rooms/{roomID}/files", s.handleUpload)
			r.Delete("/files/{fileID}", s.handleDeleteFile)
			r.Get("/files/{fileID}/download", s.handleDownload)
		})
	})
	return r
}

// SeedUser creates an account with any role. Professors can only be created
// this way; POST /register always creates students.
func (s *Server) SeedUser(reg users.Registration, role users.RoleType) (*users.User, error) {
	hash, err := users.HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}
	account := &users.Account{
		User: users.User{
			FirstName:   reg.FirstName,
			LastName:    reg.LastName,
			Email:       reg.Email,
			Program:     reg.Program,
			IndexNumber: reg.IndexNumber,
			Role:        role,
		},
		PasswordHash: hash,
	}
	if err := s.users.Insert(account); err != nil {
		return nil, err
	}
	return &account.User, nil
}

// IssueToken signs a token for userID, bypassing /login.
func (s *Server) IssueToken(userID int64) (string, error) {
	return token.IssueAccessToken(s.signer, userID, s.nowTime(), s.tokenTTL)
}

// RoomCount returns the number of live rooms
func (s *Server) RoomCount() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.rooms)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}
