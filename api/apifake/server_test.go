package apifake_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jrsteele09/go-roomshare-client/api/apifake"
	"github.com/jrsteele09/go-roomshare-client/rooms"
	"github.com/jrsteele09/go-roomshare-client/token"
	"github.com/jrsteele09/go-roomshare-client/users"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	server    *apifake.Server
	lock      sync.Mutex
	now       time.Time
	professor *users.User
	student   *users.User
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{now: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
	f.server = apifake.New(apifake.WithNowTime(f.nowTime), apifake.WithTokenTTL(24*time.Hour))

	var err error
	f.professor, err = f.server.SeedUser(users.Registration{FirstName: "Petar", LastName: "Petrović", Email: "p@f.rs", Password: "x"}, users.RoleProfessor)
	require.NoError(t, err)
	f.student, err = f.server.SeedUser(users.Registration{FirstName: "Ana", LastName: "Anić", Email: "a@f.rs", Password: "x"}, users.RoleStudent)
	require.NoError(t, err)
	return f
}

func (f *testFixture) nowTime() time.Time {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.now
}

func (f *testFixture) advance(d time.Duration) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.now = f.now.Add(d)
}

// call sends a JSON request as userID (0 means no token) and decodes the response body.
func (f *testFixture) call(t *testing.T, userID int64, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, apifake.BasePath+path, &buf)
	if userID != 0 {
		tok, err := f.server.IssueToken(userID)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	out := map[string]any{}
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec.Code, out
}

func TestRequireToken(t *testing.T) {
	f := setupTestFixture(t)

	code, body := f.call(t, 0, http.MethodGet, "/user/rooms", nil)
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, "Token je obavezan", body["error"])

	req := httptest.NewRequest(http.MethodGet, apifake.BasePath+"/user/rooms", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Nevažeći token")

	other, err := token.IssueAccessToken(token.NewHMACSigner("other"), f.student.ID, f.nowTime(), time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, apifake.BasePath+"/user/rooms", nil)
	req.Header.Set("Authorization", "Bearer "+other)
	rec = httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireToken_Expired(t *testing.T) {
	f := setupTestFixture(t)

	tok, err := f.server.IssueToken(f.student.ID)
	require.NoError(t, err)
	f.advance(25 * time.Hour)

	req := httptest.NewRequest(http.MethodGet, apifake.BasePath+"/user/rooms", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Token je istekao")
}

func TestLogin(t *testing.T) {
	f := setupTestFixture(t)

	code, body := f.call(t, 0, http.MethodPost, "/login", users.Credentials{Email: "a@f.rs", Password: "x"})
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	require.Equal(t, "student", user["rola"])
	require.NotContains(t, user, "lozinka")

	claims, err := token.Inspect(body["token"].(string))
	require.NoError(t, err)
	require.Equal(t, f.nowTime().Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())

	code, body = f.call(t, 0, http.MethodPost, "/login", users.Credentials{Email: "a@f.rs", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, "Pogrešan email ili lozinka", body["error"])
}

func TestRegister_Validation(t *testing.T) {
	f := setupTestFixture(t)

	code, body := f.call(t, 0, http.MethodPost, "/register", users.Registration{FirstName: "X", Email: "x@f.rs"})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Polje prezime je obavezno", body["error"])

	reg := users.Registration{FirstName: "X", LastName: "Y", Email: "x@f.rs", Program: "SRT", IndexNumber: "1/2024", Password: "p"}
	code, _ = f.call(t, 0, http.MethodPost, "/register", reg)
	require.Equal(t, http.StatusCreated, code)

	code, body = f.call(t, 0, http.MethodPost, "/register", reg)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Email već postoji", body["error"])
}

func TestCreateRoom_Rules(t *testing.T) {
	f := setupTestFixture(t)

	code, body := f.call(t, f.student.ID, http.MethodPost, "/rooms", rooms.NewRoom{Name: "R", Passcode: "S"})
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, "Samo profesori mogu da kreiraju sobe", body["error"])

	code, body = f.call(t, f.professor.ID, http.MethodPost, "/rooms", rooms.NewRoom{Name: "R"})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Naziv i šifra sobe su obavezni", body["error"])

	code, body = f.call(t, f.professor.ID, http.MethodPost, "/rooms", rooms.NewRoom{Name: "R", Passcode: "S"})
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, float64(1), body["room_id"])

	code, body = f.call(t, f.professor.ID, http.MethodPost, "/rooms", rooms.NewRoom{Name: "R2", Passcode: "S"})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Šifra sobe već postoji", body["error"])
}

func TestRooms_ExpireAfterLimit(t *testing.T) {
	f := setupTestFixture(t)

	code, _ := f.call(t, f.professor.ID, http.MethodPost, "/rooms", rooms.NewRoom{Name: "Kratka", Passcode: "K1", LimitHours: 1})
	require.Equal(t, http.StatusCreated, code)
	code, _ = f.call(t, f.professor.ID, http.MethodPost, "/rooms", rooms.NewRoom{Name: "Trajna", Passcode: "T1"})
	require.Equal(t, http.StatusCreated, code)

	code, body := f.call(t, f.professor.ID, http.MethodGet, "/rooms/1", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "2025-01-10T13:00:00", body["limit_vreme"])

	f.advance(2 * time.Hour)
	f.server.CleanupExpiredRooms()
	require.Equal(t, 1, f.server.RoomCount())

	code, body = f.call(t, f.student.ID, http.MethodPost, "/rooms/join", rooms.JoinRequest{Passcode: "K1"})
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "Soba sa tom šifrom ne postoji", body["error"])

	code, _ = f.call(t, f.student.ID, http.MethodPost, "/rooms/join", rooms.JoinRequest{Passcode: "T1"})
	require.Equal(t, http.StatusOK, code)
}

func TestDeleteFile_Permissions(t *testing.T) {
	f := setupTestFixture(t)
	other, err := f.server.SeedUser(users.Registration{FirstName: "Iva", LastName: "Ivić", Email: "i@f.rs", Password: "x"}, users.RoleStudent)
	require.NoError(t, err)

	code, _ := f.call(t, f.professor.ID, http.MethodPost, "/rooms", rooms.NewRoom{Name: "R", Passcode: "S"})
	require.Equal(t, http.StatusCreated, code)
	for _, id := range []int64{f.student.ID, other.ID} {
		code, _ = f.call(t, id, http.MethodPost, "/rooms/join", rooms.JoinRequest{Passcode: "S"})
		require.Equal(t, http.StatusOK, code)
	}

	upload := func(userID int64) {
		t.Helper()
		var buf bytes.Buffer
		writeMultipart(t, &buf, "zadatak.txt", "x")
		req := httptest.NewRequest(http.MethodPost, apifake.BasePath+"/rooms/1/files", &buf)
		req.Header.Set("Content-Type", multipartContentType)
		tok, err := f.server.IssueToken(userID)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		f.server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	upload(f.student.ID)
	upload(f.student.ID)

	code, body := f.call(t, other.ID, http.MethodDelete, "/files/1", nil)
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, "Možete brisati samo svoje fajlove", body["error"])

	code, _ = f.call(t, f.student.ID, http.MethodDelete, "/files/1", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = f.call(t, f.professor.ID, http.MethodDelete, "/files/2", nil)
	require.Equal(t, http.StatusOK, code)

	code, body = f.call(t, f.professor.ID, http.MethodDelete, "/files/2", nil)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "Fajl nije pronađen", body["error"])
}

func TestServer_LogsRequests(t *testing.T) {
	var buf bytes.Buffer
	server := apifake.New(apifake.WithLogger(zerolog.New(&buf)))

	req := httptest.NewRequest(http.MethodGet, apifake.BasePath+"/user/rooms", nil)
	req.Header.Set("X-Request-ID", "req-1")
	server.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "apifake request", entry["message"])
	require.Equal(t, "req-1", entry["request_id"])
	require.Equal(t, float64(http.StatusUnauthorized), entry["status"])
}
