package sessions_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jrsteele09/go-roomshare-client/api"
	"github.com/jrsteele09/go-roomshare-client/api/apifake"
	"github.com/jrsteele09/go-roomshare-client/rooms"
	"github.com/jrsteele09/go-roomshare-client/sessions"
	"github.com/jrsteele09/go-roomshare-client/storage"
	"github.com/jrsteele09/go-roomshare-client/users"
	"github.com/stretchr/testify/require"
)

const (
	professorEmail = "profesor@fakultet.rs"
	studentEmail   = "student@fakultet.rs"
	testPassword   = "lozinka123"
)

// testFixture wires a Store to an in-memory API over HTTP.
type testFixture struct {
	api      *apifake.Server
	server   *httptest.Server
	download string

	clockLock sync.Mutex
	now       time.Time
}

func (f *testFixture) nowTime() time.Time {
	f.clockLock.Lock()
	defer f.clockLock.Unlock()
	return f.now
}

func (f *testFixture) advance(d time.Duration) {
	f.clockLock.Lock()
	defer f.clockLock.Unlock()
	f.now = f.now.Add(d)
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		now:      time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		download: t.TempDir(),
	}
	f.api = apifake.New(apifake.WithNowTime(f.nowTime))
	f.server = httptest.NewServer(f.api)
	t.Cleanup(f.server.Close)

	_, err := f.api.SeedUser(users.Registration{
		FirstName: "Petar", LastName: "Petrović", Email: professorEmail, Password: testPassword,
	}, users.RoleProfessor)
	require.NoError(t, err)
	return f
}

// newSession returns a Store with its own durable storage, as a separate client would have.
func (f *testFixture) newSession(t *testing.T) *sessions.Store {
	t.Helper()

	mem := storage.NewMemory()
	client := api.New(api.Config{
		BaseURL:     f.server.URL + apifake.BasePath,
		HTTPClient:  f.server.Client(),
		Credentials: storage.TokenSource(mem),
	})
	s, err := sessions.New(mem, client, sessions.WithFileSaver(api.DirSaver{Dir: f.download}))
	require.NoError(t, err)
	return s
}

func (f *testFixture) loginProfessor(t *testing.T) *sessions.Store {
	t.Helper()

	s := f.newSession(t)
	res := s.Login(context.Background(), users.Credentials{Email: professorEmail, Password: testPassword})
	require.True(t, res.Success, res.Error)
	return s
}

func (f *testFixture) registerStudent(t *testing.T) *sessions.Store {
	t.Helper()
	ctx := context.Background()

	s := f.newSession(t)
	res := s.Register(ctx, users.Registration{
		FirstName: "Ana", LastName: "Anić", Email: studentEmail,
		Program: "SRT", IndexNumber: "15/2023", Password: testPassword,
	})
	require.True(t, res.Success, res.Error)
	require.False(t, s.IsAuthenticated())

	res = s.Login(ctx, users.Credentials{Email: studentEmail, Password: testPassword})
	require.True(t, res.Success, res.Error)
	return s
}

func TestSession_LoginWithWrongPassword(t *testing.T) {
	f := setupTestFixture(t)
	s := f.newSession(t)

	res := s.Login(context.Background(), users.Credentials{Email: professorEmail, Password: "wrong"})
	require.False(t, res.Success)
	require.Equal(t, "Pogrešan email ili lozinka", res.Error)
	require.False(t, s.IsAuthenticated())
}

func TestSession_RegisterDuplicateEmail(t *testing.T) {
	f := setupTestFixture(t)
	s := f.newSession(t)

	res := s.Register(context.Background(), users.Registration{
		FirstName: "X", LastName: "Y", Email: professorEmail,
		Program: "SRT", IndexNumber: "1/2020", Password: "p",
	})
	require.False(t, res.Success)
	require.Equal(t, "Email već postoji", res.Error)
}

func TestSession_RoomLifecycle(t *testing.T) {
	ctx := context.Background()
	f := setupTestFixture(t)
	prof := f.loginProfessor(t)
	student := f.registerStudent(t)

	require.True(t, prof.User().IsProfessor())
	require.True(t, student.User().IsStudent())

	created := prof.CreateRoom(ctx, rooms.NewRoom{Name: "Algoritmi", Passcode: "ALG2025", LimitHours: 2})
	require.True(t, created.Success, created.Error)
	require.NotZero(t, created.RoomID)

	denied := student.CreateRoom(ctx, rooms.NewRoom{Name: "Moja", Passcode: "MOJA"})
	require.False(t, denied.Success)
	require.Equal(t, "Samo profesori mogu da kreiraju sobe", denied.Error)

	joined := student.JoinRoom(ctx, "ALG2025")
	require.True(t, joined.Success, joined.Error)
	require.Equal(t, created.RoomID, joined.RoomID)
	require.Equal(t, "Algoritmi", joined.RoomName)

	again := student.JoinRoom(ctx, "ALG2025")
	require.False(t, again.Success)
	require.Equal(t, "Već ste u ovoj sobi", again.Error)

	info := student.GetRoomInfo(ctx, created.RoomID)
	require.True(t, info.Success, info.Error)
	require.Equal(t, "Petar Petrović", info.Room.CreatorName)
	require.NotNil(t, info.Room.ExpiresAt)
	student.SetCurrentRoom(info.Room)
	require.Equal(t, created.RoomID, student.CurrentRoom().ID)

	listed := student.GetUserRooms(ctx)
	require.True(t, listed.Success, listed.Error)
	require.Len(t, listed.Rooms, 1)
	require.Equal(t, "ALG2025", listed.Rooms[0].Passcode)

	left := student.LeaveRoom(ctx, created.RoomID)
	require.True(t, left.Success, left.Error)
	require.Empty(t, student.GetUserRooms(ctx).Rooms)
	require.Equal(t, created.RoomID, student.CurrentRoom().ID)

	notOwner := student.DeleteRoom(ctx, created.RoomID)
	require.False(t, notOwner.Success)
	require.Equal(t, "Možete brisati samo sobe koje ste kreirali", notOwner.Error)

	deleted := prof.DeleteRoom(ctx, created.RoomID)
	require.True(t, deleted.Success, deleted.Error)
	require.Zero(t, f.api.RoomCount())
}

func TestSession_FileLifecycle(t *testing.T) {
	ctx := context.Background()
	f := setupTestFixture(t)
	prof := f.loginProfessor(t)
	student := f.registerStudent(t)

	created := prof.CreateRoom(ctx, rooms.NewRoom{Name: "Baze", Passcode: "BAZE1"})
	require.True(t, created.Success, created.Error)
	require.True(t, student.JoinRoom(ctx, "BAZE1").Success)

	up := student.UploadFile(ctx, created.RoomID, "seminarski.txt", strings.NewReader("sadržaj"))
	require.True(t, up.Success, up.Error)

	files := prof.GetRoomFiles(ctx, created.RoomID)
	require.True(t, files.Success, files.Error)
	require.Len(t, files.Files, 1)
	file := files.Files[0]
	require.Equal(t, "seminarski.txt", file.OriginalFilename)
	require.Equal(t, "Ana Anić", file.UploaderName())

	dl := prof.DownloadFile(ctx, file.ID)
	require.True(t, dl.Success, dl.Error)
	require.Equal(t, "seminarski.txt", dl.Filename)
	data, err := os.ReadFile(filepath.Join(f.download, "seminarski.txt"))
	require.NoError(t, err)
	require.Equal(t, "sadržaj", string(data))

	missing := prof.DownloadFile(ctx, file.ID+100)
	require.False(t, missing.Success)
	require.Equal(t, "Fajl nije pronađen ili nemate pristup", missing.Error)

	removed := prof.DeleteFile(ctx, file.ID)
	require.True(t, removed.Success, removed.Error)
	require.Empty(t, prof.GetRoomFiles(ctx, created.RoomID).Files)
}

func TestSession_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := setupTestFixture(t)
	student := f.registerStudent(t)

	bad := student.UpdateProfile(ctx, users.ProfileUpdate{FirstName: "Ana", LastName: "Anić", Program: "XYZ", IndexNumber: "15/2023"})
	require.False(t, bad.Success)
	require.Equal(t, "Smer mora biti SRT ili KOT", bad.Error)
	require.Equal(t, "SRT", student.User().Program)

	ok := student.UpdateProfile(ctx, users.ProfileUpdate{FirstName: "Ana", LastName: "Anić", Program: "KOT", IndexNumber: "15/2023"})
	require.True(t, ok.Success, ok.Error)
	require.Equal(t, "KOT", student.User().Program)
	require.Equal(t, studentEmail, student.User().Email)
}

func TestSession_WithoutTokenIsRejected(t *testing.T) {
	f := setupTestFixture(t)
	s := f.newSession(t)

	res := s.GetUserRooms(context.Background())
	require.False(t, res.Success)
	require.Equal(t, "Token je obavezan", res.Error)
}

func TestSession_ExpiredTokenStaysAuthenticated(t *testing.T) {
	f := setupTestFixture(t)
	s := f.loginProfessor(t)

	f.advance(2 * time.Hour)
	res := s.GetUserRooms(context.Background())
	require.False(t, res.Success)
	require.Equal(t, "Token je istekao", res.Error)
	require.True(t, s.IsAuthenticated())
}

func TestSession_LogoutDropsBearer(t *testing.T) {
	f := setupTestFixture(t)
	s := f.loginProfessor(t)

	require.True(t, s.GetUserRooms(context.Background()).Success)
	require.NoError(t, s.Logout())

	res := s.GetUserRooms(context.Background())
	require.False(t, res.Success)
	require.Equal(t, "Token je obavezan", res.Error)
}
