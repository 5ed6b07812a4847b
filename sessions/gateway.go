package sessions

import (
	"context"
	"io"

	"github.com/jrsteele09/go-roomshare-client/api"
	"github.com/jrsteele09/go-roomshare-client/rooms"
	"github.com/jrsteele09/go-roomshare-client/users"
)

// Gateway is the remote API as the store uses it. *api.Client implements it.
type Gateway interface {
	Login(ctx context.Context, creds users.Credentials) (*api.LoginResponse, error)
	Register(ctx context.Context, reg users.Registration) error
	UpdateProfile(ctx context.Context, profile users.ProfileUpdate) error
	CreateRoom(ctx context.Context, room rooms.NewRoom) (*rooms.CreateResponse, error)
	JoinRoom(ctx context.Context, passcode string) (*rooms.JoinResponse, error)
	GetRoom(ctx context.Context, roomID int64) (*rooms.Room, error)
	ListRoomFiles(ctx context.Context, roomID int64) ([]rooms.File, error)
	UploadFile(ctx context.Context, roomID int64, filename string, content io.Reader) error
	DeleteFile(ctx context.Context, fileID int64) error
	DownloadFile(ctx context.Context, fileID int64) (*api.Download, error)
	LeaveRoom(ctx context.Context, roomID int64) error
	DeleteRoom(ctx context.Context, roomID int64) error
	ListUserRooms(ctx context.Context) ([]rooms.Summary, error)
}

var _ Gateway = (*api.Client)(nil)
