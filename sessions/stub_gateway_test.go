package sessions_test

import (
	"context"
	"io"

	"github.com/jrsteele09/go-roomshare-client/api"
	"github.com/jrsteele09/go-roomshare-client/rooms"
	"github.com/jrsteele09/go-roomshare-client/users"
)

// stubGateway returns canned responses. Unset funcs return err.
type stubGateway struct {
	err       error
	login     func(users.Credentials) (*api.LoginResponse, error)
	download  func(int64) (*api.Download, error)
	userRooms func() ([]rooms.Summary, error)
	calls     []string
}

func (g *stubGateway) Login(_ context.Context, creds users.Credentials) (*api.LoginResponse, error) {
	g.calls = append(g.calls, "login")
	if g.login != nil {
		return g.login(creds)
	}
	return nil, g.err
}

func (g *stubGateway) Register(context.Context, users.Registration) error {
	g.calls = append(g.calls, "register")
	return g.err
}

func (g *stubGateway) UpdateProfile(context.Context, users.ProfileUpdate) error {
	g.calls = append(g.calls, "update-profile")
	return g.err
}

func (g *stubGateway) CreateRoom(context.Context, rooms.NewRoom) (*rooms.CreateResponse, error) {
	g.calls = append(g.calls, "create-room")
	if g.err != nil {
		return nil, g.err
	}
	return &rooms.CreateResponse{RoomID: 7}, nil
}

func (g *stubGateway) JoinRoom(context.Context, string) (*rooms.JoinResponse, error) {
	g.calls = append(g.calls, "join-room")
	if g.err != nil {
		return nil, g.err
	}
	return &rooms.JoinResponse{RoomID: 7, RoomName: "Algoritmi"}, nil
}

func (g *stubGateway) GetRoom(_ context.Context, roomID int64) (*rooms.Room, error) {
	g.calls = append(g.calls, "get-room")
	if g.err != nil {
		return nil, g.err
	}
	return &rooms.Room{ID: roomID, Name: "Algoritmi"}, nil
}

func (g *stubGateway) ListRoomFiles(context.Context, int64) ([]rooms.File, error) {
	g.calls = append(g.calls, "list-files")
	if g.err != nil {
		return nil, g.err
	}
	return []rooms.File{}, nil
}

func (g *stubGateway) UploadFile(context.Context, int64, string, io.Reader) error {
	g.calls = append(g.calls, "upload")
	return g.err
}

func (g *stubGateway) DeleteFile(context.Context, int64) error {
	g.calls = append(g.calls, "delete-file")
	return g.err
}

func (g *stubGateway) DownloadFile(_ context.Context, fileID int64) (*api.Download, error) {
	g.calls = append(g.calls, "download")
	if g.download != nil {
		return g.download(fileID)
	}
	return nil, g.err
}

func (g *stubGateway) LeaveRoom(context.Context, int64) error {
	g.calls = append(g.calls, "leave-room")
	return g.err
}

func (g *stubGateway) DeleteRoom(context.Context, int64) error {
	g.calls = append(g.calls, "delete-room")
	return g.err
}

func (g *stubGateway) ListUserRooms(context.Context) ([]rooms.Summary, error) {
	g.calls = append(g.calls, "user-rooms")
	if g.userRooms != nil {
		return g.userRooms()
	}
	if g.err != nil {
		return nil, g.err
	}
	return []rooms.Summary{}, nil
}
