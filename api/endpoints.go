package api

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/jrsteele09/go-roomshare-client/rooms"
	"github.com/jrsteele09/go-roomshare-client/users"
	"github.com/pkg/errors"
)

// LoginResponse is the POST /login response
type LoginResponse struct {
	Token string     `json:"token"`
	User  users.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, creds users.Credentials) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, RouteLogin, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, reg users.Registration) error {
	return c.doJSON(ctx, http.MethodPost, RouteRegister, reg, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, profile users.ProfileUpdate) error {
	return c.doJSON(ctx, http.MethodPut, RouteProfile, profile, nil)
}

func (c *Client) CreateRoom(ctx context.Context, room rooms.NewRoom) (*rooms.CreateResponse, error) {
	var out rooms.CreateResponse
	if err := c.doJSON(ctx, http.MethodPost, RouteRooms, room, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) JoinRoom(ctx context.Context, passcode string) (*rooms.JoinResponse, error) {
	var out rooms.JoinResponse
	if err := c.doJSON(ctx, http.MethodPost, RouteRoomsJoin, rooms.JoinRequest{Passcode: passcode}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetRoom(ctx context.Context, roomID int64) (*rooms.Room, error) {
	var out rooms.Room
	if err := c.doJSON(ctx, http.MethodGet, routeRoom(roomID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListRoomFiles(ctx context.Context, roomID int64) ([]rooms.File, error) {
	out := make([]rooms.File, 0)
	if err := c.doJSON(ctx, http.MethodGet, routeRoomFiles(roomID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteFile(ctx context.Context, fileID int64) error {
	return c.doJSON(ctx, http.MethodDelete, routeFile(fileID), nil, nil)
}

func (c *Client) LeaveRoom(ctx context.Context, roomID int64) error {
	return c.doJSON(ctx, http.MethodPost, routeRoomLeave(roomID), nil, nil)
}

func (c *Client) DeleteRoom(ctx context.Context, roomID int64) error {
	return c.doJSON(ctx, http.MethodDelete, routeRoom(roomID), nil, nil)
}

func (c *Client) ListUserRooms(ctx context.Context) ([]rooms.Summary, error) {
	out := make([]rooms.Summary, 0)
	if err := c.doJSON(ctx, http.MethodGet, RouteUserRooms, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadFile streams content as the multipart field "file".
func (c *Client) UploadFile(ctx context.Context, roomID int64, filename string, content io.Reader) error {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		part, err := form.CreateFormFile("file", filename)
		if err == nil {
			_, err = io.Copy(part, content)
		}
		if err == nil {
			err = form.Close()
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+routeRoomFiles(roomID), pr)
	if err != nil {
		pr.CloseWithError(err)
		return errors.Wrap(err, "[Client UploadFile]")
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
