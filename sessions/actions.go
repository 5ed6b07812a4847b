package sessions

import (
	"context"
	"io"

	"github.com/jrsteele09/go-roomshare-client/internal/utils"
	"github.com/jrsteele09/go-roomshare-client/rooms"
	"github.com/jrsteele09/go-roomshare-client/storage"
	"github.com/jrsteele09/go-roomshare-client/users"
	"github.com/pkg/errors"
)

// Login exchanges credentials for a token and caches token and user.
func (s *Store) Login(ctx context.Context, creds users.Credentials) Result {
	resp, err := s.gateway.Login(ctx, creds)
	if err != nil {
		return s.failure("login", err, MsgLoginFailed)
	}

	// The token goes last: a stored token means a complete session.
	if err := s.persistUser(resp.User); err != nil {
		return s.failure("login", err, MsgLoginFailed)
	}
	if err := s.storage.Set(storage.KeyToken, resp.Token); err != nil {
		_ = s.storage.Remove(storage.KeyUser)
		return s.failure("login", errors.Wrap(err, "store token"), MsgLoginFailed)
	}

	s.SetAuthenticated(true)
	s.SetUser(&resp.User)
	s.log.Info().Int64("user_id", resp.User.ID).Str("role", string(resp.User.Role)).Msg("logged in")
	return succeeded()
}

func (s *Store) Register(ctx context.Context, reg users.Registration) Result {
	if err := s.gateway.Register(ctx, reg); err != nil {
		return s.failure("register", err, MsgRegisterFailed)
	}
	return succeeded()
}

// UpdateProfile saves the profile remotely, then merges it into the cached user.
func (s *Store) UpdateProfile(ctx context.Context, profile users.ProfileUpdate) Result {
	s.log.Debug().Interface("profile", profile).Msg("sending profile data")
	if err := s.gateway.UpdateProfile(ctx, profile); err != nil {
		return s.failure("update-profile", err, MsgUpdateProfileFailed)
	}

	updated := utils.Value(s.User()).ApplyProfile(profile)
	if err := s.persistUser(updated); err != nil {
		return s.failure("update-profile", err, MsgUpdateProfileFailed)
	}
	s.SetUser(&updated)
	return succeeded()
}

func (s *Store) CreateRoom(ctx context.Context, room rooms.NewRoom) CreateRoomResult {
	resp, err := s.gateway.CreateRoom(ctx, room)
	if err != nil {
		return CreateRoomResult{Result: s.failure("create-room", err, MsgCreateRoomFailed)}
	}
	return CreateRoomResult{Result: succeeded(), RoomID: resp.RoomID}
}

func (s *Store) JoinRoom(ctx context.Context, passcode string) JoinRoomResult {
	resp, err := s.gateway.JoinRoom(ctx, passcode)
	if err != nil {
		return JoinRoomResult{Result: s.failure("join-room", err, MsgJoinRoomFailed)}
	}
	return JoinRoomResult{Result: succeeded(), RoomID: resp.RoomID, RoomName: resp.RoomName}
}

func (s *Store) GetRoomInfo(ctx context.Context, roomID int64) RoomInfoResult {
	room, err := s.gateway.GetRoom(ctx, roomID)
	if err != nil {
		return RoomInfoResult{Result: s.failure("get-room-info", err, MsgRoomInfoFailed)}
	}
	return RoomInfoResult{Result: succeeded(), Room: room}
}

func (s *Store) GetRoomFiles(ctx context.Context, roomID int64) RoomFilesResult {
	files, err := s.gateway.ListRoomFiles(ctx, roomID)
	if err != nil {
		return RoomFilesResult{Result: s.failure("get-room-files", err, MsgRoomFilesFailed)}
	}
	return RoomFilesResult{Result: succeeded(), Files: files}
}

func (s *Store) UploadFile(ctx context.Context, roomID int64, filename string, content io.Reader) Result {
	if err := s.gateway.UploadFile(ctx, roomID, filename, content); err != nil {
		return s.failure("upload-file", err, MsgUploadFailed)
	}
	return succeeded()
}

func (s *Store) DeleteFile(ctx context.Context, fileID int64) Result {
	if err := s.gateway.DeleteFile(ctx, fileID); err != nil {
		return s.failure("delete-file", err, MsgDeleteFileFailed)
	}
	return succeeded()
}

// DownloadFile fetches a file and hands it to the configured FileSaver.
func (s *Store) DownloadFile(ctx context.Context, fileID int64) DownloadResult {
	dl, err := s.gateway.DownloadFile(ctx, fileID)
	if err != nil {
		s.log.Error().Err(err).Int64("file_id", fileID).Msg("download failed")
		return DownloadResult{Result: s.failure("download-file", err, MsgDownloadFailed)}
	}
	defer dl.Body.Close()

	path, err := s.saver.Save(dl.Filename, dl.Body)
	if err != nil {
		s.log.Error().Err(err).Int64("file_id", fileID).Msg("saving download failed")
		return DownloadResult{Result: s.failure("download-file", err, MsgDownloadFailed)}
	}
	return DownloadResult{Result: succeeded(), Filename: dl.Filename, Path: path}
}

func (s *Store) LeaveRoom(ctx context.Context, roomID int64) Result {
	if err := s.gateway.LeaveRoom(ctx, roomID); err != nil {
		return s.failure("leave-room", err, MsgLeaveRoomFailed)
	}
	return succeeded()
}

func (s *Store) DeleteRoom(ctx context.Context, roomID int64) Result {
	if err := s.gateway.DeleteRoom(ctx, roomID); err != nil {
		return s.failure("delete-room", err, MsgDeleteRoomFailed)
	}
	return succeeded()
}

func (s *Store) GetUserRooms(ctx context.Context) UserRoomsResult {
	s.log.Debug().Msg("getting user rooms")
	list, err := s.gateway.ListUserRooms(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("getting user rooms failed")
		return UserRoomsResult{Result: s.failure("get-user-rooms", err, MsgUserRoomsFailed)}
	}
	s.log.Debug().Int("count", len(list)).Msg("user rooms")
	return UserRoomsResult{Result: succeeded(), Rooms: list}
}
