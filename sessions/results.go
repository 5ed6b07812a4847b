package sessions

import (
	"github.com/jrsteele09/go-roomshare-client/rooms"
)

// Fallback messages, shown when the server gives no "error" text.
const (
	MsgLoginFailed         = "Greška pri prijavi"
	MsgRegisterFailed      = "Greška pri registraciji"
	MsgUpdateProfileFailed = "Greška pri ažuriranju profila"
	MsgCreateRoomFailed    = "Greška pri kreiranju sobe"
	MsgJoinRoomFailed      = "Greška pri pridruživanju sobi"
	MsgRoomInfoFailed      = "Greška pri učitavanju informacija o sobi"
	MsgRoomFilesFailed     = "Greška pri učitavanju fajlova"
	MsgUploadFailed        = "Greška pri upload-u fajla"
	MsgDeleteFileFailed    = "Greška pri brisanju fajla"
	MsgDownloadFailed      = "Greška pri preuzimanju fajla"
	MsgLeaveRoomFailed     = "Greška pri napuštanju sobe"
	MsgDeleteRoomFailed    = "Greška pri brisanju sobe"
	MsgUserRoomsFailed     = "Greška pri učitavanju soba"
)

// Result is the outcome every action returns. Error is only set when
// Success is false.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func succeeded() Result {
	return Result{Success: true}
}

type CreateRoomResult struct {
	Result
	RoomID int64 `json:"roomId,omitempty"`
}

type JoinRoomResult struct {
	Result
	RoomID   int64  `json:"roomId,omitempty"`
	RoomName string `json:"roomName,omitempty"`
}

type RoomInfoResult struct {
	Result
	Room *rooms.Room `json:"room,omitempty"`
}

type RoomFilesResult struct {
	Result
	Files []rooms.File `json:"files,omitempty"`
}

type UserRoomsResult struct {
	Result
	Rooms []rooms.Summary `json:"rooms,omitempty"`
}

type DownloadResult struct {
	Result
	Filename string `json:"filename,omitempty"`
	Path     string `json:"path,omitempty"`
}
