package api

import "fmt"

// Route path constants, relative to the base URL
const (
	RouteLogin     = "/login"
	RouteRegister  = "/register"
	RouteProfile   = "/profile"
	RouteRooms     = "/rooms"
	RouteRoomsJoin = "/rooms/join"
	RouteUserRooms = "/user/rooms"
)

func routeRoom(roomID int64) string {
	return fmt.Sprintf("/rooms/%d", roomID)
}

func routeRoomFiles(roomID int64) string {
	return fmt.Sprintf("/rooms/%d/files", roomID)
}

func routeRoomLeave(roomID int64) string {
	return fmt.Sprintf("/rooms/%d/leave", roomID)
}

func routeFile(fileID int64) string {
	return fmt.Sprintf("/files/%d", fileID)
}

func routeFileDownload(fileID int64) string {
	return fmt.Sprintf("/files/%d/download", fileID)
}
