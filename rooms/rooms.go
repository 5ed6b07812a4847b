package rooms

// Room is the GET /rooms/{id} response. Timestamps are ISO-8601 strings as
// sent by the server, without a zone.
type Room struct {
	ID          int64   `json:"id"`
	Name        string  `json:"naziv"`
	Passcode    string  `json:"sifra"`
	CreatedAt   string  `json:"created_at,omitempty"`
	ExpiresAt   *string `json:"limit_vreme,omitempty"` // nil when the room never expires
	CreatorID   int64   `json:"creator_id"`
	CreatorName string  `json:"creator_name"`
}

// Summary is one entry of GET /user/rooms
type Summary struct {
	ID          int64  `json:"id"`
	Name        string `json:"naziv"`
	Passcode    string `json:"sifra"`
	CreatedAt   string `json:"created_at,omitempty"`
	CreatorName string `json:"creator_name"`
}

// File is one entry of GET /rooms/{id}/files
type File struct {
	ID                int64  `json:"id"`
	OriginalFilename  string `json:"original_filename"`
	UploadTime        string `json:"upload_time,omitempty"`
	UploaderFirstName string `json:"ime"`
	UploaderLastName  string `json:"prezime"`
	UploaderID        int64  `json:"uploader_id"`
	RoomID            int64  `json:"room_id"`
}

// UploaderName returns the uploader's full name
func (f File) UploaderName() string {
	if f.UploaderLastName == "" {
		return f.UploaderFirstName
	}
	return f.UploaderFirstName + " " + f.UploaderLastName
}

// NewRoom is the POST /rooms body. LimitHours of zero means no expiry.
type NewRoom struct {
	Name       string `json:"naziv"`
	Passcode   string `json:"sifra"`
	LimitHours int    `json:"limit_sati,omitempty"`
}

// JoinRequest is the POST /rooms/join body
type JoinRequest struct {
	Passcode string `json:"sifra"`
}

// CreateResponse is the POST /rooms response
type CreateResponse struct {
	Message string `json:"message,omitempty"`
	RoomID  int64  `json:"room_id"`
}

// JoinResponse is the POST /rooms/join response
type JoinResponse struct {
	Message  string `json:"message,omitempty"`
	RoomID   int64  `json:"room_id"`
	RoomName string `json:"room_name"`
}
