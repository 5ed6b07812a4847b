package apifake

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-roomshare-client/rooms"
	"github.com/jrsteele09/go-roomshare-client/users"
	"github.com/pkg/errors"
)

func (s *Server) isMember(roomID, userID int64) bool {
	rm, ok := s.rooms[roomID]
	if !ok {
		return false
	}
	_, member := rm.members[userID]
	return member
}

func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	roomID, _ := pathID(r, "roomID")

	s.lock.RLock()
	defer s.lock.RUnlock()

	if !s.isMember(roomID, userIDFrom(r)) {
		writeError(w, http.StatusForbidden, "Niste u ovoj sobi")
		return
	}

	inRoom := make([]*storedFile, 0)
	for _, f := range s.files {
		if f.RoomID == roomID {
			inRoom = append(inRoom, f)
		}
	}
	sort.Slice(inRoom, func(i, j int) bool {
		if inRoom[i].UploadTime.Equal(inRoom[j].UploadTime) {
			return inRoom[i].ID > inRoom[j].ID
		}
		return inRoom[i].UploadTime.After(inRoom[j].UploadTime)
	})

	out := make([]rooms.File, 0, len(inRoom))
	for _, f := range inRoom {
		entry := rooms.File{
			ID:               f.ID,
			OriginalFilename: f.OriginalName,
			UploadTime:       formatTime(f.UploadTime),
			UploaderID:       f.UploaderID,
			RoomID:           f.RoomID,
		}
		if account, err := s.users.GetByID(f.UploaderID); err == nil {
			entry.UploaderFirstName = account.FirstName
			entry.UploaderLastName = account.LastName
		}
		out = append(out, entry)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r)
	roomID, _ := pathID(r, "roomID")

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Fajl je prevelik. Maksimalna veličina je 100 MB.")
			return
		}
		writeError(w, http.StatusBadRequest, "Nema fajla")
		return
	}
	defer file.Close()
	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "Nema izabranog fajla")
		return
	}
	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.isMember(roomID, userID) {
		writeError(w, http.StatusForbidden, "Niste u ovoj sobi")
		return
	}

	s.nextFileID++
	s.files[s.nextFileID] = &storedFile{
		ID:           s.nextFileID,
		RoomID:       roomID,
		UploaderID:   userID,
		OriginalName: header.Filename,
		StoredName:   uuid.New().String() + filepath.Ext(header.Filename),
		UploadTime:   s.nowTime(),
		Content:      content,
	}
	writeMessage(w, http.StatusCreated, "Fajl uspešno postavljen")
}

func (s *Server) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r)
	fileID, _ := pathID(r, "fileID")

	s.lock.Lock()
	defer s.lock.Unlock()

	f, ok := s.files[fileID]
	if !ok {
		writeError(w, http.StatusNotFound, "Fajl nije pronađen")
		return
	}
	if !s.isMember(f.RoomID, userID) {
		writeError(w, http.StatusForbidden, "Niste u ovoj sobi")
		return
	}
	if f.UploaderID != userID {
		account, err := s.users.GetByID(userID)
		if err != nil || account.Role != users.RoleProfessor {
			writeError(w, http.StatusForbidden, "Možete brisati samo svoje fajlove")
			return
		}
	}
	delete(s.files, fileID)
	writeMessage(w, http.StatusOK, "Fajl uspešno obrisan")
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	fileID, _ := pathID(r, "fileID")

	s.lock.RLock()
	f, ok := s.files[fileID]
	if ok && !s.isMember(f.RoomID, userIDFrom(r)) {
		ok = false
	}
	s.lock.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Fajl nije pronađen ili nemate pristup")
		return
	}

	name := f.OriginalName
	if name == "" {
		name = "fajl"
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, name, url.PathEscape(name)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Content)
}
