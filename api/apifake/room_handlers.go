package apifake

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jrsteele09/go-roomshare-client/rooms"
	"github.com/jrsteele09/go-roomshare-client/users"
)

// cleanupExpiredRooms drops rooms past their limit along with their files.
// Caller holds s.lock.
func (s *Server) cleanupExpiredRooms() {
	now := s.nowTime()
	for id, rm := range s.rooms {
		if rm.ExpiresAt != nil && rm.ExpiresAt.Before(now) {
			s.deleteRoomLocked(id)
		}
	}
}

func (s *Server) deleteRoomLocked(roomID int64) {
	for fileID, f := range s.files {
		if f.RoomID == roomID {
			delete(s.files, fileID)
		}
	}
	delete(s.rooms, roomID)
}

// CleanupExpiredRooms is the manual trigger (the real API exposes it as /admin/cleanup).
func (s *Server) CleanupExpiredRooms() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.cleanupExpiredRooms()
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

func (s *Server) creatorName(id int64) string {
	account, err := s.users.GetByID(id)
	if err != nil {
		return ""
	}
	return account.FirstName + " " + account.LastName
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r)

	var req rooms.NewRoom
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Neispravan zahtev")
		return
	}
	if req.Name == "" || req.Passcode == "" {
		writeError(w, http.StatusBadRequest, "Naziv i šifra sobe su obavezni")
		return
	}

	account, err := s.users.GetByID(userID)
	if err != nil || account.Role != users.RoleProfessor {
		writeError(w, http.StatusForbidden, "Samo profesori mogu da kreiraju sobe")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.cleanupExpiredRooms()
	for _, rm := range s.rooms {
		if rm.Passcode == req.Passcode {
			writeError(w, http.StatusBadRequest, "Šifra sobe već postoji")
			return
		}
	}

	now := s.nowTime()
	s.nextRoomID++
	rm := &room{
		ID:        s.nextRoomID,
		Name:      req.Name,
		Passcode:  req.Passcode,
		CreatedAt: now,
		CreatorID: userID,
		members:   map[int64]struct{}{userID: {}},
	}
	if req.LimitHours > 0 {
		expires := now.Add(time.Duration(req.LimitHours) * time.Hour)
		rm.ExpiresAt = &expires
	}
	s.rooms[rm.ID] = rm

	writeJSON(w, http.StatusCreated, rooms.CreateResponse{Message: "Soba uspešno kreirana", RoomID: rm.ID})
}

func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r)

	var req rooms.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Passcode == "" {
		writeError(w, http.StatusBadRequest, "Šifra sobe je obavezna")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.cleanupExpiredRooms()
	var found *room
	for _, rm := range s.rooms {
		if rm.Passcode == req.Passcode {
			found = rm
			break
		}
	}
	if found == nil {
		writeError(w, http.StatusNotFound, "Soba sa tom šifrom ne postoji")
		return
	}
	if _, ok := found.members[userID]; ok {
		writeError(w, http.StatusBadRequest, "Već ste u ovoj sobi")
		return
	}
	found.members[userID] = struct{}{}

	writeJSON(w, http.StatusOK, rooms.JoinResponse{Message: "Uspešno pridruživanje sobi", RoomID: found.ID, RoomName: found.Name})
}

func (s *Server) handleUserRooms(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r)

	s.lock.Lock()
	defer s.lock.Unlock()

	s.cleanupExpiredRooms()
	member := make([]*room, 0)
	for _, rm := range s.rooms {
		if _, ok := rm.members[userID]; ok {
			member = append(member, rm)
		}
	}
	sort.Slice(member, func(i, j int) bool {
		if member[i].CreatedAt.Equal(member[j].CreatedAt) {
			return member[i].ID > member[j].ID
		}
		return member[i].CreatedAt.After(member[j].CreatedAt)
	})

	out := make([]rooms.Summary, 0, len(member))
	for _, rm := range member {
		out = append(out, rooms.Summary{
			ID:          rm.ID,
			Name:        rm.Name,
			Passcode:    rm.Passcode,
			CreatedAt:   formatTime(rm.CreatedAt),
			CreatorName: s.creatorName(rm.CreatorID),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(r, "roomID")
	if !ok {
		writeError(w, http.StatusNotFound, "Soba nije pronađena")
		return
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	rm, ok := s.rooms[roomID]
	if !ok {
		writeError(w, http.StatusForbidden, "Niste u ovoj sobi")
		return
	}
	if _, member := rm.members[userIDFrom(r)]; !member {
		writeError(w, http.StatusForbidden, "Niste u ovoj sobi")
		return
	}

	out := rooms.Room{
		ID:          rm.ID,
		Name:        rm.Name,
		Passcode:    rm.Passcode,
		CreatedAt:   formatTime(rm.CreatedAt),
		CreatorID:   rm.CreatorID,
		CreatorName: s.creatorName(rm.CreatorID),
	}
	if rm.ExpiresAt != nil {
		expires := formatTime(*rm.ExpiresAt)
		out.ExpiresAt = &expires
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLeaveRoom(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r)
	roomID, _ := pathID(r, "roomID")

	s.lock.Lock()
	defer s.lock.Unlock()

	rm, ok := s.rooms[roomID]
	if !ok {
		writeError(w, http.StatusBadRequest, "Niste u ovoj sobi")
		return
	}
	if _, member := rm.members[userID]; !member {
		writeError(w, http.StatusBadRequest, "Niste u ovoj sobi")
		return
	}
	delete(rm.members, userID)
	writeMessage(w, http.StatusOK, "Uspešno napuštanje sobe")
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID, _ := pathID(r, "roomID")

	s.lock.Lock()
	defer s.lock.Unlock()

	rm, ok := s.rooms[roomID]
	if !ok {
		writeError(w, http.StatusNotFound, "Soba nije pronađena")
		return
	}
	if rm.CreatorID != userIDFrom(r) {
		writeError(w, http.StatusForbidden, "Možete brisati samo sobe koje ste kreirali")
		return
	}
	s.deleteRoomLocked(roomID)
	writeMessage(w, http.StatusOK, "Soba uspešno obrisana")
}
