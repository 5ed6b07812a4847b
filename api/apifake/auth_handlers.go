package apifake

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-roomshare-client/users"
	fakeuserrepo "github.com/jrsteele09/go-roomshare-client/users/repofake"
	"github.com/pkg/errors"
)

var validPrograms = map[string]struct{}{"SRT": {}, "KOT": {}}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var reg users.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "Neispravan zahtev")
		return
	}

	required := []struct{ name, value string }{
		{"ime", reg.FirstName},
		{"prezime", reg.LastName},
		{"email", reg.Email},
		{"smer", reg.Program},
		{"broj_indeksa", reg.IndexNumber},
		{"lozinka", reg.Password},
	}
	for _, field := range required {
		if field.value == "" {
			writeError(w, http.StatusBadRequest, "Polje "+field.name+" je obavezno")
			return
		}
	}

	_, err := s.SeedUser(reg, users.RoleStudent)
	if errors.Is(err, fakeuserrepo.ErrEmailExists) {
		writeError(w, http.StatusBadRequest, "Email već postoji")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeMessage(w, http.StatusCreated, "Uspešna registracija")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds users.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Neispravan zahtev")
		return
	}
	if creds.Email == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "Email i lozinka su obavezni")
		return
	}

	account, err := s.users.GetByEmail(creds.Email)
	if err != nil || !users.CheckPasswordHash(creds.Password, account.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "Pogrešan email ili lozinka")
		return
	}

	accessToken, err := s.IssueToken(account.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": accessToken,
		"user":  account.User,
	})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile users.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "Neispravan zahtev")
		return
	}
	if profile.FirstName == "" || profile.LastName == "" || profile.Program == "" || profile.IndexNumber == "" {
		writeError(w, http.StatusBadRequest, "Sva polja su obavezna")
		return
	}
	if _, ok := validPrograms[profile.Program]; !ok {
		writeError(w, http.StatusBadRequest, "Smer mora biti SRT ili KOT")
		return
	}
	if err := s.users.UpdateProfile(userIDFrom(r), profile); err != nil {
		writeError(w, http.StatusNotFound, "Korisnik nije pronađen")
		return
	}
	writeMessage(w, http.StatusOK, "Profil uspešno ažuriran")
}
