package users

import (
	"golang.org/x/crypto/bcrypt"
)

// RoleType is the value of the API's "rola" field
type RoleType string

const (
	RoleProfessor RoleType = "profesor" // Can create and delete rooms, delete any file in their rooms
	RoleStudent   RoleType = "student"  // Default role for self-registered users
)

// User is the account record returned by POST /login and cached in durable storage.
type User struct {
	ID          int64    `json:"id,omitempty"`
	FirstName   string   `json:"ime,omitempty"`
	LastName    string   `json:"prezime,omitempty"`
	Email       string   `json:"email,omitempty"`
	Program     string   `json:"smer,omitempty"`         // Study programme (e.g. SRT, KOT)
	IndexNumber string   `json:"broj_indeksa,omitempty"` // Student index number
	Role        RoleType `json:"rola,omitempty"`
}

// Credentials is the POST /login body
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"lozinka"`
}

// Registration is the POST /register body
type Registration struct {
	FirstName   string `json:"ime"`
	LastName    string `json:"prezime"`
	Email       string `json:"email"`
	Program     string `json:"smer"`
	IndexNumber string `json:"broj_indeksa"`
	Password    string `json:"lozinka"`
}

// ProfileUpdate is the PUT /profile body. Email and role cannot be changed.
type ProfileUpdate struct {
	FirstName   string `json:"ime"`
	LastName    string `json:"prezime"`
	Program     string `json:"smer"`
	IndexNumber string `json:"broj_indeksa"`
}

// FullName returns "FirstName LastName"
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// HasRole reports whether the user has the given role. A nil user has no role.
func (u *User) HasRole(role RoleType) bool {
	return u != nil && u.Role == role
}

func (u *User) IsProfessor() bool {
	return u.HasRole(RoleProfessor)
}

func (u *User) IsStudent() bool {
	return u.HasRole(RoleStudent)
}

// ApplyProfile returns a copy of u with the profile fields overwritten.
// Empty fields in p still overwrite, matching what the server stores.
func (u User) ApplyProfile(p ProfileUpdate) User {
	u.FirstName = p.FirstName
	u.LastName = p.LastName
	u.Program = p.Program
	u.IndexNumber = p.IndexNumber
	return u
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
