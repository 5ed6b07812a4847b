// Package auth answers "who is logged in and what may they do" from the
// current session. It holds no state of its own.
package auth

import (
	"github.com/jrsteele09/go-roomshare-client/users"
)

// SessionView is the part of the session store the accessor reads.
// *sessions.Store implements it.
type SessionView interface {
	User() *users.User
	IsAuthenticated() bool
	Logout() error
}

// Accessor is a read-mostly view over the session.
type Accessor struct {
	session SessionView
}

func New(session SessionView) *Accessor {
	return &Accessor{session: session}
}

// User returns the current user, or nil.
func (a *Accessor) User() *users.User {
	return a.session.User()
}

func (a *Accessor) IsAuthenticated() bool {
	return a.session.IsAuthenticated()
}

// IsProfessor reports whether the current user has the professor role.
// It is false when there is no user.
func (a *Accessor) IsProfessor() bool {
	return a.session.User().IsProfessor()
}

// IsStudent reports whether the current user has the student role.
func (a *Accessor) IsStudent() bool {
	return a.session.User().IsStudent()
}

// Logout delegates to the session store.
func (a *Accessor) Logout() error {
	return a.session.Logout()
}
