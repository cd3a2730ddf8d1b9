// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

// Package authc holds the authentication token, the runtime object that
// represents an authenticated (or authenticating) user and its security
// metadata for the duration of a request or session.
package authc

import "errors"

var (
	// ErrAttributeNotExists error is returned when the requested token attribute
	// is not exists.
	ErrAttributeNotExists = errors.New("security/authc: attribute not exists")

	// ErrInvalidUser error is returned when given user does not satisfy the
	// `User` contract, such as nil user or empty identifier.
	ErrInvalidUser = errors.New("security/authc: invalid user")

	// ErrMalformed error is returned when a token cannot be restored from
	// the given snapshot.
	ErrMalformed = errors.New("security/authc: malformed token snapshot")
)

// User interface represents the principal a token is bound to. It supplies
// the identity and the role names of the subject (aka user).
type User interface {
	// Identifier method returns the value used to identify the user during
	// authentication, e.g. a username or an e-mail address.
	Identifier() string

	// RoleNames method returns the roles granted to the user.
	RoleNames() []string
}

// CredentialsEraser interface is implemented by a user that holds sensitive
// data, it gets called when the token credentials are erased.
type CredentialsEraser interface {
	EraseCredentials()
}

// EquatableUser interface is implemented by a user that decides on its own
// whether another user represents the same principal.
type EquatableUser interface {
	IsEqualTo(u User) bool
}
