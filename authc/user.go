// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package authc

import (
	"fmt"
	"strings"
)

var (
	_ User              = (*InMemoryUser)(nil)
	_ CredentialsEraser = (*InMemoryUser)(nil)
)

// InMemoryUser is a plain user implementation, handy for tests, static user
// lists and for storing the user along with the token.
type InMemoryUser struct {
	Username string
	Password string
	Roles    []string
}

// NewInMemoryUser method creates the user with given username, password and roles.
func NewInMemoryUser(username, password string, roles ...string) *InMemoryUser {
	return &InMemoryUser{Username: username, Password: password, Roles: roles}
}

// Identifier method returns the username.
func (u *InMemoryUser) Identifier() string {
	return u.Username
}

// RoleNames method returns the copy of user roles.
func (u *InMemoryUser) RoleNames() []string {
	roles := make([]string, len(u.Roles))
	copy(roles, u.Roles)
	return roles
}

// EraseCredentials method clears the user password.
func (u *InMemoryUser) EraseCredentials() {
	u.Password = ""
}

// String method is stringer interface implementation.
func (u InMemoryUser) String() string {
	return fmt.Sprintf("inmemoryuser(username:%s roles:[%s])", u.Username, strings.Join(u.Roles, ", "))
}
