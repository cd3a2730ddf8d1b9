// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package authc

import (
	"fmt"
	"sort"
	"strings"

	"aahframe.work/security/essentials"
	"github.com/mitchellh/copystructure"
)

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Package methods
//___________________________________

// NewToken method creates a token for given user and credentials submitted
// during an authentication attempt. The returned token is not authenticated,
// call `SetAuthenticated(true)` once the credentials are verified.
func NewToken(user User, credentials interface{}) (*Token, error) {
	t := &Token{
		credentials: credentials,
		attributes:  make(map[string]interface{}),
	}
	if err := t.SetUser(user); err != nil {
		return nil, err
	}
	return t, nil
}

// NewAuthenticatedToken method creates an authenticated token for given user
// without any credentials.
func NewAuthenticatedToken(user User) (*Token, error) {
	t, err := NewToken(user, nil)
	if err != nil {
		return nil, err
	}
	t.authenticated = true
	return t, nil
}

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Token
//___________________________________

// Token is the authentication token of a single user. It carries the user,
// the credentials submitted for authentication, the authenticated status and
// the token attributes.
//
// Attributes hold auxiliary security metadata for the request, for e.g.
// "2fa" or "impersonator". Attribute values and credentials are untyped, the
// caller is responsible for type asserting them.
//
// Token does no internal locking, it is meant to be owned by one request at
// a time. Use `Clone` to hand out copies of a shared token.
type Token struct {
	user          User
	credentials   interface{}
	erased        bool
	authenticated bool
	attributes    map[string]interface{}
}

// User method returns the user of the token.
func (t *Token) User() User {
	return t.user
}

// SetUser method sets the given user into token, it replaces the existing
// user. If the new user is not the same principal as the existing one,
// token becomes unauthenticated.
func (t *Token) SetUser(u User) error {
	if err := validateUser(u); err != nil {
		return err
	}
	if t.user != nil && isUserChanged(t.user, u) {
		t.authenticated = false
	}
	t.user = u
	return nil
}

// UserIdentifier method returns the identifier of the token user, empty
// string if token has no user.
func (t *Token) UserIdentifier() string {
	if t.user == nil {
		return ess.StringEmpty
	}
	return t.user.Identifier()
}

// RoleNames method returns the role names of the token user. It never
// returns nil.
func (t *Token) RoleNames() []string {
	if t.user == nil {
		return []string{}
	}
	roles := t.user.RoleNames()
	names := make([]string, len(roles))
	copy(names, roles)
	return names
}

// Credentials method returns the token credentials, nil once the credentials
// are erased.
func (t *Token) Credentials() interface{} {
	if t.erased {
		return nil
	}
	return t.credentials
}

// EraseCredentials method removes the sensitive information from the token
// and from the user if it implements `CredentialsEraser`. Byte slice and
// string pointer credentials are zeroed in place.
func (t *Token) EraseCredentials() {
	switch c := t.credentials.(type) {
	case []byte:
		for i := range c {
			c[i] = 0
		}
	case *string:
		if c != nil {
			*c = ess.StringEmpty
		}
	}
	t.credentials = nil
	t.erased = true

	if ce, ok := t.user.(CredentialsEraser); ok && !ess.IsNil(ce) {
		ce.EraseCredentials()
	}
}

// IsCredentialsErased method returns true if `EraseCredentials` was called.
func (t *Token) IsCredentialsErased() bool {
	return t.erased
}

// IsAuthenticated method returns true if the token has been authenticated.
func (t *Token) IsAuthenticated() bool {
	return t.authenticated
}

// SetAuthenticated method sets the authenticated status of the token.
func (t *Token) SetAuthenticated(authenticated bool) {
	t.authenticated = authenticated
}

// Attributes method returns the copy of token attributes.
func (t *Token) Attributes() map[string]interface{} {
	attrs := make(map[string]interface{}, len(t.attributes))
	for k, v := range t.attributes {
		attrs[k] = v
	}
	return attrs
}

// SetAttributes method replaces the token attributes with given attributes.
func (t *Token) SetAttributes(attrs map[string]interface{}) {
	t.attributes = make(map[string]interface{}, len(attrs))
	for k, v := range attrs {
		t.attributes[k] = v
	}
}

// HasAttribute method returns true if the attribute exists.
func (t *Token) HasAttribute(name string) bool {
	_, found := t.attributes[name]
	return found
}

// Attribute method returns the attribute value for given name. It returns
// `ErrAttributeNotExists` if attribute is not exists.
func (t *Token) Attribute(name string) (interface{}, error) {
	v, found := t.attributes[name]
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrAttributeNotExists, name)
	}
	return v, nil
}

// SetAttribute method sets the attribute value for given name, if the
// attribute already exists it updates the value.
func (t *Token) SetAttribute(name string, value interface{}) {
	if t.attributes == nil {
		t.attributes = make(map[string]interface{})
	}
	t.attributes[name] = value
}

// RemoveAttribute method deletes the attribute for given name if exists.
func (t *Token) RemoveAttribute(name string) {
	delete(t.attributes, name)
}

// Clone method returns a copy of the token. Attributes and credentials are
// deep copied, the user is shared.
func (t *Token) Clone() (*Token, error) {
	attrs, err := copystructure.Copy(t.attributes)
	if err != nil {
		return nil, fmt.Errorf("security/authc: clone attributes: %s", err)
	}

	var creds interface{}
	if !t.erased && t.credentials != nil {
		if creds, err = copystructure.Copy(t.credentials); err != nil {
			return nil, fmt.Errorf("security/authc: clone credentials: %s", err)
		}
	}

	nt := &Token{
		user:          t.user,
		credentials:   creds,
		erased:        t.erased,
		authenticated: t.authenticated,
	}
	if m, ok := attrs.(map[string]interface{}); ok && m != nil {
		nt.attributes = m
	} else {
		nt.attributes = make(map[string]interface{})
	}
	return nt, nil
}

// String method is stringer interface implementation. It is meant for
// debugging only, credentials and attribute values are never printed.
func (t Token) String() string {
	credential := "<none>"
	if !t.erased && t.credentials != nil {
		credential = "*******"
	}

	keys := make([]string, 0, len(t.attributes))
	for k := range t.attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return fmt.Sprintf("token(identifier:%s authenticated:%v roles:[%s] credential:%s attributes:[%s])",
		t.UserIdentifier(), t.authenticated, strings.Join(t.RoleNames(), ", "),
		credential, strings.Join(keys, ", "))
}

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Unexported methods
//___________________________________

func validateUser(u User) error {
	if ess.IsNil(u) {
		return fmt.Errorf("%w: user is nil", ErrInvalidUser)
	}
	if ess.IsStrEmpty(u.Identifier()) {
		return fmt.Errorf("%w: user identifier is empty", ErrInvalidUser)
	}
	return nil
}

func isUserChanged(current, u User) bool {
	if eu, ok := current.(EquatableUser); ok {
		return !eu.IsEqualTo(u)
	}
	if current.Identifier() != u.Identifier() {
		return true
	}
	return !ess.IsSameStrings(current.RoleNames(), u.RoleNames())
}
