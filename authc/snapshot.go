// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package authc

import (
	"fmt"
	"reflect"
	"strings"

	"aahframe.work/security/essentials"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/go-playground/validator.v9"
)

// Snapshot keys
const (
	KeyVersion       = "version"
	KeyUser          = "user"
	KeyRoles         = "roles"
	KeyAuthenticated = "authenticated"
	KeyCredentials   = "credentials"
	KeyErased        = "erased"
	KeyAttributes    = "attributes"

	snapshotVersion = 1
)

var snapshotValidator = newSnapshotValidator()

type snapshot struct {
	Version       int                    `mapstructure:"version" validate:"required,eq=1"`
	User          User                   `mapstructure:"user" validate:"required"`
	Roles         []string               `mapstructure:"roles"`
	Authenticated *bool                  `mapstructure:"authenticated" validate:"required"`
	Credentials   interface{}            `mapstructure:"credentials"`
	Erased        bool                   `mapstructure:"erased"`
	Attributes    map[string]interface{} `mapstructure:"attributes"`
}

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Package methods
//___________________________________

// Restore method reconstructs the token from the snapshot created by
// `Token.Snapshot`. It returns `ErrMalformed` with all the failed fields if
// the snapshot misses required fields or carries values of wrong type.
//
// If the role names recorded in the snapshot differ from the user's current
// role names, the restored token is not authenticated.
func Restore(data map[string]interface{}) (*Token, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: snapshot is nil", ErrMalformed)
	}

	var s snapshot
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &s})
	if err != nil {
		return nil, err
	}

	var merr *multierror.Error
	if err = dec.Decode(data); err != nil {
		if me, ok := err.(*mapstructure.Error); ok {
			for _, e := range me.Errors {
				merr = multierror.Append(merr, fmt.Errorf("%s", e))
			}
		} else {
			merr = multierror.Append(merr, err)
		}
	}

	if err = snapshotValidator.Struct(&s); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				merr = multierror.Append(merr, fmt.Errorf("'%s' failed on '%s'", fe.Field(), fe.Tag()))
			}
		} else {
			merr = multierror.Append(merr, err)
		}
	}

	if s.User != nil {
		if err = validateUser(s.User); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	if merr.ErrorOrNil() != nil {
		merr.ErrorFormat = joinErrors
		return nil, fmt.Errorf("%w: %s", ErrMalformed, merr.Error())
	}

	t := &Token{
		user:          s.User,
		erased:        s.Erased,
		authenticated: *s.Authenticated,
		attributes:    s.Attributes,
	}
	if !t.erased {
		t.credentials = s.Credentials
	}
	if t.attributes == nil {
		t.attributes = make(map[string]interface{})
	}
	if s.Roles != nil && !ess.IsSameStrings(s.Roles, s.User.RoleNames()) {
		t.authenticated = false
	}

	return t, nil
}

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Token methods
//___________________________________

// Snapshot method exports the token state into a flat map, which can be
// handed to `Restore`. Erased credentials are not exported, the snapshot
// carries `erased = true` instead. A token created without credentials
// exports neither key and restores as not erased.
//
// Note: To store the snapshot with `encoding/gob`, register the concrete user
// type and any custom attribute types using `gob.Register(...)`.
func (t *Token) Snapshot() map[string]interface{} {
	data := map[string]interface{}{
		KeyVersion:       snapshotVersion,
		KeyUser:          t.user,
		KeyRoles:         t.RoleNames(),
		KeyAuthenticated: t.authenticated,
		KeyAttributes:    t.Attributes(),
	}
	if t.erased {
		data[KeyErased] = true
	} else if t.credentials != nil {
		data[KeyCredentials] = t.credentials
	}
	return data
}

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Unexported methods
//___________________________________

func newSnapshotValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
	})
	return v
}

func joinErrors(es []error) string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}
