// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package acrypto

import (
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

// ErrInvalidKeyParams returned when key derivation input is not valid.
var ErrInvalidKeyParams = errors.New("security/acrypto: invalid key derivation params")

// DeriveKey method derives a key of keyLen bytes from the given secret and salt
// using `pbkdf2` with given iteration count and hash algorithm.
func DeriveKey(secret, salt []byte, iter, keyLen int, hashAlg string) ([]byte, error) {
	if len(secret) == 0 || iter <= 0 || keyLen <= 0 {
		return nil, ErrInvalidKeyParams
	}
	h := HashFunc(hashAlg)
	if h == nil {
		return nil, ErrUnsupportedHash
	}
	return pbkdf2.Key(secret, salt, iter, keyLen, h), nil
}
