// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package ess

import (
	"crypto/rand"
	"io"
)

// GenerateSecureRandomKey method generates the random bytes for given length using
// `crypto/rand`. Security material never falls back to `math/rand`.
func GenerateSecureRandomKey(length int) ([]byte, error) {
	k := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, k); err != nil {
		return nil, err
	}
	return k, nil
}
