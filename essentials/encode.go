// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package ess

import (
	"encoding/base64"
	"errors"
)

// ErrBase64Decode returned when given string unable to do base64 decode.
var ErrBase64Decode = errors.New("encoding/base64: decode error")

// EncodeToBase64 method encodes given bytes into URL safe base64 bytes.
func EncodeToBase64(v []byte) []byte {
	encoded := make([]byte, base64.URLEncoding.EncodedLen(len(v)))
	base64.URLEncoding.Encode(encoded, v)
	return encoded
}

// DecodeBase64 method decodes given URL safe base64 into bytes.
func DecodeBase64(v []byte) ([]byte, error) {
	decoded := make([]byte, base64.URLEncoding.DecodedLen(len(v)))
	b, err := base64.URLEncoding.Decode(decoded, v)
	if err != nil {
		return nil, ErrBase64Decode
	}
	return decoded[:b], nil
}
