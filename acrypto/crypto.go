// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

// Package acrypto provides the HMAC signing, AES encryption and key
// derivation used to protect a stored authentication token.
package acrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"

	"aahframe.work/security/essentials"
)

var (
	// ErrUnableToDecrypt returned for decrypt errors.
	ErrUnableToDecrypt = errors.New("security/acrypto: unable to decrypt")

	// ErrUnsupportedHash returned when hash algorithm is not supported.
	ErrUnsupportedHash = errors.New("security/acrypto: unsupported hash algorithm")
)

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Package Encrypt/Decrypt methods
//___________________________________

// NewAESBlock method returns the AES cipher block for given key.
//
// The key argument should be the AES key, either 16, 24, or 32 bytes
// to select AES-128, AES-192, or AES-256.
func NewAESBlock(key []byte) (cipher.Block, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("security/acrypto: %s", err)
	}
	return block, nil
}

// AESEncrypt method encrypts a given value with given key block in CTR mode.
// Given value is not modified.
func AESEncrypt(block cipher.Block, value []byte) ([]byte, error) {
	iv, err := ess.GenerateSecureRandomKey(block.BlockSize())
	if err != nil {
		return nil, err
	}

	// iv + encryptedtext
	out := make([]byte, len(iv)+len(value))
	copy(out, iv)
	cipher.NewCTR(block, iv).XORKeyStream(out[len(iv):], value)
	return out, nil
}

// AESDecrypt method decrypts a given value with the given key block in CTR mode.
func AESDecrypt(block cipher.Block, value []byte) ([]byte, error) {
	size := block.BlockSize()
	if len(value) <= size {
		return nil, ErrUnableToDecrypt
	}

	iv := value[:size]
	out := make([]byte, len(value)-size)
	cipher.NewCTR(block, iv).XORKeyStream(out, value[size:])
	return out, nil
}

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Package Sign/Verify methods
//___________________________________

// Sign method signs a given value using HMAC and given SHA name.
//
// Supported SHA's are SHA-1, SHA-224, SHA-256, SHA-384, SHA-512.
func Sign(key, value []byte, sha string) ([]byte, error) {
	h := HashFunc(sha)
	if h == nil {
		return nil, ErrUnsupportedHash
	}
	mac := hmac.New(h, key)
	_, _ = mac.Write(value)
	return mac.Sum(nil), nil
}

// Verify method verifies given key, value and mac is valid. If valid
// it returns true otherwise false.
func Verify(key, value, mac []byte, sha string) bool {
	otherMac, err := Sign(key, value, sha)
	if err != nil {
		return false
	}
	return hmac.Equal(mac, otherMac)
}

// HashFunc method returns the hash constructor for given algorithm name,
// nil if unsupported.
func HashFunc(alg string) func() hash.Hash {
	switch strings.ToLower(alg) {
	case "sha-512":
		return sha512.New
	case "sha-384":
		return sha512.New384
	case "sha-256":
		return sha256.New
	case "sha-224":
		return sha256.New224
	case "sha-1":
		return sha1.New
	default:
		return nil
	}
}
