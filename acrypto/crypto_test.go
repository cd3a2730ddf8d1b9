// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package acrypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSignAndVerify(t *testing.T) {
	key := []byte("467b2d53632646a0a9c6cc0d498a7559")
	text := []byte("This is the text gonna be signed and verifed")

	for _, sha := range []string{"sha-1", "sha-224", "sha-256", "sha-384", "SHA-512"} {
		signed, err := Sign(key, text, sha)
		assert.Nil(t, err)
		assert.True(t, Verify(key, text, signed, sha))
		assert.False(t, Verify(key, append(text, '!'), signed, sha))
		assert.False(t, Verify([]byte("other-key"), text, signed, sha))
	}

	_, err := Sign(key, text, "md5")
	assert.Equal(t, ErrUnsupportedHash, err)
	assert.False(t, Verify(key, text, []byte("mac"), "md5"))
}

func TestAESEncryptAndDecrypt(t *testing.T) {
	block, err := NewAESBlock([]byte("467b2d53632646a0a9c6cc0d498a7559"))
	assert.Nil(t, err)

	text := []byte("This is the text gonna be encrypted and decrypted")
	original := append([]byte(nil), text...)

	encrypted, err := AESEncrypt(block, text)
	assert.Nil(t, err)
	assert.Equal(t, original, text)
	assert.False(t, bytes.Contains(encrypted, text))

	decrypted, err := AESDecrypt(block, encrypted)
	assert.Nil(t, err)
	assert.Equal(t, text, decrypted)

	_, err = AESDecrypt(block, encrypted[:block.BlockSize()])
	assert.Equal(t, ErrUnableToDecrypt, err)

	_, err = NewAESBlock([]byte("short"))
	assert.Equal(t, "security/acrypto: crypto/aes: invalid key size 5", err.Error())
}

func TestDeriveKey(t *testing.T) {
	k1, err := DeriveKey([]byte("welcome123"), []byte("salt"), 1000, 64, "sha-256")
	assert.Nil(t, err)
	assert.Equal(t, 64, len(k1))

	k2, err := DeriveKey([]byte("welcome123"), []byte("salt"), 1000, 64, "sha-256")
	assert.Nil(t, err)
	assert.Equal(t, k1, k2)

	k3, err := DeriveKey([]byte("welcome123"), []byte("other-salt"), 1000, 64, "sha-256")
	assert.Nil(t, err)
	assert.NotEqual(t, k1, k3)

	_, err = DeriveKey(nil, []byte("salt"), 1000, 64, "sha-256")
	assert.Equal(t, ErrInvalidKeyParams, err)

	_, err = DeriveKey([]byte("welcome123"), []byte("salt"), 0, 64, "sha-256")
	assert.Equal(t, ErrInvalidKeyParams, err)

	_, err = DeriveKey([]byte("welcome123"), []byte("salt"), 1000, 64, "md5")
	assert.Equal(t, ErrUnsupportedHash, err)
}
