// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"aahframe.work/security/authc"
	"aahframe.work/security/config"
	"aahframe.work/security/essentials"
	"aahframe.work/security/tokenstore"
	"github.com/stretchr/testify/assert"
)

const testConfigStr = `
log {
  level = "warn"
}

security {
  token_store {
    sign_key = "eFWLXEewECptbDVXExokRTLONWxrTjfV"
    enc_key = "KYqklJsgeclPpZutTeQKNOTWlpksRBwA"
  }
}
`

func TestCmdKeygen(t *testing.T) {
	buf := &bytes.Buffer{}
	app := newApp()
	app.Writer = buf

	assert.Nil(t, app.Run([]string{"aahtoken", "keygen"}))

	cfg, err := config.ParseString("security {\n token_store {\n" + buf.String() + "\n }\n}")
	assert.Nil(t, err)
	signKey := decodeTestKey(t, cfg, "sign_key")
	encKey := decodeTestKey(t, cfg, "enc_key")
	assert.Equal(t, 32, len(signKey))
	assert.Equal(t, 32, len(encKey))
	assert.NotEqual(t, signKey, encKey)

	m, err := tokenstore.NewManager(cfg)
	assert.Nil(t, err)
	assert.True(t, m.IsSigned())
	assert.True(t, m.IsEncrypted())

	value, err := m.Encode(createTestToken(t))
	assert.Nil(t, err)
	_, err = m.Decode(value)
	assert.Nil(t, err)

	for _, size := range []string{"16", "24"} {
		buf.Reset()
		assert.Nil(t, app.Run([]string{"aahtoken", "keygen", "--size", size}))
		cfg, err = config.ParseString("security {\n token_store {\n" + buf.String() + "\n }\n}")
		assert.Nil(t, err)
		assert.Equal(t, size, strconv.Itoa(len(decodeTestKey(t, cfg, "sign_key"))))
		assert.Equal(t, size, strconv.Itoa(len(decodeTestKey(t, cfg, "enc_key"))))

		_, err = tokenstore.NewManager(cfg)
		assert.Nil(t, err)
	}

	// every run yields fresh keys
	buf.Reset()
	assert.Nil(t, app.Run([]string{"aahtoken", "keygen"}))
	cfg2, err := config.ParseString("security {\n token_store {\n" + buf.String() + "\n }\n}")
	assert.Nil(t, err)
	assert.NotEqual(t, signKey, decodeTestKey(t, cfg2, "sign_key"))

	err = app.Run([]string{"aahtoken", "keygen", "-s", "20"})
	assert.Equal(t, "unsupported key size 20", err.Error())
}

func TestCmdInspect(t *testing.T) {
	dir, err := ioutil.TempDir("", "aahtoken")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "security.conf")
	assert.Nil(t, ioutil.WriteFile(file, []byte(testConfigStr), 0600))

	cfg, _ := config.ParseString(testConfigStr)
	m, err := tokenstore.NewManager(cfg)
	assert.Nil(t, err)

	token, _ := authc.NewAuthenticatedToken(authc.NewInMemoryUser("jeeva", "", "ROLE_USER"))
	token.SetAttribute("2fa", true)
	value, err := m.Encode(token)
	assert.Nil(t, err)

	buf := &bytes.Buffer{}
	app := newApp()
	app.Writer = buf

	assert.Nil(t, app.Run([]string{"aahtoken", "inspect", "--config", file, value}))
	assert.Equal(t, "token(identifier:jeeva authenticated:true roles:[ROLE_USER] credential:<none> attributes:[2fa])\n", buf.String())

	err = app.Run([]string{"aahtoken", "inspect", "-c", file})
	assert.Equal(t, "token value is required", err.Error())

	// without the keys, encrypted value is not a valid snapshot
	err = app.Run([]string{"aahtoken", "inspect", value})
	assert.True(t, errors.Is(err, authc.ErrMalformed))

	err = app.Run([]string{"aahtoken", "inspect", "-c", filepath.Join(dir, "notexists.conf"), value})
	assert.NotNil(t, err)
}

func decodeTestKey(t *testing.T, cfg *config.Config, name string) []byte {
	v := cfg.StringDefault("security.token_store."+name, "")
	assert.True(t, strings.HasPrefix(v, tokenstore.KeyBase64Prefix))
	b, err := ess.DecodeBase64([]byte(strings.TrimPrefix(v, tokenstore.KeyBase64Prefix)))
	assert.Nil(t, err)
	return b
}

func createTestToken(t *testing.T) *authc.Token {
	token, err := authc.NewToken(authc.NewInMemoryUser("jeeva", "", "ROLE_USER"), "welcome123")
	assert.Nil(t, err)
	return token
}
