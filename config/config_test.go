// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testConfigStr = `
security {
  token_store {
    name = "aah_token"
    ttl = "30m"
    secure = true
    kdf_iterations = 4096
    same_site = "Lax"
    roles = ["ROLE_USER", "ROLE_ADMIN"]
  }
}
`

func TestConfigParseString(t *testing.T) {
	cfg, err := ParseString(testConfigStr)
	assert.Nil(t, err)

	assert.True(t, cfg.IsExists("security.token_store"))
	assert.True(t, cfg.IsExists("security.token_store.name"))
	assert.False(t, cfg.IsExists("security.token_store.notexists"))
	assert.False(t, cfg.IsExists(""))

	assert.Equal(t, "aah_token", cfg.StringDefault("security.token_store.name", "default"))
	assert.Equal(t, "default", cfg.StringDefault("security.token_store.path", "default"))
	assert.Equal(t, "30m", cfg.StringDefault("security.token_store.ttl", ""))

	assert.True(t, cfg.BoolDefault("security.token_store.secure", false))
	assert.True(t, cfg.BoolDefault("security.token_store.http_only", true))
	_, found := cfg.Bool("security.token_store.name")
	assert.False(t, found)

	assert.Equal(t, 4096, cfg.IntDefault("security.token_store.kdf_iterations", 10))
	assert.Equal(t, int64(10), cfg.Int64Default("security.token_store.notexists", 10))

	roles, found := cfg.StringList("security.token_store.roles")
	assert.True(t, found)
	assert.Equal(t, []string{"ROLE_USER", "ROLE_ADMIN"}, roles)

	_, found = cfg.String("security.token_store")
	assert.False(t, found)
}

func TestConfigSubConfigAndKeys(t *testing.T) {
	cfg, err := ParseString(testConfigStr)
	assert.Nil(t, err)

	assert.Equal(t, []string{"security"}, cfg.Keys())
	assert.Equal(t, 6, len(cfg.Keys("security.token_store")))
	assert.Equal(t, []string{}, cfg.Keys("security.notexists"))
	assert.Equal(t, []string{}, cfg.Keys("security.token_store.name"))

	sub, found := cfg.GetSubConfig("security.token_store")
	assert.True(t, found)
	assert.Equal(t, "Lax", sub.StringDefault("same_site", ""))

	_, found = cfg.GetSubConfig("security.token_store.name")
	assert.False(t, found)
}

func TestConfigSetAndEmpty(t *testing.T) {
	cfg := NewEmpty()
	assert.False(t, cfg.IsExists("name"))

	cfg.SetString("name", "aah")
	cfg.SetBool("secure", true)
	assert.Equal(t, "aah", cfg.StringDefault("name", ""))
	assert.True(t, cfg.BoolDefault("secure", false))

	var nilCfg *Config
	assert.False(t, nilCfg.IsExists("name"))
}

func TestConfigLoadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "aah-config")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "security.conf")
	assert.Nil(t, ioutil.WriteFile(file, []byte(testConfigStr), 0600))

	cfg, err := LoadFile(file)
	assert.Nil(t, err)
	assert.Equal(t, "aah_token", cfg.StringDefault("security.token_store.name", ""))

	_, err = LoadFile(filepath.Join(dir, "notexists.conf"))
	assert.NotNil(t, err)

	_, err = ParseString(`security { name = `)
	assert.NotNil(t, err)
}
