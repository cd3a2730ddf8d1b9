// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

// Package config is the aah configuration reader built on the forge
// syntax. Keys are resolved with dot notation, e.g. `security.token_store.name`.
package config

import (
	"fmt"
	"strings"

	"github.com/go-aah/forge"
)

// Config handles the configuration values and provides handy methods for
// accessing them.
type Config struct {
	cfg *forge.Section
}

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Package methods
//___________________________________

// NewEmpty method returns aah empty config instance.
func NewEmpty() *Config {
	return &Config{cfg: forge.NewSection()}
}

// LoadFile method loads the configuration from given config file.
func LoadFile(file string) (*Config, error) {
	section, err := forge.ParseFile(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s", err)
	}
	return &Config{cfg: section}, nil
}

// ParseString method parses the given string into config instance.
func ParseString(cfg string) (*Config, error) {
	section, err := forge.ParseString(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %s", err)
	}
	return &Config{cfg: section}, nil
}

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Config methods
//___________________________________

// IsExists method returns true if given key is exists in the configuration
// otherwise false.
func (c *Config) IsExists(key string) bool {
	_, found := c.getraw(key)
	return found
}

// Get method returns the raw value for given key.
func (c *Config) Get(key string) (interface{}, bool) {
	v, found := c.getraw(key)
	if !found {
		return nil, false
	}
	if l, ok := v.GetValue().([]forge.Value); ok {
		values := make([]interface{}, 0, len(l))
		for _, lv := range l {
			values = append(values, lv.GetValue())
		}
		return values, true
	}
	return v.GetValue(), true
}

// String method returns the string value for given key if exists.
func (c *Config) String(key string) (string, bool) {
	v, found := c.Get(key)
	if !found {
		return "", false
	}
	switch sv := v.(type) {
	case string:
		return sv, true
	case nil, []interface{}, map[string]forge.Value:
		return "", false
	default:
		return fmt.Sprintf("%v", sv), true
	}
}

// StringDefault method returns the string value for given key if exists
// otherwise it returns default value.
func (c *Config) StringDefault(key, defaultValue string) string {
	if v, found := c.String(key); found {
		return v
	}
	return defaultValue
}

// Int64 method returns the int64 value for given key if exists.
func (c *Config) Int64(key string) (int64, bool) {
	v, found := c.Get(key)
	if !found {
		return 0, false
	}
	switch iv := v.(type) {
	case int64:
		return iv, true
	case int:
		return int64(iv), true
	case float64:
		return int64(iv), true
	}
	return 0, false
}

// Int64Default method returns the int64 value for given key if exists
// otherwise it returns default value.
func (c *Config) Int64Default(key string, defaultValue int64) int64 {
	if v, found := c.Int64(key); found {
		return v
	}
	return defaultValue
}

// Int method returns the int value for given key if exists.
func (c *Config) Int(key string) (int, bool) {
	v, found := c.Int64(key)
	return int(v), found
}

// IntDefault method returns the int value for given key if exists
// otherwise it returns default value.
func (c *Config) IntDefault(key string, defaultValue int) int {
	if v, found := c.Int(key); found {
		return v
	}
	return defaultValue
}

// Bool method returns the bool value for given key if exists.
func (c *Config) Bool(key string) (bool, bool) {
	v, found := c.Get(key)
	if !found {
		return false, false
	}
	bv, ok := v.(bool)
	return bv, ok
}

// BoolDefault method returns the bool value for given key if exists
// otherwise it returns default value.
func (c *Config) BoolDefault(key string, defaultValue bool) bool {
	if v, found := c.Bool(key); found {
		return v
	}
	return defaultValue
}

// StringList method returns the string slice value for given key if exists.
func (c *Config) StringList(key string) ([]string, bool) {
	v, found := c.Get(key)
	if !found {
		return nil, false
	}
	l, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	values := make([]string, 0, len(l))
	for _, lv := range l {
		if s, ok := lv.(string); ok {
			values = append(values, s)
		}
	}
	return values, true
}

// Keys method returns all the keys of given section key. For empty key it
// returns root level keys.
func (c *Config) Keys(key ...string) []string {
	section := c.cfg
	if len(key) > 0 && len(key[0]) > 0 {
		v, found := c.getraw(key[0])
		if !found {
			return []string{}
		}
		s, ok := v.(*forge.Section)
		if !ok {
			return []string{}
		}
		section = s
	}
	return section.Keys()
}

// GetSubConfig method returns the sub config for given section key.
func (c *Config) GetSubConfig(key string) (*Config, bool) {
	v, found := c.getraw(key)
	if !found {
		return nil, false
	}
	if s, ok := v.(*forge.Section); ok {
		return &Config{cfg: s}, true
	}
	return nil, false
}

// SetString method sets the given string value for the key at root level.
func (c *Config) SetString(key, value string) {
	c.cfg.SetString(key, value)
}

// SetBool method sets the given bool value for the key at root level.
func (c *Config) SetBool(key string, value bool) {
	c.cfg.SetBoolean(key, value)
}

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Unexported methods
//___________________________________

func (c *Config) getraw(key string) (forge.Value, bool) {
	if c == nil || c.cfg == nil || len(strings.TrimSpace(key)) == 0 {
		return nil, false
	}
	v, err := c.cfg.Resolve(key)
	if err != nil {
		return nil, false
	}
	return v, true
}
