// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

// Package tokenstore persists an authentication token between requests as
// a signed and optionally encrypted cookie value.
//
//	security {
//	  token_store {
//	    name = "aah_token"
//	    ttl = "30m"
//
//	    # Either configure the keys, raw or `base64:` prefixed (aahtoken keygen)
//	    sign_key = "eFWLXEewECptbDVXExokRTLONWxrTjfV"
//	    enc_key = "base64:gCpKH8vm0RCx3zJ3YfmnDqtmVwQ4rqdqhV0cWSgBVYs="
//
//	    # or let them derived from the secret using pbkdf2
//	    #secret = "my-application-secret"
//	    #salt = "aah_token"
//	    #kdf_iterations = 4096
//
//	    erase_credentials = true
//	  }
//	}
package tokenstore

import (
	"bytes"
	"crypto/cipher"
	"encoding/gob"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aahframe.work/security/acrypto"
	"aahframe.work/security/authc"
	"aahframe.work/security/config"
	"aahframe.work/security/essentials"
	"aahframe.work/security/log"
)

const (
	keyPrefix    = "security.token_store."
	maxValueSize = 4096
	derivedLen   = 64
)

// KeyBase64Prefix marks a configured key value as URL safe base64 encoded
// raw bytes, e.g. `sign_key = "base64:..."`.
const KeyBase64Prefix = "base64:"

// Token store errors
var (
	ErrTokenNotFound    = errors.New("security/tokenstore: token not found")
	ErrValueTooLarge    = errors.New("security/tokenstore: value is greater than 4096")
	ErrValueInvalid     = errors.New("security/tokenstore: value is not valid")
	ErrTimestampInvalid = errors.New("security/tokenstore: timestamp is invalid")
	ErrTimestampTooNew  = errors.New("security/tokenstore: timestamp is too new")
	ErrTimestampExpired = errors.New("security/tokenstore: timestamp expired")
	ErrSignVerification = errors.New("security/tokenstore: sign verification is failed")
)

var currentTimestamp = func() int64 {
	return time.Now().UTC().Unix()
}

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Package methods
//___________________________________

// NewManager method creates the token store manager from the configuration
// `security.token_store { ... }`.
func NewManager(cfg *config.Config) (*Manager, error) {
	opts := &Options{
		Name:     cfg.StringDefault(keyPrefix+"name", "aah_token"),
		Domain:   cfg.StringDefault(keyPrefix+"domain", ""),
		Path:     cfg.StringDefault(keyPrefix+"path", "/"),
		HTTPOnly: cfg.BoolDefault(keyPrefix+"http_only", true),
		Secure:   cfg.BoolDefault(keyPrefix+"secure", false),
	}

	ttl, err := time.ParseDuration(cfg.StringDefault(keyPrefix+"ttl", "0s"))
	if err != nil {
		return nil, fmt.Errorf("security/tokenstore: ttl: %s", err)
	}
	if ttl < 0 {
		return nil, fmt.Errorf("security/tokenstore: ttl: negative duration '%s'", ttl)
	}
	opts.MaxAge = int64(ttl.Seconds())

	if opts.SameSite, err = parseSameSite(cfg.StringDefault(keyPrefix+"same_site", "")); err != nil {
		return nil, err
	}

	m := &Manager{
		Options:          opts,
		sha:              cfg.StringDefault(keyPrefix+"sign_alg", "sha-256"),
		eraseCredentials: cfg.BoolDefault(keyPrefix+"erase_credentials", true),
		maxValueSize:     maxValueSize,
	}
	if acrypto.HashFunc(m.sha) == nil {
		return nil, fmt.Errorf("security/tokenstore: unsupported sign_alg '%s'", m.sha)
	}

	signKey, err := parseKey(cfg.StringDefault(keyPrefix+"sign_key", ""))
	if err != nil {
		return nil, fmt.Errorf("security/tokenstore: sign_key: %s", err)
	}
	encKey, err := parseKey(cfg.StringDefault(keyPrefix+"enc_key", ""))
	if err != nil {
		return nil, fmt.Errorf("security/tokenstore: enc_key: %s", err)
	}
	if secret := cfg.StringDefault(keyPrefix+"secret", ""); len(signKey) == 0 && len(encKey) == 0 && !ess.IsStrEmpty(secret) {
		salt := cfg.StringDefault(keyPrefix+"salt", opts.Name)
		iter := cfg.IntDefault(keyPrefix+"kdf_iterations", 4096)
		k, err := acrypto.DeriveKey([]byte(secret), []byte(salt), iter, derivedLen, m.sha)
		if err != nil {
			return nil, err
		}
		signKey, encKey = k[:derivedLen/2], k[derivedLen/2:]
		log.Debugf("security/tokenstore: sign and enc keys derived from secret, iterations: %d", iter)
	}

	if len(signKey) > 0 {
		m.signKey = signKey
	} else {
		log.Warn("security/tokenstore: sign key is not configured, stored token is not tamper proof")
	}

	if len(encKey) > 0 {
		if m.cipherBlock, err = acrypto.NewAESBlock(encKey); err != nil {
			return nil, err
		}
	}

	log.Debugf("security/tokenstore: name: %s, max age: %ds, signed: %v, encrypted: %v, erase credentials: %v",
		opts.Name, opts.MaxAge, m.IsSigned(), m.IsEncrypted(), m.eraseCredentials)
	return m, nil
}

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Manager
//___________________________________

// Manager encodes, decodes and transports the authentication token. Manager
// is not modified after creation and safe for concurrent use.
type Manager struct {
	Options *Options

	signKey          []byte
	sha              string
	cipherBlock      cipher.Block
	eraseCredentials bool
	maxValueSize     int
}

// Options to hold token cookie options.
type Options struct {
	Name     string
	Domain   string
	Path     string
	MaxAge   int64
	HTTPOnly bool
	Secure   bool
	SameSite http.SameSite
}

// IsSigned method returns true if sign key is configured.
func (m *Manager) IsSigned() bool {
	return len(m.signKey) > 0
}

// IsEncrypted method returns true if encryption key is configured.
func (m *Manager) IsEncrypted() bool {
	return m.cipherBlock != nil
}

// Encode method encodes the given token snapshot.
//
// It performs:
//  1. Gob encodes the token snapshot, without credentials if configured
//  2. Encrypts it if encryption key configured
//  3. Encodes it into base64 and composes "timestamp|value|"
//  4. Signs the value if sign key configured
//  5. Encodes value into base64 string
//  6. Checks max value size i.e 4Kb
func (m *Manager) Encode(t *authc.Token) (string, error) {
	if t == nil {
		return "", ErrValueInvalid
	}

	data := t.Snapshot()
	if _, found := data[authc.KeyCredentials]; found && m.eraseCredentials {
		delete(data, authc.KeyCredentials)
		data[authc.KeyErased] = true
	}

	b, err := encodeGob(data)
	if err != nil {
		return "", fmt.Errorf("security/tokenstore: %s", err)
	}

	if m.IsEncrypted() {
		if b, err = acrypto.AESEncrypt(m.cipherBlock, b); err != nil {
			return "", err
		}
	}

	b = ess.EncodeToBase64(b)

	// compose value of "name|date|value". Pipe is used while Decode
	b = []byte(fmt.Sprintf("%s|%d|%s|", m.Options.Name, currentTimestamp(), b))

	if m.IsSigned() {
		signed, err := acrypto.Sign(m.signKey, b[:len(b)-1], m.sha)
		if err != nil {
			return "", err
		}
		b = append(b, signed...)
	}

	// Remove name
	b = b[len(m.Options.Name)+1:]

	b = ess.EncodeToBase64(b)
	if len(b) > m.maxValueSize {
		return "", ErrValueTooLarge
	}

	return string(b), nil
}

// Decode method decodes the stored value into token.
//
// It performs:
//  1. Checks max value size i.e 4Kb
//  2. Decodes the value using base64
//  3. Validates the signed data
//  4. Validates timestamp
//  5. Decodes the value using base64 and decrypts it
//  6. Gob decodes the snapshot and restores the token
func (m *Manager) Decode(value string) (*authc.Token, error) {
	if len(value) > m.maxValueSize {
		return nil, ErrValueTooLarge
	}

	b, err := ess.DecodeBase64([]byte(value))
	if err != nil {
		return nil, err
	}

	// Check value parts, value is "date|value|signed-data"
	parts := bytes.SplitN(b, []byte("|"), 3)
	if len(parts) != 3 {
		return nil, ErrValueInvalid
	}

	if m.IsSigned() {
		b = append([]byte(m.Options.Name+"|"), b[:len(b)-len(parts[2])-1]...)
		if !acrypto.Verify(m.signKey, b, parts[2], m.sha) {
			return nil, ErrSignVerification
		}
	}

	t1, err := strconv.ParseInt(string(parts[0]), 10, 64)
	if err != nil {
		return nil, ErrTimestampInvalid
	}
	t2 := currentTimestamp()
	if t1 > t2 {
		return nil, ErrTimestampTooNew
	}
	if m.Options.MaxAge > 0 && t1 < t2-m.Options.MaxAge {
		return nil, ErrTimestampExpired
	}

	if b, err = ess.DecodeBase64(parts[1]); err != nil {
		return nil, err
	}
	if m.IsEncrypted() {
		if b, err = acrypto.AESDecrypt(m.cipherBlock, b); err != nil {
			return nil, err
		}
	}

	var data map[string]interface{}
	if err = decodeGob(&data, b); err != nil {
		return nil, fmt.Errorf("%w: %s", authc.ErrMalformed, err)
	}

	t, err := authc.Restore(data)
	if err != nil {
		log.Warnf("security/tokenstore: discarding stored token: %s", err)
		return nil, err
	}
	return t, nil
}

// Write method writes the given token as cookie into response.
func (m *Manager) Write(w http.ResponseWriter, t *authc.Token) error {
	value, err := m.Encode(t)
	if err != nil {
		return err
	}
	http.SetCookie(w, m.newCookie(value, m.Options.MaxAge))
	return nil
}

// Read method reads the token from request cookie. It returns
// `ErrTokenNotFound` if request does not carry the token cookie.
func (m *Manager) Read(r *http.Request) (*authc.Token, error) {
	c, err := r.Cookie(m.Options.Name)
	if err != nil || ess.IsStrEmpty(c.Value) {
		return nil, ErrTokenNotFound
	}
	return m.Decode(c.Value)
}

// Clear method expires the token cookie, typically on logout.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, m.newCookie("", -1))
}

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Unexported methods
//___________________________________

func (m *Manager) newCookie(value string, maxAge int64) *http.Cookie {
	cookie := &http.Cookie{
		Name:     m.Options.Name,
		Value:    value,
		Path:     m.Options.Path,
		Domain:   m.Options.Domain,
		MaxAge:   int(maxAge),
		Secure:   m.Options.Secure,
		HttpOnly: m.Options.HTTPOnly,
		SameSite: m.Options.SameSite,
	}

	if maxAge > 0 {
		cookie.Expires = time.Now().Add(time.Duration(maxAge) * time.Second)
	} else if maxAge < 0 {
		// Set it to the past to expire now.
		cookie.Expires = time.Unix(1, 0)
	}

	return cookie
}

func parseKey(v string) ([]byte, error) {
	if !strings.HasPrefix(v, KeyBase64Prefix) {
		return []byte(v), nil
	}
	return ess.DecodeBase64([]byte(strings.TrimPrefix(v, KeyBase64Prefix)))
}

func parseSameSite(v string) (http.SameSite, error) {
	switch strings.ToLower(v) {
	case "":
		return http.SameSiteDefaultMode, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	}
	return http.SameSiteDefaultMode, fmt.Errorf("security/tokenstore: unsupported same_site '%s'", v)
}

func init() {
	gob.Register(&authc.InMemoryUser{})
	gob.Register(map[string]interface{}{})
	gob.Register([]interface{}{})
}
