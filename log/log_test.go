// Copyright (c) Jeevanandam M (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"aahframe.work/security/config"
	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	cfg, _ := config.ParseString(`
	log {
	  level = "warn"
	}`)
	buf := &bytes.Buffer{}
	l, err := NewWithWriter(cfg, buf)
	assert.Nil(t, err)

	l.Debug("I shoudn't see this msg, because logger level is WARN")
	l.Infof("I shoudn't see this msg either: %v", 4)
	l.Warnf("Yes, yes it's an %v", "warning")
	l.Error("Yes, yes, yes - finally an error")

	out := buf.String()
	assert.False(t, strings.Contains(out, "shoudn't"))
	assert.True(t, strings.Contains(out, "[WARN]  aah: Yes, yes it's an warning"))
	assert.True(t, strings.Contains(out, "[ERROR] aah: Yes, yes, yes - finally an error"))
	assert.Equal(t, "WARN", l.Level())
	assert.False(t, l.IsLevelDebug())
}

func TestLoggerJSONAndFields(t *testing.T) {
	cfg, _ := config.ParseString(`
	log {
	  level = "debug"
	  format = "json"
	  name = "token"
	}`)
	buf := &bytes.Buffer{}
	l, err := NewWithWriter(cfg, buf)
	assert.Nil(t, err)
	assert.True(t, l.IsLevelDebug())

	l.WithFields(Fields{"identifier": "jeeva"}).Debugf("token %s", "restored")

	entry := map[string]interface{}{}
	assert.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "token restored", entry["@message"])
	assert.Equal(t, "jeeva", entry["identifier"])
	assert.Equal(t, "token", entry["@module"])
}

func TestLoggerConfigErrors(t *testing.T) {
	cfg, _ := config.ParseString(`
	log {
	  level = "unknown"
	}`)
	_, err := New(cfg)
	assert.Equal(t, "log: unsupported level 'unknown'", err.Error())

	cfg, _ = config.ParseString(`
	log {
	  format = "xml"
	}`)
	_, err = New(cfg)
	assert.Equal(t, "log: unsupported format 'xml'", err.Error())
}

func TestLoggerDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	l, _ := NewWithWriter(nil, buf)
	prev := std()
	SetDefaultLogger(l)
	defer SetDefaultLogger(prev)

	SetDefaultLogger(nil)
	Debugf("default logger %s", "debug")
	Infof("default logger %s", "info")
	WithFields(Fields{"k": "v"}).Warn("with fields")
	Trace("not visible")

	out := buf.String()
	assert.True(t, IsLevelDebug())
	assert.True(t, strings.Contains(out, "default logger debug"))
	assert.True(t, strings.Contains(out, "default logger info"))
	assert.True(t, strings.Contains(out, "with fields: k=v"))
	assert.False(t, strings.Contains(out, "not visible"))
}
