// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"aahframe.work/security/config"
	"aahframe.work/security/essentials"
	"aahframe.work/security/log"
	"aahframe.work/security/tokenstore"
	"github.com/urfave/cli"
)

var keygenCmd = cli.Command{
	Name:  "keygen",
	Usage: "Generates the token store sign and encryption keys",
	Description: `Prints freshly generated 'sign_key' and 'enc_key' in the
	configuration syntax, ready to paste into 'security.token_store { ... }'.
	Each key holds 'size' random bytes, URL safe base64 encoded with the
	'base64:' prefix.`,
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "size, s",
			Value: 32,
			Usage: "Key size in bytes, 16, 24 or 32",
		},
	},
	Action: keygenAction,
}

var inspectCmd = cli.Command{
	Name:      "inspect",
	Usage:     "Decodes the stored token value and prints its debug representation",
	ArgsUsage: "<token-value>",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "Configuration file having 'security.token_store { ... }'",
		},
	},
	Action: inspectAction,
}

func keygenAction(c *cli.Context) error {
	size := c.Int("size")
	if !(size == 16 || size == 24 || size == 32) {
		return fmt.Errorf("unsupported key size %d", size)
	}

	signKey, err := ess.GenerateSecureRandomKey(size)
	if err != nil {
		return err
	}
	encKey, err := ess.GenerateSecureRandomKey(size)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "sign_key = \"%s%s\"\nenc_key = \"%s%s\"\n",
		tokenstore.KeyBase64Prefix, ess.EncodeToBase64(signKey),
		tokenstore.KeyBase64Prefix, ess.EncodeToBase64(encKey))
	return nil
}

func inspectAction(c *cli.Context) error {
	value := c.Args().First()
	if ess.IsStrEmpty(value) {
		return errors.New("token value is required")
	}

	cfg := config.NewEmpty()
	if file := c.String("config"); !ess.IsStrEmpty(file) {
		var err error
		if cfg, err = config.LoadFile(file); err != nil {
			return err
		}
	}

	if cfg.IsExists("log") {
		logger, err := log.New(cfg)
		if err != nil {
			return err
		}
		log.SetDefaultLogger(logger)
	}

	m, err := tokenstore.NewManager(cfg)
	if err != nil {
		return err
	}

	token, err := m.Decode(value)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, token)
	return nil
}
