// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

// aahtoken is the command line companion of the aah token store. It
// generates the store keys and inspects stored token values.
package main

import (
	"os"

	"aahframe.work/security/log"
	"github.com/urfave/cli"
)

// Version no. of aahtoken
const Version = "0.1.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "aahtoken"
	app.Usage = "aah authentication token store tool"
	app.Version = Version
	app.Copyright = "Copyright (c) Jeevanandam M. <jeeva@myjeeva.com>"
	app.Commands = []cli.Command{keygenCmd, inspectCmd}
	return app
}
