package main

import (
	"log"
	"os"

	dig_container "github.com/trezcool/escolar/apps/cli/di/dig"
	"github.com/trezcool/escolar/core"
	sessionstore "github.com/trezcool/escolar/storage/session"
)

func main() {
	c := dig_container.New()

	var code int
	err := c.Invoke(func(conf *core.Config, logger core.Logger, store *sessionstore.Store) {
		cli := newCommandLine(conf, logger, store, os.Stdin, os.Stdout)
		if err := cli.run(os.Args); err != nil {
			cli.report(err)
			code = 1
		}
	})
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}
