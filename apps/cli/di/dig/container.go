package dig_container

import (
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/dig"

	"github.com/trezcool/escolar/core"
	logsvc "github.com/trezcool/escolar/services/logger"
	sessionstore "github.com/trezcool/escolar/storage/session"
)

// newLogger keeps the terminal clean: request logs are printed only in debug mode,
// otherwise errors go to rollbar alone.
func newLogger(conf *core.Config) core.Logger {
	var out io.Writer = ioutil.Discard
	if conf.Debug {
		out = os.Stderr
	}
	logger := logsvc.NewRollbarLogger(log.New(out, "CLI : ", log.LstdFlags), conf)
	logger.Enable(!conf.Debug)
	return logger
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(sessionstore.NewStore))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
