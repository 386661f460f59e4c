package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	echoapi "github.com/trezcool/escolar/apps/api/echo"
	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/user"
)

// The sandbox serves the school REST API from memory. `api token` mints a session token
// for the CLI to log in with.
func main() {
	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := printToken(core.NewConfig(), os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}
	startWithDig()
}

func printToken(conf *core.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(out)
	group := fs.String("group", user.GroupAdmin, "user group: administrador, maestro or alumno")
	id := fs.Int("id", 1, "user id")
	name := fs.String("name", "Administrador", "user full name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !user.IsValidGroup(*group) {
		return errors.Errorf("unknown group %q", *group)
	}

	claims := echoapi.GetUserClaims(conf, user.Identity{Group: *group, ID: *id, FullName: *name})
	token, err := echoapi.GenerateToken(conf, claims)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
