package main

import (
	"fmt"
	"syscall"

	"github.com/pkg/errors"

	"github.com/trezcool/escolar/core/user"
	sessionstore "github.com/trezcool/escolar/storage/session"
)

type loginOptions struct {
	token *string
	group *string
	name  *string
	id    *int
}

// login saves the identity carried by the token. Flags override what the token says.
func (cli *commandLine) login(opts loginOptions) error {
	token := *opts.token
	if token == "" {
		fmt.Fprint(cli.out, "Enter token:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			return errHelp
		}
		token = string(pwd)
	}

	id, err := sessionstore.FromToken(token)
	if err != nil {
		return err
	}
	if *opts.group != "" {
		if !user.IsValidGroup(*opts.group) {
			return errors.Wrapf(sessionstore.ErrInvalidToken, "unknown group %q", *opts.group)
		}
		id.Group = *opts.group
	}
	if *opts.name != "" {
		id.FullName = *opts.name
	}
	if *opts.id > 0 {
		id.ID = *opts.id
	}

	if err = cli.store.Save(id); err != nil {
		return err
	}
	cli.success(fmt.Sprintf("Logged in as %s (%s).", id.FullName, id.Group))
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.store.Clear(); err != nil {
		return err
	}
	cli.success("Logged out.")
	return nil
}

func (cli *commandLine) whoami() error {
	sess, err := cli.store.Load()
	if err != nil {
		return err
	}
	if !user.IsAuthenticated(sess) {
		return user.ErrNotAuthenticated
	}
	fmt.Fprintf(cli.out, "%s (%s, id %d)\n", sess.FullName, sess.Group, sess.ID)
	return nil
}
