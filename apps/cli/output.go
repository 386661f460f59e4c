package main

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/course"
	"github.com/trezcool/escolar/core/student"
	"github.com/trezcool/escolar/core/teacher"
	"github.com/trezcool/escolar/core/user"
	apiclient "github.com/trezcool/escolar/storage/api"
	sessionstore "github.com/trezcool/escolar/storage/session"
)

const genericAlert = "Something went wrong, please try again later."

var (
	alertColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	titleColor   = color.New(color.FgCyan)
)

func (cli *commandLine) alert(msg string)   { alertColor.Fprintln(cli.out, msg) }
func (cli *commandLine) success(msg string) { successColor.Fprintln(cli.out, msg) }
func (cli *commandLine) warn(msg string)    { warnColor.Fprintln(cli.out, msg) }
func (cli *commandLine) title(msg string)   { titleColor.Fprintln(cli.out, "\n"+msg) }

func (cli *commandLine) renderTable(header []string, rows [][]string) {
	table := tablewriter.NewWriter(cli.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

// printFieldErrors lists field errors sorted by field name.
func (cli *commandLine) printFieldErrors(fldErrs map[string]string) {
	fields := make([]string, 0, len(fldErrs))
	for fld := range fldErrs {
		fields = append(fields, fld)
	}
	sort.Strings(fields)
	for _, fld := range fields {
		cli.alert(fmt.Sprintf("  %s: %s", fld, fldErrs[fld]))
	}
}

// report shows err to the user. Known errors keep their message; anything else,
// transport failures included, gets the generic alert since the client already logged it.
func (cli *commandLine) report(err error) {
	if err == nil || err == errHelp {
		return
	}
	if fldErrs := core.FieldErrors(err); fldErrs != nil {
		cli.alert("Please fix the following fields:")
		cli.printFieldErrors(fldErrs)
		return
	}

	switch origErr := errors.Cause(err).(type) {
	case *apiclient.Error:
		switch origErr.StatusCode {
		case http.StatusUnauthorized:
			cli.alert("Your session is no longer valid, run `login` again.")
		case http.StatusForbidden:
			cli.alert(user.ErrForbidden.Error())
		default:
			cli.alert(genericAlert)
		}
		return
	}

	switch errors.Cause(err) {
	case user.ErrNotAuthenticated:
		cli.alert(user.ErrNotAuthenticated.Error() + ": run `login` first.")
	case user.ErrForbidden, course.ErrNotFound, teacher.ErrNotFound, student.ErrNotFound,
		course.ErrNRCExists, sessionstore.ErrInvalidToken:
		cli.alert(err.Error())
	default:
		cli.alert(genericAlert)
	}
}
