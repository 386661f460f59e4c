package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/course"
	"github.com/trezcool/escolar/core/student"
	"github.com/trezcool/escolar/core/teacher"
	"github.com/trezcool/escolar/core/user"
	apiclient "github.com/trezcool/escolar/storage/api"
	sessionstore "github.com/trezcool/escolar/storage/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf   *core.Config
	logger core.Logger
	store  *sessionstore.Store
	in     *bufio.Reader
	out    io.Writer
}

func newCommandLine(conf *core.Config, logger core.Logger, store *sessionstore.Store, in io.Reader, out io.Writer) *commandLine {
	return &commandLine{
		conf:   conf,
		logger: logger,
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// services are bound to the logged in user.
type services struct {
	sess     user.Identity
	courses  *course.Service
	teachers *teacher.Service
	students *student.Service
}

// services loads the saved session. Without one the command is refused with user.ErrNotAuthenticated.
func (cli *commandLine) services() (*services, error) {
	sess, err := cli.store.Load()
	if err != nil {
		return nil, err
	}
	if !user.IsAuthenticated(sess) {
		return nil, user.ErrNotAuthenticated
	}

	client := apiclient.NewClient(cli.conf, sess, cli.logger)
	return &services{
		sess:     sess,
		courses:  course.NewService(apiclient.NewCourseRepository(client)),
		teachers: teacher.NewService(apiclient.NewTeacherRepository(client)),
		students: student.NewService(apiclient.NewStudentRepository(client)),
	}, nil
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login [-token TOKEN] [-group GROUP] [-name NAME] [-id ID] - start a session (the token is prompted when missing)")
	fmt.Fprintln(cli.out, "  logout - end the session")
	fmt.Fprintln(cli.out, "  whoami - show the logged in user")
	fmt.Fprintln(cli.out, "  courses [-filter TEXT] [-sort COLUMN] [-desc] [-page N] [-size N] - list courses")
	fmt.Fprintln(cli.out, "  course-add - register a course")
	fmt.Fprintln(cli.out, "  course-edit -id ID - edit a course")
	fmt.Fprintln(cli.out, "  course-delete -id ID - delete a course")
	fmt.Fprintln(cli.out, "  teachers [-filter TEXT] [-sort COLUMN] [-desc] [-page N] [-size N] - list teachers")
	fmt.Fprintln(cli.out, "  teacher-delete -id ID - delete a teacher")
	fmt.Fprintln(cli.out, "  students [-filter TEXT] [-sort COLUMN] [-desc] [-page N] [-size N] - list students")
	fmt.Fprintln(cli.out, "  student-delete -id ID - delete a student")
	fmt.Fprintln(cli.out, "  menu - interactive menu")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	return cli.dispatch(context.Background(), args[1:])
}

// dispatch runs the command args[0] with its flags args[1:].
func (cli *commandLine) dispatch(ctx context.Context, args []string) error {
	name, args := args[0], args[1:]
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)

	parse := func() error {
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
		return nil
	}
	requireID := func(id *int) error {
		if err := parse(); err != nil {
			return err
		}
		if *id <= 0 {
			fs.Usage()
			return errHelp
		}
		return nil
	}

	switch name {
	case "login":
		opts := loginOptions{
			token: fs.String("token", "", "The session token. It is prompted when missing."),
			group: fs.String("group", "", "Overrides the group read from the token: administrador, maestro or alumno."),
			name:  fs.String("name", "", "Overrides the user's full name."),
			id:    fs.Int("id", 0, "Overrides the user id."),
		}
		if err := parse(); err != nil {
			return err
		}
		return cli.login(opts)
	case "logout":
		if err := parse(); err != nil {
			return err
		}
		return cli.logout()
	case "whoami":
		if err := parse(); err != nil {
			return err
		}
		return cli.whoami()
	case "menu":
		if err := parse(); err != nil {
			return err
		}
		return cli.menu(ctx)
	}

	// everything below needs a session
	var (
		opts *listOptions
		id   *int
	)
	switch name {
	case "courses", "teachers", "students":
		opts = bindListOptions(fs)
		if err := parse(); err != nil {
			return err
		}
	case "course-add":
		if err := parse(); err != nil {
			return err
		}
	case "course-edit", "course-delete", "teacher-delete", "student-delete":
		id = fs.Int("id", 0, "The record id, as shown by the edit and delete columns.")
		if err := requireID(id); err != nil {
			return err
		}
	default:
		cli.printUsage()
		return errHelp
	}

	svcs, err := cli.services()
	if err != nil {
		return err
	}

	switch name {
	case "courses":
		return cli.listCourses(ctx, svcs, opts)
	case "course-add":
		return cli.addCourse(ctx, svcs)
	case "course-edit":
		return cli.editCourse(ctx, svcs, *id)
	case "course-delete":
		return cli.deleteCourse(ctx, svcs, *id)
	case "teachers":
		return cli.listTeachers(ctx, svcs, opts)
	case "teacher-delete":
		return cli.deleteTeacher(ctx, svcs, *id)
	case "students":
		return cli.listStudents(ctx, svcs, opts)
	default: // student-delete
		return cli.deleteStudent(ctx, svcs, *id)
	}
}
