package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/trezcool/escolar/core/course"
	"github.com/trezcool/escolar/core/teacher"
	"github.com/trezcool/escolar/core/user"
)

func (cli *commandLine) listCourses(ctx context.Context, svcs *services, opts *listOptions) error {
	courses, err := svcs.courses.QueryAll(ctx)
	if err != nil {
		return err
	}

	rows := course.Filter(course.Present(courses), opts.filter)
	if opts.sort != "" {
		course.Sort(rows, opts.sort, opts.desc)
	}

	cli.title("Courses")
	if len(rows) == 0 {
		cli.warn("No courses found.")
		return nil
	}

	columns := course.Columns(svcs.sess.UserGroup())
	start, end, page, pages := opts.window(len(rows))
	data := make([][]string, 0, end-start)
	for _, r := range rows[start:end] {
		cells := make([]string, len(columns))
		for i, col := range columns {
			switch col {
			case course.ColumnEdit:
				cells[i] = fmt.Sprintf("course-edit -id %d", r.ID)
			case course.ColumnDelete:
				cells[i] = fmt.Sprintf("course-delete -id %d", r.ID)
			default:
				cells[i] = r.Cell(col)
			}
		}
		data = append(data, cells)
	}
	cli.renderTable(columns, data)
	cli.printFooter(page, pages, len(rows), "course(s)")
	return nil
}

func (cli *commandLine) addCourse(ctx context.Context, svcs *services) error {
	if err := user.Authorize(svcs.sess, user.CanManageCourses(svcs.sess)); err != nil {
		return err
	}
	teachers, err := svcs.teachers.QueryAll(ctx)
	teachers = cli.instructorChoices(svcs, teachers, err)
	cli.title("Register course")
	return cli.submitCourse(ctx, svcs, course.NewForm(), teachers)
}

// editCourse loads the course and the instructor choices concurrently before showing the form.
// Only a failure to load the course is fatal.
func (cli *commandLine) editCourse(ctx context.Context, svcs *services, id int) error {
	if err := user.Authorize(svcs.sess, user.CanManageCourses(svcs.sess)); err != nil {
		return err
	}

	var (
		c           course.Course
		teachers    []teacher.Teacher
		teachersErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		c, err = svcs.courses.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		teachers, teachersErr = svcs.teachers.QueryAll(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	teachers = cli.instructorChoices(svcs, teachers, teachersErr)

	cli.title(fmt.Sprintf("Edit course %s (NRC %s)", c.Name, c.NRC))
	return cli.submitCourse(ctx, svcs, course.EditForm(c), teachers)
}

// submitCourse fills the form and submits it until it goes through. After field errors only
// the rejected fields are asked again.
func (cli *commandLine) submitCourse(ctx context.Context, svcs *services, form *course.Form, teachers []teacher.Teacher) error {
	fields := courseFields(teachers)
	pending := fields
	for {
		for _, fld := range pending {
			if err := cli.promptField(form, fld); err != nil {
				return err
			}
		}

		c, err := form.Submit(ctx, svcs.courses, cli.confirmUpdate)
		switch {
		case err == nil:
			verb := "registered"
			if form.IsEditing() {
				verb = "updated"
			}
			cli.success(fmt.Sprintf("Course %q %s.", c.Name, verb))
			return cli.listCourses(ctx, svcs, defaultListOptions())
		case err == course.ErrCancelled:
			cli.warn("Update cancelled.")
			return nil
		case form.State() == course.StateInvalid:
			cli.alert("Please fix the following fields:")
			cli.printFieldErrors(form.Errors)
			if pending = rejectedFields(fields, form.Errors); len(pending) == 0 {
				return err
			}
		default:
			return err
		}
	}
}

func (cli *commandLine) confirmUpdate(name string) bool {
	return cli.confirm(fmt.Sprintf("Update course %q?", name))
}

func (cli *commandLine) deleteCourse(ctx context.Context, svcs *services, id int) error {
	if err := user.Authorize(svcs.sess, user.CanManageCourses(svcs.sess)); err != nil {
		return err
	}
	c, err := svcs.courses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !cli.confirm(fmt.Sprintf("Delete course %q (NRC %s)?", c.Name, c.NRC)) {
		cli.warn("Deletion cancelled.")
		return nil
	}
	if err = svcs.courses.Delete(ctx, svcs.sess, id); err != nil {
		return err
	}
	cli.success(fmt.Sprintf("Course %q deleted.", c.Name))
	return cli.listCourses(ctx, svcs, defaultListOptions())
}

// courseField is one prompt of the course form. key is the field's error key.
type courseField struct {
	key      string
	label    string
	options  []string
	numbered bool // options may be picked by number
	value    func(d *course.CourseForm) string
	apply    func(f *course.Form, input string)
}

func courseFields(teachers []teacher.Teacher) []courseField {
	instructors := make([]string, len(teachers))
	for i, t := range teachers {
		instructors[i] = t.FullName()
	}

	return []courseField{
		{
			key: "nrc", label: "NRC",
			value: func(d *course.CourseForm) string { return d.NRC },
			apply: func(f *course.Form, s string) { f.Data.NRC = s },
		},
		{
			key: "nombre", label: "Name",
			value: func(d *course.CourseForm) string { return d.Name },
			apply: func(f *course.Form, s string) { f.Data.Name = s },
		},
		{
			key: "seccion", label: "Section",
			value: func(d *course.CourseForm) string { return d.Section },
			apply: func(f *course.Form, s string) { f.Data.Section = s },
		},
		{
			key: "dias_json", label: "Weekdays (comma separated)",
			value: func(d *course.CourseForm) string { return strings.Join(d.Weekdays, ", ") },
			apply: func(f *course.Form, s string) {
				for _, day := range append([]string{}, f.Data.Weekdays...) {
					f.ToggleWeekday(day, false)
				}
				for _, day := range parseWeekdays(s) {
					f.ToggleWeekday(day, true)
				}
			},
		},
		{
			key: "hora_inicio", label: "Start time (HH:MM)",
			value: func(d *course.CourseForm) string { return d.StartTime },
			apply: func(f *course.Form, s string) { f.Data.StartTime = s },
		},
		{
			key: "hora_fin", label: "End time (HH:MM)",
			value: func(d *course.CourseForm) string { return d.EndTime },
			apply: func(f *course.Form, s string) { f.Data.EndTime = s },
		},
		{
			key: "salon", label: "Room",
			value: func(d *course.CourseForm) string { return d.Room },
			apply: func(f *course.Form, s string) { f.Data.Room = s },
		},
		{
			key: "programa_educativo", label: "Program", options: course.Programs, numbered: true,
			value: func(d *course.CourseForm) string { return d.Program },
			apply: func(f *course.Form, s string) {
				if program, ok := resolveChoice(s, course.Programs); ok {
					s = program
				}
				f.Data.Program = s
			},
		},
		{
			key: "profesor_id", label: "Instructor (id or name)", options: instructorOptions(teachers),
			value: func(d *course.CourseForm) string {
				if d.InstructorID == 0 {
					return ""
				}
				return strconv.Itoa(d.InstructorID)
			},
			apply: func(f *course.Form, s string) { f.Data.InstructorID = resolveInstructor(s, teachers, instructors) },
		},
		{
			key: "creditos", label: "Credits (1-10)",
			value: func(d *course.CourseForm) string { return d.Credits },
			apply: func(f *course.Form, s string) { f.Data.Credits = s },
		},
	}
}

// instructorChoices returns the loaded teachers, or none when loading failed. The instructor
// can then only be given by id.
func (cli *commandLine) instructorChoices(svcs *services, teachers []teacher.Teacher, err error) []teacher.Teacher {
	if err != nil {
		cli.logger.Warn("loading instructors failed", err, svcs.sess)
		cli.warn("Could not load the instructor list. Enter the instructor by id.")
		return []teacher.Teacher{}
	}
	return teachers
}

func instructorOptions(teachers []teacher.Teacher) []string {
	opts := make([]string, len(teachers))
	for i, t := range teachers {
		opts[i] = fmt.Sprintf("id %d: %s", t.ID, t.FullName())
	}
	return opts
}

// resolveInstructor reads a teacher id or a (possibly misspelled) name. Unknown input gives 0.
func resolveInstructor(input string, teachers []teacher.Teacher, names []string) int {
	if id, err := strconv.Atoi(strings.TrimSpace(input)); err == nil {
		return id
	}
	if name, ok := resolveChoice(input, names); ok {
		for _, t := range teachers {
			if t.FullName() == name {
				return t.ID
			}
		}
	}
	return 0
}

func (cli *commandLine) promptField(form *course.Form, fld courseField) error {
	for i, opt := range fld.options {
		if fld.numbered {
			fmt.Fprintf(cli.out, "  %d) %s\n", i+1, opt)
		} else {
			fmt.Fprintf(cli.out, "  - %s\n", opt)
		}
	}
	current := fld.value(&form.Data)
	input, err := cli.ask(fld.label, current)
	if err != nil {
		return err
	}
	if input != current {
		fld.apply(form, input)
	}
	return nil
}

// rejectedFields keeps the fields with an error, in form order.
func rejectedFields(fields []courseField, fldErrs map[string]string) []courseField {
	rejected := make([]courseField, 0, len(fldErrs))
	for _, fld := range fields {
		if _, ok := fldErrs[fld.key]; ok {
			rejected = append(rejected, fld)
		}
	}
	return rejected
}
