package main

import (
	"context"
	"fmt"

	"github.com/trezcool/escolar/core/student"
	"github.com/trezcool/escolar/core/teacher"
	"github.com/trezcool/escolar/core/user"
)

func (cli *commandLine) listTeachers(ctx context.Context, svcs *services, opts *listOptions) error {
	teachers, err := svcs.teachers.QueryAll(ctx)
	if err != nil {
		return err
	}

	teachers = teacher.Filter(teachers, opts.filter)
	if opts.sort != "" {
		teacher.Sort(teachers, opts.sort, opts.desc)
	}

	cli.title("Teachers")
	if len(teachers) == 0 {
		cli.warn("No teachers found.")
		return nil
	}

	columns := teacher.Columns(svcs.sess.UserGroup())
	start, end, page, pages := opts.window(len(teachers))
	data := make([][]string, 0, end-start)
	for _, t := range teachers[start:end] {
		cells := make([]string, len(columns))
		for i, col := range columns {
			switch col {
			case teacher.ColumnEdit:
				cells[i] = "-"
			case teacher.ColumnDelete:
				if user.CanDeleteAccount(svcs.sess, user.GroupTeacher, t.User.ID) {
					cells[i] = fmt.Sprintf("teacher-delete -id %d", t.ID)
				}
			default:
				cells[i] = t.Cell(col)
			}
		}
		data = append(data, cells)
	}
	cli.renderTable(columns, data)
	cli.printFooter(page, pages, len(teachers), "teacher(s)")
	return nil
}

func (cli *commandLine) deleteTeacher(ctx context.Context, svcs *services, id int) error {
	t, err := svcs.teachers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err = user.Authorize(svcs.sess, user.CanDeleteAccount(svcs.sess, user.GroupTeacher, t.User.ID)); err != nil {
		return err
	}
	if !cli.confirm(fmt.Sprintf("Delete teacher %q?", t.FullName())) {
		cli.warn("Deletion cancelled.")
		return nil
	}
	if err = svcs.teachers.Delete(ctx, svcs.sess, t); err != nil {
		return err
	}
	cli.success(fmt.Sprintf("Teacher %q deleted.", t.FullName()))
	if done, err := cli.afterOwnDeletion(svcs.sess, t.User.ID); done {
		return err
	}
	return cli.listTeachers(ctx, svcs, defaultListOptions())
}

func (cli *commandLine) listStudents(ctx context.Context, svcs *services, opts *listOptions) error {
	students, err := svcs.students.QueryAll(ctx)
	if err != nil {
		return err
	}

	students = student.Filter(students, opts.filter)
	if opts.sort != "" {
		student.Sort(students, opts.sort, opts.desc)
	}

	cli.title("Students")
	if len(students) == 0 {
		cli.warn("No students found.")
		return nil
	}

	columns := student.Columns(svcs.sess.UserGroup())
	start, end, page, pages := opts.window(len(students))
	data := make([][]string, 0, end-start)
	for _, s := range students[start:end] {
		cells := make([]string, len(columns))
		for i, col := range columns {
			switch col {
			case student.ColumnEdit:
				cells[i] = "-"
			case student.ColumnDelete:
				if user.CanDeleteAccount(svcs.sess, user.GroupStudent, s.User.ID) {
					cells[i] = fmt.Sprintf("student-delete -id %d", s.ID)
				}
			default:
				cells[i] = s.Cell(col)
			}
		}
		data = append(data, cells)
	}
	cli.renderTable(columns, data)
	cli.printFooter(page, pages, len(students), "student(s)")
	return nil
}

func (cli *commandLine) deleteStudent(ctx context.Context, svcs *services, id int) error {
	s, err := svcs.students.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err = user.Authorize(svcs.sess, user.CanDeleteAccount(svcs.sess, user.GroupStudent, s.User.ID)); err != nil {
		return err
	}
	if !cli.confirm(fmt.Sprintf("Delete student %q?", s.FullName())) {
		cli.warn("Deletion cancelled.")
		return nil
	}
	if err = svcs.students.Delete(ctx, svcs.sess, s); err != nil {
		return err
	}
	cli.success(fmt.Sprintf("Student %q deleted.", s.FullName()))
	if done, err := cli.afterOwnDeletion(svcs.sess, s.User.ID); done {
		return err
	}
	return cli.listStudents(ctx, svcs, defaultListOptions())
}

// afterOwnDeletion ends the session when its user deleted their own account.
func (cli *commandLine) afterOwnDeletion(sess user.Session, ownerID int) (bool, error) {
	if user.IsAdmin(sess) || sess.UserID() != ownerID {
		return false, nil
	}
	cli.warn("Your account was deleted.")
	return true, cli.logout()
}
