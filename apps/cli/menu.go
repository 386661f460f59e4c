package main

import (
	"context"
	"fmt"
	"io"
)

type menuItem struct {
	label   string
	command string
	askID   bool
	list    bool
}

var menuItems = []menuItem{
	{label: "List courses", command: "courses", list: true},
	{label: "Register course", command: "course-add"},
	{label: "Edit course", command: "course-edit", askID: true},
	{label: "Delete course", command: "course-delete", askID: true},
	{label: "List teachers", command: "teachers", list: true},
	{label: "Delete teacher", command: "teacher-delete", askID: true},
	{label: "List students", command: "students", list: true},
	{label: "Delete student", command: "student-delete", askID: true},
	{label: "Who am I", command: "whoami"},
	{label: "Log out", command: "logout"},
}

func (cli *commandLine) displayMenu() {
	cli.title("=== Escolar ===")
	for i, item := range menuItems {
		fmt.Fprintf(cli.out, "%d. %s\n", i+1, item.label)
	}
	fmt.Fprintln(cli.out, "0. Exit")
}

// menu loops over the commands until the user exits or the input ends.
// Command failures are reported and the loop goes on.
func (cli *commandLine) menu(ctx context.Context) error {
	for {
		cli.displayMenu()
		choice, err := cli.ask(fmt.Sprintf("\nEnter your choice (0-%d)", len(menuItems)), "")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if choice == "0" {
			cli.success("Bye!")
			return nil
		}

		var item *menuItem
		for i := range menuItems {
			if fmt.Sprint(i+1) == choice {
				item = &menuItems[i]
			}
		}
		if item == nil {
			cli.alert("Invalid choice. Please try again.")
			continue
		}

		args, err := cli.menuArgs(*item)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		cli.report(cli.dispatch(ctx, args))
	}
}

func (cli *commandLine) menuArgs(item menuItem) ([]string, error) {
	args := []string{item.command}
	switch {
	case item.askID:
		id, err := cli.ask("Id", "")
		if err != nil {
			return nil, err
		}
		args = append(args, "-id", id)
	case item.list:
		filter, err := cli.ask("Filter (optional)", "")
		if err != nil {
			return nil, err
		}
		sortBy, err := cli.ask("Sort by column (optional)", "")
		if err != nil {
			return nil, err
		}
		args = append(args, "-filter", filter, "-sort", sortBy)
	}
	return args, nil
}
