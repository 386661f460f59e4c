package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/escolar/core/course"
	"github.com/trezcool/escolar/core/teacher"
	"github.com/trezcool/escolar/core/user"
)

func Test_resolveChoice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		choices []string
		want    string
		wantOk  bool
	}{
		{name: "empty", input: "  ", choices: course.Weekdays},
		{name: "index", input: "3", choices: course.Weekdays, want: course.Wednesday, wantOk: true},
		{name: "index out of range", input: "6", choices: course.Weekdays},
		{name: "exact ignoring case", input: "FRIDAY", choices: course.Weekdays, want: course.Friday, wantOk: true},
		{name: "unique prefix", input: "thu", choices: course.Weekdays, want: course.Thursday, wantOk: true},
		{name: "typo", input: "wensday", choices: course.Weekdays, want: course.Wednesday, wantOk: true},
		{name: "nothing close", input: "sunday", choices: course.Weekdays},
		{
			name:    "program without accents",
			input:   "licenciatura en ciencias de la computacion",
			choices: course.Programs,
			want:    course.Programs[1],
			wantOk:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveChoice(tt.input, tt.choices)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_parseWeekdays(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "", want: []string{}},
		{input: "Monday, Wednesday", want: []string{course.Monday, course.Wednesday}},
		{input: "lunes,Miércoles, viernes", want: []string{course.Monday, course.Wednesday, course.Friday}},
		{input: "tue, , fri", want: []string{course.Tuesday, course.Friday}},
		{input: "Sábado, monday", want: []string{"Sábado", course.Monday}},
		{input: "Saturday", want: []string{"Saturday"}},
		{input: "Monday, Saturday", want: []string{course.Monday, "Saturday"}},
		{input: "wensday", want: []string{"wensday"}},
		{input: "t", want: []string{"t"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseWeekdays(tt.input))
		})
	}
}

func Test_resolveInstructor(t *testing.T) {
	teachers := []teacher.Teacher{
		{ID: 1, User: user.Person{FirstName: "Ada", LastName: "Lovelace"}},
		{ID: 2, User: user.Person{FirstName: "Alan", LastName: "Turing"}},
	}
	names := []string{"Ada Lovelace", "Alan Turing"}

	assert.Equal(t, 7, resolveInstructor(" 7 ", teachers, names))
	assert.Equal(t, 2, resolveInstructor("alan", teachers, names))
	assert.Equal(t, 1, resolveInstructor("Ada Lovelaze", teachers, names))
	assert.Equal(t, 0, resolveInstructor("Grace", teachers, names))
}

func Test_commandLine_ask(t *testing.T) {
	out := new(bytes.Buffer)
	cli := newCommandLine(nil, nil, nil, strings.NewReader("\n  B2 \ny\nlast"), out)

	got, err := cli.ask("Room", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "A1", got)

	got, err = cli.ask("Room", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "B2", got)

	assert.True(t, cli.confirm("Sure?"))

	got, err = cli.ask("Name", "")
	assert.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = cli.ask("Name", "")
	assert.Error(t, err)
	assert.False(t, cli.confirm("Sure?"))

	assert.Contains(t, out.String(), "Room [A1]: ")
	assert.Contains(t, out.String(), "Sure? [y/N]: ")
}

func Test_listOptions_window(t *testing.T) {
	tests := []struct {
		name                         string
		opts                         listOptions
		total                        int
		wantStart, wantEnd, wantPage int
		wantPages                    int
	}{
		{name: "first page", opts: listOptions{page: 1, size: 10}, total: 4, wantEnd: 4, wantPage: 1, wantPages: 1},
		{name: "last page", opts: listOptions{page: 3, size: 2}, total: 5, wantStart: 4, wantEnd: 5, wantPage: 3, wantPages: 3},
		{name: "past the end", opts: listOptions{page: 9, size: 2}, total: 5, wantEnd: 2, wantPage: 1, wantPages: 3},
		{name: "no size", opts: listOptions{page: 1}, total: 5, wantEnd: 5, wantPage: 1, wantPages: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, page, pages := tt.opts.window(tt.total)
			assert.Equal(t, []int{tt.wantStart, tt.wantEnd, tt.wantPage, tt.wantPages}, []int{start, end, page, pages})
		})
	}
}
