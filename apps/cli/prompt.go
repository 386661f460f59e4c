package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/course"
)

// minSimilarity is the lowest difflib ratio accepted when guessing a choice.
const minSimilarity = 0.7

var weekdayAliases = map[string]string{
	"lunes":     course.Monday,
	"martes":    course.Tuesday,
	"miercoles": course.Wednesday,
	"miércoles": course.Wednesday,
	"jueves":    course.Thursday,
	"viernes":   course.Friday,
}

// ask prints label and reads one line. An empty answer returns def.
func (cli *commandLine) ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(cli.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(cli.out, "%s: ", label)
	}

	line, err := cli.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		fmt.Fprintln(cli.out)
		return "", err
	}
	if line = strings.TrimSpace(line); line == "" {
		return def, nil
	}
	return line, nil
}

// confirm asks a yes/no question; only an explicit yes counts.
func (cli *commandLine) confirm(question string) bool {
	answer, err := cli.ask(question+" [y/N]", "")
	if err != nil {
		return false
	}
	switch core.CleanString(answer, true /* lower */) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}

func similarity(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}

// resolveChoice maps input to one of choices: a 1-based index, a case-insensitive exact or
// unique prefix match, or else the most similar choice when close enough.
func resolveChoice(input string, choices []string) (string, bool) {
	input = core.CleanString(input, true /* lower */)
	if input == "" {
		return "", false
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(choices) {
			return choices[n-1], true
		}
		return "", false
	}
	if c, ok := matchChoice(input, choices); ok {
		return c, true
	}

	best, bestRatio := "", 0.0
	for _, c := range choices {
		if ratio := similarity(input, strings.ToLower(c)); ratio > bestRatio {
			best, bestRatio = c, ratio
		}
	}
	if bestRatio >= minSimilarity {
		return best, true
	}
	return "", false
}

// matchChoice finds the choice equal to input, or the only one it prefixes. input is lower case.
func matchChoice(input string, choices []string) (string, bool) {
	var prefixed []string
	for _, c := range choices {
		lc := strings.ToLower(c)
		if lc == input {
			return c, true
		}
		if strings.HasPrefix(lc, input) {
			prefixed = append(prefixed, c)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0], true
	}
	return "", false
}

// parseWeekdays reads a comma separated weekday list. Spanish names, exact names and unique
// prefixes are accepted. Anything else, near misses included, is kept as typed so validation
// can point at it.
func parseWeekdays(input string) []string {
	days := make([]string, 0, len(course.Weekdays))
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		if day, ok := weekdayAliases[lower]; ok {
			days = append(days, day)
		} else if day, ok := matchChoice(lower, course.Weekdays); ok {
			days = append(days, day)
		} else {
			days = append(days, part)
		}
	}
	return days
}
