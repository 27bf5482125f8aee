// Package render prints command results as text, tables, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"aoc2022/internal/domain"
)

// Formats.
const (
	Text  = "text"
	Table = "table"
	JSON  = "json"
	YAML  = "yaml"
)

// view is one result set: the table form plus the value encoded for json/yaml.
type view struct {
	header table.Row
	rows   []table.Row
	value  any
	text   func(w io.Writer) error
}

func (v view) write(w io.Writer, format string) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v.value)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v.value); err != nil {
			return err
		}
		return enc.Close()
	case Table:
		return v.table(w)
	case Text, "":
		if v.text != nil {
			return v.text(w)
		}
		return v.table(w)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func (v view) table(w io.Writer) error {
	if len(v.rows) == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(v.header)
	t.AppendRows(v.rows)
	t.Render()
	return nil
}

// Outcome prints a single solved day. Text output is one line per part.
func Outcome(w io.Writer, format string, o domain.Outcome) error {
	v := outcomesView([]domain.Outcome{o})
	v.value = o
	v.text = func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Part 1: %s\nPart 2: %s\n", o.Answers.Part1, o.Answers.Part2)
		return err
	}
	return v.write(w, format)
}

// Outcomes prints several solved days.
func Outcomes(w io.Writer, format string, outs []domain.Outcome) error {
	v := outcomesView(outs)
	v.text = func(w io.Writer) error {
		for _, o := range outs {
			if o.Status == domain.StatusMissing {
				if _, err := fmt.Fprintf(w, "%s: no input at %s\n", o.Day, o.Path); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%s: %s %s (%s)\n", o.Day, o.Answers.Part1, o.Answers.Part2, o.Status); err != nil {
				return err
			}
		}
		return nil
	}
	return v.write(w, format)
}

func outcomesView(outs []domain.Outcome) view {
	v := view{
		header: table.Row{"Day", "Title", "Part 1", "Part 2", "Status", "Elapsed"},
		value:  outs,
	}
	for _, o := range outs {
		v.rows = append(v.rows, table.Row{
			o.Day, o.Title, o.Answers.Part1, o.Answers.Part2, o.Status, o.Elapsed.Round(time.Microsecond),
		})
	}
	return v
}

// Checks prints example verification results.
func Checks(w io.Writer, format string, checks []domain.CheckResult) error {
	v := view{
		header: table.Row{"Day", "Title", "Want", "Got", "Result"},
		value:  checks,
	}
	for _, c := range checks {
		got := fmt.Sprintf("%s / %s", c.Got.Part1, c.Got.Part2)
		if c.Err != "" {
			got = c.Err
		}
		v.rows = append(v.rows, table.Row{
			c.Day, c.Title, fmt.Sprintf("%s / %s", c.Want.Part1, c.Want.Part2), got, passFail(c.Passed()),
		})
	}
	v.text = func(w io.Writer) error {
		for _, c := range checks {
			line := fmt.Sprintf("%s %s", c.Day, passFail(c.Passed()))
			switch {
			case c.Err != "":
				line += ": " + c.Err
			case !c.Passed():
				line += fmt.Sprintf(": want %s / %s, got %s / %s", c.Want.Part1, c.Want.Part2, c.Got.Part1, c.Got.Part2)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}
	return v.write(w, format)
}

func passFail(ok bool) string {
	if ok {
		return "ok"
	}
	return "FAIL"
}

type puzzleEntry struct {
	Day   domain.Day `json:"day" yaml:"day"`
	Title string     `json:"title" yaml:"title"`
}

// Puzzles lists registered days.
func Puzzles(w io.Writer, format string, puzzles []domain.Puzzle) error {
	entries := make([]puzzleEntry, 0, len(puzzles))
	v := view{header: table.Row{"Day", "Title"}}
	for _, p := range puzzles {
		entries = append(entries, puzzleEntry{Day: p.Day, Title: p.Title})
		v.rows = append(v.rows, table.Row{p.Day, p.Title})
	}
	v.value = entries
	v.text = func(w io.Writer) error {
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s  %s\n", e.Day, e.Title); err != nil {
				return err
			}
		}
		return nil
	}
	return v.write(w, format)
}

// Records lists recorded answers.
func Records(w io.Writer, format string, recs []domain.Record) error {
	v := view{
		header: table.Row{"Day", "Digest", "Part 1", "Part 2", "Recorded"},
		value:  recs,
	}
	for _, r := range recs {
		v.rows = append(v.rows, table.Row{
			r.Day, r.Digest, r.Answers.Part1, r.Answers.Part2, r.RecordedAt.Local().Format(time.DateTime),
		})
	}
	return v.write(w, format)
}
