// Package trace writes a generated step sequence in a human- or
// machine-readable form. Traces are output only; nothing reads them back.
package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/algoviz/internal/errors"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// Format selects a trace encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// Formats returns the supported format names.
func Formats() []string {
	return []string{string(FormatTable), string(FormatYAML), string(FormatJSON)}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats(), string(f)) {
		return "", errors.NewValidationError("unsupported trace format").
			WithField("format").
			WithValue(s).
			WithCause(errors.ErrInvalidInput)
	}
	return f, nil
}

// Document is one traced run.
type Document struct {
	Algorithm string  `json:"algorithm" yaml:"algorithm"`
	Title     string  `json:"title" yaml:"title"`
	Seed      uint64  `json:"seed" yaml:"seed"`
	Count     int     `json:"count" yaml:"count"`
	Steps     []Entry `json:"steps" yaml:"steps"`
}

// Entry is one step with its position.
type Entry struct {
	Index   int          `json:"index" yaml:"index"`
	Kind    step.Kind    `json:"kind" yaml:"kind"`
	Message string       `json:"message" yaml:"message"`
	Payload step.Payload `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// NewDocument wraps a sequence for output.
func NewDocument(algorithm, title string, seed uint64, seq step.Sequence) Document {
	d := Document{
		Algorithm: algorithm,
		Title:     title,
		Seed:      seed,
		Count:     len(seq),
		Steps:     make([]Entry, len(seq)),
	}
	for i, s := range seq {
		d.Steps[i] = Entry{Index: i, Kind: s.Kind, Message: s.Message, Payload: s.Payload}
	}
	return d
}

// Write encodes d to w in format f.
func Write(w io.Writer, d Document, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		_, err := io.WriteString(w, Table(d))
		return err
	default:
		return fmt.Errorf("trace format %q: %w", f, errors.ErrInvalidInput)
	}
}

// Table renders d as a step table followed by a per-kind tally.
func Table(d Document) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(fmt.Sprintf("%s (%s)", d.Title, d.Algorithm))
	tbl.AppendHeader(table.Row{"#", "Kind", "Message", "State"})
	for _, e := range d.Steps {
		tbl.AppendRow(table.Row{e.Index, e.Kind, e.Message, Summarize(e.Payload)})
	}
	tbl.AppendFooter(table.Row{"", "", fmt.Sprintf("%d steps", d.Count), ""})

	tally := table.NewWriter()
	tally.SetStyle(table.StyleLight)
	tally.AppendHeader(table.Row{"Kind", "Count"})
	for _, kc := range countKinds(d.Steps) {
		tally.AppendRow(table.Row{kc.kind, kc.count})
	}

	return tbl.Render() + "\n\n" + tally.Render() + "\n"
}

type kindCount struct {
	kind  step.Kind
	count int
}

// countKinds tallies kinds in first-seen order.
func countKinds(entries []Entry) []kindCount {
	var out []kindCount
	index := make(map[step.Kind]int)
	for _, e := range entries {
		i, ok := index[e.Kind]
		if !ok {
			i = len(out)
			index[e.Kind] = i
			out = append(out, kindCount{kind: e.Kind})
		}
		out[i].count++
	}
	return out
}

// Summarize condenses a payload into one short line.
func Summarize(p step.Payload) string {
	switch p := p.(type) {
	case *step.Array:
		return fmt.Sprint(p.Values)
	case *step.Graph:
		parts := make([]string, 0, len(p.Order))
		for _, id := range p.Order {
			d, ok := p.Distances[id]
			if !ok {
				d = step.Infinity
			}
			parts = append(parts, id+"="+d.String())
		}
		return strings.Join(parts, " ")
	case *step.Table:
		if p.Row != step.Unset && p.Col != step.Unset {
			return fmt.Sprintf("[%d][%d]=%s", p.Row, p.Col, p.Cells[p.Row][p.Col])
		}
		return "result=" + p.Result.String()
	case *step.Board:
		return fmt.Sprint(p.Queens)
	default:
		return ""
	}
}
