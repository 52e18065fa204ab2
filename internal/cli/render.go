package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/chartscale/scale"
)

// Colour palette for the text output.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	typeStyles = map[scale.DataType]lipgloss.Style{
		scale.TypeNumber:      lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		scale.TypeLogarithmic: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		scale.TypeTime:        lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		scale.TypeCategorical: lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
)

// maxListed caps how many domain entries or ticks a text line shows.
const maxListed = 12

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func typeLabel(t scale.DataType) string {
	if st, ok := typeStyles[t.Canonical()]; ok {
		return st.Render(t.String())
	}
	return t.String()
}

func fieldWidth(fields []string) int {
	w := 0
	for _, f := range fields {
		w = max(w, lipgloss.Width(f))
	}
	return w + 2
}

// renderInferences prints one aligned "field  type" line per row.
func renderInferences(w io.Writer, rows []inference) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No fields found.")
		return
	}
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Field
	}
	col := lipgloss.NewStyle().Width(fieldWidth(names))
	for _, r := range rows {
		fmt.Fprintln(w, col.Render(r.Field)+typeLabel(r.Type))
	}
}

// renderReport prints a multi-line summary of one axis.
func renderReport(w io.Writer, rep axisReport) {
	fmt.Fprintf(w, "%s  %s  %s\n", titleStyle.Render(rep.Field), typeLabel(rep.Type),
		labelStyle.Render(fmt.Sprintf("%d values", rep.Values)))

	line := func(label, value string) {
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Width(10).Render(label), value)
	}
	if rep.Type.Continuous() && len(rep.Domain) == 2 {
		line("domain", rep.Domain[0].String()+" … "+rep.Domain[1].String())
	} else {
		keys := make([]string, len(rep.Domain))
		for i, v := range rep.Domain {
			keys[i] = v.String()
		}
		line("domain", list(keys))
	}
	if rep.Range != nil {
		line("range", formatFloat(rep.Range[0])+" … "+formatFloat(rep.Range[1]))
	}
	if len(rep.Ticks) > 0 {
		ticks := make([]string, len(rep.Ticks))
		for i, t := range rep.Ticks {
			ticks[i] = formatFloat(t)
		}
		line("ticks", list(ticks))
	}
	if rep.Bands != nil {
		line("step", formatFloat(rep.Step))
		line("bandwidth", formatFloat(rep.Bandwidth))
	}
}

func formatFloat(f float64) string {
	return scale.Number(f).String()
}

// list joins items, eliding the middle of long lists.
func list(items []string) string {
	if len(items) == 0 {
		return "(empty)"
	}
	if len(items) > maxListed {
		head := items[:maxListed/2]
		tail := items[len(items)-maxListed/2:]
		return strings.Join(head, " ") + fmt.Sprintf(" … (%d more) … ", len(items)-maxListed) + strings.Join(tail, " ")
	}
	return strings.Join(items, " ")
}
