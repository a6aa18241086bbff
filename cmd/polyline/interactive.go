package main

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/polyline/codec"
	"github.com/wippyai/polyline/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	latStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	lonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	badByteStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// span is the byte range of one varint in the inspected string.
type span struct {
	start int
	end   int // exclusive
}

type decodedRow struct {
	coord   codec.Coord[float64]
	latSpan span
	lonSpan span
}

type inspectModel struct {
	err       error
	input     textinput.Model
	precInput textinput.Model
	inspected string
	rows      []decodedRow
	focusIdx  int
	hasResult bool
}

func newInspectModel(precision uint) *inspectModel {
	in := textinput.New()
	in.Placeholder = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"
	in.Prompt = "polyline: "
	in.Width = 60
	in.Focus()

	prec := textinput.New()
	prec.Prompt = "precision: "
	prec.SetValue(strconv.FormatUint(uint64(precision), 10))
	prec.Width = 4

	return &inspectModel{input: in, precInput: prec}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if m.focusIdx == 0 {
				m.input.Blur()
				m.precInput.Focus()
			} else {
				m.precInput.Blur()
				m.input.Focus()
			}
			m.focusIdx = 1 - m.focusIdx

		case "enter":
			m.inspect()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.precInput, cmd = m.precInput.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *inspectModel) inspect() {
	m.rows = nil
	m.err = nil
	m.hasResult = false
	m.inspected = m.input.Value()

	precision, err := strconv.ParseUint(strings.TrimSpace(m.precInput.Value()), 10, 32)
	if err != nil {
		m.err = fmt.Errorf("bad precision: %w", err)
		return
	}

	coords, err := codec.DecodePolyline[float64](m.inspected, uint(precision))
	if err != nil {
		m.err = err
		return
	}

	spans := varintSpans(m.inspected)
	m.rows = make([]decodedRow, len(coords))
	for i, c := range coords {
		row := decodedRow{coord: c}
		if 2*i+1 < len(spans) {
			row.latSpan = spans[2*i]
			row.lonSpan = spans[2*i+1]
		}
		m.rows[i] = row
	}
	m.hasResult = true
}

// varintSpans splits a well-formed polyline into per-varint byte ranges
// using the group terminator rule: a group ends at the first byte whose
// offset-adjusted value drops below the continuation bit.
func varintSpans(s string) []span {
	var spans []span
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i]-63 < 0x20 {
			spans = append(spans, span{start: start, end: i + 1})
			start = i + 1
		}
	}
	if start < len(s) {
		spans = append(spans, span{start: start, end: len(s)})
	}
	return spans
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Polyline Inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.precInput.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
		if idx, ok := errorPosition(m.err); ok && idx < len(m.inspected) {
			b.WriteString(m.renderBadByte(idx))
			b.WriteString("\n")
		}

	case m.hasResult:
		b.WriteString(resultStyle.Render(fmt.Sprintf("%d coordinates", len(m.rows))))
		b.WriteString("\n\n")
		for i, row := range m.rows {
			b.WriteString(fmt.Sprintf("  %3d  %12.6f, %-12.6f  %s %s\n",
				i, row.coord.Lon, row.coord.Lat,
				latStyle.Render(m.sliceSpan(row.latSpan)),
				lonStyle.Render(m.sliceSpan(row.lonSpan))))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter decode • tab switch field • esc quit"))
	b.WriteString("\n")
	return b.String()
}

// renderBadByte reprints the inspected string with the failing byte
// highlighted.
func (m *inspectModel) renderBadByte(idx int) string {
	return m.inspected[:idx] +
		badByteStyle.Render(string(m.inspected[idx])) +
		m.inspected[idx+1:]
}

func (m *inspectModel) sliceSpan(sp span) string {
	if sp.end <= sp.start || sp.end > len(m.inspected) {
		return ""
	}
	return m.inspected[sp.start:sp.end]
}

func errorPosition(err error) (int, bool) {
	var perr *errors.Error
	if !stderrors.As(err, &perr) {
		return 0, false
	}
	return perr.Position()
}

func runInteractive(precision uint) error {
	p := tea.NewProgram(newInspectModel(precision), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
