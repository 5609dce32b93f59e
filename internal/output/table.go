package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableStyle defines the style for table output.
type TableStyle struct {
	// Border is the border style.
	Border lipgloss.Border

	// BorderStyle styles the borders.
	BorderStyle lipgloss.Style

	// HeaderStyle is the style for header cells.
	HeaderStyle lipgloss.Style

	// CellStyle is the style for regular cells.
	CellStyle lipgloss.Style
}

// DefaultTableStyle returns the default table style.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.NormalBorder(),
		BorderStyle: StyleDim,
		HeaderStyle: StyleSummary,
		CellStyle:   lipgloss.NewStyle(),
	}
}

// Table represents a styled table.
type Table struct {
	headers []string
	rows    [][]string
	style   TableStyle

	// cellStyle, when set, overrides the style of individual body cells.
	cellStyle func(row, col int) (lipgloss.Style, bool)
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, style: DefaultTableStyle()}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// String renders the table as a string.
func (t *Table) String() string {
	tbl := table.New().
		Border(t.style.Border).
		BorderStyle(t.style.BorderStyle).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.style.HeaderStyle
			}
			if t.cellStyle != nil {
				if s, ok := t.cellStyle(row, col); ok {
					return s
				}
			}
			return t.style.CellStyle
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}

// StepResult is the outcome of one shell step in a batch.
type StepResult struct {
	Env     string
	App     string
	Step    string
	Outcome string
}

// RenderStepTable renders a summary of batch steps. Outcomes are colored by
// StepStyle.
func RenderStepTable(steps []StepResult) string {
	t := NewTable("VENV", "APP", "STEP", "RESULT")
	for _, s := range steps {
		t.Row(s.Env, s.App, s.Step, s.Outcome)
	}
	t.cellStyle = func(row, col int) (lipgloss.Style, bool) {
		if col != 3 || row < 0 || row >= len(steps) {
			return lipgloss.Style{}, false
		}
		return StepStyle(steps[row].Outcome), true
	}
	return t.String()
}
