package display

import (
	"fmt"
	"sort"
	"strings"

	"bstat/domain/dataset"
)

// TableConfig controls column selection, ordering, and formatting. The zero
// value renders every column of the first row in sorted key order.
type TableConfig struct {
	ColumnNames  []string
	SortKey      string
	Reverse      bool
	DefaultValue interface{}
	// Formatters maps a column name to either a format string ("%02d") or a
	// CellFormatter. Columns without an entry get an automatic formatter.
	Formatters map[string]interface{}
	Titles     map[string]string
}

// Table knows how to display a dataset as fixed-width text, CSV, or HTML.
type Table struct {
	data         dataset.Rows
	columnNames  []string
	defaultValue interface{}
	formatters   []CellFormatter
	columnTitles []string
	columnWidths []int
}

// NewTable prepares a table over data. Column widths are sized from the
// column titles and the first data row.
func NewTable(data dataset.Rows, cfg TableConfig) *Table {
	columnNames := cfg.ColumnNames
	if columnNames == nil {
		columnNames = data.Keys()
	}

	rows := data
	if cfg.SortKey != "" {
		rows = make(dataset.Rows, len(data))
		copy(rows, data)
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i][cfg.SortKey], rows[j][cfg.SortKey]
			if cfg.Reverse {
				a, b = b, a
			}
			return lessValue(a, b)
		})
	}

	t := &Table{
		data:         rows,
		columnNames:  columnNames,
		defaultValue: cfg.DefaultValue,
	}

	t.formatters = make([]CellFormatter, len(columnNames))
	for i, col := range columnNames {
		t.formatters[i] = t.makeFormatter(col, cfg.Formatters)
	}

	t.columnTitles = make([]string, len(columnNames))
	for i, col := range columnNames {
		if title, ok := cfg.Titles[col]; ok {
			t.columnTitles[i] = title
		} else {
			t.columnTitles[i] = col
		}
	}

	t.columnWidths = make([]int, len(columnNames))
	for i, col := range columnNames {
		width := len(t.columnTitles[i])
		if len(rows) > 0 {
			if w := len(t.formatters[i](t.cell(rows[0], col))); w > width {
				width = w
			}
		}
		t.columnWidths[i] = width
	}
	return t
}

func (t *Table) makeFormatter(column string, explicit map[string]interface{}) CellFormatter {
	if f, ok := explicit[column]; ok {
		switch formatter := f.(type) {
		case string:
			return func(v interface{}) string { return fmt.Sprintf(formatter, v) }
		case CellFormatter:
			return formatter
		case func(interface{}) string:
			return formatter
		}
	}
	values := make([]interface{}, len(t.data))
	for i, row := range t.data {
		values[i] = t.cell(row, column)
	}
	return NewCellFormatter(values)
}

func (t *Table) cell(row dataset.Row, column string) interface{} {
	if v, ok := row[column]; ok {
		return v
	}
	return t.defaultValue
}

// String renders the table with a title row between double rules.
func (t *Table) String() string {
	totalWidth := 1
	for _, w := range t.columnWidths {
		totalWidth += 3 + w
	}
	rule := "|" + strings.Repeat("=", totalWidth-2) + "|\n"

	var b strings.Builder
	b.WriteString(rule)
	b.WriteString("| ")
	for i, title := range t.columnTitles {
		b.WriteString(pad(title, t.columnWidths[i]))
		b.WriteString(" | ")
	}
	b.WriteString("\n")
	b.WriteString("|" + strings.Repeat("-", totalWidth-2) + "|\n")

	for _, row := range t.data {
		b.WriteString("| ")
		for i, col := range t.columnNames {
			b.WriteString(pad(t.formatters[i](t.cell(row, col)), t.columnWidths[i]))
			b.WriteString(" | ")
		}
		b.WriteString("\n")
	}
	b.WriteString(rule)
	return b.String()
}

// CSV renders the table as comma-separated values with a title header.
func (t *Table) CSV() string {
	lines := []string{strings.Join(t.columnTitles, ",")}
	for _, row := range t.data {
		cells := make([]string, len(t.columnNames))
		for i, col := range t.columnNames {
			cells[i] = strings.TrimSpace(t.formatters[i](t.cell(row, col)))
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n") + "\n"
}

// HTML renders the table as an HTML table element.
func (t *Table) HTML() string {
	var lines []string
	lines = append(lines, "<table>", "  <tbody>", "    <tr>")
	for _, title := range t.columnTitles {
		lines = append(lines, fmt.Sprintf("      <th>%s</th>", title))
	}
	lines = append(lines, "    </tr>")
	for _, row := range t.data {
		lines = append(lines, "    <tr>")
		for i, col := range t.columnNames {
			value := strings.TrimSpace(t.formatters[i](t.cell(row, col)))
			lines = append(lines, fmt.Sprintf("      <td>%s</td>", value))
		}
		lines = append(lines, "    </tr>")
	}
	lines = append(lines, "  <tbody>", "</table>")
	return strings.Join(lines, "\n") + "\n"
}

// pad right-justifies s into width columns, truncating when too long.
func pad(s string, width int) string {
	if len(s) < width {
		return strings.Repeat(" ", width-len(s)) + s
	}
	return s[:width]
}

// lessValue orders cells numerically when both sides are numbers and by
// string rendering otherwise.
func lessValue(a, b interface{}) bool {
	fa, okA := dataset.AsNumber(a)
	fb, okB := dataset.AsNumber(b)
	if okA && okB {
		return fa < fb
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
