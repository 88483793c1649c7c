// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"
)

// formatEntry renders a value in the shortest form that round-trips; 2.0 prints
// as "2" and negative zero as "0".
func formatEntry(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String renders the matrix in brace-nested compact form, e.g. {{1, 2}, {3, 4}}.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('{')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatEntry(m.data[i*m.c+j]))
		}
		sb.WriteByte('}')
	}
	sb.WriteByte('}')

	return sb.String()
}

// Aligned renders one "|"-bordered line per row with right-aligned columns,
// each column as wide as its widest entry. Lines are separated by '\n' and
// there is no trailing newline:
//
//	|  1 -2 |
//	| 10  3 |
func (m *Dense) Aligned() string {
	if m == nil {
		return "<nil>"
	}
	cells := make([]string, len(m.data))
	widths := make([]int, m.c)
	for idx, v := range m.data {
		cells[idx] = formatEntry(v)
		if j := idx % m.c; len(cells[idx]) > widths[j] {
			widths[j] = len(cells[idx])
		}
	}

	lines := make([]string, m.r)
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.Reset()
		sb.WriteString("|")
		for j := 0; j < m.c; j++ {
			cell := cells[i*m.c+j]
			sb.WriteByte(' ')
			sb.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteString(" |")
		lines[i] = sb.String()
	}

	return strings.Join(lines, "\n")
}
