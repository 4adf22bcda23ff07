package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-leveler/leveler"
)

var (
	stemUpStyle   = ValueStyle.Foreground(primaryColor)
	stemDownStyle = ValueStyle.Foreground(downColor)
)

// StemPlot renders a gain curve as a vertical stem chart with rows rows
// above and below the 0 dB axis. Every block is one column.
func StemPlot(c leveler.GainCurve, rows int) string {
	if rows < 1 {
		rows = 1
	}
	if len(c.Points) == 0 {
		return ""
	}
	lo, hi := c.Range()
	scale := math.Max(math.Abs(lo), math.Abs(hi))
	if scale == 0 {
		scale = 1
	}

	levels := make([]int, len(c.Points))
	for i, p := range c.Points {
		levels[i] = int(math.Round(p.GainDB / scale * float64(rows)))
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("Phase %d gain per block (dB)", c.Phase)))
	sb.WriteString("\n")
	for r := rows; r >= -rows; r-- {
		label := "      "
		switch r {
		case rows:
			label = fmt.Sprintf("%+6.1f", scale)
		case 0:
			label = "   0.0"
		case -rows:
			label = fmt.Sprintf("%+6.1f", -scale)
		}
		sb.WriteString(KeyStyle.Render(label))
		sb.WriteString(" ")
		for _, lv := range levels {
			sb.WriteString(stemCell(lv, r))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func stemCell(level, row int) string {
	switch {
	case row == level && level > 0:
		return stemUpStyle.Render("●")
	case row == level && level < 0:
		return stemDownStyle.Render("●")
	case row == 0 && level == 0:
		return ValueStyle.Render("●")
	case row == 0:
		return KeyStyle.Render("─")
	case level > 0 && row > 0 && row < level:
		return stemUpStyle.Render("│")
	case level < 0 && row < 0 && row > level:
		return stemDownStyle.Render("│")
	}
	return " "
}
