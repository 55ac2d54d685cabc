package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/lifeline/savings-calculator/internal/domain"
)

// Theme colors (Flexoki Dark)
var (
	colorBorder    = lipgloss.Color("#282726")
	colorTextMuted = lipgloss.Color("#6F6E69")
	colorText      = lipgloss.Color("#FFFCF0")
	colorAccent    = lipgloss.Color("#3AA99F")
	colorGreen     = lipgloss.Color("#879A39")
	colorRed       = lipgloss.Color("#D14D41")
	colorYellow    = lipgloss.Color("#D0A215")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	goodStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	badStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	barStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

const chartWidth = 50

// ConsoleFormatter renders the projection as styled terminal output: an
// input summary, the yearly table, a verdict line, the break-even section,
// and an ASCII trajectory chart of year-end balances. The Plain variant
// skips all styling for pipes and dumb terminals.
type ConsoleFormatter struct {
	Plain bool
}

func (c ConsoleFormatter) Name() string {
	if c.Plain {
		return "console-plain"
	}
	return "console"
}

func (c ConsoleFormatter) render(s lipgloss.Style, text string) string {
	if c.Plain {
		return text
	}
	return s.Render(text)
}

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}

	c.writeTitle(buf)
	c.writeInputs(buf, report.Input)
	c.writeYearlyTable(buf, report.Result.Snapshots)
	c.writeVerdict(buf, &report.Result)
	c.writeBreakEven(buf, report.BreakEven)
	c.writeChart(buf, report.Result.Snapshots)

	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeTitle(buf *bytes.Buffer) {
	title := "SAVINGS LIFELINE PROJECTION"
	if c.Plain {
		fmt.Fprintf(buf, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
		return
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)
	buf.WriteString(box.Render(titleStyle.Render(title)))
	buf.WriteString("\n\n")
}

func (c ConsoleFormatter) writeInputs(buf *bytes.Buffer, in domain.ProjectionInput) {
	fmt.Fprintf(buf, "  %s %s\n", c.render(mutedStyle, "Principal:      "), FormatCurrency(in.Principal))
	fmt.Fprintf(buf, "  %s %s\n", c.render(mutedStyle, "Annual return:  "), FormatRate(in.AnnualReturn))
	fmt.Fprintf(buf, "  %s %s\n\n", c.render(mutedStyle, "Monthly expense:"), FormatCurrency(in.MonthlyExpense))
}

func (c ConsoleFormatter) writeYearlyTable(buf *bytes.Buffer, snapshots []domain.YearlySnapshot) {
	if len(snapshots) == 0 {
		buf.WriteString("  " + c.render(warnStyle, "No yearly data: the principal was exhausted immediately.") + "\n\n")
		return
	}

	headers := []string{"Year", "Start", "Return %", "Returns", "Charity", "Expenses", "End"}
	rows := make([][]string, 0, len(snapshots))
	for _, snap := range snapshots {
		rows = append(rows, []string{
			fmt.Sprintf("%d", snap.Year),
			FormatCurrency(snap.StartPrincipal),
			FormatPercent(snap.ReturnPercent),
			FormatCurrency(snap.TotalReturns),
			FormatCurrency(snap.CharityPaid),
			FormatCurrency(snap.TotalExpenses),
			FormatCurrency(snap.EndPrincipal),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var header strings.Builder
	header.WriteString("  ")
	for i, h := range headers {
		header.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	buf.WriteString(c.render(headerStyle, strings.TrimRight(header.String(), " ")))
	buf.WriteString("\n")

	for _, row := range rows {
		buf.WriteString("  ")
		for i, cell := range row {
			fmt.Fprintf(buf, "%*s  ", widths[i], cell)
		}
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
}

func (c ConsoleFormatter) writeVerdict(buf *bytes.Buffer, result *domain.ProjectionResult) {
	switch {
	case result.IndefiniteGrowth:
		fmt.Fprintf(buf, "  %s\n\n", c.render(goodStyle, fmt.Sprintf(
			"The principal grows indefinitely; balance at %d years is approximately %s.",
			result.FullYears, FormatCurrency(result.FinalPrincipal))))
	case result.Depleted():
		fmt.Fprintf(buf, "  %s\n\n", c.render(badStyle, fmt.Sprintf(
			"Your savings will last for approximately %d years and %d months.",
			result.FullYears, result.RemainingMonths)))
	default:
		fmt.Fprintf(buf, "  %s\n\n", c.render(warnStyle, fmt.Sprintf(
			"The runway exceeds the %d-year horizon; %s remains but the balance is declining.",
			result.FullYears, FormatCurrency(result.FinalPrincipal))))
	}
}

func (c ConsoleFormatter) writeBreakEven(buf *bytes.Buffer, be *domain.BreakEvenSummary) {
	if be == nil {
		return
	}
	buf.WriteString(c.render(headerStyle, "  Break-even"))
	buf.WriteString("\n")
	if be.Sustainable {
		fmt.Fprintf(buf, "  Sustainable monthly expense: %s\n", FormatCurrency(be.SustainableExpense))
	} else {
		fmt.Fprintf(buf, "  Sustainable monthly expense: %s\n",
			c.render(badStyle, "none (return does not cover the charity deduction)"))
	}
	fmt.Fprintf(buf, "  Required annual return:      %s\n\n", FormatRate(be.RequiredReturn))
}

// writeChart draws a horizontal bar per year, scaled to the largest year-end
// balance.
func (c ConsoleFormatter) writeChart(buf *bytes.Buffer, snapshots []domain.YearlySnapshot) {
	if len(snapshots) == 0 {
		return
	}
	maxEnd := decimal.Zero
	for _, snap := range snapshots {
		if snap.EndPrincipal.GreaterThan(maxEnd) {
			maxEnd = snap.EndPrincipal
		}
	}
	if !maxEnd.GreaterThan(decimal.Zero) {
		return
	}

	buf.WriteString(c.render(headerStyle, "  Trajectory"))
	buf.WriteString("\n")
	scale := decimal.NewFromInt(chartWidth).Div(maxEnd)
	for _, snap := range snapshots {
		n := int(snap.EndPrincipal.Mul(scale).IntPart())
		if n < 0 {
			n = 0
		}
		if n > chartWidth {
			n = chartWidth
		}
		bar := strings.Repeat("█", n)
		fmt.Fprintf(buf, "  %3d %s %s\n", snap.Year, c.render(barStyle, bar), FormatCurrency(snap.EndPrincipal))
	}
	buf.WriteString("\n")
}
