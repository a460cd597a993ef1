// Package report renders projections for the console.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"growth-projector/domain"
)

const (
	// DefaultDecimals is the number of decimal places printed for amounts.
	DefaultDecimals = 2
	// MaxDecimals bounds the decimal places accepted for amounts.
	MaxDecimals = 20
)

// WriteInputs echoes the five inputs.
func WriteInputs(w io.Writer, in domain.ProjectionInput) error {
	lines := []string{
		"The principal entered is: " + plain(in.Principal),
		"The annual rate in decimal form is: " + plain(in.Rate()),
		"The number of times it will be compounded per year is: " + strconv.Itoa(in.CompoundsPerYear),
		"The number of years it will be compounded: " + plain(in.Years),
		"The monthly contribution is: " + plain(in.MonthlyContribution),
	}
	return writeLines(w, lines)
}

// WriteResult prints the compounded principal, the future value of the
// contributions and their sum.
func WriteResult(w io.Writer, r domain.ProjectionResult, decimals int) error {
	lines := []string{
		"The compound interest plus the principal is: " + FormatAmount(r.CompoundedPrincipal, decimals),
		"Future value with deposits: " + FormatAmount(r.ContributionFutureValue, decimals),
		"Total Amount: " + FormatAmount(r.TotalAmount, decimals),
	}
	return writeLines(w, lines)
}

// WriteSchedule prints the year-by-year breakdown as a table.
func WriteSchedule(w io.Writer, s domain.ProjectionSchedule, decimals int) error {
	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell.Bold(true)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Year", "Contributed", "Interest", "Balance").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, e := range s.Entries {
		t.Row(
			plain(e.Year),
			FormatAmount(e.Contributed, decimals),
			FormatAmount(e.InterestEarned, decimals),
			FormatAmount(e.Balance, decimals),
		)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// FormatAmount rounds v half away from zero to the given number of decimal
// places. A negative count prints the shortest exact representation.
func FormatAmount(v float64, decimals int) string {
	if decimals < 0 {
		return plain(v)
	}
	if decimals > MaxDecimals {
		decimals = MaxDecimals
	}
	return decimal.NewFromFloat(v).StringFixed(int32(decimals))
}

func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
