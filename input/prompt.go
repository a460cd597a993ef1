package input

import (
	"bufio"
	"fmt"
	"io"

	"growth-projector/domain"
)

// Prompt labels, in the order they are asked.
const (
	PromptPrincipal    = "Enter principal: "
	PromptAnnualRate   = "Enter annual rate: "
	PromptCompounds    = "Enter number of times that the interest is compounded per year: "
	PromptYears        = "Time in years: "
	PromptContribution = "Enter monthly contribution amount: "
)

// Prompter asks for missing inputs one line at a time.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Fill prompts for every empty field of raw and returns the completed input.
func (p *Prompter) Fill(raw RawInput) (RawInput, error) {
	fields := []struct {
		prompt string
		field  string
		value  *string
	}{
		{PromptPrincipal, domain.FieldPrincipal, &raw.Principal},
		{PromptAnnualRate, domain.FieldAnnualRate, &raw.AnnualRate},
		{PromptCompounds, domain.FieldCompoundsPerYear, &raw.CompoundsPerYear},
		{PromptYears, domain.FieldYears, &raw.Years},
		{PromptContribution, domain.FieldMonthlyContribution, &raw.MonthlyContribution},
	}

	for _, f := range fields {
		if *f.value != "" {
			continue
		}
		answer, err := p.Ask(f.prompt, f.field)
		if err != nil {
			return RawInput{}, err
		}
		*f.value = answer
	}

	return raw, nil
}

// Ask writes prompt and returns the next input line.
func (p *Prompter) Ask(prompt, field string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read %s: %w", field, err)
		}
		return "", domain.NewInputError(field, nil, "no value entered")
	}
	return p.scanner.Text(), nil
}
