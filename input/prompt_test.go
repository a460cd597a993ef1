package input

import (
	"errors"
	"strings"
	"testing"

	"growth-projector/domain"
)

func TestPrompter_Fill_AsksInOrder(t *testing.T) {
	in := strings.NewReader("1000\n5\n12\n1\n0\n")
	var out strings.Builder

	raw, err := NewPrompter(in, &out).Fill(RawInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := PromptPrincipal + PromptAnnualRate + PromptCompounds + PromptYears + PromptContribution
	if out.String() != want {
		t.Errorf("unexpected prompts:\n got: %q\nwant: %q", out.String(), want)
	}

	expected := RawInput{Principal: "1000", AnnualRate: "5", CompoundsPerYear: "12", Years: "1", MonthlyContribution: "0"}
	if raw != expected {
		t.Errorf("expected %+v, got %+v", expected, raw)
	}
}

func TestPrompter_Fill_SkipsSuppliedFields(t *testing.T) {
	in := strings.NewReader("2\n")
	var out strings.Builder

	raw, err := NewPrompter(in, &out).Fill(RawInput{
		Principal:           "1000",
		AnnualRate:          "5",
		CompoundsPerYear:    "12",
		MonthlyContribution: "50",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.String() != PromptYears {
		t.Errorf("expected only the years prompt, got %q", out.String())
	}
	if raw.Years != "2" {
		t.Errorf("expected years 2, got %q", raw.Years)
	}
}

func TestPrompter_Fill_EOF(t *testing.T) {
	in := strings.NewReader("1000\n5\n")
	var out strings.Builder

	_, err := NewPrompter(in, &out).Fill(RawInput{})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	var inputErr *domain.InputError
	if !errors.As(err, &inputErr) || inputErr.Field != domain.FieldCompoundsPerYear {
		t.Errorf("expected error on compounds per year, got %v", err)
	}
}
