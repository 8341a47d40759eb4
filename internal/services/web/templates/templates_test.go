package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/oakleafmed/medterm/internal/services/web/i18n"
)

func renderToString(t *testing.T, render func(w *strings.Builder) error) string {
	t.Helper()
	var sb strings.Builder
	if err := render(&sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func TestLookupPageRendersFormAndExamples(t *testing.T) {
	loc := i18n.Printer()
	out := renderToString(t, func(w *strings.Builder) error {
		return LookupPage(LookupPageParams{
			Loc:      loc,
			Lang:     "en",
			AppName:  "MedTerm",
			Examples: []string{"Tachycardia", "Edema"},
		}).Render(context.Background(), w)
	})

	for _, want := range []string{
		`<html lang="en"`,
		"<title>MedTerm | Medical Terminology Explainer</title>",
		`hx-post="/lookup"`,
		`hx-target="#lookup-output"`,
		`hx-sync="this:drop"`,
		`hx-disabled-elt="#lookup-input, #lookup-submit"`,
		`id="lookup-loading"`,
		`data-term="Tachycardia"`,
		`data-term="Edema"`,
		`<div id="lookup-output">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestLookupPageEscapesTerm(t *testing.T) {
	loc := i18n.Printer()
	out := renderToString(t, func(w *strings.Builder) error {
		return LookupPage(LookupPageParams{
			Loc:     loc,
			AppName: "MedTerm",
			Term:    `<script>alert("x")</script>`,
		}).Render(context.Background(), w)
	})

	if strings.Contains(out, `<script>alert`) {
		t.Fatal("term rendered unescaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("term not escaped")
	}
}

func TestLookupOutputRendersToastAndResult(t *testing.T) {
	loc := i18n.Printer()
	out := renderToString(t, func(w *strings.Builder) error {
		return LookupOutput(loc,
			&ToastView{Kind: "error", Message: "Something went wrong."},
			&ResultView{Term: "Anemia", Explanation: "A shortage of red blood cells."},
		).Render(context.Background(), w)
	})

	for _, want := range []string{
		"alert alert-error",
		"Something went wrong.",
		"What &#34;Anemia&#34; means",
		"A shortage of red blood cells.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestLookupOutputEmpty(t *testing.T) {
	loc := i18n.Printer()
	out := renderToString(t, func(w *strings.Builder) error {
		return LookupOutput(loc, nil, nil).Render(context.Background(), w)
	})
	if out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestToastWarningStyling(t *testing.T) {
	out := renderToString(t, func(w *strings.Builder) error {
		return Toast(ToastView{Kind: "warning", Message: "Please enter a medical term."}).Render(context.Background(), w)
	})
	if !strings.Contains(out, "alert alert-warning") {
		t.Error("warning toast missing alert-warning class")
	}
	if !strings.Contains(out, `class="toast-dismiss"`) {
		t.Error("toast missing dismiss button")
	}
}
