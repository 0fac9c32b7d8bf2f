package tables_test

import (
	"strings"
	"testing"

	"triage/internal/tables"
)

func TestASCII_BasicTable(t *testing.T) {
	tb := tables.New(tables.ASCII)
	tb.Header("Intent", "Count")
	tb.Row("Billing Inquiry", 120)
	tb.Row("Refund Request", 45)
	out := tb.String()

	if !strings.Contains(out, "Intent") {
		t.Errorf("expected header 'Intent' in output:\n%s", out)
	}
	if !strings.Contains(out, "Billing Inquiry") {
		t.Errorf("expected 'Billing Inquiry' in output:\n%s", out)
	}
	// ASCII mode uses StyleLight which has box-drawing chars
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_BasicTable(t *testing.T) {
	tb := tables.New(tables.Markdown)
	tb.Header("Reason for Contact", "Count")
	tb.Row("Billing", 320)
	tb.Row("General", 101)
	out := tb.String()

	if !strings.Contains(out, "| Reason for Contact") {
		t.Errorf("expected markdown header with '| Reason for Contact':\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator '---':\n%s", out)
	}
	if !strings.Contains(out, "320") {
		t.Errorf("expected '320' in output:\n%s", out)
	}
}

func TestMarkdown_WithFooter(t *testing.T) {
	tb := tables.New(tables.Markdown)
	tb.Header("Intent", "Count")
	tb.Row("Other", 80)
	tb.Row("Technical Issue", 20)
	tb.Footer("TOTAL", 100)
	out := tb.String()

	if !strings.Contains(out, "TOTAL") {
		t.Errorf("expected footer 'TOTAL' in output:\n%s", out)
	}
	if !strings.Contains(out, "100") {
		t.Errorf("expected footer value '100' in output:\n%s", out)
	}
}

func TestColumns_RightAlign(t *testing.T) {
	tb := tables.New(tables.ASCII)
	tb.Header("Name", "Value")
	tb.Row("tickets", 12345)
	tb.Columns(tables.Column{Number: 2, Align: tables.AlignRight})
	out := tb.String()

	if !strings.Contains(out, "12345") {
		t.Errorf("expected '12345' in output:\n%s", out)
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want tables.Mode
	}{
		{"ascii", tables.ASCII},
		{"ASCII", tables.ASCII},
		{" ascii ", tables.ASCII},
		{"markdown", tables.Markdown},
		{"", tables.Markdown},
		{"anything", tables.Markdown},
	}
	for _, tc := range cases {
		if got := tables.ParseMode(tc.in); got != tc.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPct(t *testing.T) {
	cases := []struct {
		part, total int
		want        string
	}{
		{1, 2, "50.0%"},
		{425, 680, "62.5%"},
		{0, 100, "0.0%"},
		{5, 0, "0.0%"},
		{3, 3, "100.0%"},
	}
	for _, tc := range cases {
		if got := tables.Pct(tc.part, tc.total); got != tc.want {
			t.Errorf("Pct(%d, %d) = %q, want %q", tc.part, tc.total, got, tc.want)
		}
	}
}
