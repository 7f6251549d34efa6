package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/volunteerhub/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainTextUnchanged(t *testing.T) {
	if got := htmlsanitize.Sanitize("Help pack meals for 40 families."); got != "Help pack meals for 40 families." {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_PreservesFormatting(t *testing.T) {
	input := "<p><strong>Saturday</strong> and <em>Sunday</em></p>"
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("expected safe HTML preserved, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>Hello</p><script>alert('xss')</script>")
	if got != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesEventHandlers(t *testing.T) {
	input := `<img src="x" onerror="alert('xss')">`
	got := htmlsanitize.Sanitize(input)
	if strings.Contains(got, "onerror") {
		t.Errorf("expected onerror attribute removed, got %q", got)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	input := `<a href="javascript:alert('xss')">Click</a>`
	got := htmlsanitize.Sanitize(input)
	if strings.Contains(got, "javascript:") {
		t.Errorf("expected javascript: href removed, got %q", got)
	}
}

func TestPlainText_StripsAllMarkup(t *testing.T) {
	got := htmlsanitize.PlainText("<b>I can</b> bring a <a href='x'>truck</a>")
	if got != "I can bring a truck" {
		t.Errorf("expected all markup stripped, got %q", got)
	}
}
