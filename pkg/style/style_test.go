package style

import (
	"strings"
	"testing"
)

func TestDisabledStylesAreIdentity(t *testing.T) {
	DisableColor()

	if got := Key("name"); got != "name" {
		t.Fatalf("Key = %q", got)
	}
	if got := Type("map"); got != "map" {
		t.Fatalf("Type = %q", got)
	}
	if got := Str(`"v"`); got != `"v"` {
		t.Fatalf("Str = %q", got)
	}
	if got := Num("3.5"); got != "3.5" {
		t.Fatalf("Num = %q", got)
	}
	if got := Cnt(42); got != "42" {
		t.Fatalf("Cnt = %q", got)
	}
	if got := Bool(true); got != "true" {
		t.Fatalf("Bool = %q", got)
	}
	if got := Bool(false); got != "false" {
		t.Fatalf("Bool = %q", got)
	}
}

func TestColorToggle(t *testing.T) {
	EnableColor()
	if !ColorEnabled() {
		t.Fatal("expected color enabled")
	}
	DisableColor()
	if ColorEnabled() {
		t.Fatal("expected color disabled")
	}
}

func TestFormatJSONFromValue(t *testing.T) {
	out, err := FormatJSON(map[string]any{"a": 1})
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	if !strings.Contains(out, `"a": 1`) {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("output must end with newline")
	}
}

func TestFormatJSONFromRawText(t *testing.T) {
	out, err := FormatJSON(`{"a":[1,2]}`)
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	want := "{\n  \"a\": [\n    1,\n    2\n  ]\n}\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestFormatJSONInvalid(t *testing.T) {
	if _, err := FormatJSON("{nope"); err == nil {
		t.Fatal("expected error for invalid JSON text")
	}
}

func TestColorizeDisabledPassthrough(t *testing.T) {
	DisableColor()
	in := "{\n  \"a\": true\n}\n"
	if got := colorizeJSON(in); got != in {
		t.Fatalf("colorizeJSON should be passthrough when disabled, got %q", got)
	}
}
