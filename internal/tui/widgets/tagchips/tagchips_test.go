package tagchips

import (
	"strings"
	"testing"

	"click-to-edit/internal/tui/util"
)

func TestViewNoColor(t *testing.T) {
	out := View(util.ComputeTags("Atlas", 32, true), true)

	wants := []string{"[Edited]", "[Len 5]", "[Max 32]"}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output: %s", w, out)
		}
	}
	if strings.Index(out, "[Edited]") > strings.Index(out, "[Len 5]") {
		t.Fatalf("unstable order: %s", out)
	}
}

func TestViewEmpty(t *testing.T) {
	if out := View(nil, true); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
	if out := View(util.ComputeTags("", 0, false), true); !strings.Contains(out, "[Empty]") {
		t.Fatalf("expected empty chip, got %q", out)
	}
}
