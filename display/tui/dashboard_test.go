package tui

import (
	"strings"
	"testing"
)

func TestRenderDashboardContainsAllSections(t *testing.T) {
	out := RenderDashboard(testFrame(false))

	for _, want := range []string{
		"System Monitor",
		"CPU Usage",
		"RAM Usage",
		"CPU: [",
		"RAM: [",
		"12.4 / 31.9 GiB",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestRenderDashboardHasBorder(t *testing.T) {
	out := RenderDashboard(testFrame(false))

	if !strings.Contains(out, "╭") || !strings.Contains(out, "╰") {
		t.Error("expected rounded border corners")
	}
}

func TestInjectTitle(t *testing.T) {
	panel := "╭──────────────────╮\n│ body             │\n╰──────────────────╯"

	out := injectTitle(panel, "Title")
	topLine := strings.SplitN(out, "\n", 2)[0]

	if !strings.Contains(topLine, " Title ") {
		t.Errorf("top border missing title: %q", topLine)
	}
	// Width unchanged: the label overwrites border runes one-for-one.
	if got, want := len([]rune(topLine)), len([]rune("╭──────────────────╮")); got != want {
		t.Errorf("top border width = %d, want %d", got, want)
	}
}

func TestInjectTitleTooNarrow(t *testing.T) {
	panel := "╭────╮\n│ b  │\n╰────╯"

	out := injectTitle(panel, "A Very Long Title")
	if out != panel {
		t.Error("expected panel unchanged when title does not fit")
	}
}

func TestInjectTitleEmptyTitle(t *testing.T) {
	panel := "╭────╮\n│ b  │\n╰────╯"
	if out := injectTitle(panel, ""); out != panel {
		t.Error("expected panel unchanged for empty title")
	}
}
