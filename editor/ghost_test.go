package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func ghostConfig(t *testing.T) Config {
	t.Helper()
	cfg := testConfig(t)
	cfg.InlineSuggestion = true
	return cfg
}

func TestGhost_ShowsRestOfSelectedShortcode(t *testing.T) {
	m := typeText(New(ghostConfig(t)), ":sm")
	if got, want := m.renderContent(), ":sm ile:"; got != want {
		t.Fatalf("content=%q, want %q", got, want)
	}

	m = press(m, tea.KeyDown)
	if got, want := m.renderContent(), ":sm iley:"; got != want {
		t.Fatalf("content after down=%q, want %q", got, want)
	}
}

func TestGhost_RightAccepts(t *testing.T) {
	m := typeText(New(ghostConfig(t)), "hi :ta")
	m = press(m, tea.KeyRight)
	if got, want := m.Value(), "hi \U0001F389 "; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
}

func TestGhost_HiddenWhenDisabledOrMidLine(t *testing.T) {
	m := typeText(New(testConfig(t)), ":sm")
	if got, want := m.renderContent(), ":sm "; got != want {
		t.Fatalf("content=%q, want %q", got, want)
	}

	cfg := ghostConfig(t)
	cfg.Text = " end"
	m = typeText(New(cfg), ":sm")
	if _, ok := m.ghostText(); ok {
		t.Fatalf("ghost shown with text after the cursor")
	}
	m = press(m, tea.KeyRight)
	if got, want := m.Value(), ":sm end"; got != want {
		t.Fatalf("right accepted without ghost: value=%q, want %q", got, want)
	}
	if got := m.Buffer().Cursor().GraphemeCol; got != 4 {
		t.Fatalf("cursor col=%d, want 4", got)
	}
}
