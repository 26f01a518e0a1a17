package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != "Dracula" || names[1] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Dracula Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Slate" {
		t.Fatalf("NextTheme(Dracula) = %q, want Slate", got)
	}
	if got := NextTheme("Slate"); got != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want Dracula", got)
	}
	if got := NextTheme("Unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(Unknown) = %q, want Dracula", got)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("nope").Name; got != "Dracula" {
		t.Fatalf("GetTheme(nope).Name = %q, want Dracula", got)
	}
}

func TestThemesNameAGlamourStyle(t *testing.T) {
	for _, name := range ThemeNames() {
		if GetTheme(name).GlamourStyle == "" {
			t.Fatalf("theme %s has no glamour style", name)
		}
	}
}

func TestBorderColorFollowsFocus(t *testing.T) {
	th := GetTheme("Slate")
	if got := string(th.BorderColor(true)); got != th.BorderFocus {
		t.Fatalf("BorderColor(true) = %q, want %q", got, th.BorderFocus)
	}
	if got := string(th.BorderColor(false)); got != th.Border {
		t.Fatalf("BorderColor(false) = %q, want %q", got, th.Border)
	}
}
