package ui

import "testing"

func TestGetTheme_KnownAndFallback(t *testing.T) {
	if got := GetTheme(ThemeLight); got.Name != "Light" {
		t.Errorf("GetTheme(light).Name = %q", got.Name)
	}
	if got := GetTheme(ThemeName("nope")); got.Name != BuiltinThemes[DefaultTheme].Name {
		t.Errorf("GetTheme(unknown) did not fall back to default, got %q", got.Name)
	}
}

func TestSetTheme_UpdatesCurrentAndStyles(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetTheme(ThemeLight)
	if CurrentThemeName() != ThemeLight {
		t.Errorf("CurrentThemeName() = %q after SetTheme(light)", CurrentThemeName())
	}
	if CurrentTheme().Name != "Light" {
		t.Errorf("CurrentTheme().Name = %q", CurrentTheme().Name)
	}
}

func TestSetThemeByName(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetThemeByName("light")
	if CurrentThemeName() != ThemeLight {
		t.Errorf("CurrentThemeName() = %q after SetThemeByName(light)", CurrentThemeName())
	}

	// Unknown names fall back to the default theme
	SetThemeByName("banana")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("CurrentThemeName() = %q after unknown name", CurrentThemeName())
	}
}

func TestThemeNames_Order(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 || names[0] != ThemeDark || names[1] != ThemeLight {
		t.Errorf("ThemeNames() = %v", names)
	}
}

func TestTheme_BorderFocusDefault(t *testing.T) {
	th := Theme{Primary: "#112233"}
	if got := th.GetBorderFocus(); got != "#112233" {
		t.Errorf("GetBorderFocus() = %q, want Primary fallback", got)
	}
	th.BorderFocus = "#445566"
	if got := th.GetBorderFocus(); got != "#445566" {
		t.Errorf("GetBorderFocus() = %q", got)
	}
}
