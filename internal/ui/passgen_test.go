package ui

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"rpg/internal/passgen"
)

func TestReadSettingsUsesConfigDefaults(t *testing.T) {
	resetUITestState(t)

	got, err := readSettings()
	if err != nil {
		t.Fatalf("readSettings: %v", err)
	}
	want := passgen.Config{Length: 16, Classes: passgen.AllClasses, EnforceDiversity: true}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestReadSettingsReflectsForm(t *testing.T) {
	resetUITestState(t)
	setField(t, labelLength, "24")
	setField(t, labelExclude, "O0")
	setChecked(t, labelSymbols, false)
	setChecked(t, labelEnforce, false)

	got, err := readSettings()
	if err != nil {
		t.Fatalf("readSettings: %v", err)
	}
	want := passgen.Config{
		Length:  24,
		Classes: passgen.NewClassSet(passgen.Uppercase, passgen.Lowercase, passgen.Digits),
		Exclude: "O0",
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestReadSettingsRejectsBadLength(t *testing.T) {
	resetUITestState(t)
	for _, text := range []string{"", "0"} {
		setField(t, labelLength, text)
		if _, err := readSettings(); !errors.Is(err, passgen.ErrInvalidLength) {
			t.Fatalf("length %q: expected ErrInvalidLength, got %v", text, err)
		}
	}
}

func TestGeneratePasswordRecordsHistory(t *testing.T) {
	resetUITestState(t)

	generatePassword()
	generatePassword()

	if n := utf8.RuneCountInString(uiLastPassword.Value); n != 16 {
		t.Fatalf("expected 16 characters, got %d", n)
	}
	if uiHistory.Len() != 2 {
		t.Fatalf("expected 2 history entries, got %d", uiHistory.Len())
	}
	if uiHistoryList.GetItemCount() != 2 {
		t.Fatalf("expected 2 history rows, got %d", uiHistoryList.GetItemCount())
	}
	latest := uiHistory.Latest(1)[0]
	if latest.Password != uiLastPassword.Value {
		t.Fatalf("expected newest entry to hold the shown password")
	}
	if latest.Settings != "len=16,U=true,L=true,N=true,S=true,enforce=true" {
		t.Fatalf("unexpected settings summary %q", latest.Settings)
	}
	if !strings.Contains(uiStrengthView.GetText(true), uiLastPassword.Strength.Label) {
		t.Fatalf("expected strength label in %q", uiStrengthView.GetText(true))
	}
}

func TestGeneratePasswordShowsError(t *testing.T) {
	board := resetUITestState(t)
	generatePassword()
	previous := uiLastPassword.Value
	if previous == "" {
		t.Fatalf("expected a password before the failing run")
	}

	for _, label := range []string{labelUpper, labelLower, labelNumbers, labelSymbols} {
		setChecked(t, label, false)
	}
	generatePassword()

	if frontPage() != "error" {
		t.Fatalf("expected error page, got %q", frontPage())
	}
	if uiHistory.Len() != 1 {
		t.Fatalf("failed generation must not be recorded, got %d entries", uiHistory.Len())
	}
	if uiLastPassword.Value != previous {
		t.Fatalf("expected %q to stay current, got %q", previous, uiLastPassword.Value)
	}

	backToMain()
	copyPassword()
	if frontPage() != "main" {
		t.Fatalf("expected copy to succeed, got page %q", frontPage())
	}
	if *board != previous {
		t.Fatalf("expected clipboard to hold %q, got %q", previous, *board)
	}

	setChecked(t, labelNumbers, true)
	generatePassword()
	if uiHistory.Len() != 2 {
		t.Fatalf("expected generator to recover after an error")
	}
}

func TestRenderPasswordMasks(t *testing.T) {
	resetUITestState(t)
	uiLastPassword = passgen.Password{Value: "abc!"}

	renderPassword()
	if got := uiPasswordView.GetText(true); got != "abc!" {
		t.Fatalf("expected visible password, got %q", got)
	}

	toggleShowPassword()
	if got := uiPasswordView.GetText(true); got != "****" {
		t.Fatalf("expected masked password, got %q", got)
	}
}

func TestCopyPassword(t *testing.T) {
	board := resetUITestState(t)

	copyPassword()
	if frontPage() != "info" {
		t.Fatalf("expected info page without a password, got %q", frontPage())
	}

	backToMain()
	generatePassword()
	copyPassword()
	if *board != uiLastPassword.Value {
		t.Fatalf("expected clipboard to hold the password")
	}
	if !strings.Contains(uiStatusView.GetText(true), "copied") {
		t.Fatalf("expected copied status, got %q", uiStatusView.GetText(true))
	}
}

func TestClearClipboardIfUnchanged(t *testing.T) {
	board := resetUITestState(t)

	*board = "other"
	clearClipboardIfUnchanged("secret")
	if *board != "other" {
		t.Fatalf("clipboard changed by the user must be left alone")
	}
}
