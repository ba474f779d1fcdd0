package ui

import (
	"testing"

	"rpg/internal/config"
	"rpg/internal/history"

	"github.com/rivo/tview"
)

// resetUITestState rebuilds every widget against a fresh history and a
// fake clipboard, returning a pointer to the clipboard contents.
func resetUITestState(t *testing.T) *string {
	t.Helper()
	uiPages = tview.NewPages()
	uiCfg = config.Default()
	uiHistory = history.New(10)
	uiClearAfter = 0
	uiLastPassword.Value = ""
	uiShowPassword = true
	uiStrengthMeter = newStrengthMeter()
	setupUI()

	var board string
	clipboardWrite = func(text string) error { board = text; return nil }
	clipboardRead = func() (string, error) { return board, nil }
	return &board
}

func setField(t *testing.T, label, text string) {
	t.Helper()
	uiSettingsForm.GetFormItemByLabel(label).(*tview.InputField).SetText(text)
}

func setChecked(t *testing.T, label string, checked bool) {
	t.Helper()
	uiSettingsForm.GetFormItemByLabel(label).(*tview.Checkbox).SetChecked(checked)
}

func frontPage() string {
	name, _ := uiPages.GetFrontPage()
	return name
}
