package ui

import (
	"strconv"
	"strings"

	"rpg/internal/passgen"

	"github.com/golang/glog"
	"github.com/rivo/tview"
)

const (
	labelLength  = "Length"
	labelUpper   = "Uppercase (A-Z)"
	labelLower   = "Lowercase (a-z)"
	labelNumbers = "Numbers (0-9)"
	labelSymbols = "Symbols (!@#...)"
	labelEnforce = "Enforce rules"
	labelExclude = "Exclude"
)

var classLabels = map[passgen.Class]string{
	passgen.Uppercase: labelUpper,
	passgen.Lowercase: labelLower,
	passgen.Digits:    labelNumbers,
	passgen.Symbols:   labelSymbols,
}

// setupSettingsForm builds the generator settings from the configured
// defaults.
func setupSettingsForm() {
	defaults := uiCfg.Generation()

	uiSettingsForm = tview.NewForm()
	uiSettingsForm.AddInputField(labelLength, strconv.Itoa(defaults.Length), 6, tview.InputFieldInteger, nil)
	for _, c := range []passgen.Class{passgen.Uppercase, passgen.Lowercase, passgen.Digits, passgen.Symbols} {
		uiSettingsForm.AddCheckbox(classLabels[c], defaults.Classes.Has(c), nil)
	}
	uiSettingsForm.AddCheckbox(labelEnforce, defaults.EnforceDiversity, nil)
	uiSettingsForm.AddInputField(labelExclude, defaults.Exclude, 0, nil, nil)
	uiSettingsForm.AddButton("Generate", func() { generatePassword() })
	uiSettingsForm.AddButton("Copy", func() { copyPassword() })
	uiSettingsForm.AddButton("QR", func() { toggleQRCode() })
	uiSettingsForm.AddButton("Export", func() { showExport() })
	uiSettingsForm.AddButton("Clear", func() { showClearHistory() })
	uiSettingsForm.SetBorder(true).SetTitle(" Settings ")
	styleForm(uiSettingsForm)
	enableButtonNav(uiSettingsForm)
}

// readSettings turns the form state into a generator config.
func readSettings() (passgen.Config, error) {
	lengthText := uiSettingsForm.GetFormItemByLabel(labelLength).(*tview.InputField).GetText()
	length, err := passgen.ParseLength(lengthText)
	if err != nil {
		return passgen.Config{}, err
	}

	var classes passgen.ClassSet
	for c, label := range classLabels {
		if uiSettingsForm.GetFormItemByLabel(label).(*tview.Checkbox).IsChecked() {
			classes = classes.With(c)
		}
	}

	return passgen.Config{
		Length:           length,
		Classes:          classes,
		Exclude:          uiSettingsForm.GetFormItemByLabel(labelExclude).(*tview.InputField).GetText(),
		EnforceDiversity: uiSettingsForm.GetFormItemByLabel(labelEnforce).(*tview.Checkbox).IsChecked(),
	}, nil
}

// generatePassword runs the generator with the form settings, shows the
// result and records it in the session history.
func generatePassword() {
	cfg, err := readSettings()
	var pw passgen.Password
	if err == nil {
		pw, err = uiGenerator.Generate(cfg)
	}
	if err != nil {
		// the previous password stays current
		glog.V(1).Infof("generation rejected: %v", err)
		showError(passgen.Message(err))
		return
	}

	uiLastPassword = pw
	uiShowPassword = true
	renderPassword()
	if uiHistory != nil {
		uiHistory.Record(uiLastPassword.Value, cfg.Summary())
		renderHistory()
	}
	if uiQRView != nil {
		uiQRView.SetText("")
	}
}

// renderPassword shows the current password, masked when hidden.
func renderPassword() {
	pw := uiLastPassword.Value
	switch {
	case pw == "":
		uiPasswordView.SetText("[gray]no password yet[-]")
	case uiShowPassword:
		uiPasswordView.SetText("[green]" + tview.Escape(pw) + "[-]")
	default:
		uiPasswordView.SetText(strings.Repeat("*", len([]rune(pw))))
	}
	uiStrengthMeter.Update(pw)
}

func toggleShowPassword() {
	uiShowPassword = !uiShowPassword
	renderPassword()
}
