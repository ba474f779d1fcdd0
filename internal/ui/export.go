package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"rpg/internal/config"
	"rpg/internal/history"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/rivo/tview"
)

const (
	labelExportPath       = "File"
	labelExportPassphrase = "Passphrase"
)

func setupExport() {
	uiExportForm = tview.NewForm()
	uiExportForm.AddInputField(labelExportPath, "", 0, nil, nil)
	uiExportForm.AddPasswordField(labelExportPassphrase, "", 0, '*', nil)
	uiExportForm.AddButton("Save", func() {
		path := uiExportForm.GetFormItemByLabel(labelExportPath).(*tview.InputField).GetText()
		passphrase := uiExportForm.GetFormItemByLabel(labelExportPassphrase).(*tview.InputField).GetText()
		name, err := exportHistory(path, passphrase)
		if err != nil {
			showError("Save failed: " + err.Error())
			return
		}
		backToMain()
		setStatus(fmt.Sprintf("[green]✓ History saved to %s[-]", tview.Escape(name)), 5*time.Second)
	})
	uiExportForm.AddButton("Cancel", func() { backToMain() })
	uiExportForm.SetBorder(true).SetTitle(" Export History (CSV) ")
	uiExportForm.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			backToMain()
			return nil
		}
		return event
	})
	styleForm(uiExportForm)
	enableButtonNav(uiExportForm)
	uiPages.AddPage("export", newResponsiveModal(uiExportForm, 50, 9, 90, 11, 0.6, 0.3), true, false)
}

func defaultExportPath(now time.Time) string {
	dir := uiCfg.ExportDir
	if dir == "" {
		dir = "~"
	}
	return filepath.Join(config.ExpandPath(dir), history.DefaultFileName(now))
}

func showExport() {
	if uiHistory == nil || uiHistory.Len() == 0 {
		showInfo("No history", "No passwords in history to save.")
		return
	}
	uiExportForm.GetFormItemByLabel(labelExportPath).(*tview.InputField).SetText(defaultExportPath(time.Now()))
	uiExportForm.GetFormItemByLabel(labelExportPassphrase).(*tview.InputField).SetText("")
	uiExportForm.SetFocus(0)
	uiPages.SwitchToPage("export")
	uiApp.SetFocus(uiExportForm)
}

// exportHistory writes the history to path, sealed when a passphrase is
// given, and returns the base name of the written file.
func exportHistory(path, passphrase string) (string, error) {
	path = config.ExpandPath(strings.TrimSpace(path))
	if path == "" {
		return "", errors.New("no file name given")
	}
	if uiHistory == nil {
		return "", history.ErrEmpty
	}
	var err error
	if passphrase != "" {
		err = uiHistory.ExportSealed(path, passphrase)
	} else {
		err = uiHistory.Export(path)
	}
	if err != nil {
		glog.Errorf("history export failed: %v", err)
		return "", err
	}
	glog.Infof("exported %d history entries (sealed=%t)", uiHistory.Len(), passphrase != "")
	return filepath.Base(path), nil
}
