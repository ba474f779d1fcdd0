package ui

import (
	"time"

	"rpg/internal/config"
	"rpg/internal/history"
	"rpg/internal/passgen"

	"github.com/rivo/tview"
)

// historyDisplayLimit caps the rows rendered in the history list.
const historyDisplayLimit = 100

var (
	uiApp   = tview.NewApplication()
	uiPages = tview.NewPages()

	uiCfg        config.AppConfig
	uiHistory    *history.Log
	uiClearAfter time.Duration

	uiGenerator    = passgen.NewGenerator()
	uiShowPassword = true

	uiLastPassword  passgen.Password
	uiClipboardText string

	uiStrengthMeter = newStrengthMeter()

	uiSettingsForm *tview.Form
	uiPasswordView *tview.TextView
	uiStrengthView *tview.TextView
	uiStatusView   *tview.TextView
	uiHistoryList  *tview.List
	uiQRView       *tview.TextView

	uiErrorModal *tview.Modal
	uiInfoModal  *tview.Modal
	uiClearModal *tview.Modal
	uiExportForm *tview.Form
)
