package ui

import (
	"time"

	"rpg/internal/config"
	"rpg/internal/history"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/rivo/tview"
)

// NewApp builds the generator UI. The history log belongs to the caller.
func NewApp(c config.AppConfig, log *history.Log) (*AppHandle, error) {
	uiCfg = c
	uiHistory = log
	uiClearAfter = time.Duration(c.ClipboardClearSeconds) * time.Second

	setupUI()
	uiPages.SwitchToPage("main")
	generatePassword()
	return &AppHandle{}, nil
}

type AppHandle struct{}

func (a *AppHandle) Run() error {
	glog.V(1).Infof("starting terminal ui")
	return uiApp.SetRoot(uiPages, true).EnableMouse(true).Run()
}

func (a *AppHandle) QueueUpdateDraw(f func()) {
	uiApp.QueueUpdateDraw(f)
}

func (a *AppHandle) Stop() { uiApp.Stop() }

func setupUI() {
	tview.Styles.ContrastBackgroundColor = colorUnfocusedBg
	tview.Styles.TitleColor = tcell.ColorLightSkyBlue

	setupMainLayout()
	setupModals()
	setupExport()
}
