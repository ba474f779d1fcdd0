package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func setupModals() {
	uiErrorModal = tview.NewModal().AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) { backToMain() })
	uiPages.AddPage("error", uiErrorModal, true, false)

	uiInfoModal = tview.NewModal().AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) { backToMain() })
	uiPages.AddPage("info", uiInfoModal, true, false)

	uiClearModal = tview.NewModal().
		SetText("Are you sure you want to clear the saved history in this session?").
		AddButtons([]string{"Clear", "Cancel"}).
		SetDoneFunc(func(index int, label string) {
			if label == "Clear" {
				clearHistory()
			}
			backToMain()
		})
	enableModalButtonNav(uiClearModal)
	uiPages.AddPage("clear_history", uiClearModal, true, false)
}

func backToMain() {
	uiPages.SwitchToPage("main")
	uiApp.SetFocus(uiSettingsForm)
}

func showError(msg string) {
	uiErrorModal.SetText(msg)
	uiErrorModal.SetBackgroundColor(tcell.ColorDarkRed)
	uiPages.SwitchToPage("error")
}

func showInfo(title, msg string) {
	uiInfoModal.SetText(title + "\n\n" + msg)
	uiPages.SwitchToPage("info")
}

func showClearHistory() {
	if uiHistory == nil || uiHistory.Len() == 0 {
		return
	}
	uiPages.SwitchToPage("clear_history")
}
