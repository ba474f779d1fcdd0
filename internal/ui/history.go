package ui

import (
	"github.com/rivo/tview"
)

// renderHistory lists the latest session entries, newest first. Selecting
// a row copies its password.
func renderHistory() {
	uiHistoryList.Clear()
	if uiHistory == nil {
		return
	}
	for _, e := range uiHistory.Latest(historyDisplayLimit) {
		pw := e.Password
		uiHistoryList.AddItem(tview.Escape(e.String()), "", 0, func() { copySensitive(pw, "Password") })
	}
}

func clearHistory() {
	if uiHistory != nil {
		uiHistory.Clear()
	}
	renderHistory()
	setStatus("[yellow]History cleared[-]", 0)
}
