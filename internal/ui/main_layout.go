package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var keyBindings = [][2]string{
	{"Ctrl+G", "Generate"},
	{"Ctrl+Y", "Copy password"},
	{"Ctrl+S", "Show / hide password"},
	{"Ctrl+R", "Show / hide QR code"},
	{"Ctrl+E", "Export history"},
	{"Ctrl+L", "Clear history"},
	{"Ctrl+T", "Focus history"},
	{"Ctrl+Q", "Quit"},
}

func setupMainLayout() {
	setupSettingsForm()

	uiPasswordView = tview.NewTextView().SetDynamicColors(true)
	uiStatusView = tview.NewTextView().SetDynamicColors(true)
	uiQRView = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	strengthRow, strengthView := makeStrengthDisplayRow(uiStrengthMeter)
	uiStrengthView = strengthView

	keybindTable := tview.NewTable().SetBorders(false).SetSelectable(false, false)
	for i, b := range keyBindings {
		keybindTable.SetCell(i, 0, tview.NewTableCell("[skyblue]"+b[0]+"[-]").SetAlign(tview.AlignRight))
		keybindTable.SetCell(i, 1, tview.NewTableCell("  "))
		keybindTable.SetCell(i, 2, tview.NewTableCell("[white]"+b[1]+"[-]").SetExpansion(1))
	}

	leftFlex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(uiSettingsForm, 0, 1, true).
		AddItem(keybindTable, len(keyBindings), 0, false)

	passwordRow := tview.NewFlex().
		AddItem(tview.NewTextView().SetText("Password:").SetTextColor(tcell.ColorYellow), 11, 0, false).
		AddItem(uiPasswordView, 0, 1, false)

	passwordFlex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(passwordRow, 1, 0, false).
		AddItem(strengthRow, 1, 0, false).
		AddItem(uiStatusView, 1, 0, false).
		AddItem(uiQRView, 0, 1, false)
	passwordFlex.SetBorder(true).SetTitle(" Random Password Generator ")

	uiHistoryList = tview.NewList().ShowSecondaryText(false)
	uiHistoryList.SetBorder(true).SetTitle(" Session History (latest first) ")
	uiHistoryList.SetHighlightFullLine(true)
	uiHistoryList.SetSelectedBackgroundColor(tcell.ColorSkyblue)
	uiHistoryList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			uiApp.SetFocus(uiSettingsForm)
			return nil
		}
		return event
	})

	rightFlex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(passwordFlex, 0, 1, false).
		AddItem(uiHistoryList, 0, 1, false)

	mainFlex := newResponsiveSplit(leftFlex, rightFlex, 0.35, 38, 40)
	mainFlex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlG:
			generatePassword()
		case tcell.KeyCtrlY:
			copyPassword()
		case tcell.KeyCtrlS:
			toggleShowPassword()
		case tcell.KeyCtrlR:
			toggleQRCode()
		case tcell.KeyCtrlE:
			showExport()
		case tcell.KeyCtrlL:
			showClearHistory()
		case tcell.KeyCtrlT:
			uiApp.SetFocus(uiHistoryList)
		case tcell.KeyCtrlQ:
			uiApp.Stop()
		default:
			return event
		}
		return nil
	})

	uiPages.AddPage("main", mainFlex, true, true)
}
