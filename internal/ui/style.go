package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	colorUnfocusedBg = tcell.Color236
	colorFocusedBg   = tcell.Color24
)

// styleForm applies the shared palette to f. The focused button is shown
// inverted.
func styleForm(f *tview.Form) {
	f.SetFieldBackgroundColor(colorUnfocusedBg)
	f.SetButtonStyle(tcell.StyleDefault.Background(colorUnfocusedBg).Foreground(tcell.ColorWhite))
	f.SetButtonActivatedStyle(tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(colorFocusedBg))
}

type inputCapturer interface {
	GetInputCapture() func(event *tcell.EventKey) *tcell.EventKey
	SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) *tview.Box
}

// arrowsAsTab turns Left/Right into Backtab/Tab while onButtons reports
// true, so a row of buttons can be walked with the arrow keys.
func arrowsAsTab(p inputCapturer, onButtons func() bool) {
	prev := p.GetInputCapture()
	p.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if onButtons() {
			switch event.Key() {
			case tcell.KeyLeft:
				event = tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone)
			case tcell.KeyRight:
				event = tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)
			}
		}
		if prev != nil {
			return prev(event)
		}
		return event
	})
}

// enableButtonNav leaves the arrow keys to the input fields and only moves
// between buttons once one of them has focus.
func enableButtonNav(form *tview.Form) {
	arrowsAsTab(form, func() bool {
		_, btn := form.GetFocusedItemIndex()
		return btn >= 0
	})
}

func enableModalButtonNav(modal *tview.Modal) {
	arrowsAsTab(modal, func() bool { return true })
}
