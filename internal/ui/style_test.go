package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func TestModalArrowsMoveBetweenButtons(t *testing.T) {
	modal := tview.NewModal().AddButtons([]string{"Clear", "Cancel"})
	enableModalButtonNav(modal)
	capture := modal.GetInputCapture()

	cases := map[tcell.Key]tcell.Key{
		tcell.KeyRight: tcell.KeyTab,
		tcell.KeyLeft:  tcell.KeyBacktab,
		tcell.KeyEnter: tcell.KeyEnter,
	}
	for in, want := range cases {
		got := capture(tcell.NewEventKey(in, 0, tcell.ModNone))
		if got == nil || got.Key() != want {
			t.Fatalf("key %v: expected %v, got %v", in, want, got)
		}
	}
}

func TestFormArrowsStayInFields(t *testing.T) {
	resetUITestState(t)
	capture := uiSettingsForm.GetInputCapture()

	got := capture(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if got == nil || got.Key() != tcell.KeyLeft {
		t.Fatalf("expected Left to reach the focused field, got %v", got)
	}
}
