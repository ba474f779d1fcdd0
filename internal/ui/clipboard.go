package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/golang/glog"
)

// clipboard access is swapped out in tests.
var (
	clipboardWrite = clipboard.WriteAll
	clipboardRead  = clipboard.ReadAll
)

func copyPassword() {
	if uiLastPassword.Value == "" {
		showInfo("No password", "Generate a password first.")
		return
	}
	copySensitive(uiLastPassword.Value, "Password")
}

// copySensitive puts text on the clipboard and wipes it after the
// configured delay, unless something else was copied in the meantime.
func copySensitive(text, item string) {
	if err := clipboardWrite(text); err != nil {
		glog.Warningf("clipboard write failed: %v", err)
		showError("Could not access the clipboard: " + err.Error())
		return
	}
	uiClipboardText = text
	if uiClearAfter <= 0 {
		setStatus(fmt.Sprintf("[green]✓ %s copied[-]", item), 2*time.Second)
		return
	}
	setStatus(fmt.Sprintf("[green]✓ %s copied (clears in %s)[-]", item, uiClearAfter), 0)
	go func() {
		time.Sleep(uiClearAfter)
		clearClipboardIfUnchanged(text)
	}()
}

func clearClipboardIfUnchanged(text string) {
	curr, _ := clipboardRead()
	if curr != text {
		return
	}
	if err := clipboardWrite(""); err != nil {
		return
	}
	uiApp.QueueUpdateDraw(func() {
		if uiClipboardText == text {
			uiClipboardText = ""
		}
		uiStatusView.SetText("[yellow]Clipboard cleared[-]")
	})
}

// setStatus shows msg in the status line. A positive ttl blanks it again.
func setStatus(msg string, ttl time.Duration) {
	uiStatusView.SetText(msg)
	if ttl <= 0 {
		return
	}
	go func() {
		time.Sleep(ttl)
		uiApp.QueueUpdateDraw(func() {
			if uiStatusView.GetText(false) == msg {
				uiStatusView.SetText("")
			}
		})
	}()
}
