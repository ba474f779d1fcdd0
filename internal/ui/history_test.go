package ui

import (
	"testing"
	"time"

	"rpg/internal/history"
)

func TestRenderHistoryNewestFirst(t *testing.T) {
	resetUITestState(t)
	ts := time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)
	uiHistory.Add(history.Entry{Timestamp: ts, Password: "first", Settings: "len=5"})
	uiHistory.Add(history.Entry{Timestamp: ts.Add(time.Second), Password: "second", Settings: "len=6"})

	renderHistory()

	top, _ := uiHistoryList.GetItemText(0)
	bottom, _ := uiHistoryList.GetItemText(1)
	if top != "2024-05-01 09:30:01 | second | len=6" {
		t.Fatalf("expected newest entry first, got %q", top)
	}
	if bottom != "2024-05-01 09:30:00 | first | len=5" {
		t.Fatalf("expected oldest entry last, got %q", bottom)
	}
}

func TestRenderHistoryCapsRows(t *testing.T) {
	resetUITestState(t)
	uiHistory = history.New(historyDisplayLimit + 20)
	for i := 0; i < historyDisplayLimit+20; i++ {
		uiHistory.Record("pw", "len=2")
	}

	renderHistory()
	if uiHistoryList.GetItemCount() != historyDisplayLimit {
		t.Fatalf("expected %d rows, got %d", historyDisplayLimit, uiHistoryList.GetItemCount())
	}
}

func TestClearHistoryFlow(t *testing.T) {
	resetUITestState(t)

	showClearHistory()
	if frontPage() != "main" {
		t.Fatalf("empty history must not prompt, got %q", frontPage())
	}

	generatePassword()
	showClearHistory()
	if frontPage() != "clear_history" {
		t.Fatalf("expected confirmation page, got %q", frontPage())
	}

	clearHistory()
	if uiHistory.Len() != 0 || uiHistoryList.GetItemCount() != 0 {
		t.Fatalf("expected history to be cleared")
	}
}
