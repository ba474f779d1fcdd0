package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// responsiveModal centres content at a percentage of the screen, clamped
// to the given bounds. A zero max means unbounded.
type responsiveModal struct {
	*tview.Flex
	content       tview.Primitive
	minWidth      int
	minHeight     int
	maxWidth      int
	maxHeight     int
	widthPercent  float64
	heightPercent float64
	lastW         int
	lastH         int
}

func newResponsiveModal(p tview.Primitive, minWidth, minHeight, maxWidth, maxHeight int, widthPercent, heightPercent float64) *responsiveModal {
	r := &responsiveModal{
		Flex:          tview.NewFlex(),
		content:       p,
		minWidth:      minWidth,
		minHeight:     minHeight,
		maxWidth:      maxWidth,
		maxHeight:     maxHeight,
		widthPercent:  widthPercent,
		heightPercent: heightPercent,
	}
	r.layout(minWidth, minHeight, 0, 0)
	return r
}

func clampSize(v, lo, hi, limit int) int {
	if v < lo {
		v = lo
	}
	if hi > 0 && v > hi {
		v = hi
	}
	if v > limit {
		v = limit
	}
	return v
}

// layout rebuilds the padding around the content. Zero padding means the
// surrounding space is shared proportionally.
func (r *responsiveModal) layout(modalW, modalH, padW, padH int) {
	r.Flex.Clear()
	column := tview.NewFlex().SetDirection(tview.FlexRow)
	if padH > 0 {
		column.AddItem(nil, padH, 0, false).
			AddItem(r.content, modalH, 0, true).
			AddItem(nil, 0, 1, false)
	} else {
		column.AddItem(nil, 0, 1, false).
			AddItem(r.content, modalH, 0, true).
			AddItem(nil, 0, 1, false)
	}
	if padW > 0 {
		r.Flex.AddItem(nil, padW, 0, false).
			AddItem(column, modalW, 0, true).
			AddItem(nil, 0, 1, false)
	} else {
		r.Flex.AddItem(nil, 0, 1, false).
			AddItem(column, modalW, 0, true).
			AddItem(nil, 0, 1, false)
	}
}

func (r *responsiveModal) Draw(screen tcell.Screen) {
	_, _, w, h := r.GetRect()
	if w != r.lastW || h != r.lastH {
		modalW := clampSize(int(float64(w)*r.widthPercent), r.minWidth, r.maxWidth, w)
		modalH := clampSize(int(float64(h)*r.heightPercent), r.minHeight, r.maxHeight, h)
		r.layout(modalW, modalH, (w-modalW)/2, (h-modalH)/2)
		r.lastW, r.lastH = w, h
	}
	r.Flex.Draw(screen)
}

// responsiveSplit gives the left pane a share of the width while keeping
// both panes above their minimum.
type responsiveSplit struct {
	*tview.Flex
	left, right tview.Primitive
	leftRatio   float64
	minLeft     int
	minRight    int
	lastW       int
	lastH       int
}

func newResponsiveSplit(left, right tview.Primitive, leftRatio float64, minLeft, minRight int) *responsiveSplit {
	r := &responsiveSplit{
		Flex:      tview.NewFlex(),
		left:      left,
		right:     right,
		leftRatio: leftRatio,
		minLeft:   minLeft,
		minRight:  minRight,
	}
	r.Flex.AddItem(left, 0, 1, true)
	r.Flex.AddItem(right, 0, 1, false)
	return r
}

func (r *responsiveSplit) leftWidth(w int) int {
	leftW := int(float64(w) * r.leftRatio)
	if leftW < r.minLeft {
		leftW = r.minLeft
	}
	if w-leftW < r.minRight {
		leftW = w - r.minRight
	}
	if leftW < 0 {
		leftW = 0
	}
	return leftW
}

func (r *responsiveSplit) Draw(screen tcell.Screen) {
	_, _, w, h := r.GetRect()
	if w != r.lastW || h != r.lastH {
		r.Flex.ResizeItem(r.left, r.leftWidth(w), 0)
		r.Flex.ResizeItem(r.right, 0, 1)
		r.lastW, r.lastH = w, h
	}
	r.Flex.Draw(screen)
}
