package main

// Navigator holds the index of the picture on screen and whether it must be
// rendered again. It starts at the first picture with a render pending.
type Navigator struct {
	count       int
	index       int
	needsRedraw bool
}

// NewNavigator creates a Navigator over count pictures
func NewNavigator(count int) *Navigator {
	return &Navigator{count: count, needsRedraw: true}
}

// Index returns the current picture index.
func (n *Navigator) Index() int {
	return n.index
}

// Count returns the number of pictures navigated over.
func (n *Navigator) Count() int {
	return n.count
}

// NeedsRedraw reports whether a render is pending.
func (n *Navigator) NeedsRedraw() bool {
	return n.needsRedraw
}

// Rendered clears the pending render once the picture has been displayed.
func (n *Navigator) Rendered() {
	n.needsRedraw = false
}

// Next moves to the following picture, wrapping to the first.
func (n *Navigator) Next() {
	if n.count <= 1 {
		return
	}
	n.index = (n.index + 1) % n.count
	n.needsRedraw = true
}

// Previous moves to the preceding picture, wrapping to the last.
func (n *Navigator) Previous() {
	if n.count <= 1 {
		return
	}
	if n.index == 0 {
		n.index = n.count - 1
	} else {
		n.index--
	}
	n.needsRedraw = true
}

// JumpTo moves to idx if it is a valid index different from the current one.
func (n *Navigator) JumpTo(idx int) {
	if n.count <= 1 || idx < 0 || idx >= n.count || idx == n.index {
		return
	}
	n.index = idx
	n.needsRedraw = true
}

func (n *Navigator) JumpFirst() {
	n.JumpTo(0)
}

func (n *Navigator) JumpLast() {
	n.JumpTo(n.count - 1)
}
