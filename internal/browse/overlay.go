package browse

// Overlay is a two-state modal: closed until triggered, closed again on
// cancel or a successful submit. The zero value is closed.
type Overlay struct {
	open bool
}

// Open transitions closed -> open.
func (o *Overlay) Open() {
	o.open = true
}

// Close transitions open -> closed; idempotent.
func (o *Overlay) Close() {
	o.open = false
}

// IsOpen reports the current state.
func (o *Overlay) IsOpen() bool {
	return o.open
}

// OverlayState is the open/closed instruction for all three overlays.
type OverlayState struct {
	Search   bool
	Settings bool
	Detail   bool
}
