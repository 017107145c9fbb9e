package host

// SlotClicked reports a click on a container slot. Content is the payload
// currently displayed in the clicked slot, if any; input-capture menus read
// submitted text from it.
type SlotClicked struct {
	Viewer  ViewerID
	Handle  Handle
	Slot    int
	Content *Content
}

// ContainerClosed reports that the host closed a container view for a viewer,
// whether user-initiated or requested by a menu.
type ContainerClosed struct {
	Viewer ViewerID
	Handle Handle
}

// TextSubmitted reports the result of a free-text editor surface.
type TextSubmitted struct {
	Viewer ViewerID
	Lines  []string
}

// Disconnected reports that a participant left the host entirely. No close
// event precedes it.
type Disconnected struct {
	Viewer ViewerID
}

// Listener receives host input events. Events are delivered one at a time on
// the host's event thread. HandleSlotClick returns true when the click was
// consumed; the host must then suppress its default slot behaviour.
type Listener interface {
	HandleSlotClick(SlotClicked) bool
	HandleContainerClose(ContainerClosed)
	HandleTextSubmit(TextSubmitted)
	HandleDisconnect(Disconnected)
}

// Bus is the host's event bus. Subscribing an already-subscribed listener and
// unsubscribing an unknown one are both no-ops.
type Bus interface {
	Subscribe(Listener)
	Unsubscribe(Listener)
}
