package menu

import "errors"

var (
	// ErrUnsupported reports an operation invoked on a menu kind that
	// structurally cannot support it. It is a programming error and is never
	// recovered internally.
	ErrUnsupported = errors.New("operation not supported by this menu kind")

	// ErrBadSize reports a container size that is not a positive multiple of
	// the row width.
	ErrBadSize = errors.New("container size must be a positive multiple of the row width")

	// ErrSlotOverlap reports a layout whose content and navigation slots
	// intersect.
	ErrSlotOverlap = errors.New("content and navigation slots overlap")

	// ErrSlotRange reports a slot index outside the container.
	ErrSlotRange = errors.New("slot index out of container range")
)
