package menu

import "fmt"

// RowWidth is the number of slots per container row.
const RowWidth = 9

// Layout assigns container slots to their purpose. Content slots display the
// paginated backing list; navigation slots hold fixed controls. A slot
// belongs to at most one purpose.
type Layout struct {
	Size         int
	Content      []int
	Navigation   []int
	ItemsPerPage int
}

// DefaultLayout computes the standard layout for a container: the last row is
// reserved for navigation when more than one row exists; a single-row
// container gives the whole row to content and synthesizes no navigation.
func DefaultLayout(size int) (Layout, error) {
	if size <= 0 || size%RowWidth != 0 {
		return Layout{}, fmt.Errorf("size %d: %w", size, ErrBadSize)
	}
	rows := size / RowWidth
	contentRows := rows
	if rows > 1 {
		contentRows = rows - 1
	}
	content := make([]int, contentRows*RowWidth)
	for i := range content {
		content[i] = i
	}
	var navigation []int
	if rows > 1 {
		navigation = make([]int, RowWidth)
		for i := range navigation {
			navigation[i] = (rows-1)*RowWidth + i
		}
	}
	return Layout{
		Size:         size,
		Content:      content,
		Navigation:   navigation,
		ItemsPerPage: len(content),
	}, nil
}

// Validate checks structural consistency: size, slot bounds, duplicates, and
// content/navigation disjointness. It runs at construction time, before the
// menu registers anywhere.
func (l Layout) Validate() error {
	if l.Size <= 0 || l.Size%RowWidth != 0 {
		return fmt.Errorf("size %d: %w", l.Size, ErrBadSize)
	}
	seen := make(map[int]string, len(l.Content)+len(l.Navigation))
	for _, slot := range l.Content {
		if slot < 0 || slot >= l.Size {
			return fmt.Errorf("content slot %d in container of size %d: %w", slot, l.Size, ErrSlotRange)
		}
		if _, dup := seen[slot]; dup {
			return fmt.Errorf("slot %d assigned twice: %w", slot, ErrSlotOverlap)
		}
		seen[slot] = "content"
	}
	for _, slot := range l.Navigation {
		if slot < 0 || slot >= l.Size {
			return fmt.Errorf("navigation slot %d in container of size %d: %w", slot, l.Size, ErrSlotRange)
		}
		if _, dup := seen[slot]; dup {
			return fmt.Errorf("slot %d assigned twice: %w", slot, ErrSlotOverlap)
		}
		seen[slot] = "navigation"
	}
	return nil
}

func containsSlot(slots []int, slot int) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
