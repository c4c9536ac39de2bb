package menu

import (
	"fmt"
)

// Item is one realized item in a Model.
type Item struct {
	Handle    Handle
	Label     string
	Separator bool
	Mnemonic  int
	Enabled   bool
}

// Model is an in-memory Binding. It stands in for a native host menu: the
// CLI uses it directly, the HTTP server wraps it, and tests inspect it.
type Model struct {
	items      []*Item
	next       Handle
	top        Handle
	bottom     Handle
	onActivate func(Handle)
}

// NewModel returns an empty Model with its two anchor handles already
// allocated.
func NewModel() *Model {
	m := &Model{next: 1}
	m.top = m.allocate()
	m.bottom = m.allocate()
	return m
}

func (m *Model) allocate() Handle {
	h := m.next
	m.next++
	return h
}

// Anchors returns the two boundary handles delimiting the managed region.
// The anchors are host items; they never appear in Items.
func (m *Model) Anchors() (top, bottom Handle) {
	return m.top, m.bottom
}

// InsertItem implements Binding. Offsets beyond the current region length
// are clamped to the end.
func (m *Model) InsertItem(index int, label string, separator bool, mnemonic int) (Handle, error) {
	if index < 0 {
		return NoHandle, fmt.Errorf("menu: negative index %d", index)
	}
	if index > len(m.items) {
		index = len(m.items)
	}

	it := &Item{
		Handle:    m.allocate(),
		Label:     label,
		Separator: separator,
		Mnemonic:  mnemonic,
		Enabled:   true,
	}
	m.items = append(m.items, nil)
	copy(m.items[index+1:], m.items[index:])
	m.items[index] = it
	return it.Handle, nil
}

// RemoveItem implements Binding.
func (m *Model) RemoveItem(h Handle) error {
	for i, it := range m.items {
		if it.Handle == h {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("menu: unknown handle %d", h)
}

// SetItemEnabled implements Binding.
func (m *Model) SetItemEnabled(h Handle, enabled bool) error {
	for _, it := range m.items {
		if it.Handle == h {
			it.Enabled = enabled
			return nil
		}
	}
	return fmt.Errorf("menu: unknown handle %d", h)
}

// SetActivationHandler implements Binding.
func (m *Model) SetActivationHandler(fn func(h Handle)) {
	m.onActivate = fn
}

// Activate delivers a host activation event for the item with handle h.
// Separators and disabled items cannot be activated.
func (m *Model) Activate(h Handle) error {
	for _, it := range m.items {
		if it.Handle != h {
			continue
		}
		if it.Separator {
			return fmt.Errorf("menu: handle %d is a separator", h)
		}
		if !it.Enabled {
			return fmt.Errorf("menu: handle %d is disabled", h)
		}
		if m.onActivate != nil {
			m.onActivate(h)
		}
		return nil
	}
	return fmt.Errorf("menu: unknown handle %d", h)
}

// HandleForMnemonic returns the handle of the item carrying the given
// mnemonic digit, or NoHandle.
func (m *Model) HandleForMnemonic(mnemonic int) Handle {
	for _, it := range m.items {
		if !it.Separator && it.Mnemonic == mnemonic {
			return it.Handle
		}
	}
	return NoHandle
}

// Items returns a snapshot of the managed region in display order.
func (m *Model) Items() []Item {
	out := make([]Item, len(m.items))
	for i, it := range m.items {
		out[i] = *it
	}
	return out
}
