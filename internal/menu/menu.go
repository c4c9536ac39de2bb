// Package menu defines the host-menu binding the MRU list drives, and ships
// two implementations: an in-memory Model for hosts and tests, and a
// readline-based terminal picker.
//
// A binding owns a managed region inside a larger ordered menu, delimited by
// two anchor items that belong to the host. The list inserts, removes, and
// toggles items inside that region by zero-based offset, and receives
// activation events back through a registered handler.
package menu

// Handle identifies one item owned by a Binding. Handles are opaque to the
// list; the zero value means "no item".
type Handle int64

// NoHandle is the zero Handle.
const NoHandle Handle = 0

// Binding realizes list entries as menu items.
type Binding interface {
	// InsertItem inserts an item at the given offset inside the managed
	// region. A separator item carries no label or mnemonic; mnemonic 0
	// means "none".
	InsertItem(index int, label string, separator bool, mnemonic int) (Handle, error)

	// RemoveItem removes a previously inserted item.
	RemoveItem(h Handle) error

	// SetItemEnabled enables or disables a previously inserted item.
	SetItemEnabled(h Handle, enabled bool) error

	// SetActivationHandler registers the callback invoked with an item's
	// handle when the host activates it. At most one handler is active;
	// registering replaces any previous one.
	SetActivationHandler(fn func(h Handle))
}
