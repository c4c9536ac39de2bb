// Package mru implements the bounded most-recently-used file list: ordering,
// eviction, deduplication, mnemonic allocation, persistence, and host-menu
// reconciliation.
package mru

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"github.com/lazypower/filemru/internal/menu"
	"github.com/lazypower/filemru/internal/persist"
)

const (
	// Section is the erasable store section holding keys "1".."9", each
	// the path at that mnemonic.
	Section = "MRU Files"

	// StateSection holds values that survive Clear, notably LastOpenedKey.
	StateSection = "State"

	// LastOpenedKey is the key for the last-opened path.
	LastOpenedKey = "Last Opened"
)

// ErrAnchorsUnbound reports a mutating call before both menu anchors were
// bound. This is a host configuration error, not a runtime condition.
var ErrAnchorsUnbound = errors.New("mru: menu anchors not bound")

// Entry is one tracked path with its current mnemonic digit. The handle of
// its realized menu item is kept alongside but owned by the binding.
type Entry struct {
	Path     string
	Mnemonic int

	handle menu.Handle
}

// List is the recency-ordered MRU list, most recent first. It owns the
// add/evict/dedup algorithm, drives the persistence adapter, and reconciles
// the host-menu binding.
//
// A List is not safe for concurrent use; callers serialize access.
type List struct {
	store   persist.Adapter
	binding menu.Binding

	entries    []*Entry
	lastOpened string
	enabled    bool
	saveState  bool

	top          menu.Handle
	bottom       menu.Handle
	bound        bool
	separator    menu.Handle
	hasSeparator bool

	normalize func(string) string
	onOpen    func(path string)
}

// New creates a List over the given store and menu binding. The list starts
// empty and unbound; call BindAnchors before any mutating operation.
func New(store persist.Adapter, binding menu.Binding) *List {
	l := &List{
		store:     store,
		binding:   binding,
		enabled:   true,
		saveState: true,
		normalize: filepath.Clean,
	}
	binding.SetActivationHandler(l.activated)
	return l
}

// SetNormalizer replaces the path normalizer applied to every incoming
// path. The default is filepath.Clean; comparison stays case-sensitive.
func (l *List) SetNormalizer(fn func(string) string) {
	if fn != nil {
		l.normalize = fn
	}
}

// SetSaveState controls whether SetLastOpened (and activations) persist the
// last-opened path. The in-memory value updates either way.
func (l *List) SetSaveState(on bool) {
	l.saveState = on
}

// SetOnOpen registers the callback invoked with the resolved path when the
// host activates an entry.
func (l *List) SetOnOpen(fn func(path string)) {
	l.onOpen = fn
}

// BindAnchors records the two host anchor handles delimiting the managed
// region and loads the persisted list. Rebinding means the host replaced
// the region: all current item handles are discarded (not removed — they
// are already gone) and the list is rebuilt from the store.
func (l *List) BindAnchors(top, bottom menu.Handle) error {
	if top == menu.NoHandle || bottom == menu.NoHandle {
		return ErrAnchorsUnbound
	}
	if l.bound {
		l.forgetDisplayed()
	}
	l.top, l.bottom = top, bottom
	l.bound = true
	return l.Load()
}

// Add records a file access. The path takes rank 0; previously listed
// entries are renumbered 2, 3, … in their prior order, dropping any old
// occurrence of the same path and anything past mnemonic 9. The full list
// and the last-opened value are persisted before memory or the menu change;
// a failed write leaves both exactly as they were.
func (l *List) Add(path string) error {
	if !l.bound {
		return ErrAnchorsUnbound
	}
	if path == "" {
		return errors.New("mru: empty path")
	}
	path = l.normalize(path)

	next := make([]*Entry, 0, Capacity)
	next = append(next, &Entry{Path: path})
	for _, e := range l.entries {
		if e.Path == path {
			// Dedup: the old occurrence is dropped wherever it was.
			continue
		}
		if len(next) >= Capacity {
			// Tail eviction past mnemonic 9.
			break
		}
		next = append(next, &Entry{Path: e.Path})
	}
	renumber(next)

	if err := l.persistList(next); err != nil {
		return err
	}
	if err := l.persistLastOpened(path); err != nil {
		return err
	}

	l.removeDisplayed()
	l.entries = next
	l.lastOpened = path
	l.display()
	return nil
}

// Clear removes every entry and its menu representation. The last-opened
// value is untouched: it lives outside the erased section.
func (l *List) Clear() error {
	if !l.bound {
		return ErrAnchorsUnbound
	}
	if err := l.store.EraseSection(Section); err != nil {
		return fmt.Errorf("erase mru section: %w", err)
	}
	l.removeDisplayed()
	l.entries = nil
	return nil
}

// Load rebuilds the list from the store: mnemonics 1..9 read in ascending
// order, absent keys skipped, surviving entries renumbered contiguously.
// The separator appears only when at least one entry was loaded.
func (l *List) Load() error {
	if !l.bound {
		return ErrAnchorsUnbound
	}
	l.removeDisplayed()
	l.entries = nil
	for m := 1; m <= Capacity; m++ {
		path := l.store.ReadString(Section, strconv.Itoa(m), "")
		if path == "" {
			continue
		}
		l.entries = append(l.entries, &Entry{Path: path})
	}
	renumber(l.entries)
	l.lastOpened = l.store.ReadString(StateSection, LastOpenedKey, l.lastOpened)
	l.display()
	return nil
}

// SetEnabled propagates an enabled/disabled state to every displayed entry.
// Data model and persistence are unaffected.
func (l *List) SetEnabled(enabled bool) {
	l.enabled = enabled
	for _, e := range l.entries {
		if e.handle == menu.NoHandle {
			continue
		}
		if err := l.binding.SetItemEnabled(e.handle, enabled); err != nil {
			log.Printf("mru: set enabled %q: %v", e.Path, err)
		}
	}
}

// Enabled reports the current pass-through enabled state.
func (l *List) Enabled() bool {
	return l.enabled
}

// LastOpened returns the last-opened path.
func (l *List) LastOpened() string {
	return l.lastOpened
}

// SetLastOpened records the last-opened path. Persisted immediately when
// state saving is on; the in-memory value updates regardless.
func (l *List) SetLastOpened(path string) error {
	path = l.normalize(path)
	if err := l.persistLastOpened(path); err != nil {
		return err
	}
	l.lastOpened = path
	return nil
}

// Entries returns a snapshot of the list in recency order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = Entry{Path: e.Path, Mnemonic: e.Mnemonic}
	}
	return out
}

// Len returns the number of tracked entries.
func (l *List) Len() int {
	return len(l.entries)
}

// persistList rewrites the erasable section from the staged entries.
func (l *List) persistList(entries []*Entry) error {
	if err := l.store.EraseSection(Section); err != nil {
		return fmt.Errorf("erase mru section: %w", err)
	}
	for _, e := range entries {
		if err := l.store.WriteString(Section, strconv.Itoa(e.Mnemonic), e.Path); err != nil {
			return fmt.Errorf("persist entry %d: %w", e.Mnemonic, err)
		}
	}
	return nil
}

func (l *List) persistLastOpened(path string) error {
	if !l.saveState {
		return nil
	}
	if err := l.store.WriteString(StateSection, LastOpenedKey, path); err != nil {
		return fmt.Errorf("write last opened: %w", err)
	}
	return nil
}

// removeDisplayed takes every realized item, separator included, out of the
// menu.
func (l *List) removeDisplayed() {
	for _, e := range l.entries {
		if e.handle == menu.NoHandle {
			continue
		}
		if err := l.binding.RemoveItem(e.handle); err != nil {
			log.Printf("mru: remove item %q: %v", e.Path, err)
		}
		e.handle = menu.NoHandle
	}
	if l.hasSeparator {
		if err := l.binding.RemoveItem(l.separator); err != nil {
			log.Printf("mru: remove separator: %v", err)
		}
		l.hasSeparator = false
	}
}

// forgetDisplayed drops all handles without touching the binding, for when
// the host has already torn the region down (anchor rebinding).
func (l *List) forgetDisplayed() {
	for _, e := range l.entries {
		e.handle = menu.NoHandle
	}
	l.hasSeparator = false
}

// display realizes the current entries as menu items, separator last. The
// separator exists iff the list is nonempty, immediately before the first
// non-managed item after the region.
func (l *List) display() {
	for i, e := range l.entries {
		h, err := l.binding.InsertItem(i, FormatLabel(e.Mnemonic, e.Path), false, e.Mnemonic)
		if err != nil {
			log.Printf("mru: insert item %q: %v", e.Path, err)
			continue
		}
		e.handle = h
		if !l.enabled {
			if err := l.binding.SetItemEnabled(h, false); err != nil {
				log.Printf("mru: disable item %q: %v", e.Path, err)
			}
		}
	}
	if len(l.entries) > 0 {
		h, err := l.binding.InsertItem(len(l.entries), "", true, 0)
		if err != nil {
			log.Printf("mru: insert separator: %v", err)
			return
		}
		l.separator = h
		l.hasSeparator = true
	}
}

// activated resolves a host activation event to its path: an implicit
// SetLastOpened plus the open callback.
func (l *List) activated(h menu.Handle) {
	for _, e := range l.entries {
		if e.handle != h {
			continue
		}
		if err := l.SetLastOpened(e.Path); err != nil {
			log.Printf("mru: record activation %q: %v", e.Path, err)
		}
		if l.onOpen != nil {
			l.onOpen(e.Path)
		}
		return
	}
}
