package wmf

import "github.com/benoitkugler/wmfsvg/gdi"

// handleTable is the metafile object table: a fixed number of slots,
// filled by the creation records (first free slot first) and
// emptied by DELETE_OBJECT.
type handleTable struct {
	slots []slot
}

type slot struct {
	used bool
	obj  gdi.Object // may be nil for backends not supporting the object
}

func newHandleTable(size int) handleTable {
	return handleTable{slots: make([]slot, size)}
}

// add stores `obj` in the first free slot, returning its index,
// or false if the table is full.
func (t *handleTable) add(obj gdi.Object) (uint16, bool) {
	for i := range t.slots {
		if !t.slots[i].used {
			t.slots[i] = slot{used: true, obj: obj}
			return uint16(i), true
		}
	}
	return 0, false
}

// get returns the object at index `h`, or false for
// an empty or out of range slot.
func (t *handleTable) get(h uint16) (gdi.Object, bool) {
	if int(h) >= len(t.slots) || !t.slots[h].used {
		return nil, false
	}
	return t.slots[h].obj, true
}

// remove frees the slot `h`, returning false if it was not used.
func (t *handleTable) remove(h uint16) bool {
	if int(h) >= len(t.slots) || !t.slots[h].used {
		return false
	}
	t.slots[h] = slot{}
	return true
}

// len returns the number of used slots.
func (t *handleTable) len() int {
	n := 0
	for _, s := range t.slots {
		if s.used {
			n++
		}
	}
	return n
}

// release drops every reference.
func (t *handleTable) release() { t.slots = nil }

// push is like add, but grows the table when it is full.
func (t *handleTable) push(obj gdi.Object) uint16 {
	if h, ok := t.add(obj); ok {
		return h
	}
	t.slots = append(t.slots, slot{used: true, obj: obj})
	return uint16(len(t.slots) - 1)
}
