package objects

import "testing"

func TestNewHasDisplayAtOne(t *testing.T) {
	m := New()
	obj, ok := m.Get(DisplayObjectID)
	if !ok {
		t.Fatalf("expected object 1 to exist")
	}
	if obj.Interface != Display {
		t.Fatalf("expected object 1 to be wl_display, got %v", obj.Interface)
	}
	if m.Len() != 1 {
		t.Fatalf("expected exactly one object after New, got %d", m.Len())
	}
}

func TestInsertGetRemove(t *testing.T) {
	m := New()
	m.Insert(Object{ID: 5, Interface: Surface, Version: 5})

	obj, ok := m.Get(5)
	if !ok || obj.Interface != Surface {
		t.Fatalf("expected surface at id 5, got %+v ok=%v", obj, ok)
	}

	removed, ok := m.Remove(5)
	if !ok || removed.ID != 5 {
		t.Fatalf("expected to remove object 5, got %+v ok=%v", removed, ok)
	}
	if _, ok := m.Get(5); ok {
		t.Fatalf("object 5 should no longer exist")
	}
}

func TestGetMissingReturnsFalse(t *testing.T) {
	m := New()
	if _, ok := m.Get(999); ok {
		t.Fatalf("expected no object at id 999")
	}
}

func TestAllocServerIDStartsAtReservedRangeAndIsMonotonic(t *testing.T) {
	m := New()

	first := m.AllocServerID(Callback, 1)
	if first < firstServerID {
		t.Fatalf("expected first server id >= 0x%X, got 0x%X", firstServerID, first)
	}

	second := m.AllocServerID(Callback, 1)
	if second != first+1 {
		t.Fatalf("expected monotonically increasing server ids, got %d then %d", first, second)
	}

	obj, ok := m.Get(first)
	if !ok || obj.Interface != Callback {
		t.Fatalf("expected allocated id to be inserted as Callback, got %+v ok=%v", obj, ok)
	}
}

func TestInterfaceStringNames(t *testing.T) {
	cases := map[Interface]string{
		Display:    "wl_display",
		Registry:   "wl_registry",
		Compositor: "wl_compositor",
		Surface:    "wl_surface",
		Shm:        "wl_shm",
		XdgWmBase:  "xdg_wm_base",
		Seat:       "wl_seat",
	}
	for iface, want := range cases {
		if got := iface.String(); got != want {
			t.Errorf("Interface(%d).String() = %q, want %q", iface, got, want)
		}
	}
}
