// Package objects implements the per-connection Wayland object ID registry:
// a map from object id to the interface it was bound as, plus allocation of
// server-initiated ids in the range Wayland reserves for the compositor.
package objects

// Interface tags every object a connection can hold. Most behavior lives in
// package protocol; a handful of these (Subcompositor, Region, XdgPositioner,
// DataDeviceManager, DataDevice) are pure registration targets — a real
// client's get_registry/bind roundtrip creates them, but this bridge has no
// request to handle on them beyond existing in the map, so a later request
// against one isn't reported as an unknown object.
type Interface int

const (
	Display Interface = iota
	Registry
	Compositor
	Subcompositor
	Surface
	Subsurface
	Region
	Shm
	ShmPool
	Buffer
	XdgWmBase
	XdgSurface
	XdgToplevel
	XdgPositioner
	Seat
	Keyboard
	Pointer
	Output
	Callback
	DataDeviceManager
	DataDevice
)

// String names an Interface the way its Wayland protocol XML would, for
// logging.
func (i Interface) String() string {
	switch i {
	case Display:
		return "wl_display"
	case Registry:
		return "wl_registry"
	case Compositor:
		return "wl_compositor"
	case Subcompositor:
		return "wl_subcompositor"
	case Surface:
		return "wl_surface"
	case Subsurface:
		return "wl_subsurface"
	case Region:
		return "wl_region"
	case Shm:
		return "wl_shm"
	case ShmPool:
		return "wl_shm_pool"
	case Buffer:
		return "wl_buffer"
	case XdgWmBase:
		return "xdg_wm_base"
	case XdgSurface:
		return "xdg_surface"
	case XdgToplevel:
		return "xdg_toplevel"
	case XdgPositioner:
		return "xdg_positioner"
	case Seat:
		return "wl_seat"
	case Keyboard:
		return "wl_keyboard"
	case Pointer:
		return "wl_pointer"
	case Output:
		return "wl_output"
	case Callback:
		return "wl_callback"
	case DataDeviceManager:
		return "wl_data_device_manager"
	case DataDevice:
		return "wl_data_device"
	default:
		return "unknown"
	}
}

// DisplayObjectID is the fixed id of the wl_display singleton, present in
// every connection from the start.
const DisplayObjectID uint32 = 1

// firstServerID is the start of the id range Wayland reserves for
// server-allocated objects; the guest never allocates an id in this range.
const firstServerID uint32 = 0xFF000000

// Object is a single entry in a connection's object graph.
type Object struct {
	ID        uint32
	Interface Interface
	Version   uint32
}

// Map is a per-connection registry of live object ids. It is not safe for
// concurrent use; each connection owns exactly one and calls it only from
// its own processing goroutine.
type Map struct {
	objects      map[uint32]Object
	nextServerID uint32
}

// New returns a Map seeded with the wl_display singleton at id 1.
func New() *Map {
	m := &Map{
		objects:      make(map[uint32]Object),
		nextServerID: firstServerID,
	}
	m.Insert(Object{ID: DisplayObjectID, Interface: Display, Version: 1})
	return m
}

// Insert adds or replaces the object at its own id.
func (m *Map) Insert(obj Object) {
	m.objects[obj.ID] = obj
}

// Get returns the object at id, if any.
func (m *Map) Get(id uint32) (Object, bool) {
	obj, ok := m.objects[id]
	return obj, ok
}

// Remove deletes the object at id, returning it if it existed.
func (m *Map) Remove(id uint32) (Object, bool) {
	obj, ok := m.objects[id]
	if ok {
		delete(m.objects, id)
	}
	return obj, ok
}

// AllocServerID reserves the next server-side id, inserts it with the given
// interface and version, and returns it.
func (m *Map) AllocServerID(iface Interface, version uint32) uint32 {
	id := m.nextServerID
	m.nextServerID++
	m.Insert(Object{ID: id, Interface: iface, Version: version})
	return id
}

// Len reports how many objects are currently live, for tests and metrics.
func (m *Map) Len() int {
	return len(m.objects)
}
