package defs

import (
	"github.com/glossopoeia/interlang/compiler/ident"
	"github.com/glossopoeia/interlang/compiler/util"
)

// Names of the program entry point. The registry stores these for the loader
// to consult, it never validates them.
const (
	EntryPoint     ident.Name = "main"
	HVM1EntryPoint ident.Name = "Main"
)

// A bijective table between definition names and their handles. Each registry
// allocates handles from its own counter, starting at zero, and never hands out
// the same handle twice.
//
// Inserting a name that is already present allocates a new handle: looking up
// the name then yields the newest handle, while the older handle still maps
// back to the name until it is removed. Rejecting duplicate names is left to
// the caller.
type DefNames struct {
	idToName map[ident.DefId]ident.Name
	nameToId map[ident.Name]ident.DefId
	idCount  ident.DefId
}

func New() *DefNames {
	return &DefNames{
		idToName: map[ident.DefId]ident.Name{},
		nameToId: map[ident.Name]ident.DefId{},
	}
}

func (d *DefNames) Name(id ident.DefId) (ident.Name, bool) {
	nam, ok := d.idToName[id]
	return nam, ok
}

func (d *DefNames) DefId(name ident.Name) (ident.DefId, bool) {
	id, ok := d.nameToId[name]
	return id, ok
}

func (d *DefNames) ContainsName(name ident.Name) bool {
	_, ok := d.nameToId[name]
	return ok
}

func (d *DefNames) ContainsDefId(id ident.DefId) bool {
	_, ok := d.idToName[id]
	return ok
}

// Allocate the next handle for the name and record both directions.
func (d *DefNames) Insert(name ident.Name) ident.DefId {
	id := d.idCount
	d.idCount += 1
	d.idToName[id] = name
	d.nameToId[name] = id
	return id
}

// Remove the handle and its name from the registry. Removing an unknown handle
// does nothing and reports false.
func (d *DefNames) Remove(id ident.DefId) (ident.Name, bool) {
	nam, ok := d.idToName[id]
	if !ok {
		return ident.None, false
	}
	delete(d.idToName, id)
	// a stale handle must not evict the newer handle that shadowed it
	if cur, ok := d.nameToId[nam]; ok && cur == id {
		delete(d.nameToId, nam)
	}
	return nam, true
}

// Every name resolvable through DefId, in ascending order.
func (d *DefNames) Names() []ident.Name {
	return util.SortedKeys(d.nameToId)
}

// Every handle resolvable through Name, in ascending order.
func (d *DefNames) DefIds() []ident.DefId {
	return util.SortedKeys(d.idToName)
}

// The number of live handles.
func (d *DefNames) Len() int {
	return len(d.idToName)
}
