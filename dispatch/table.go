// Package dispatch loads OpenGL entry points through a caller-supplied
// resolver, heals missing core functions from their ARB, EXT, OES and vendor
// aliases, and traps calls to anything that stayed unresolved.
//
// A Table is built once by Load and is read-only afterwards, so it can be
// shared between goroutines without locking. Whether concurrent calls into
// the driver are allowed is up to the driver.
package dispatch

import (
	"sort"
	"strings"
	"unsafe"

	"github.com/apex/log"
)

// DefaultPrefix is prepended to every registry name before it is handed to
// the resolver.
const DefaultPrefix = "gl"

// Resolver maps a symbol name such as "glBindVertexArray" to its address,
// or nil when the driver does not export it.
type Resolver func(name string) unsafe.Pointer

// Options configures LoadWith. Zero fields fall back to Registry, Aliases
// and DefaultPrefix.
type Options struct {
	Names   []string
	Aliases []AliasPair
	Prefix  string
}

// Stats summarises a loaded table.
type Stats struct {
	Total   int
	Native  int
	Healed  int
	Missing int
}

// Table holds one FnPtr per entry point.
type Table struct {
	prefix string
	names  []string
	index  map[string]int
	cells  []FnPtr
	healed map[string]string
}

// Load builds a table for every name in Registry and heals it with Aliases.
func Load(resolver Resolver) *Table {
	return LoadWith(resolver, Options{})
}

// LoadWith is Load with an explicit registry, alias list or symbol prefix.
// It never fails: names the resolver cannot find stay unloaded until an
// alias fills them in, and calling one of them traps.
func LoadWith(resolver Resolver, opts Options) *Table {
	if opts.Names == nil {
		opts.Names = Registry
	}
	if opts.Aliases == nil {
		opts.Aliases = Aliases
	}
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}

	t := newTable(opts.Prefix, opts.Names)
	for i, name := range t.names {
		var addr unsafe.Pointer
		if resolver != nil {
			addr = resolver(t.prefix + name)
		}
		t.cells[i] = NewFnPtr(addr)
	}
	t.alias(opts.Aliases)

	st := t.Stats()
	log.WithFields(log.Fields{
		"total":   st.Total,
		"native":  st.Native,
		"healed":  st.Healed,
		"missing": st.Missing,
	}).Debug("gl dispatch table loaded")
	return t
}

func newTable(prefix string, names []string) *Table {
	t := &Table{
		prefix: prefix,
		index:  make(map[string]int, len(names)),
		healed: make(map[string]string),
	}
	for _, name := range names {
		if _, dup := t.index[name]; dup {
			continue
		}
		t.index[name] = len(t.names)
		t.names = append(t.names, name)
	}
	t.cells = make([]FnPtr, len(t.names))
	return t
}

func (t *Table) cell(name string) (FnPtr, bool) {
	i, ok := t.index[name]
	if !ok {
		i, ok = t.index[strings.TrimPrefix(name, t.prefix)]
	}
	if !ok {
		return FnPtr{}, false
	}
	return t.cells[i], true
}

// Has reports whether name is part of the table's registry.
func (t *Table) Has(name string) bool {
	_, ok := t.cell(name)
	return ok
}

// Loaded reports whether name resolved, directly or through an alias.
// Unknown names report false.
func (t *Table) Loaded(name string) bool {
	c, _ := t.cell(name)
	return c.loaded
}

// Addr returns the address name dispatches to: the resolved function, or
// the trap routine for an unloaded name. Unknown names return nil.
func (t *Table) Addr(name string) unsafe.Pointer {
	c, ok := t.cell(name)
	if !ok {
		return nil
	}
	return c.addr
}

// ProcAddr returns the healed address of name, or nil if it is unknown or
// unloaded. It accepts prefixed ("glBindVertexArray") and bare names.
func (t *Table) ProcAddr(name string) unsafe.Pointer {
	c, ok := t.cell(name)
	if !ok || !c.loaded {
		return nil
	}
	return c.addr
}

// Resolver exposes the healed table as a Resolver, for handing to other
// GL bindings.
func (t *Table) Resolver() Resolver {
	return t.ProcAddr
}

// Names returns the registry names in load order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Missing returns the sorted names that are still unloaded.
func (t *Table) Missing() []string {
	var missing []string
	for i, c := range t.cells {
		if !c.loaded {
			missing = append(missing, t.names[i])
		}
	}
	sort.Strings(missing)
	return missing
}

// Healed maps each name filled in by the aliasing pass to its donor.
func (t *Table) Healed() map[string]string {
	healed := make(map[string]string, len(t.healed))
	for k, v := range t.healed {
		healed[k] = v
	}
	return healed
}

// Stats counts native, healed and missing entry points.
func (t *Table) Stats() Stats {
	st := Stats{Total: len(t.cells), Healed: len(t.healed)}
	for _, c := range t.cells {
		if !c.loaded {
			st.Missing++
		}
	}
	st.Native = st.Total - st.Healed - st.Missing
	return st
}
