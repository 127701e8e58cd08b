package archive

import (
	"sort"
	"strings"
)

// Inventory is a set of canonical asset paths.
type Inventory map[string]struct{}

// NewInventory builds an inventory from raw paths, canonicalizing each one.
// Directory paths and empty names are dropped.
func NewInventory(paths ...string) Inventory {
	inv := make(Inventory, len(paths))
	for _, p := range paths {
		inv.Add(p)
	}
	return inv
}

// Canonical returns the normalized form of an asset path.
func Canonical(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	p = strings.ReplaceAll(p, `\`, "/")
	for {
		switch {
		case strings.HasPrefix(p, "./"):
			p = p[2:]
		case strings.HasPrefix(p, "/"):
			p = p[1:]
		default:
			return p
		}
	}
}

// Add inserts a path. It returns false when the path was a directory or empty.
func (inv Inventory) Add(p string) bool {
	c := Canonical(p)
	if c == "" || strings.HasSuffix(c, "/") {
		return false
	}
	inv[c] = struct{}{}
	return true
}

// Has reports whether the canonical form of p is in the inventory.
func (inv Inventory) Has(p string) bool {
	_, ok := inv[Canonical(p)]
	return ok
}

// Len returns the number of paths.
func (inv Inventory) Len() int {
	return len(inv)
}

// Union returns a new inventory holding every path of inv and others.
func (inv Inventory) Union(others ...Inventory) Inventory {
	size := len(inv)
	for _, o := range others {
		size += len(o)
	}
	out := make(Inventory, size)
	for p := range inv {
		out[p] = struct{}{}
	}
	for _, o := range others {
		for p := range o {
			out[p] = struct{}{}
		}
	}
	return out
}

// Sorted returns the paths in lexical order.
func (inv Inventory) Sorted() []string {
	out := make([]string, 0, len(inv))
	for p := range inv {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
