package archive

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/zip"
)

// Archive is an opened pk3.
type Archive struct {
	name  string
	files map[string]*zip.File
	inv   Inventory
}

// Open parses the zip directory of r. The caller keeps ownership of r and must close
// it after the archive is no longer used.
func Open(name string, r io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, &ReadError{Archive: name, Err: err}
	}

	a := &Archive{
		name:  name,
		files: make(map[string]*zip.File, len(zr.File)),
		inv:   make(Inventory, len(zr.File)),
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if !a.inv.Add(f.Name) {
			continue
		}
		c := Canonical(f.Name)
		// First entry wins on duplicate names.
		if _, dup := a.files[c]; !dup {
			a.files[c] = f
		}
	}
	return a, nil
}

// ReadInventory opens r and returns only its inventory.
func ReadInventory(name string, r io.ReaderAt, size int64) (Inventory, error) {
	a, err := Open(name, r, size)
	if err != nil {
		return nil, err
	}
	return a.Inventory(), nil
}

// Name returns the label the archive was opened with.
func (a *Archive) Name() string {
	return a.name
}

// Inventory returns the asset paths of the archive. The returned set must not be modified.
func (a *Archive) Inventory() Inventory {
	return a.inv
}

// Match returns the canonical entry paths accepted by keep, sorted.
func (a *Archive) Match(keep func(path string) bool) []string {
	var out []string
	for p := range a.inv {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// Glob returns the entries matching a doublestar pattern such as "maps/**/*.bsp",
// sorted. The pattern is matched against canonical (lowercase) paths.
func (a *Archive) Glob(pattern string) ([]string, error) {
	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
	}
	return a.Match(func(p string) bool {
		ok, _ := doublestar.Match(pattern, p)
		return ok
	}), nil
}

// ReadFile returns the content of an entry.
func (a *Archive) ReadFile(path string) ([]byte, error) {
	c := Canonical(path)
	f, ok := a.files[c]
	if !ok {
		return nil, &ReadError{Archive: a.name, Entry: c, Err: fmt.Errorf("entry not found")}
	}
	rc, err := f.Open()
	if err != nil {
		return nil, &ReadError{Archive: a.name, Entry: c, Err: err}
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &ReadError{Archive: a.name, Entry: c, Err: err}
	}
	return data, nil
}
