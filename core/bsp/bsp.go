package bsp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// Magic opens every Quake 3 BSP.
	Magic = "IBSP"

	// LumpCount is the number of directory entries in the header.
	LumpCount = 17
	// LumpEntities holds the entity text.
	LumpEntities = 0
	// LumpTextures holds the shader references.
	LumpTextures = 1

	// HeaderSize is the size of magic, version and lump directory.
	HeaderSize = 8 + LumpCount*8

	// TextureRecordSize is the size of one texture lump record.
	TextureRecordSize = 72
	// TextureNameSize is the size of the name field of a texture record.
	TextureNameSize = 64
)

var (
	// ErrBadMagic is returned for data that does not start with "IBSP".
	ErrBadMagic = errors.New("invalid BSP: bad magic")
	// ErrTruncated is returned when the header or a lump lies outside the data.
	ErrTruncated = errors.New("invalid BSP: truncated")
)

// Lump is a directory entry.
type Lump struct {
	Offset int32
	Length int32
}

// File is a parsed BSP header over the raw map data.
type File struct {
	Version int32
	Lumps   [LumpCount]Lump
	data    []byte
}

// Parse reads the header of a BSP.
func Parse(data []byte) (*File, error) {
	if len(data) < 4 || string(data[:4]) != Magic {
		return nil, ErrBadMagic
	}
	if len(data) < HeaderSize {
		return nil, ErrTruncated
	}

	f := &File{
		Version: int32(binary.LittleEndian.Uint32(data[4:8])),
		data:    data,
	}
	for i := 0; i < LumpCount; i++ {
		base := 8 + i*8
		f.Lumps[i] = Lump{
			Offset: int32(binary.LittleEndian.Uint32(data[base : base+4])),
			Length: int32(binary.LittleEndian.Uint32(data[base+4 : base+8])),
		}
	}
	return f, nil
}

// Lump returns the raw bytes of lump i.
func (f *File) Lump(i int) ([]byte, error) {
	if i < 0 || i >= LumpCount {
		return nil, fmt.Errorf("lump %d out of range", i)
	}
	l := f.Lumps[i]
	start, end := int64(l.Offset), int64(l.Offset)+int64(l.Length)
	if l.Offset < 0 || l.Length < 0 || end > int64(len(f.data)) {
		return nil, fmt.Errorf("lump %d: %w", i, ErrTruncated)
	}
	return f.data[start:end], nil
}

// Textures returns the non-empty names of the texture lump, in file order.
func (f *File) Textures() ([]string, error) {
	lump, err := f.Lump(LumpTextures)
	if err != nil {
		return nil, err
	}

	count := len(lump) / TextureRecordSize
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		rec := lump[i*TextureRecordSize : i*TextureRecordSize+TextureNameSize]
		if n := bytes.IndexByte(rec, 0); n >= 0 {
			rec = rec[:n]
		}
		if name := asciiOnly(rec); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// Entities returns the entity lump as text.
func (f *File) Entities() (string, error) {
	lump, err := f.Lump(LumpEntities)
	if err != nil {
		return "", err
	}
	if n := bytes.IndexByte(lump, 0); n >= 0 {
		lump = lump[:n]
	}
	return asciiOnly(lump), nil
}

// EntityValues returns every value assigned to one of keys in the entity text, in
// order of appearance. Keys match exactly, so "model" does not match "model2".
func EntityValues(entities string, keys ...string) []string {
	if len(keys) == 0 {
		return nil
	}
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	re := regexp.MustCompile(`"(` + strings.Join(quoted, "|") + `)"\s*"([^"]+)"`)

	var values []string
	for _, m := range re.FindAllStringSubmatch(entities, -1) {
		values = append(values, m[2])
	}
	return values
}

// asciiOnly drops bytes outside 7-bit ASCII.
func asciiOnly(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if c < 0x80 {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
