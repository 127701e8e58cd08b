// Package bsp reads the parts of a Quake 3 IBSP map file that name external assets.
//
// Only two lumps matter to the checker:
//
//   - Lump 0 (entities): the entity text block. Keys such as "model" and "noise"
//     name models and sounds.
//   - Lump 1 (textures): fixed 72-byte records whose first 64 bytes hold a
//     NUL-terminated shader or texture name.
//
// The header is the "IBSP" magic, a little-endian int32 version and 17 directory
// entries of (offset, length) int32 pairs.
package bsp
