// Package bsptest builds minimal IBSP files for tests.
package bsptest

import (
	"encoding/binary"

	"q3-demo-checker/core/bsp"
)

// Build returns a version 46 BSP whose texture lump lists textures and whose entity
// lump holds entities. All other lumps are empty.
func Build(textures []string, entities string) []byte {
	ents := append([]byte(entities), 0)

	tex := make([]byte, len(textures)*bsp.TextureRecordSize)
	for i, name := range textures {
		copy(tex[i*bsp.TextureRecordSize:i*bsp.TextureRecordSize+bsp.TextureNameSize-1], name)
	}

	out := make([]byte, bsp.HeaderSize, bsp.HeaderSize+len(ents)+len(tex))
	copy(out, bsp.Magic)
	binary.LittleEndian.PutUint32(out[4:8], 46)

	put := func(lump int, offset, length int) {
		base := 8 + lump*8
		binary.LittleEndian.PutUint32(out[base:base+4], uint32(offset))
		binary.LittleEndian.PutUint32(out[base+4:base+8], uint32(length))
	}

	put(bsp.LumpEntities, len(out), len(ents))
	out = append(out, ents...)
	put(bsp.LumpTextures, len(out), len(tex))
	out = append(out, tex...)

	for i := bsp.LumpTextures + 1; i < bsp.LumpCount; i++ {
		put(i, len(out), 0)
	}
	return out
}
