// Package deps works out which assets a map archive needs at run time.
//
// Gather looks at three places inside the map pk3:
//
//   - the texture lump of the first maps/*.bsp (every shader the geometry uses),
//   - the "model", "model2" and "noise" keys of the entity lump,
//   - the stage images of every scripts/*.shader (map, clampMap, animMap frames and
//     qer_editorImage) that live under textures/, models/ or sound/.
//
// Names are canonicalized the same way as archive inventories. Rules drop engine
// internals that no pak ships, such as $lightmap or textures/common/.
package deps
