// Package reconcile decides whether a map runs on the Quake 3 demo by reconciling the
// assets it requires against the reference paks.
//
// # Inventories
//
// Four sets take part in a reconciliation:
//
//   - Shipped: everything inside the map archive itself.
//   - Demo: the demo pak0.pk3.
//   - Patch: the union of the point-release paks pak1..pak7 (see MergePatches).
//   - Full: the retail pak0.pk3.
//
// # Classification
//
// Classify walks the required assets once and puts each into the first bucket that
// matches, in this fixed order:
//
//  1. BucketMap: the map ships the asset (or a texture folder holding it).
//  2. BucketDemo: the demo pak has it.
//  3. BucketPatch: a patch pak has it.
//  4. BucketFullOnly: only the retail pak has it.
//
// An asset found nowhere is reported as missing. Missing assets are not counted
// against the demo, since nothing proves they come from the retail game.
//
// Lookups accept the texture extension swaps the engine performs: a name without an
// extension also matches .tga and .jpg, and .tga and .jpg stand in for each other.
//
// # Verdict
//
// DeriveVerdict maps the number of full-only assets to YES (0), PROBABLY (1 to
// ProbablyThreshold) or NO (more).
//
// # Cache
//
// Cache keeps built References for a TTL, with singleflight protection, so a long
// running server does not re-read the base paks for every map.
package reconcile
