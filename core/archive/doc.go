// Package archive reads pk3 archives and builds asset path inventories from them.
//
// A pk3 is a plain zip file. The package exposes two things:
//
//   - Inventory: the set of canonical asset paths contained in an archive.
//   - Archive: an opened pk3 that can list its inventory and read single entries,
//     used by the dependency gatherer to read the BSP and shader scripts.
//
// # Canonical Paths
//
// Every path that enters an Inventory goes through Canonical: lowercased, backslashes
// turned into forward slashes, leading "./" and "/" removed. Directory entries are
// never part of an inventory, for any archive, so comparisons between the map and the
// reference paks are exact string matches.
//
// # Errors
//
// Any failure to parse the zip directory or to read an entry is returned as a
// *ReadError naming the archive.
//
// # Usage
//
//	a, err := archive.Open("pak0.pk3", f, size)
//	if err != nil {
//	    return err
//	}
//	inv := a.Inventory()
package archive
