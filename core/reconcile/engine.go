package reconcile

import (
	"path"
	"strings"

	"q3-demo-checker/core/archive"
)

// ProbablyThreshold is the largest full-only count that still yields PROBABLY.
const ProbablyThreshold = 5

// DeriveVerdict maps a full-only count to a verdict.
func DeriveVerdict(fullOnly int) Verdict {
	switch {
	case fullOnly <= 0:
		return VerdictYes
	case fullOnly <= ProbablyThreshold:
		return VerdictProbably
	default:
		return VerdictNo
	}
}

// MergePatches returns the union of the patch inventories. Nil entries stand for
// absent patches.
func MergePatches(patches ...archive.Inventory) archive.Inventory {
	return archive.Inventory{}.Union(patches...)
}

// Classify assigns every required asset to exactly one bucket, or to Missing.
func Classify(req Request) Result {
	folders := textureFolders(req.Shipped)

	res := Result{
		InMap:    []string{},
		InDemo:   []string{},
		InPatch:  []string{},
		FullOnly: []string{},
		Missing:  []string{},
	}
	for _, dep := range req.Required.Sorted() {
		switch {
		case shippedByMap(dep, req.Shipped, folders):
			res.InMap = append(res.InMap, dep)
		case lookup(dep, req.Demo):
			res.InDemo = append(res.InDemo, dep)
		case lookup(dep, req.Patch):
			res.InPatch = append(res.InPatch, dep)
		case lookup(dep, req.Full):
			res.FullOnly = append(res.FullOnly, dep)
		default:
			res.Missing = append(res.Missing, dep)
		}
	}
	res.Verdict = DeriveVerdict(len(res.FullOnly))
	return res
}

// Candidates returns the names the engine would try for an asset, in order.
func Candidates(dep string) []string {
	c := archive.Canonical(dep)
	switch {
	case !strings.Contains(path.Base(c), "."):
		return []string{c + ".tga", c + ".jpg", c}
	case strings.HasSuffix(c, ".tga"):
		return []string{c, strings.TrimSuffix(c, ".tga") + ".jpg"}
	case strings.HasSuffix(c, ".jpg"):
		return []string{c, strings.TrimSuffix(c, ".jpg") + ".tga"}
	default:
		return []string{c}
	}
}

// Resolve returns the first candidate of dep present in inv.
func Resolve(dep string, inv archive.Inventory) (string, bool) {
	for _, c := range Candidates(dep) {
		if _, ok := inv[c]; ok {
			return c, true
		}
	}
	return "", false
}

func lookup(dep string, inv archive.Inventory) bool {
	if len(inv) == 0 {
		return false
	}
	_, ok := Resolve(dep, inv)
	return ok
}

func shippedByMap(dep string, shipped archive.Inventory, folders []string) bool {
	for _, f := range folders {
		if strings.HasPrefix(dep, f) {
			return true
		}
	}
	return lookup(dep, shipped)
}

// textureFolders returns the textures/<dir>/ folders the map ships files in. A map
// that ships a texture folder owns every asset under it.
func textureFolders(shipped archive.Inventory) []string {
	seen := make(archive.Inventory)
	for p := range shipped {
		rest, ok := strings.CutPrefix(p, "textures/")
		if !ok {
			continue
		}
		dir, _, nested := strings.Cut(rest, "/")
		if !nested || dir == "" {
			continue
		}
		seen["textures/"+dir+"/"] = struct{}{}
	}
	return seen.Sorted()
}
