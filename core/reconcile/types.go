package reconcile

import "q3-demo-checker/core/archive"

// Bucket is the provenance class of a required asset.
type Bucket string

const (
	// BucketMap holds assets the map ships itself.
	BucketMap Bucket = "in_map_itself"
	// BucketDemo holds assets found in the demo pak.
	BucketDemo Bucket = "in_demo"
	// BucketPatch holds assets found in a patch pak.
	BucketPatch Bucket = "in_patch"
	// BucketFullOnly holds assets only the retail pak provides.
	BucketFullOnly Bucket = "full_only"
)

// Buckets lists the buckets in precedence order.
var Buckets = []Bucket{BucketMap, BucketDemo, BucketPatch, BucketFullOnly}

// Verdict is the compatibility answer.
type Verdict string

const (
	// VerdictYes means every asset is available to the demo.
	VerdictYes Verdict = "YES"
	// VerdictProbably means a handful of assets need the retail pak.
	VerdictProbably Verdict = "PROBABLY"
	// VerdictNo means too many assets need the retail pak.
	VerdictNo Verdict = "NO"
)

// References are the inventories a map is checked against.
type References struct {
	Demo    archive.Inventory
	Patch   archive.Inventory
	Full    archive.Inventory
	// Skipped lists patch locations that could not be read.
	Skipped []string
}

// Request is the input of a classification.
type Request struct {
	// Required are the assets the map needs.
	Required archive.Inventory
	// Shipped is the inventory of the map archive. It may be nil.
	Shipped archive.Inventory
	References
}

// Result is the output of a classification. Every list is sorted.
type Result struct {
	InMap    []string `json:"in_map_itself" yaml:"in_map_itself"`
	InDemo   []string `json:"in_demo" yaml:"in_demo"`
	InPatch  []string `json:"in_patch" yaml:"in_patch"`
	FullOnly []string `json:"full_only" yaml:"full_only"`
	// Missing holds assets no inventory provides.
	Missing []string `json:"missing" yaml:"missing"`
	Verdict Verdict  `json:"verdict" yaml:"verdict"`
}

// Bucket returns the paths of bucket b.
func (r *Result) Bucket(b Bucket) []string {
	switch b {
	case BucketMap:
		return r.InMap
	case BucketDemo:
		return r.InDemo
	case BucketPatch:
		return r.InPatch
	case BucketFullOnly:
		return r.FullOnly
	default:
		return nil
	}
}

// Counts returns the size of each bucket plus "missing".
func (r *Result) Counts() map[string]int {
	counts := make(map[string]int, len(Buckets)+1)
	for _, b := range Buckets {
		counts[string(b)] = len(r.Bucket(b))
	}
	counts["missing"] = len(r.Missing)
	return counts
}

// Total returns the number of classified assets, including missing ones.
func (r *Result) Total() int {
	return len(r.InMap) + len(r.InDemo) + len(r.InPatch) + len(r.FullOnly) + len(r.Missing)
}
