package deps

import (
	"strings"

	"q3-demo-checker/core/archive"
)

// Rules lists dependencies that are never checked.
type Rules struct {
	// IgnorePaths are path prefixes, e.g. "textures/common/".
	IgnorePaths []string `mapstructure:"paths" default:"textures/common/,textures/radiant/notex"`
	// IgnoreTerms are whole names, e.g. "$lightmap".
	IgnoreTerms []string `mapstructure:"terms" default:"noshader,shadernotfound,$lightmap,$whiteimage,flareshader"`
}

// DefaultRules returns the ignore rules used when none are configured.
func DefaultRules() Rules {
	return Rules{
		IgnorePaths: []string{"textures/common/", "textures/radiant/notex"},
		IgnoreTerms: []string{"noshader", "shadernotfound", "$lightmap", "$whiteimage", "flareshader"},
	}
}

// Ignored reports whether dep matches an ignored term or prefix.
func (r Rules) Ignored(dep string) bool {
	c := archive.Canonical(dep)
	for _, term := range r.IgnoreTerms {
		if c == archive.Canonical(term) {
			return true
		}
	}
	for _, prefix := range r.IgnorePaths {
		p := archive.Canonical(prefix)
		if p != "" && strings.HasPrefix(c, p) {
			return true
		}
	}
	return false
}
