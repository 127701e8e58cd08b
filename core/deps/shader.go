package deps

import (
	"regexp"
	"strings"

	"q3-demo-checker/core/archive"
)

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`//[^\n]*`)
)

// stagePrefixes are the asset folders a shader stage may point into.
var stagePrefixes = []string{"textures/", "models/", "sound/"}

// ShaderImages returns the image paths referenced by a shader script, in order of
// appearance.
func ShaderImages(script string) []string {
	script = blockComment.ReplaceAllString(script, "")
	script = lineComment.ReplaceAllString(script, "")

	var out []string
	for _, line := range strings.Split(script, "\n") {
		fields := strings.Fields(line)
		for i := 0; i < len(fields); i++ {
			var args []string
			switch strings.ToLower(fields[i]) {
			case "map", "clampmap", "qer_editorimage":
				if i+1 < len(fields) {
					args = fields[i+1 : i+2]
					i++
				}
			case "animmap":
				// animMap <frequency> <frame1> ... <frameN>
				if i+2 < len(fields) {
					args = fields[i+2:]
					i = len(fields)
				}
			}
			for _, a := range args {
				p := archive.Canonical(strings.Trim(a, `"`))
				if hasStagePrefix(p) {
					out = append(out, p)
				}
			}
		}
	}
	return out
}

func hasStagePrefix(p string) bool {
	for _, prefix := range stagePrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}
