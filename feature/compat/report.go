package compat

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"q3-demo-checker/core/deps"
	"q3-demo-checker/core/reconcile"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format is a report output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = fmt.Errorf("unknown report format, want one of %s, %s, %s", FormatText, FormatJSON, FormatYAML)

// ParseFormat parses a format name. An empty name selects fallback.
func ParseFormat(name string, fallback Format) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return fallback, nil
	case FormatText, "txt":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// ContentType returns the HTTP content type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// ReferenceSummary describes the inventories a report was computed against.
type ReferenceSummary struct {
	Demo    int      `json:"demo" yaml:"demo"`
	Patch   int      `json:"patch" yaml:"patch"`
	Full    int      `json:"full" yaml:"full"`
	Skipped []string `json:"skipped_patches,omitempty" yaml:"skipped_patches,omitempty"`
}

func summarize(refs *reconcile.References) ReferenceSummary {
	return ReferenceSummary{
		Demo:    refs.Demo.Len(),
		Patch:   refs.Patch.Len(),
		Full:    refs.Full.Len(),
		Skipped: refs.Skipped,
	}
}

// Report is the outcome of one map check.
type Report struct {
	Map          string             `json:"map" yaml:"map"`
	Verdict      reconcile.Verdict  `json:"verdict" yaml:"verdict"`
	Counts       map[string]int     `json:"counts" yaml:"counts"`
	Result       reconcile.Result   `json:"result" yaml:"result"`
	Dependencies *deps.Dependencies `json:"dependencies" yaml:"dependencies"`
	References   ReferenceSummary   `json:"references" yaml:"references"`
	Duration     string             `json:"duration" yaml:"duration"`
}

// Summary is the one-line result statement.
func (r *Report) Summary() string {
	n := len(r.Result.FullOnly)
	switch r.Verdict {
	case reconcile.VerdictYes:
		return "YES - all dependencies satisfied by map/demo/patch; playable on demo"
	case reconcile.VerdictProbably:
		return fmt.Sprintf("PROBABLY - only %d asset(s) require full pak0", n)
	default:
		return fmt.Sprintf("NO - requires %d assets only in full pak0", n)
	}
}

// Write renders the report in format f.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	case FormatText:
		return r.WriteText(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML renders the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

var bucketTitles = map[reconcile.Bucket]string{
	reconcile.BucketMap:      "Found in map PK3",
	reconcile.BucketDemo:     "Found in demo pak0",
	reconcile.BucketPatch:    "Found in patches pak1-7",
	reconcile.BucketFullOnly: "Found ONLY IN FULL pak0",
}

// WriteText renders the human report. Styles only apply when w is a terminal.
func (r *Report) WriteText(w io.Writer) error {
	re := lipgloss.NewRenderer(w)
	title := re.NewStyle().Bold(true)
	path := re.NewStyle().PaddingLeft(3)
	faint := re.NewStyle().Faint(true)
	verdict := re.NewStyle().Bold(true).Foreground(verdictColor(r.Verdict))

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", title.Render("Map:"), r.Map)
	if r.Dependencies != nil {
		fmt.Fprintf(&b, "%s %s\n", title.Render("BSP:"), r.Dependencies.BSP)
	}

	for _, bucket := range reconcile.Buckets {
		writeGroup(&b, title, path, bucketTitles[bucket], r.Result.Bucket(bucket))
	}
	writeGroup(&b, title, path, "Missing entirely", r.Result.Missing)

	fmt.Fprintf(&b, "\n%s %s\n\n", title.Render("RESULT:"), verdict.Render(r.Summary()))
	for _, bucket := range reconcile.Buckets {
		fmt.Fprintf(&b, "%-24s %d\n", bucketTitles[bucket]+":", len(r.Result.Bucket(bucket)))
	}
	fmt.Fprintf(&b, "%-24s %d\n", "Missing entirely:", len(r.Result.Missing))
	if len(r.References.Skipped) > 0 {
		fmt.Fprintf(&b, "\n%s\n", faint.Render("Skipped patches: "+strings.Join(r.References.Skipped, ", ")))
	}
	if r.Duration != "" {
		fmt.Fprintf(&b, "%s\n", faint.Render("Checked in "+r.Duration))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeGroup(b *strings.Builder, title, path lipgloss.Style, name string, paths []string) {
	fmt.Fprintf(b, "\n%s\n", title.Render(fmt.Sprintf("%s: %d", name, len(paths))))
	for _, p := range paths {
		fmt.Fprintln(b, path.Render(p))
	}
}

func verdictColor(v reconcile.Verdict) lipgloss.Color {
	switch v {
	case reconcile.VerdictYes:
		return lipgloss.Color("10")
	case reconcile.VerdictProbably:
		return lipgloss.Color("11")
	default:
		return lipgloss.Color("9")
	}
}
