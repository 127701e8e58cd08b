package compat

import (
	"bytes"
	"encoding/json"
	"testing"

	"q3-demo-checker/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testReport(fullOnly ...string) *Report {
	result := reconcile.Result{
		InMap:    []string{"textures/tig/wall.tga"},
		InDemo:   []string{"textures/base_wall/metal"},
		InPatch:  []string{},
		FullOnly: append([]string{}, fullOnly...),
		Missing:  []string{"textures/nowhere/x"},
	}
	result.Verdict = reconcile.DeriveVerdict(len(result.FullOnly))
	return &Report{
		Map:     "tig_den.pk3",
		Verdict: result.Verdict,
		Counts:  result.Counts(),
		Result:  result,
		References: ReferenceSummary{
			Demo: 10, Patch: 5, Full: 20,
			Skipped: []string{"baseq3/pak7.pk3"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" txt ", FormatText, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in, FormatText)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReport_Summary(t *testing.T) {
	assert.Equal(t, "YES - all dependencies satisfied by map/demo/patch; playable on demo", testReport().Summary())
	assert.Equal(t, "PROBABLY - only 2 asset(s) require full pak0", testReport("a", "b").Summary())
	assert.Equal(t, "NO - requires 6 assets only in full pak0", testReport("a", "b", "c", "d", "e", "f").Summary())
}

func TestReport_WriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testReport("models/mapobjects/lamp.md3").WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "Map: tig_den.pk3")
	assert.Contains(t, out, "Found in map PK3: 1\n   textures/tig/wall.tga")
	assert.Contains(t, out, "Found ONLY IN FULL pak0: 1\n   models/mapobjects/lamp.md3")
	assert.Contains(t, out, "Missing entirely: 1\n   textures/nowhere/x")
	assert.Contains(t, out, "RESULT: PROBABLY - only 1 asset(s) require full pak0")
	assert.Contains(t, out, "Skipped patches: baseq3/pak7.pk3")
	// Plain writers get no escape sequences.
	assert.NotContains(t, out, "\x1b[")
}

func TestReport_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testReport().Write(&buf, FormatJSON))

	var body map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &body))
	assert.Equal(t, "YES", body["verdict"])
	assert.Equal(t, float64(1), body["counts"].(map[string]any)["missing"])
	assert.Equal(t, []any{}, body["result"].(map[string]any)["in_patch"])
}

func TestReport_WriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testReport("a").Write(&buf, FormatYAML))

	var body struct {
		Verdict string `yaml:"verdict"`
		Result  struct {
			FullOnly []string `yaml:"full_only"`
		} `yaml:"result"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &body))
	assert.Equal(t, "PROBABLY", body.Verdict)
	assert.Equal(t, []string{"a"}, body.Result.FullOnly)
}

func TestReport_WriteUnknown(t *testing.T) {
	assert.ErrorIs(t, testReport().Write(&bytes.Buffer{}, Format("xml")), ErrUnknownFormat)
}
