package webdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fredrikwermeling/correlate-v2/fusion"
)

// The front end consumes this file verbatim, so the exact serialization
// matters: compact separators, sorted keys, string bucket labels.
func TestWriteTranslocations(t *testing.T) {
	idx := fusion.Index([]fusion.Event{
		{CellLine: "ACH-1", Gene1: "BCR", Gene2: "ABL1"},
		{CellLine: "ACH-2", Gene1: "BCR", Gene2: "ABL1"},
	})
	universe := map[string]struct{}{
		"ACH-1": {},
		"ACH-2": {},
		"ACH-3": {},
	}
	summary := fusion.Summarize(idx, universe, 1)

	dir := t.TempDir()
	path, err := WriteTranslocations(dir, summary)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, TranslocationsFile) {
		t.Errorf("unexpected output path %q", path)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"genes":["ABL1","BCR"],` +
		`"geneCounts":{"ABL1":2,"BCR":2},` +
		`"geneData":{` +
		`"ABL1":{"translocations":{"ACH-1":1,"ACH-2":1},"partners":{"ACH-1":["BCR"],"ACH-2":["BCR"]},"counts":{"0":1,"1":2,"2":0},"total_translocated":2},` +
		`"BCR":{"translocations":{"ACH-1":1,"ACH-2":1},"partners":{"ACH-1":["ABL1"],"ACH-2":["ABL1"]},"counts":{"0":1,"1":2,"2":0},"total_translocated":2}` +
		`}}`
	if string(out) != want {
		t.Errorf("unexpected serialization\n got: %s\nwant: %s", out, want)
	}
}

func TestWriteTranslocationsMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	if _, err := WriteTranslocations(dir, fusion.Summary{}); err == nil {
		t.Fatal("expected an error when the output directory is absent")
	}
}
