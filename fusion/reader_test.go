package fusion

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	gzip "github.com/klauspost/pgzip"
)

func writeTable(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestReadEventsSeparateColumns(t *testing.T) {
	// The gene pair columns must win over the combined name, which is
	// deliberately wrong here.
	path := writeTable(t, "fusions.csv", `ModelID,FusionName,LeftGene,RightGene
ACH-1,WRONG--PAIR,BCR (ENSG00000186716),ABL1
ACH-2,ALSO--WRONG,EML4,ALK
BAD-LINE,X--Y,TP53,MYC
`)

	events, err := ReadEvents(path, universeOf("ACH-1", "ACH-2"), nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []Event{
		{CellLine: "ACH-1", Gene1: "BCR", Gene2: "ABL1"},
		{CellLine: "ACH-2", Gene1: "EML4", Gene2: "ALK"},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestReadEventsTabDelimited(t *testing.T) {
	path := writeTable(t, "fusions.tsv", "DepMap_ID\tLeftGene\tRightGene\nACH-1\tBCR\tABL1\n")

	events, err := ReadEvents(path, universeOf("ACH-1"), nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []Event{{CellLine: "ACH-1", Gene1: "BCR", Gene2: "ABL1"}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestReadEventsCombinedFallback(t *testing.T) {
	path := writeTable(t, "fusions.csv", `ModelID,FusionName
ACH-1,BCR--ABL1
ACH-1,EML4-ALK
ACH-2,MALFORMED
ACH-2,KMT2A--AFF1
`)

	events, err := ReadEvents(path, universeOf("ACH-1", "ACH-2"), nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []Event{
		{CellLine: "ACH-1", Gene1: "BCR", Gene2: "ABL1"},
		{CellLine: "ACH-1", Gene1: "EML4", Gene2: "ALK"},
		{CellLine: "ACH-2", Gene1: "KMT2A", Gene2: "AFF1"},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestReadEventsGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fusions.csv.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := gzip.NewWriter(f)
	if _, err := w.Write([]byte("ModelID,LeftGene,RightGene\nACH-1,BCR,ABL1\n")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	events, err := ReadEvents(path, universeOf("ACH-1"), nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []Event{{CellLine: "ACH-1", Gene1: "BCR", Gene2: "ABL1"}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestReadEventsUnresolvableSchema(t *testing.T) {
	path := writeTable(t, "fusions.csv", "ModelID,Breakpoint\nACH-1,chr22:23290413\n")

	if _, err := ReadEvents(path, universeOf("ACH-1"), nil); err == nil {
		t.Fatal("a table without any gene source must be rejected")
	}
}

func TestReadEventsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-file.csv")

	if _, err := ReadEvents(path, universeOf("ACH-1"), nil); err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}
