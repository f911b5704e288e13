package webdata

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
)

// Metadata mirrors the fields of metadata.json that matter here. Other
// fields are maintained by different pipeline steps and are ignored.
type Metadata struct {
	CellLines []string `json:"cellLines"`
}

// ReadMetadata loads metadata.json from the given web_data directory.
func ReadMetadata(dir string) (Metadata, error) {
	var meta Metadata

	f, err := os.Open(filepath.Join(dir, MetadataFile))
	if err != nil {
		return meta, pfx.Err(err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&meta); err != nil {
		if serr, ok := err.(*json.SyntaxError); ok {
			log.Printf("Syntax error in %s at byte offset %d\n", MetadataFile, serr.Offset)
		}

		return meta, pfx.Err(err)
	}

	return meta, nil
}

// CellLineSet returns the usable cell line identifiers as a set.
func (m Metadata) CellLineSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, cellLine := range m.CellLines {
		set[cellLine] = struct{}{}
	}

	return set
}
