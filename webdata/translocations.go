package webdata

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"

	"github.com/fredrikwermeling/correlate-v2/fusion"
)

// WriteTranslocations marshals the summary into translocations.json under
// the given web_data directory and returns the path it wrote.
func WriteTranslocations(dir string, summary fusion.Summary) (string, error) {
	out, err := json.Marshal(summary)
	if err != nil {
		return "", pfx.Err(err)
	}

	path := filepath.Join(dir, TranslocationsFile)
	if err := os.WriteFile(path, out, 0644); err != nil {
		return "", pfx.Err(err)
	}

	return path, nil
}
