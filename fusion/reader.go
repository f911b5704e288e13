package fusion

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"

	correlate "github.com/fredrikwermeling/correlate-v2"
)

var (
	// BufferSize is the read buffer for the fusion table, which runs to
	// hundreds of thousands of rows in recent releases.
	BufferSize = 4096 * 8

	// ProgressRows sets the cadence of scan progress log lines.
	ProgressRows = 100000
)

// ReadEvents parses the fusion table at path into events, keeping only
// rows whose cell line is a member of universe. path may be local or a
// gs:// URL (when client is non-nil) and may be compressed. Row-level
// problems are skipped silently; the returned error covers I/O failures
// and an unresolvable schema.
func ReadEvents(path string, universe map[string]struct{}, client *storage.Client) ([]Event, error) {
	f, err := correlate.MaybeOpenFromGoogleStorage(correlate.ExpandHome(path), client)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	sniff, err := correlate.MaybeDecompress(f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	delim := correlate.DetermineDelimiter(sniff)
	sniff.Close()
	log.Printf("Determined delimiter to be \"%s\"\n", string(delim))

	// The decompressed reader cannot seek, so rewind the underlying
	// file and decompress again for the parsing pass.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, pfx.Err(err)
	}
	r, err := correlate.MaybeDecompress(f)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	fileCSV := csv.NewReader(bufio.NewReaderSize(r, BufferSize))
	fileCSV.Comma = delim
	fileCSV.LazyQuotes = true
	fileCSV.FieldsPerRecord = -1

	header, err := fileCSV.Read()
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("header parsing error: %v", err))
	}
	log.Printf("Columns found: %v\n", header)

	layout, err := DetectLayout(header)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if layout.CellLineGuessed {
		log.Printf("Warning: using first column %q as the cell line ID\n", header[layout.ColCellLine])
	}
	if layout.Combined() {
		log.Printf("Gene columns not found directly, will parse gene pairs from %q\n", header[layout.ColFusionName])
	} else {
		log.Printf("Using gene columns %q and %q\n", header[layout.ColGene1], header[layout.ColGene2])
	}

	var events []Event
	for scanned := 1; ; scanned++ {
		if scanned%ProgressRows == 0 {
			log.Println("Scanned row", scanned)
		}

		row, err := fileCSV.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		ev, ok := layout.ParseRow(row)
		if !ok {
			continue
		}
		if _, valid := universe[ev.CellLine]; !valid {
			continue
		}

		events = append(events, ev)
	}

	return events, nil
}
