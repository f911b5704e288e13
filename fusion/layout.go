package fusion

import (
	"fmt"
	"strings"
)

// Cell line headers are matched exactly: DepMap has shipped several
// spellings over the years, and near-misses such as ProfileID must not
// be mistaken for the sample key.
var cellLineColumns = []string{"ModelID", "DepMap_ID", "CellLineID", "ModelId"}

// Layout maps the column roles the transform needs onto the indices of
// one specific fusion table. The schema varies by release, so roles are
// resolved from the header row at runtime. Unresolved roles are -1.
type Layout struct {
	ColCellLine   int
	ColGene1      int
	ColGene2      int
	ColFusionName int

	// CellLineGuessed reports that no recognized cell line header was
	// present and column 0 was assumed.
	CellLineGuessed bool
}

// Combined reports whether gene pairs must be parsed out of a combined
// fusion label because the table lacks one of the per-gene columns.
func (l Layout) Combined() bool {
	return l.ColGene1 < 0 || l.ColGene2 < 0
}

// DetectLayout resolves column roles from the header row. Gene role
// synonyms match after lowercasing and deleting underscores and spaces;
// when several headers map onto the same role, the rightmost wins. An
// error comes back only when no usable gene source exists, which
// callers treat as fatal.
func DetectLayout(header []string) (Layout, error) {
	l := Layout{ColCellLine: -1, ColGene1: -1, ColGene2: -1, ColFusionName: -1}

	if len(header) == 0 {
		return l, fmt.Errorf("the table has an empty header row")
	}

	for i, col := range header {
		for _, want := range cellLineColumns {
			if col == want {
				l.ColCellLine = i
				break
			}
		}
		if l.ColCellLine >= 0 {
			break
		}
	}
	if l.ColCellLine < 0 {
		l.ColCellLine = 0
		l.CellLineGuessed = true
	}

	for i, col := range header {
		switch normalizeHeader(col) {
		case "leftgene", "gene1", "genea", "leftgenename":
			l.ColGene1 = i
		case "rightgene", "gene2", "geneb", "rightgenename":
			l.ColGene2 = i
		case "fusionname", "fusion", "name":
			l.ColFusionName = i
		}
	}

	if l.Combined() && l.ColFusionName < 0 {
		return l, fmt.Errorf("cannot find gene pair columns or a fusion name column in header %v", header)
	}

	return l, nil
}

func normalizeHeader(col string) string {
	col = strings.ToLower(col)
	col = strings.ReplaceAll(col, "_", "")

	return strings.ReplaceAll(col, " ", "")
}
