package fusion

import "strings"

// Event is one fusion call: two genes joined in one cell line.
type Event struct {
	CellLine string
	Gene1    string
	Gene2    string
}

// ParseRow extracts the Event from one data row. ok is false for rows
// the transform skips: rows too short for the resolved columns, rows
// with an empty gene on either side, and combined labels that do not
// split into two genes. Cell line validity is the caller's concern.
func (l Layout) ParseRow(row []string) (Event, bool) {
	var ev Event

	if l.ColCellLine >= len(row) {
		return ev, false
	}
	ev.CellLine = strings.TrimSpace(row[l.ColCellLine])

	if !l.Combined() {
		if l.ColGene1 >= len(row) || l.ColGene2 >= len(row) {
			return ev, false
		}
		ev.Gene1 = StripAnnotation(strings.TrimSpace(row[l.ColGene1]))
		ev.Gene2 = StripAnnotation(strings.TrimSpace(row[l.ColGene2]))
	} else {
		if l.ColFusionName >= len(row) {
			return ev, false
		}

		var ok bool
		ev.Gene1, ev.Gene2, ok = SplitFusionName(strings.TrimSpace(row[l.ColFusionName]))
		if !ok {
			return ev, false
		}
	}

	if ev.Gene1 == "" || ev.Gene2 == "" {
		return ev, false
	}

	return ev, true
}

// StripAnnotation drops a trailing parenthesized cross-reference from a
// gene name, so "BCR (ENSG00000186716.20)" becomes "BCR". Names without
// the space-parenthesis marker pass through unchanged.
func StripAnnotation(gene string) string {
	if i := strings.Index(gene, " ("); i >= 0 {
		return strings.TrimSpace(gene[:i])
	}

	return gene
}

// SplitFusionName breaks a combined fusion label into its two gene
// names. Arriba writes "BCR--ABL1"; older releases joined with a single
// hyphen, so the double hyphen is tried first. ok is false when the
// label has no separator or either side comes out empty.
func SplitFusionName(name string) (gene1, gene2 string, ok bool) {
	var parts []string
	switch {
	case strings.Contains(name, "--"):
		parts = strings.SplitN(name, "--", 2)
	case strings.Contains(name, "-"):
		parts = strings.SplitN(name, "-", 2)
	default:
		return "", "", false
	}

	gene1 = strings.TrimSpace(parts[0])
	gene2 = strings.TrimSpace(parts[1])
	if gene1 == "" || gene2 == "" {
		return "", "", false
	}

	return gene1, gene2, true
}
