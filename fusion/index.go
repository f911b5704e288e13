// Package fusion turns DepMap fusion call tables into the per-gene
// partner summaries served to the Correlate front end.
package fusion

// PartnerIndex records, for each gene, the partner genes seen fused to
// it in each cell line. Both orientations of every event are
// registered, so looking up either gene of a pair finds the other.
type PartnerIndex map[string]map[string]map[string]struct{}

// Index aggregates events into a PartnerIndex.
func Index(events []Event) PartnerIndex {
	idx := make(PartnerIndex)
	for _, ev := range events {
		idx.Add(ev)
	}

	return idx
}

// Add registers ev under both gene orientations. The same pair seen
// again in the same cell line, e.g. one rearrangement called at two
// breakpoints, collapses to a single partner through set semantics.
func (idx PartnerIndex) Add(ev Event) {
	idx.add(ev.Gene1, ev.CellLine, ev.Gene2)
	idx.add(ev.Gene2, ev.CellLine, ev.Gene1)
}

func (idx PartnerIndex) add(gene, cellLine, partner string) {
	byCell := idx[gene]
	if byCell == nil {
		byCell = make(map[string]map[string]struct{})
		idx[gene] = byCell
	}

	partners := byCell[cellLine]
	if partners == nil {
		partners = make(map[string]struct{})
		byCell[cellLine] = partners
	}

	partners[partner] = struct{}{}
}
