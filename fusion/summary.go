package fusion

import (
	"fmt"
	"sort"
)

// Summary is the translocations.json payload. Field order here is the
// field order of the serialized file.
type Summary struct {
	Genes      []string               `json:"genes"`
	GeneCounts map[string]int         `json:"geneCounts"`
	GeneData   map[string]GeneSummary `json:"geneData"`
}

// GeneSummary is the per-gene block of the payload.
type GeneSummary struct {
	// Translocations counts distinct partners per cell line.
	Translocations map[string]int `json:"translocations"`

	// Partners lists the partner genes per cell line, sorted.
	Partners map[string][]string `json:"partners"`

	Counts            BucketCounts `json:"counts"`
	TotalTranslocated int          `json:"total_translocated"`
}

// BucketCounts histograms the full cell line universe for one gene:
// wild type (no recorded partners), exactly one partner, or two plus.
type BucketCounts struct {
	WildType int `json:"0"`
	Single   int `json:"1"`
	Multiple int `json:"2"`
}

// Summarize drops genes fused in fewer than minCellLines distinct cell
// lines and builds the payload for the rest. universe is the full valid
// cell line set; universe members absent from a gene's index count as
// wild type for that gene.
func Summarize(idx PartnerIndex, universe map[string]struct{}, minCellLines int) Summary {
	out := Summary{
		Genes:      make([]string, 0, len(idx)),
		GeneCounts: make(map[string]int),
		GeneData:   make(map[string]GeneSummary),
	}

	for gene, byCell := range idx {
		if len(byCell) >= minCellLines {
			out.Genes = append(out.Genes, gene)
		}
	}
	sort.Strings(out.Genes)

	for _, gene := range out.Genes {
		byCell := idx[gene]

		gs := GeneSummary{
			Translocations:    make(map[string]int, len(byCell)),
			Partners:          make(map[string][]string, len(byCell)),
			TotalTranslocated: len(byCell),
		}

		for cellLine, partnerSet := range byCell {
			partners := make([]string, 0, len(partnerSet))
			for partner := range partnerSet {
				partners = append(partners, partner)
			}
			sort.Strings(partners)

			gs.Translocations[cellLine] = len(partners)
			gs.Partners[cellLine] = partners

			if len(partners) >= 2 {
				gs.Counts.Multiple++
			} else {
				gs.Counts.Single++
			}
		}

		gs.Counts.WildType = len(universe) - gs.TotalTranslocated

		out.GeneCounts[gene] = gs.TotalTranslocated
		out.GeneData[gene] = gs
	}

	return out
}

// GeneCount pairs a gene with its translocated cell line count for
// rank-ordered reporting.
type GeneCount struct {
	Gene  string
	Count int
}

func (g GeneCount) String() string {
	return fmt.Sprintf("%s:%d", g.Gene, g.Count)
}

// TopGenes returns up to n genes ranked by translocated cell line
// count, descending, ties broken alphabetically.
func (s Summary) TopGenes(n int) []GeneCount {
	ranked := make([]GeneCount, 0, len(s.Genes))
	for _, gene := range s.Genes {
		ranked = append(ranked, GeneCount{Gene: gene, Count: s.GeneCounts[gene]})
	}

	// s.Genes is alphabetical, so a stable sort leaves ties in
	// alphabetical order.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })

	if n > len(ranked) {
		n = len(ranked)
	}

	return ranked[:n]
}
