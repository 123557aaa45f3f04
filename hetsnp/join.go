package hetsnp

import (
	"fmt"
	"github.com/vertgenlab/gonomics/numbers"
	"sort"
)

// Joined is a SNP accepted in both the tumor and the normal sample.
type Joined struct {
	Chrom              string
	Pos                uint64
	TumorMafNormalized float64
	TumorDepth         int
	TumorMaf           float64
	TumorRo            int
	TumorAo            int
	NormalMaf          float64
	NormalRo           int
	NormalAo           int
}

// Join returns every tumor SNP also present in normal, ordered by reference
// sequence id and then position.
func Join(tumor, normal *Store) ([]Joined, error) {
	keys := make([]Key, 0, len(tumor.Snps))
	for k := range tumor.Snps {
		if _, found := normal.Snps[k]; found {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	var err error
	var t, n Observation
	ans := make([]Joined, len(keys))
	for i, k := range keys {
		t, n = tumor.Snps[k], normal.Snps[k]
		ans[i] = Joined{
			Chrom:      t.Chrom,
			Pos:        t.Pos,
			TumorDepth: t.Depth,
			TumorRo:    t.RefObs,
			TumorAo:    t.AltObs,
			NormalRo:   n.RefObs,
			NormalAo:   n.AltObs,
		}
		if ans[i].TumorMaf, err = Maf(t.RefObs, t.AltObs); err != nil {
			return nil, fmt.Errorf("tumor %s:%d: %w", t.Chrom, t.Pos, err)
		}
		if ans[i].NormalMaf, err = Maf(n.RefObs, n.AltObs); err != nil {
			return nil, fmt.Errorf("normal %s:%d: %w", n.Chrom, n.Pos, err)
		}
		if ans[i].TumorMafNormalized, err = NormalizedMaf(t.RefObs, t.AltObs, n.RefObs, n.AltObs); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", t.Chrom, t.Pos, err)
		}
	}
	return ans, nil
}

// Maf is the fraction of reads supporting the more frequent allele.
func Maf(ro, ao int) (float64, error) {
	if ro+ao == 0 {
		return 0, fmt.Errorf("%w: depth is 0", ErrZeroCount)
	}
	return float64(numbers.Max(ro, ao)) / float64(ro+ao), nil
}

// NormalizedMaf scales each tumor allele count by the matching normal count and
// returns the share of the larger scaled allele. The result is in [0.5, 1].
func NormalizedMaf(tumorRo, tumorAo, normalRo, normalAo int) (float64, error) {
	if normalRo == 0 || normalAo == 0 {
		return 0, fmt.Errorf("%w: normal ro=%d ao=%d", ErrZeroCount, normalRo, normalAo)
	}
	ratioRef := float64(tumorRo) / float64(normalRo)
	ratioAlt := float64(tumorAo) / float64(normalAo)
	if ratioRef+ratioAlt == 0 {
		return 0, fmt.Errorf("%w: tumor ro=%d ao=%d", ErrZeroCount, tumorRo, tumorAo)
	}
	if ratioAlt > ratioRef {
		return ratioAlt / (ratioAlt + ratioRef), nil
	}
	return ratioRef / (ratioAlt + ratioRef), nil
}
