// Package segment holds copy-number segments partitioned by autosome and the
// overlap arithmetic used to score a predicted segmentation against a truth set.
package segment

import (
	"errors"
	"fmt"
)

// NumAutosomes is the number of chromosome buckets in a Genome (chr1 - chr22).
const NumAutosomes int = 22

// NeutralCopyNumber is the diploid baseline. Predicted segments at this copy number are not scored.
const NeutralCopyNumber float64 = 2.0

var ErrChromRange = errors.New("chromosome id out of range")

// Segment is a closed, 1-based interval on one autosome annotated with a copy number.
type Segment struct {
	ChromID    int
	Start      uint64
	End        uint64
	CopyNumber float64
}

// Len is the number of bases covered by s.
func (s Segment) Len() uint64 {
	return s.End - s.Start + 1
}

func (s Segment) String() string {
	return fmt.Sprintf("chr%d:%d-%d[%g]", s.ChromID, s.Start, s.End, s.CopyNumber)
}

// Genome is a fixed set of per-autosome segment lists.
type Genome struct {
	chroms [NumAutosomes][]Segment
}

func NewGenome() *Genome {
	return new(Genome)
}

// Add inserts s into the bucket for its chromosome. s is placed before the first
// existing segment whose start and end are both greater than those of s. This is
// a loose ordering and does not prevent overlapping segments within a bucket.
func (g *Genome) Add(s Segment) error {
	if s.ChromID < 1 || s.ChromID > NumAutosomes {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrChromRange, s.ChromID, NumAutosomes)
	}
	if s.Start > s.End {
		return fmt.Errorf("segment %s has start after end", s)
	}
	g.insert(s)
	return nil
}

// insert places s in its bucket. s must already be checked by Add.
func (g *Genome) insert(s Segment) {
	bucket := g.chroms[s.ChromID-1]
	idx := len(bucket)
	for i := range bucket {
		if bucket[i].Start > s.Start && bucket[i].End > s.End {
			idx = i
			break
		}
	}
	bucket = append(bucket, Segment{})
	copy(bucket[idx+1:], bucket[idx:])
	bucket[idx] = s
	g.chroms[s.ChromID-1] = bucket
}

// Chrom returns the segments stored for chromosome id. The returned slice must not be modified.
func (g *Genome) Chrom(id int) []Segment {
	if id < 1 || id > NumAutosomes {
		return nil
	}
	return g.chroms[id-1]
}

// Len is the total number of segments across all chromosomes.
func (g *Genome) Len() int {
	var ans int
	for i := range g.chroms {
		ans += len(g.chroms[i])
	}
	return ans
}
