package segment

import (
	"errors"
	"fmt"
	"math"
)

var ErrZeroArea = errors.New("segment set has zero total area")

// OverlapWith compares every pair of segments on the same chromosome and returns
// the intersections. Each intersection carries the absolute copy-number
// difference of the pair that produced it.
func (g *Genome) OverlapWith(other *Genome) *Genome {
	ans := NewGenome()
	var a, b Segment
	for c := range g.chroms {
		if len(g.chroms[c]) == 0 || len(other.chroms[c]) == 0 {
			continue
		}
		for _, b = range other.chroms[c] {
			for _, a = range g.chroms[c] {
				start := maxPos(a.Start, b.Start)
				end := minPos(a.End, b.End)
				if start > end {
					continue
				}
				ans.insert(Segment{
					ChromID:    c + 1,
					Start:      start,
					End:        end,
					CopyNumber: math.Abs(a.CopyNumber - b.CopyNumber),
				})
			}
		}
	}
	return ans
}

// ConcordanceScore weights each overlap by its length, decayed exponentially by
// the copy-number difference stored on the overlap.
func ConcordanceScore(overlaps *Genome) float64 {
	var score float64
	for c := range overlaps.chroms {
		for _, s := range overlaps.chroms[c] {
			score += float64(s.Len()) * math.Exp(-s.CopyNumber)
		}
	}
	return score
}

// TotalArea is the summed length of all segments in g.
func (g *Genome) TotalArea() uint64 {
	var sum uint64
	for c := range g.chroms {
		for _, s := range g.chroms[c] {
			sum += s.Len()
		}
	}
	return sum
}

// RecallPrecision scores predicted against truth. Recall is the concordance score
// over the truth area, precision the same score over the predicted area.
func RecallPrecision(truth, predicted *Genome) (recall, precision float64, err error) {
	truthArea := truth.TotalArea()
	if truthArea == 0 {
		return 0, 0, fmt.Errorf("truth: %w", ErrZeroArea)
	}
	predictedArea := predicted.TotalArea()
	if predictedArea == 0 {
		return 0, 0, fmt.Errorf("predicted: %w", ErrZeroArea)
	}
	score := ConcordanceScore(truth.OverlapWith(predicted))
	recall = score / float64(truthArea)
	precision = score / float64(predictedArea)
	return recall, precision, nil
}

func maxPos(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func minPos(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
