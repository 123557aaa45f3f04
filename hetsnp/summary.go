package hetsnp

import (
	"errors"
	"fmt"
	"github.com/guptarohit/asciigraph"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Summary describes the distribution of normalized tumor MAF over joined SNPs.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Median float64
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.4f sd=%.4f median=%.4f", s.N, s.Mean, s.StdDev, s.Median)
}

func Summarize(rows []Joined) Summary {
	var ans Summary
	ans.N = len(rows)
	if ans.N == 0 {
		return ans
	}
	x := normalizedMafs(rows)
	slices.Sort(x)
	ans.Mean = stat.Mean(x, nil)
	if ans.N > 1 {
		ans.StdDev = stat.StdDev(x, nil)
	}
	ans.Median = stat.Quantile(0.5, stat.Empirical, x, nil)
	return ans
}

// AsciiHistogram draws counts of normalized tumor MAF in equal width bins over [0,1].
func AsciiHistogram(rows []Joined, bins int) string {
	if len(rows) == 0 || bins < 1 {
		return ""
	}
	counts := make([]float64, bins)
	for _, v := range normalizedMafs(rows) {
		counts[binIndex(v, bins)]++
	}
	return asciigraph.Plot(counts, asciigraph.Height(10), asciigraph.Precision(0))
}

// PlotHistogram saves a histogram of normalized tumor MAF. The image format
// follows the extension of file.
func PlotHistogram(rows []Joined, bins int, file string) error {
	if len(rows) == 0 {
		return errors.New("no joined SNPs to plot")
	}
	h, err := plotter.NewHist(plotter.Values(normalizedMafs(rows)), bins)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Normalized tumor MAF (n=%d)", len(rows))
	p.X.Label.Text = "tumor_maf_normalized"
	p.Y.Label.Text = "SNPs"
	p.Add(h)
	return p.Save(6*vg.Inch, 4*vg.Inch, file)
}

func normalizedMafs(rows []Joined) []float64 {
	ans := make([]float64, len(rows))
	for i := range rows {
		ans[i] = rows[i].TumorMafNormalized
	}
	return ans
}

func binIndex(v float64, bins int) int {
	idx := int(v * float64(bins))
	if idx >= bins {
		return bins - 1
	}
	if idx < 0 {
		return 0
	}
	return idx
}
