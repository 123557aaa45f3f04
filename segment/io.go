package segment

import (
	"fmt"
	"github.com/vertgenlab/gonomics/bed"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/slices"
	"io"
	"strconv"
	"strings"
)

// column layout of the predicted segmentation file
const (
	predChromCol      int = 0
	predCopyNumberCol int = 3
	predStartCol      int = 10
	predEndCol        int = 11
)

var autosomeNames []string = makeAutosomeNames()

func makeAutosomeNames() []string {
	ans := make([]string, NumAutosomes)
	for i := range ans {
		ans[i] = fmt.Sprintf("chr%d", i+1)
	}
	return ans
}

// ReadTruth reads a truth segmentation. The first line is a header. Each following
// line is chrom, start, end, copy number and trailing columns that are ignored.
// Rows on anything other than chr1-chr22 are skipped.
func ReadTruth(file string) (*Genome, error) {
	var err error
	var line string
	var done bool
	var lineNum, chromIdx int
	var words []string
	var s Segment
	g := NewGenome()
	in := fileio.EasyOpen(file)
	defer cleanup(in)

	for line, done = fileio.EasyNextLine(in); !done; line, done = fileio.EasyNextLine(in) {
		lineNum++
		if lineNum == 1 || line == "" {
			continue
		}
		words = strings.Split(line, "\t")
		chromIdx = slices.Index(autosomeNames, words[0])
		if chromIdx == -1 {
			continue
		}
		if len(words) < 4 {
			return nil, fmt.Errorf("%s line %d: expected at least 4 columns, found %d", file, lineNum, len(words))
		}
		s.ChromID = chromIdx + 1
		if s.Start, err = parsePos(words[1]); err != nil {
			return nil, fmt.Errorf("%s line %d: start: %w", file, lineNum, err)
		}
		if s.End, err = parsePos(words[2]); err != nil {
			return nil, fmt.Errorf("%s line %d: end: %w", file, lineNum, err)
		}
		if s.CopyNumber, err = strconv.ParseFloat(words[3], 64); err != nil {
			return nil, fmt.Errorf("%s line %d: copy number: %w", file, lineNum, err)
		}
		if err = g.Add(s); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", file, lineNum, err)
		}
	}
	return g, nil
}

// ReadPredicted reads a predicted segmentation. The first line is a header and lines
// beginning with '#' are comments. Chromosome is an integer id in column 1, copy
// number is column 4 and start/end are columns 11 and 12. Rows at the neutral copy
// number are dropped.
func ReadPredicted(file string) (*Genome, error) {
	var err error
	var line string
	var done bool
	var lineNum int
	var words []string
	var s Segment
	g := NewGenome()
	in := fileio.EasyOpen(file)
	defer cleanup(in)

	for line, done = fileio.EasyNextLine(in); !done; line, done = fileio.EasyNextLine(in) {
		lineNum++
		if lineNum == 1 || line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = strings.Split(line, "\t")
		if len(words) <= predEndCol {
			return nil, fmt.Errorf("%s line %d: expected at least %d columns, found %d", file, lineNum, predEndCol+1, len(words))
		}
		if s.ChromID, err = strconv.Atoi(words[predChromCol]); err != nil {
			return nil, fmt.Errorf("%s line %d: chromosome id: %w", file, lineNum, err)
		}
		if s.CopyNumber, err = strconv.ParseFloat(words[predCopyNumberCol], 64); err != nil {
			return nil, fmt.Errorf("%s line %d: copy number: %w", file, lineNum, err)
		}
		if s.Start, err = parsePos(words[predStartCol]); err != nil {
			return nil, fmt.Errorf("%s line %d: start: %w", file, lineNum, err)
		}
		if s.End, err = parsePos(words[predEndCol]); err != nil {
			return nil, fmt.Errorf("%s line %d: end: %w", file, lineNum, err)
		}
		if s.CopyNumber == NeutralCopyNumber {
			continue
		}
		if err = g.Add(s); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", file, lineNum, err)
		}
	}
	return g, nil
}

// WriteBed writes every segment in g as a 0-based half-open bed record. The name
// field holds the copy number.
func WriteBed(out io.Writer, g *Genome) {
	var b bed.Bed
	b.FieldsInitialized = 4
	for c := range g.chroms {
		for _, s := range g.chroms[c] {
			b.Chrom = autosomeNames[c]
			b.ChromStart = int(s.Start) - 1
			b.ChromEnd = int(s.End)
			b.Name = strconv.FormatFloat(s.CopyNumber, 'g', 6, 64)
			bed.WriteBed(out, b)
		}
	}
}

func parsePos(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func cleanup(f io.Closer) {
	err := f.Close()
	exception.PanicOnErr(err)
}
