// Package fai reads the reference sequence list from a fasta index.
package fai

import (
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"strconv"
	"strings"
)

// Index holds the reference sequences of a fai file in file order.
type Index struct {
	chroms  []chrom
	nameMap map[string]int // maps chr name to index in chroms
}

// chrom is the name and length columns of one fai line.
type chrom struct {
	name string
	len  int
}

// Names returns the reference sequence names in the order of the index.
func (idx Index) Names() []string {
	ans := make([]string, len(idx.chroms))
	for i := range idx.chroms {
		ans[i] = idx.chroms[i].name
	}
	return ans
}

// Size returns the length of chr and whether chr is in the index.
func (idx Index) Size(chr string) (int, bool) {
	i, found := idx.nameMap[chr]
	if !found {
		return 0, false
	}
	return idx.chroms[i].len, true
}

// ReadIndex reads a fai file. Only the name and length columns are kept.
func ReadIndex(filename string) (Index, error) {
	file := fileio.EasyOpen(filename)
	defer func() {
		exception.PanicOnErr(file.Close())
	}()

	answer := Index{nameMap: make(map[string]int)}
	var curr chrom
	var line string
	var col []string
	var done bool
	var err error
	var lineNum int
	for line, done = fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		lineNum++
		col = strings.Split(line, "\t")
		if len(col) != 5 {
			return Index{}, fmt.Errorf("malformed index file %s, line %d has %d columns: %s", filename, lineNum, len(col), line)
		}
		curr.name = col[0]
		if curr.len, err = strconv.Atoi(col[1]); err != nil {
			return Index{}, fmt.Errorf("malformed index file %s, line %d: %w", filename, lineNum, err)
		}
		if _, found := answer.nameMap[curr.name]; found {
			return Index{}, fmt.Errorf("malformed index file %s, %s is listed twice", filename, curr.name)
		}
		answer.nameMap[curr.name] = len(answer.chroms)
		answer.chroms = append(answer.chroms, curr)
	}
	return answer, nil
}
