// Package hetsnp selects high-confidence heterozygous SNPs from tumor and normal
// variant calls, intersects the two call sets and reports allele fractions.
package hetsnp

import (
	"errors"
	"fmt"
)

// Het is the only genotype retained.
const Het string = "0/1"

var (
	ErrMissingTag = errors.New("missing tag")
	ErrDuplicate  = errors.New("duplicate coordinate")
	ErrZeroCount  = errors.New("zero observation count")
	ErrPastEnd    = errors.New("position past end of reference sequence")
)

// Observation is one accepted heterozygous call.
type Observation struct {
	Chrom    string
	Pos      uint64 // 0-based
	Genotype string
	Depth    int
	Abp      float64
	Srp      float64
	Sap      float64
	RefObs   int
	AltObs   int
}

// Key orders observations by reference sequence then position.
type Key struct {
	RefID int
	Pos   uint64
}

func (k Key) Less(o Key) bool {
	if k.RefID != o.RefID {
		return k.RefID < o.RefID
	}
	return k.Pos < o.Pos
}

// Store holds the accepted calls from one variant file along with how many
// records were read in total.
type Store struct {
	File     string
	Snps     map[Key]Observation
	Total    int
	Accepted int
}

func NewStore(file string) *Store {
	return &Store{File: file, Snps: make(map[Key]Observation)}
}

func (s *Store) insert(k Key, o Observation) error {
	if _, found := s.Snps[k]; found {
		return fmt.Errorf("%w: %s:%d", ErrDuplicate, o.Chrom, o.Pos)
	}
	s.Snps[k] = o
	s.Accepted++
	return nil
}
