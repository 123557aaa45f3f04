package hetsnp

import (
	"fmt"
	"github.com/dasnellings/purityTools/fai"
	"log"
	"strings"
)

const histogramBins int = 20

// Select reads heterozygous SNPs from the tumor and normal files, writes the SNPs
// found in both to output, and optionally plots the normalized tumor MAF. When
// faiFile is set, output is ordered by the reference index instead of the VCF headers.
func Select(tumorFile, normalFile, output, plotFile, faiFile string, t Thresholds, verbose int) error {
	if err := t.Validate(); err != nil {
		return err
	}

	contigs := NewContigs()
	var refCount int
	var idx fai.Index
	var err error
	if faiFile != "" {
		if idx, err = fai.ReadIndex(faiFile); err != nil {
			return err
		}
		contigs = NewContigs(idx.Names()...)
		refCount = len(idx.Names())
	}

	tumor, err := Read(tumorFile, t.AbpMaxTumor, t, contigs)
	if err != nil {
		return err
	}
	normal, err := Read(normalFile, t.AbpMaxNormal, t, contigs)
	if err != nil {
		return err
	}
	if faiFile != "" {
		if len(contigs.Names()) > refCount {
			log.Printf("WARNING: %s not found in %s. These are ordered after the reference sequences.\n",
				strings.Join(contigs.Names()[refCount:], ","), faiFile)
		}
		if err = checkReference(tumor, idx); err != nil {
			return err
		}
		if err = checkReference(normal, idx); err != nil {
			return err
		}
	}

	rows, err := Join(tumor, normal)
	if err != nil {
		return fmt.Errorf("joining %s and %s: %w", tumorFile, normalFile, err)
	}
	if err = WriteReport(output, t, tumor, normal, rows); err != nil {
		return err
	}
	log.Printf("%d intersect SNPs.\n", len(rows))

	if verbose > 0 {
		log.Println(Summarize(rows))
		if hist := AsciiHistogram(rows, histogramBins); hist != "" {
			log.Printf("tumor_maf_normalized over [0,1] in %d bins\n%s\n", histogramBins, hist)
		}
	}

	if plotFile != "" {
		if err = PlotHistogram(rows, histogramBins, plotFile); err != nil {
			log.Printf("WARNING: could not plot %s: %s\n", plotFile, err)
		}
	}
	return nil
}

// checkReference returns ErrPastEnd if an accepted SNP lies beyond the end of its
// sequence in idx. SNPs on sequences missing from idx are not checked.
func checkReference(s *Store, idx fai.Index) error {
	for _, o := range s.Snps {
		if size, found := idx.Size(o.Chrom); found && o.Pos >= uint64(size) {
			return fmt.Errorf("%w: %s:%d in %s (length %d)", ErrPastEnd, o.Chrom, o.Pos, s.File, size)
		}
	}
	return nil
}
