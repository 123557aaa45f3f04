package hetsnp

import (
	"errors"
	"fmt"
	"github.com/vertgenlab/gonomics/vcf"
	"golang.org/x/exp/slices"
	"log"
	"strconv"
	"strings"
)

// Thresholds are the acceptance limits shared by the tumor and normal passes.
// SrpMax and SapMax are only applied when EnforceStrandBias is set.
type Thresholds struct {
	AbpMaxTumor       float64
	AbpMaxNormal      float64
	SrpMax            float64
	SapMax            float64
	MinCoverage       int
	MaxCoverage       int
	EnforceStrandBias bool
}

func (t Thresholds) Validate() error {
	if t.MinCoverage < 0 {
		return errors.New("minimum coverage must be >= 0")
	}
	if t.MinCoverage > t.MaxCoverage {
		return fmt.Errorf("minimum coverage (%d) is greater than maximum coverage (%d)", t.MinCoverage, t.MaxCoverage)
	}
	return nil
}

func (t Thresholds) String() string {
	return fmt.Sprintf("abp_max_tumor=%g, abp_max_normal=%g, srp_max=%g, sap_max=%g, min_coverage=%d, max_coverage=%d",
		t.AbpMaxTumor, t.AbpMaxNormal, t.SrpMax, t.SapMax, t.MinCoverage, t.MaxCoverage)
}

// Read streams file and keeps every record whose first sample is a 0/1 call with
// ABP <= abpMax and RO+AO within the coverage limits. The position stored on each
// observation is 0-based. Reference sequence ids are taken from contigs, which is
// extended with the contigs of the file header. Stores that will be joined must
// share the same contigs. A nil contigs uses the file header alone.
func Read(file string, abpMax float64, t Thresholds, contigs *Contigs) (*Store, error) {
	log.Printf("Reading from %s with abp_max=%g, srp_max=%g, sap_max=%g, min_coverage=%d, max_coverage=%d, enforce_strand_bias=%t ...\n",
		file, abpMax, t.SrpMax, t.SapMax, t.MinCoverage, t.MaxCoverage, t.EnforceStrandBias)
	records, header := vcf.GoReadToChan(file)
	if contigs == nil {
		contigs = NewContigs()
	}
	contigs.addHeader(header)
	s := NewStore(file)

	var err error
	var obs Observation
	var pass bool
	for v := range records {
		if err != nil {
			continue // drain so the reader can finish
		}
		s.Total++
		obs, pass, err = evaluate(v, abpMax, t)
		if err != nil {
			err = fmt.Errorf("%s record %d (%s:%d): %w", file, s.Total, v.Chr, v.Pos, err)
			continue
		}
		if !pass {
			continue
		}
		if err = s.insert(Key{RefID: contigs.ID(v.Chr), Pos: obs.Pos}, obs); err != nil {
			err = fmt.Errorf("%s: %w", file, err)
		}
	}
	if err != nil {
		return nil, err
	}
	log.Printf("%d good hets out of %d SNPs in total.\n", s.Accepted, s.Total)
	return s, nil
}

func evaluate(v vcf.Vcf, abpMax float64, t Thresholds) (Observation, bool, error) {
	var ans Observation
	var err error
	if v.Pos < 1 {
		return ans, false, fmt.Errorf("POS %d is not 1-based", v.Pos)
	}
	if ans.Abp, err = infoFloat(v.Info, "ABP"); err != nil {
		return ans, false, err
	}
	if ans.Srp, err = infoFloat(v.Info, "SRP"); err != nil {
		return ans, false, err
	}
	if ans.Sap, err = infoFloat(v.Info, "SAP"); err != nil {
		return ans, false, err
	}
	if len(v.Samples) == 0 {
		return ans, false, errors.New("no sample columns")
	}
	ans.Genotype = genotype(v.Samples[0].Alleles, v.Samples[0].Phase)

	if ans.Genotype != Het || ans.Abp > abpMax {
		return ans, false, nil
	}
	if t.EnforceStrandBias && (ans.Srp > t.SrpMax || ans.Sap > t.SapMax) {
		return ans, false, nil
	}

	// RO and AO are not meaningful for uncalled genotypes so they are only read here
	if ans.RefObs, err = formatInt(v, "RO"); err != nil {
		return ans, false, err
	}
	if ans.AltObs, err = formatInt(v, "AO"); err != nil {
		return ans, false, err
	}
	ans.Depth = ans.RefObs + ans.AltObs
	if ans.Depth < t.MinCoverage || ans.Depth > t.MaxCoverage {
		return ans, false, nil
	}

	ans.Chrom = v.Chr
	ans.Pos = uint64(v.Pos - 1)
	return ans, true, nil
}

// genotype renders a GT as text, e.g. 0/1, 1|0 or ./.
func genotype(alleles []int16, phase []bool) string {
	if len(alleles) == 0 {
		return "."
	}
	var sb strings.Builder
	for j := range alleles {
		if j > 0 {
			if len(phase) > j && phase[j] {
				sb.WriteByte('|')
			} else {
				sb.WriteByte('/')
			}
		}
		if alleles[j] < 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteString(strconv.Itoa(int(alleles[j])))
		}
	}
	return sb.String()
}

func infoFloat(info string, key string) (float64, error) {
	var words []string
	for _, field := range strings.Split(info, ";") {
		words = strings.SplitN(field, "=", 2)
		if words[0] != key {
			continue
		}
		if len(words) < 2 {
			return 0, fmt.Errorf("INFO %s has no value", key)
		}
		ans, err := strconv.ParseFloat(strings.Split(words[1], ",")[0], 64)
		if err != nil {
			return 0, fmt.Errorf("INFO %s: %w", key, err)
		}
		return ans, nil
	}
	return 0, fmt.Errorf("%w %s in INFO", ErrMissingTag, key)
}

func formatInt(v vcf.Vcf, key string) (int, error) {
	idx := slices.Index(v.Format, key)
	if idx == -1 || idx >= len(v.Samples[0].FormatData) {
		return 0, fmt.Errorf("%w %s in FORMAT", ErrMissingTag, key)
	}
	ans, err := strconv.Atoi(strings.Split(v.Samples[0].FormatData[idx], ",")[0])
	if err != nil {
		return 0, fmt.Errorf("FORMAT %s: %w", key, err)
	}
	if ans < 0 {
		return 0, fmt.Errorf("FORMAT %s is negative (%d)", key, ans)
	}
	return ans, nil
}
