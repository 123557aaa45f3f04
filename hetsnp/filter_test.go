package hetsnp

import (
	"errors"
	"strings"
	"testing"
)

var testThresholds Thresholds = Thresholds{
	AbpMaxTumor:  20,
	AbpMaxNormal: 20,
	SrpMax:       30,
	SapMax:       30,
	MinCoverage:  10,
	MaxCoverage:  100,
}

func TestRead(t *testing.T) {
	s, err := Read("testdata/tumor.vcf", testThresholds.AbpMaxTumor, testThresholds, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Total != 9 || s.Accepted != 5 || len(s.Snps) != 5 {
		t.Errorf("expected 9 total and 5 accepted, found %d total, %d accepted, %d stored", s.Total, s.Accepted, len(s.Snps))
	}

	expected := map[Key]Observation{
		{0, 1000}: {Chrom: "chr1", Pos: 1000, Genotype: Het, Depth: 20, Abp: 0, Srp: 3, Sap: 3, RefObs: 10, AltObs: 10},
		{0, 6000}: {Chrom: "chr1", Pos: 6000, Genotype: Het, Depth: 20, Abp: 0, Srp: 100, Sap: 3, RefObs: 10, AltObs: 10},
		{1, 500}:  {Chrom: "chr2", Pos: 500, Genotype: Het, Depth: 20, Abp: 3.0103, Srp: 3, Sap: 3, RefObs: 15, AltObs: 5},
		{1, 9000}: {Chrom: "chr2", Pos: 9000, Genotype: Het, Depth: 20, Abp: 0, Srp: 3, Sap: 3, RefObs: 10, AltObs: 10},
		{2, 100}:  {Chrom: "chr10", Pos: 100, Genotype: Het, Depth: 20, Abp: 0, Srp: 3, Sap: 3, RefObs: 8, AltObs: 12},
	}
	for k, e := range expected {
		if o, found := s.Snps[k]; !found || o != e {
			t.Errorf("key %v: expected %v, found %v", k, e, o)
		}
	}
}

func TestReadRejections(t *testing.T) {
	s, err := Read("testdata/tumor.vcf", testThresholds.AbpMaxTumor, testThresholds, nil)
	if err != nil {
		t.Fatal(err)
	}
	rejected := []Key{
		{0, 2000}, // 1/1
		{0, 3000}, // ABP above max
		{0, 4000}, // depth below min
		{0, 5000}, // uncalled
	}
	for _, k := range rejected {
		if _, found := s.Snps[k]; found {
			t.Errorf("key %v should have been rejected", k)
		}
	}

	normal, err := Read("testdata/normal.vcf", testThresholds.AbpMaxNormal, testThresholds, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, found := normal.Snps[Key{0, 2000}]; found {
		t.Error("depth above max coverage should be rejected")
	}
	if normal.Total != 6 || normal.Accepted != 5 {
		t.Errorf("expected 6 total and 5 accepted in normal, found %d and %d", normal.Total, normal.Accepted)
	}
}

func TestReadStrandBias(t *testing.T) {
	th := testThresholds
	th.EnforceStrandBias = true
	s, err := Read("testdata/tumor.vcf", th.AbpMaxTumor, th, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Accepted != 4 {
		t.Errorf("expected 4 accepted with strand bias enforced, found %d", s.Accepted)
	}
	if _, found := s.Snps[Key{0, 6000}]; found {
		t.Error("SRP above max should be rejected when enforced")
	}
}

func TestReadErrors(t *testing.T) {
	_, err := Read("testdata/duplicate.vcf", testThresholds.AbpMaxTumor, testThresholds, nil)
	if !errors.Is(err, ErrDuplicate) {
		t.Error("expected ErrDuplicate, found", err)
	}
	_, err = Read("testdata/missing_abp.vcf", testThresholds.AbpMaxTumor, testThresholds, nil)
	if !errors.Is(err, ErrMissingTag) {
		t.Error("expected ErrMissingTag, found", err)
	}
	_, err = Read("testdata/bad_pos.vcf", testThresholds.AbpMaxTumor, testThresholds, nil)
	if err == nil || !strings.Contains(err.Error(), "record 2") {
		t.Error("expected error for POS 0 on record 2, found", err)
	}
}

func TestGenotype(t *testing.T) {
	cases := []struct {
		alleles  []int16
		phase    []bool
		expected string
	}{
		{[]int16{0, 1}, []bool{false, false}, "0/1"},
		{[]int16{1, 1}, []bool{false, false}, "1/1"},
		{[]int16{0, 1}, []bool{false, true}, "0|1"},
		{[]int16{-1, -1}, []bool{false, false}, "./."},
		{nil, nil, "."},
	}
	for _, c := range cases {
		if g := genotype(c.alleles, c.phase); g != c.expected {
			t.Errorf("expected %s, found %s", c.expected, g)
		}
	}
}

func TestInfoFloat(t *testing.T) {
	info := "AB=0.5;ABP=3.0103,7.5;DP=20;SAP=5.2;SRPX=1;SRP=8"
	if v, err := infoFloat(info, "ABP"); err != nil || v != 3.0103 {
		t.Error("problem reading ABP", v, err)
	}
	if v, err := infoFloat(info, "SRP"); err != nil || v != 8 {
		t.Error("problem reading SRP", v, err)
	}
	if _, err := infoFloat(info, "RPP"); !errors.Is(err, ErrMissingTag) {
		t.Error("expected ErrMissingTag, found", err)
	}
	if _, err := infoFloat("ABP=abc", "ABP"); err == nil {
		t.Error("expected error for malformed value")
	}
}

func TestThresholdsValidate(t *testing.T) {
	if err := testThresholds.Validate(); err != nil {
		t.Error(err)
	}
	th := testThresholds
	th.MinCoverage = 200
	if err := th.Validate(); err == nil {
		t.Error("expected error when min coverage exceeds max coverage")
	}
}
