package hetsnp

import (
	"bufio"
	"errors"
	"github.com/klauspost/pgzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readReport(t *testing.T, file string) (name string, lines []string) {
	f, err := os.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gz, err := pgzip.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	defer gz.Close()
	scanner := bufio.NewScanner(gz)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		t.Fatal(err)
	}
	return gz.Header.Name, lines
}

func TestSelect(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "hets.tsv.gz")
	plotFile := filepath.Join(dir, "hist.png")
	err := Select("testdata/tumor.vcf", "testdata/normal.vcf", output, plotFile, "", testThresholds, 1)
	if err != nil {
		t.Fatal(err)
	}

	name, lines := readReport(t, output)
	if name != "hets.tsv" {
		t.Errorf("expected gzip name hets.tsv, found %q", name)
	}
	expected := []string{
		"#abp_max_tumor=20, abp_max_normal=20, srp_max=30, sap_max=30, min_coverage=10, max_coverage=100",
		"#tumor snp:testdata/tumor.vcf",
		"#tumor no_of_total_records: 9",
		"#tumor no_of_good_hets: 5",
		"#normal snp:testdata/normal.vcf",
		"#normal no_of_total_records: 6",
		"#normal no_of_good_hets: 5",
		reportColumns,
		"chr1\t1000\t0.666667\t20\t0.500000\t10\t10\t0.666667\t20\t10",
		"chr1\t6000\t0.500000\t20\t0.500000\t10\t10\t0.500000\t10\t10",
		"chr2\t500\t0.750000\t20\t0.750000\t15\t5\t0.500000\t10\t10",
		"chr10\t100\t0.600000\t20\t0.600000\t8\t12\t0.500000\t10\t10",
		"#no_of_intersect: 4",
	}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, found %d:\n%s", len(expected), len(lines), strings.Join(lines, "\n"))
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d: expected %q, found %q", i, expected[i], lines[i])
		}
	}

	if info, err := os.Stat(plotFile); err != nil || info.Size() == 0 {
		t.Error("histogram plot was not written", err)
	}
}

func TestSelectErrors(t *testing.T) {
	dir := t.TempDir()
	th := testThresholds
	th.MaxCoverage = 5
	if err := Select("testdata/tumor.vcf", "testdata/normal.vcf", filepath.Join(dir, "a.tsv.gz"), "", "", th, 0); err == nil {
		t.Error("expected error for inverted coverage limits")
	}
	err := Select("testdata/tumor.vcf", "testdata/normal.vcf", filepath.Join(dir, "missing", "b.tsv.gz"), "", "", testThresholds, 0)
	if err == nil {
		t.Error("expected error when the report cannot be created")
	}
}

func TestSelectReferenceOrder(t *testing.T) {
	output := filepath.Join(t.TempDir(), "hets.tsv.gz")
	err := Select("testdata/tumor.vcf", "testdata/normal.vcf", output, "", "testdata/reversed.fa.fai", testThresholds, 0)
	if err != nil {
		t.Fatal(err)
	}
	_, lines := readReport(t, output)
	var chroms []string
	for _, line := range lines {
		if !strings.HasPrefix(line, "#") && line != reportColumns {
			chroms = append(chroms, strings.Split(line, "\t")[0])
		}
	}
	if strings.Join(chroms, ",") != "chr10,chr2,chr1,chr1" {
		t.Error("rows not in reference index order", chroms)
	}
}

func TestSummarize(t *testing.T) {
	rows := []Joined{
		{TumorMafNormalized: 0.5},
		{TumorMafNormalized: 0.9},
		{TumorMafNormalized: 0.6},
		{TumorMafNormalized: 0.8},
	}
	s := Summarize(rows)
	if s.N != 4 || s.Mean < 0.6999 || s.Mean > 0.7001 {
		t.Error("unexpected summary", s)
	}
	if s.Median != 0.6 {
		t.Errorf("expected empirical median 0.6, found %f", s.Median)
	}
	if s.StdDev <= 0 {
		t.Error("expected positive standard deviation", s)
	}
	if empty := Summarize(nil); empty.N != 0 || empty.Mean != 0 {
		t.Error("unexpected summary for no rows", empty)
	}
	if AsciiHistogram(rows, 10) == "" {
		t.Error("expected histogram output")
	}
	if AsciiHistogram(nil, 10) != "" {
		t.Error("expected empty histogram for no rows")
	}
}

func TestWriteGzipRemovesPartial(t *testing.T) {
	output := filepath.Join(t.TempDir(), "partial.tsv.gz")
	err := writeGzip(output, func(w io.Writer) error {
		if _, err := io.WriteString(w, "chr1\t1000\n"); err != nil {
			return err
		}
		return errors.New("input ended early")
	})
	if err == nil {
		t.Error("expected write error")
	}
	if _, err = os.Stat(output); !os.IsNotExist(err) {
		t.Error("partial report was left on disk", err)
	}
}

func TestSelectPastReferenceEnd(t *testing.T) {
	output := filepath.Join(t.TempDir(), "hets.tsv.gz")
	err := Select("testdata/tumor.vcf", "testdata/normal.vcf", output, "", "testdata/short.fa.fai", testThresholds, 0)
	if !errors.Is(err, ErrPastEnd) {
		t.Error("expected ErrPastEnd, found", err)
	}
	if err == nil || !strings.Contains(err.Error(), "chr1:6000") {
		t.Error("expected error to name chr1:6000, found", err)
	}
	if _, err = os.Stat(output); !os.IsNotExist(err) {
		t.Error("report written for SNP past reference end", err)
	}
}
