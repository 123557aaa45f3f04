package hetsnp

import (
	"bufio"
	"fmt"
	"github.com/klauspost/pgzip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const reportColumns string = "chr\tpos\ttumor_maf_normalized\ttumor_depth\ttumor_maf\ttumor_ro\ttumor_ao\tnormal_maf\tnormal_ro\tnormal_ao"

// WriteReport writes the joined SNPs as gzip compressed tsv. Comment lines at the
// top record the thresholds and the record counts of each input, and the last
// line records the size of the intersection. A report that fails part way is removed.
func WriteReport(output string, t Thresholds, tumor, normal *Store, rows []Joined) error {
	return writeGzip(output, func(w io.Writer) error {
		return writeReport(w, t, tumor, normal, rows)
	})
}

// writeGzip creates output and passes write a buffered gzip stream. The gzip
// header name is the file name without its last extension.
func writeGzip(output string, write func(w io.Writer) error) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	gz, err := pgzip.NewWriterLevel(f, pgzip.DefaultCompression)
	if err != nil {
		f.Close()
		os.Remove(output)
		return err
	}
	base := filepath.Base(output)
	gz.Header.Name = strings.TrimSuffix(base, filepath.Ext(base))
	gz.Header.Comment = "puritytools hetsnp"

	w := bufio.NewWriter(gz)
	err = write(w)
	if err == nil {
		err = w.Flush()
	}
	if closeErr := gz.Close(); err == nil {
		err = closeErr
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(output)
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}

func writeReport(w io.Writer, t Thresholds, tumor, normal *Store, rows []Joined) error {
	var err error
	header := []string{
		"#" + t.String(),
		"#tumor snp:" + tumor.File,
		fmt.Sprintf("#tumor no_of_total_records: %d", tumor.Total),
		fmt.Sprintf("#tumor no_of_good_hets: %d", tumor.Accepted),
		"#normal snp:" + normal.File,
		fmt.Sprintf("#normal no_of_total_records: %d", normal.Total),
		fmt.Sprintf("#normal no_of_good_hets: %d", normal.Accepted),
		reportColumns,
	}
	if _, err = fmt.Fprintln(w, strings.Join(header, "\n")); err != nil {
		return err
	}
	for i := range rows {
		if _, err = fmt.Fprintln(w, rows[i].String()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "#no_of_intersect: %d\n", len(rows))
	return err
}

func (j Joined) String() string {
	return fmt.Sprintf("%s\t%d\t%.6f\t%d\t%.6f\t%d\t%d\t%.6f\t%d\t%d",
		j.Chrom, j.Pos, j.TumorMafNormalized, j.TumorDepth,
		j.TumorMaf, j.TumorRo, j.TumorAo,
		j.NormalMaf, j.NormalRo, j.NormalAo)
}
