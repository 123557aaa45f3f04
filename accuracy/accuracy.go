// Package accuracy scores a predicted copy-number segmentation against a truth set.
package accuracy

import (
	"fmt"
	"github.com/dasnellings/purityTools/segment"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
)

// RecallPrecision reads the truth and predicted segmentations, scores them, and
// writes a two column table of recall and precision to output. If overlapBed is
// not empty the pairwise overlaps used for scoring are written there as bed.
func RecallPrecision(truthFile, predictedFile, output, overlapBed string, verbose int) error {
	truth, err := segment.ReadTruth(truthFile)
	if err != nil {
		return err
	}
	predicted, err := segment.ReadPredicted(predictedFile)
	if err != nil {
		return err
	}
	if verbose > 0 {
		log.Printf("read %d truth segments (%d bp) and %d predicted segments (%d bp)\n",
			truth.Len(), truth.TotalArea(), predicted.Len(), predicted.TotalArea())
	}

	if overlapBed != "" {
		bedOut := fileio.EasyCreate(overlapBed)
		segment.WriteBed(bedOut, truth.OverlapWith(predicted))
		if err = bedOut.Close(); err != nil {
			return err
		}
	}

	recall, precision, err := segment.RecallPrecision(truth, predicted)
	if err != nil {
		return fmt.Errorf("scoring %s against %s: %w", predictedFile, truthFile, err)
	}
	log.Printf("recall: %.6f, precision: %.6f\n", recall, precision)

	out := fileio.EasyCreate(output)
	if _, err = fmt.Fprintf(out, "recall\tprecision\n%.6f\t%.6f\n", recall, precision); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
