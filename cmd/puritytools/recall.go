package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/purityTools/accuracy"
	"github.com/vertgenlab/gonomics/exception"
	"strings"
)

func recallUsage(recallFlags *flag.FlagSet) {
	fmt.Print(
		"recall - calculate recall and precision of predicted copy-number segments against a truth set\n" +
			"\tOverlaps are weighted by length and decay exponentially with copy-number difference.\n\n" +
			"Usage:\n" +
			"  puritytools recall -t truth.tsv -p predicted.tsv -o recall_precision.tsv\n\n" +
			"Options:\n")
	recallFlags.PrintDefaults()
}

func runRecall(args []string) {
	var err error
	recallFlags := flag.NewFlagSet("recall", flag.ExitOnError)

	truth := recallFlags.String("t", "", "Truth segment file (chrN, start, end, copy number, ...). First line is a header.")
	predicted := recallFlags.String("p", "", "Predicted segment file. First line is a header, lines beginning with '#' are ignored, copy number 2 segments are ignored.")
	output := recallFlags.String("o", "", "Output file for recall and precision.")
	overlapBed := recallFlags.String("overlapBed", "", "Write overlaps between truth and predicted segments to this bed file. Name field is the copy-number difference.")
	verbose := recallFlags.Int("v", 0, "Verbose output by setting to >0.")

	recallFlags.Usage = func() { recallUsage(recallFlags) }
	err = recallFlags.Parse(args)
	exception.PanicOnErr(err)

	if missing := missingFlags(recallFlags, "t", "p", "o"); len(missing) > 0 {
		recallFlags.Usage()
		errExit("\nERROR: must specify " + strings.Join(missing, ", "))
	}

	err = accuracy.RecallPrecision(*truth, *predicted, *output, *overlapBed, *verbose)
	if err != nil {
		errExit("ERROR: recall: " + err.Error())
	}
}
