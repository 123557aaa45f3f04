package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/purityTools/hetsnp"
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"strings"
)

func hetSnpUsage(hetSnpFlags *flag.FlagSet) {
	fmt.Print(
		"hetsnp - select heterozygous SNPs called in both tumor and normal and report allele fractions\n" +
			"\tInput VCFs must carry ABP, SRP and SAP in INFO and RO and AO in FORMAT (e.g. freebayes).\n\n" +
			"Usage:\n" +
			"  puritytools hetsnp [options] -t tumor.vcf -n normal.vcf -o hets.tsv.gz\n\n" +
			"Options:\n")
	hetSnpFlags.PrintDefaults()
}

func runHetSnp(args []string) {
	var err error
	var t hetsnp.Thresholds
	hetSnpFlags := flag.NewFlagSet("hetsnp", flag.ExitOnError)

	tumor := hetSnpFlags.String("t", "", "Tumor VCF file.")
	normal := hetSnpFlags.String("n", "", "Normal VCF file.")
	output := hetSnpFlags.String("o", "", "Output file. Always gzip compressed.")
	hetSnpFlags.Float64Var(&t.AbpMaxTumor, "abpMaxTumor", 0, "Maximum ABP (allele balance phred) allowed for the tumor sample.")
	hetSnpFlags.Float64Var(&t.AbpMaxNormal, "abpMaxNormal", 0, "Maximum ABP (allele balance phred) allowed for the normal sample.")
	hetSnpFlags.Float64Var(&t.SrpMax, "srpMax", 0, "Maximum SRP (strand balance phred of the reference allele). Only applied with -enforceStrandBias.")
	hetSnpFlags.Float64Var(&t.SapMax, "sapMax", 0, "Maximum SAP (strand balance phred of the alternate allele). Only applied with -enforceStrandBias.")
	hetSnpFlags.IntVar(&t.MinCoverage, "minCoverage", 0, "Minimum RO+AO. SNPs below this value are ignored.")
	hetSnpFlags.IntVar(&t.MaxCoverage, "maxCoverage", 0, "Maximum RO+AO. SNPs above this value are ignored.")
	hetSnpFlags.BoolVar(&t.EnforceStrandBias, "enforceStrandBias", false, "Reject SNPs with SRP > srpMax or SAP > sapMax.")
	faiFile := hetSnpFlags.String("fai", "", "Reference fasta index (.fai). Output is ordered by the sequences in the index instead of the VCF header contigs.")
	plotFile := hetSnpFlags.String("plot", "", "Save a histogram of normalized tumor MAF. Format follows the file extension (e.g. .pdf, .png, .svg).")
	verbose := hetSnpFlags.Int("v", 0, "Verbose output by setting to >0.")

	hetSnpFlags.Usage = func() { hetSnpUsage(hetSnpFlags) }
	err = hetSnpFlags.Parse(args)
	exception.PanicOnErr(err)

	missing := missingFlags(hetSnpFlags, "t", "n", "o", "abpMaxTumor", "abpMaxNormal", "srpMax", "sapMax", "minCoverage", "maxCoverage")
	if len(missing) > 0 {
		hetSnpFlags.Usage()
		errExit("\nERROR: must specify " + strings.Join(missing, ", "))
	}

	if !strings.HasSuffix(*output, ".gz") {
		log.Printf("WARNING: output %s will be gzip compressed but does not end in .gz\n", *output)
	}

	err = hetsnp.Select(*tumor, *normal, *output, *plotFile, *faiFile, t, *verbose)
	if err != nil {
		errExit("ERROR: hetsnp: " + err.Error())
	}
}
