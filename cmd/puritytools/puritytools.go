package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

const version string = "0.0.1"
const gonomicsVersion string = "1.0.1-0.20240426183757-e6c6ab634c20"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands contains all valid subcommands.
// New subcommands can be added to puritytools by adding a new entry to this array.
var SubCommands = []*subcommand{
	{"hetsnp", runHetSnp, "select heterozygous SNPs shared by tumor and normal"},
	{"recall", runRecall, "score predicted copy-number segments against a truth set"},
}

func usage() {
	s := new(strings.Builder)
	s.WriteString(
		"Program: puritytools (tumor purity and ploidy support tools for tumor-normal WGS)\n" +
			"Version: " + version + " (gonomics " + gonomicsVersion + ")\n" +
			"\nUsage:\tpuritytools <command> [options]\n\n" +
			"Commands:\n")

	// add subcommand text via tabwriter so the columns align
	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()
	fmt.Print(s.String())
}

// commandMap builds a map of possible subcommands keyed on the name of the subcommand
func commandMap() map[string]func(args []string) {
	m := make(map[string]func(args []string))
	for i := range SubCommands {
		m[SubCommands[i].name] = SubCommands[i].function
	}
	return m
}

func main() {
	flag.Usage = usage
	flag.Parse()

	// check if first argument is a valid subcommand
	command := commandMap()[flag.Arg(0)]

	// if no command is found, print the usage and exit
	if command == nil {
		flag.Usage()
		os.Exit(1)
	}

	// if command successfully found, pass in remaining arguments and execute
	command(flag.Args()[1:])
}

// missingFlags lists the required flags that were not set on the command line.
func missingFlags(fs *flag.FlagSet, required ...string) []string {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	var ans []string
	for _, name := range required {
		if !set[name] {
			ans = append(ans, "-"+name)
		}
	}
	return ans
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
