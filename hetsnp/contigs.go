package hetsnp

import (
	"github.com/vertgenlab/gonomics/vcf"
	"strings"
)

// Contigs numbers reference sequences in the order they are first declared.
type Contigs struct {
	ids   map[string]int
	names []string
}

func NewContigs(names ...string) *Contigs {
	c := &Contigs{ids: make(map[string]int)}
	for i := range names {
		c.ID(names[i])
	}
	return c
}

// ID returns the id of chrom, assigning the next free id if chrom is new.
func (c *Contigs) ID(chrom string) int {
	if id, found := c.ids[chrom]; found {
		return id
	}
	c.ids[chrom] = len(c.names)
	c.names = append(c.names, chrom)
	return c.ids[chrom]
}

func (c *Contigs) Names() []string {
	return c.names
}

// addHeader registers the ##contig lines of header in order.
func (c *Contigs) addHeader(header vcf.Header) {
	var id string
	for _, line := range header.Text {
		if !strings.HasPrefix(line, "##contig=<") {
			continue
		}
		if id = contigID(line); id != "" {
			c.ID(id)
		}
	}
}

func contigID(line string) string {
	fields := strings.Split(strings.TrimSuffix(strings.TrimPrefix(line, "##contig=<"), ">"), ",")
	for i := range fields {
		if strings.HasPrefix(fields[i], "ID=") {
			return strings.TrimPrefix(fields[i], "ID=")
		}
	}
	return ""
}
