// Package genome holds the in-memory data model for the visualization:
// interval records grouped by chromosome, chromosome-name parsing, and the
// global statistics that drive color and line scaling.
//
// Datasets preserve file order. Intervals are stored in the order they were
// read, and chromosomes remember their first-seen order. Nothing is sorted or
// deduplicated at load time; rendering decides its own iteration order.
package genome

// Interval is a single record from an input table: a half-open genomic span
// with an attached value. For gene records the value is a density or
// expression measure; for SNP records it is the plotted statistic and
// Start == End.
type Interval struct {
	Start int
	End   int
	Value float64
}

// Dataset maps chromosome names to ordered interval sequences.
// The zero value is not usable; create with NewDataset.
type Dataset struct {
	order   []string
	byChrom map[string][]Interval
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{byChrom: make(map[string][]Interval)}
}

// Add appends an interval to the named chromosome, registering the chromosome
// on first use.
func (d *Dataset) Add(chrom string, iv Interval) {
	if _, ok := d.byChrom[chrom]; !ok {
		d.order = append(d.order, chrom)
	}
	d.byChrom[chrom] = append(d.byChrom[chrom], iv)
}

// Chromosomes returns the chromosome names in first-seen order.
func (d *Dataset) Chromosomes() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Intervals returns the intervals for chrom in file order, or nil if the
// chromosome is absent.
func (d *Dataset) Intervals(chrom string) []Interval {
	return d.byChrom[chrom]
}

// Has reports whether the dataset contains any records for chrom.
func (d *Dataset) Has(chrom string) bool {
	return len(d.byChrom[chrom]) > 0
}

// Len returns the number of chromosomes in the dataset.
func (d *Dataset) Len() int {
	return len(d.order)
}

// Records returns the total number of intervals across all chromosomes.
func (d *Dataset) Records() int {
	n := 0
	for _, ivs := range d.byChrom {
		n += len(ivs)
	}
	return n
}

// Values returns every interval value, iterating chromosomes in first-seen
// order and intervals in file order.
func (d *Dataset) Values() []float64 {
	out := make([]float64, 0, d.Records())
	for _, chrom := range d.order {
		for _, iv := range d.byChrom[chrom] {
			out = append(out, iv.Value)
		}
	}
	return out
}
