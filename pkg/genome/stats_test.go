package genome

import (
	"math"
	"testing"

	"github.com/karyoplot/karyoplot/pkg/errors"
)

func genesTwoChroms() *Dataset {
	d := NewDataset()
	d.Add("chr1", Interval{Start: 1, End: 1000, Value: 2.0})
	d.Add("chr1", Interval{Start: 500, End: 2000, Value: 4.0})
	d.Add("chr2", Interval{Start: 1, End: 800, Value: 6.0})
	return d
}

func snpsTwoChroms() *Dataset {
	d := NewDataset()
	d.Add("chr1", Interval{Start: 100, End: 100, Value: 10.0})
	d.Add("chr2", Interval{Start: 200, End: 200, Value: 20.0})
	return d
}

func TestSummarize(t *testing.T) {
	sum, err := Summarize(genesTwoChroms(), snpsTwoChroms())
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}

	if got := sum.GeneMean; math.Abs(got-4.0) > 1e-12 {
		t.Errorf("GeneMean = %g, want 4.0", got)
	}
	// Sample stdev of {2, 4, 6} is 2.
	if got := sum.GeneStdev; math.Abs(got-2.0) > 1e-12 {
		t.Errorf("GeneStdev = %g, want 2.0", got)
	}
	if sum.MaxSNPValue != 20.0 {
		t.Errorf("MaxSNPValue = %g, want 20.0", sum.MaxSNPValue)
	}

	// Length is the max gene end only; SNP positions never extend it.
	if got := sum.Lengths["chr1"]; got != 2000 {
		t.Errorf("Lengths[chr1] = %d, want 2000", got)
	}
	if got := sum.Lengths["chr2"]; got != 800 {
		t.Errorf("Lengths[chr2] = %d, want 800", got)
	}
	if sum.MaxLength != 2000 {
		t.Errorf("MaxLength = %d, want 2000", sum.MaxLength)
	}
}

func TestSummarizeSingleGeneValue(t *testing.T) {
	genes := NewDataset()
	genes.Add("chr1", Interval{Start: 1, End: 100, Value: 5.0})

	_, err := Summarize(genes, snpsTwoChroms())
	if !errors.Is(err, errors.ErrCodeDegenerateScale) {
		t.Errorf("single gene value error = %v, want DEGENERATE_SCALE", err)
	}
}

func TestSummarizeEmptyDatasets(t *testing.T) {
	if _, err := Summarize(NewDataset(), snpsTwoChroms()); !errors.Is(err, errors.ErrCodeEmptyDataset) {
		t.Errorf("empty genes error = %v, want EMPTY_DATASET", err)
	}
	if _, err := Summarize(genesTwoChroms(), NewDataset()); !errors.Is(err, errors.ErrCodeEmptyDataset) {
		t.Errorf("empty snps error = %v, want EMPTY_DATASET", err)
	}
}

func TestSummarizeNonPositiveMaxSNP(t *testing.T) {
	snps := NewDataset()
	snps.Add("chr1", Interval{Start: 100, End: 100, Value: -3.0})
	snps.Add("chr1", Interval{Start: 200, End: 200, Value: 0.0})

	_, err := Summarize(genesTwoChroms(), snps)
	if !errors.Is(err, errors.ErrCodeDegenerateScale) {
		t.Errorf("non-positive max snp error = %v, want DEGENERATE_SCALE", err)
	}
}
