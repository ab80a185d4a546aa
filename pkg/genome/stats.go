package genome

import (
	"github.com/montanaflynn/stats"

	"github.com/karyoplot/karyoplot/pkg/errors"
)

// Summary carries the global statistics derived from both datasets. These are
// computed once after loading and drive all scaling during rendering.
type Summary struct {
	// GeneMean and GeneStdev are the mean and sample standard deviation of
	// all gene values across all chromosomes; they define the color clamp
	// window.
	GeneMean  float64
	GeneStdev float64

	// MaxSNPValue is the largest SNP value across all chromosomes; SNP plot
	// heights are scaled against it.
	MaxSNPValue float64

	// Lengths maps each gene chromosome to its length: the maximum end
	// coordinate among that chromosome's genes. SNPs never extend a length.
	Lengths map[string]int

	// MaxLength is the largest value in Lengths.
	MaxLength int
}

// Summarize computes the global statistics for a gene and SNP dataset pair.
//
// The sample standard deviation needs at least two gene values; fewer is a
// DEGENERATE_SCALE error, matching the tool's contract that denominators are
// never silently zero.
func Summarize(genes, snps *Dataset) (Summary, error) {
	if genes.Records() == 0 {
		return Summary{}, errors.New(errors.ErrCodeEmptyDataset, "gene dataset has no records")
	}
	if snps.Records() == 0 {
		return Summary{}, errors.New(errors.ErrCodeEmptyDataset, "snp dataset has no records")
	}

	geneValues := genes.Values()
	if len(geneValues) < 2 {
		return Summary{}, errors.New(errors.ErrCodeDegenerateScale,
			"sample standard deviation needs at least 2 gene values, got %d", len(geneValues))
	}

	mean, err := stats.Mean(geneValues)
	if err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeInternal, err, "gene value mean")
	}
	stdev, err := stats.StandardDeviationSample(geneValues)
	if err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeInternal, err, "gene value stdev")
	}

	maxSNP, err := stats.Max(snps.Values())
	if err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeInternal, err, "max snp value")
	}
	if maxSNP <= 0 {
		return Summary{}, errors.New(errors.ErrCodeDegenerateScale,
			"max snp value must be positive, got %g", maxSNP)
	}

	lengths := make(map[string]int, genes.Len())
	maxLength := 0
	for _, chrom := range genes.Chromosomes() {
		length := 0
		for _, iv := range genes.Intervals(chrom) {
			if iv.End > length {
				length = iv.End
			}
		}
		if length <= 0 {
			return Summary{}, errors.New(errors.ErrCodeDegenerateScale,
				"chromosome %s has non-positive length %d", chrom, length)
		}
		lengths[chrom] = length
		if length > maxLength {
			maxLength = length
		}
	}

	return Summary{
		GeneMean:    mean,
		GeneStdev:   stdev,
		MaxSNPValue: maxSNP,
		Lengths:     lengths,
		MaxLength:   maxLength,
	}, nil
}
