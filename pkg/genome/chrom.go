package genome

import (
	"sort"
	"strconv"

	"github.com/karyoplot/karyoplot/pkg/errors"
)

// chromPrefixLen is the length of the fixed name prefix ("chr") that precedes
// the numeric suffix in conforming chromosome names.
const chromPrefixLen = 3

// ChromosomeNumber extracts the ordering number from a chromosome name of the
// form <3-char prefix><integer>, e.g. "chr1" → 1, "chr17" → 17.
//
// Names without a parseable integer suffix (too short, or a non-numeric
// suffix such as "chrX") are an INVALID_CHROMOSOME error. Callers that need
// sex chromosomes or scaffolds must map them to numbers before rendering.
func ChromosomeNumber(name string) (int, error) {
	if len(name) <= chromPrefixLen {
		return 0, errors.New(errors.ErrCodeInvalidChromosome,
			"chromosome name %q is too short for a numeric suffix", name)
	}
	n, err := strconv.Atoi(name[chromPrefixLen:])
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidChromosome, err,
			"chromosome name %q has no numeric suffix", name)
	}
	return n, nil
}

// SortChromosomes returns names ordered by ascending numeric suffix. The
// input slice is not modified. Any non-conforming name fails the whole sort.
func SortChromosomes(names []string) ([]string, error) {
	numbers := make(map[string]int, len(names))
	for _, name := range names {
		n, err := ChromosomeNumber(name)
		if err != nil {
			return nil, err
		}
		numbers[name] = n
	}

	out := make([]string, len(names))
	copy(out, names)
	sort.Slice(out, func(i, j int) bool {
		return numbers[out[i]] < numbers[out[j]]
	})
	return out, nil
}
