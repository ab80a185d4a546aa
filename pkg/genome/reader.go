package genome

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/karyoplot/karyoplot/pkg/errors"
)

// recordFields is the number of whitespace-separated fields per input line:
// chromosome, start, end, value.
const recordFields = 4

// ReadDataset parses a flat interval table from r. Each line must hold
// exactly four whitespace-separated fields: chromosome name, start, end,
// value. There is no header row.
//
// Any malformed line (wrong field count, non-integer start/end, non-numeric
// value) aborts the read with an INVALID_RECORD error naming the line.
// An input with no records at all is an EMPTY_DATASET error.
func ReadDataset(r io.Reader) (*Dataset, error) {
	d := NewDataset()
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) != recordFields {
			return nil, errors.New(errors.ErrCodeInvalidRecord,
				"line %d: expected %d fields, got %d", lineNo, recordFields, len(fields))
		}

		start, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err,
				"line %d: invalid start %q", lineNo, fields[1])
		}
		end, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err,
				"line %d: invalid end %q", lineNo, fields[2])
		}
		value, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err,
				"line %d: invalid value %q", lineNo, fields[3])
		}

		d.Add(fields[0], Interval{Start: start, End: end, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err, "read input")
	}

	if d.Records() == 0 {
		return nil, errors.New(errors.ErrCodeEmptyDataset, "input contains no records")
	}
	return d, nil
}

// ReadFile opens path and parses it with ReadDataset.
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	d, err := ReadDataset(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}
