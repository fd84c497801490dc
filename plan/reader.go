package plan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// ReadSequence parses the token input format: the lecture count n, then n
// complexity values, then the day count, all whitespace-separated. Tokens are
// consumed in order; anything after the day count is ignored.
//
// Complexities must be non-negative. The day count is returned as parsed and
// range-checked by the solver.
func ReadSequence(r io.Reader) ([]int64, int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	count, err := nextInt(sc, "lecture count")
	if err != nil {
		return nil, 0, err
	}
	if count < 1 {
		return nil, 0, fmt.Errorf("lecture count must be positive, got %d", count)
	}

	complexities := make([]int64, 0, count)
	for i := int64(0); i < count; i++ {
		v, err := nextInt(sc, fmt.Sprintf("lecture[%d] complexity", i))
		if err != nil {
			return nil, 0, err
		}
		if v < 0 {
			return nil, 0, fmt.Errorf("lecture[%d]: complexity must be non-negative, got %d", i, v)
		}
		complexities = append(complexities, v)
	}

	days, err := nextInt(sc, "day count")
	if err != nil {
		return nil, 0, err
	}

	logrus.Debugf("read %d lecture complexities, %d days requested", len(complexities), days)
	return complexities, int(days), nil
}

// ReadSequenceFile reads the same token format from a file.
func ReadSequenceFile(path string) ([]int64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening sequence file: %w", err)
	}
	defer func() { _ = f.Close() }()

	complexities, days, err := ReadSequence(f)
	if err != nil {
		return nil, 0, fmt.Errorf("parsing %s: %w", path, err)
	}
	return complexities, days, nil
}

// nextInt scans one token and parses it as a base-10 integer. The field name
// keeps parse failures attributable when the stream is truncated or garbled.
func nextInt(sc *bufio.Scanner, field string) (int64, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", field, err)
		}
		return 0, fmt.Errorf("reading %s: unexpected end of input", field)
	}
	v, err := strconv.ParseInt(sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %q is not an integer", field, sc.Text())
	}
	return v, nil
}
