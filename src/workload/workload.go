package workload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrMalformedWorkload = errors.New("malformed workload")

// maxLineLength caps a single line of a workload file. Files written by
// String hold one value per line, hand-written ones may put many on a line.
const maxLineLength = 16 * 1024 * 1024

// Workload is a sequence of integer values fed to the containers. The file
// format is the number of values on the first line followed by the values,
// whitespace separated, on any number of lines. String writes one per line.
type Workload struct {
	Values []int
}

// errorCoalesce runs the steps in order and returns the first error.
func errorCoalesce(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workload) parseFirstLine(scanner *bufio.Scanner, expected *int) error {
	if !scanner.Scan() {
		return fmt.Errorf("%w: missing header line", ErrMalformedWorkload)
	}
	line := strings.Fields(scanner.Text())
	if len(line) != 1 {
		return fmt.Errorf("%w: header must hold the number of values, got %q", ErrMalformedWorkload, scanner.Text())
	}
	n, err := strconv.Atoi(line[0])
	if err != nil || n < 0 {
		return fmt.Errorf("%w: invalid number of values %q", ErrMalformedWorkload, line[0])
	}
	*expected = n
	w.Values = make([]int, 0, n)
	return nil
}

func (w *Workload) parseValues(scanner *bufio.Scanner) error {
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		for _, tok := range strings.Fields(scanner.Text()) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return fmt.Errorf("%w: line %d: %v", ErrMalformedWorkload, lineNo, err)
			}
			w.Values = append(w.Values, v)
		}
	}
	return scanner.Err()
}

func (w *Workload) checkCount(expected int) error {
	if len(w.Values) != expected {
		return fmt.Errorf("%w: header announces %d values, found %d", ErrMalformedWorkload, expected, len(w.Values))
	}
	return nil
}

func ReadWorkload(r io.Reader) (*Workload, error) {
	w := new(Workload)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	expected := 0
	err := errorCoalesce(
		func() error { return w.parseFirstLine(scanner, &expected) },
		func() error { return w.parseValues(scanner) },
		func() error { return w.checkCount(expected) },
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func LoadWorkload(filename string) (*Workload, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer file.Close()

	return ReadWorkload(file)
}

func (w *Workload) String() string {
	s := new(strings.Builder)
	fmt.Fprintf(s, "%d\n", len(w.Values))
	for _, v := range w.Values {
		s.WriteString(strconv.Itoa(v))
		s.WriteRune('\n')
	}
	return s.String()
}
