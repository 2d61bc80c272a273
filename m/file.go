package m

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Line is one training pair.
type Line struct {
	Inputs  []float64
	Targets []float64
}
type Lines []Line

// GetLines reads comma separated training pairs: inputNum inputs followed
// by outputNum targets per record. Blank lines and lines starting with '#'
// are skipped.
func GetLines(reader io.Reader, inputNum, outputNum int) (Lines, error) {
	r := csv.NewReader(reader)
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var lines Lines
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return lines, fmt.Errorf("reading record: %w", err)
		}
		lineNum, _ := r.FieldPos(0)
		if len(record) != inputNum+outputNum {
			return lines, errInvalidLine{
				lineNum:  lineNum,
				fields:   len(record),
				expected: inputNum + outputNum,
			}
		}

		values := make([]float64, len(record))
		for i, field := range record {
			num, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				what := "input"
				if i >= inputNum {
					what = "target"
				}
				return lines, fmt.Errorf("at line %d, parsing %s: %w", lineNum, what, err)
			}
			values[i] = num
		}
		lines = append(lines, Line{
			Inputs:  values[:inputNum:inputNum],
			Targets: values[inputNum:],
		})
	}
	return lines, nil
}

// LoadLines reads training pairs from the CSV file at path.
func LoadLines(path string, inputNum, outputNum int) (Lines, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := GetLines(f, inputNum, outputNum)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

type errInvalidLine struct {
	lineNum  int
	fields   int
	expected int
}

func (e errInvalidLine) Error() string {
	return fmt.Sprintf("at line %d, expected %d values, got %d",
		e.lineNum, e.expected, e.fields)
}
