package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Column layouts of the two inputs; headers are matched exactly.
var (
	dataHeader   = []string{"dataLevel", "dataReplicate", "vertex", "intensity"}
	vertexHeader = []string{"vertexLevel1", "vertexLevel2", "vertex1", "vertex2", "similarity"}
)

// ReadData parses the data CSV into measurement rows.
// The header is validated against dataHeader; every intensity must
// parse as a float. Any defect is fatal; number and column-count
// defects are reported with their line.
func ReadData(r io.Reader) ([]Row, error) {
	records, err := readTable(r, dataHeader)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}

	rows := make([]Row, 0, len(records))
	for n, rec := range records {
		v, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: intensity %q: %w", n+2, rec[3], ErrBadNumber)
		}
		rows = append(rows, Row{
			Level:     rec[0],
			Replicate: rec[1],
			Entity:    rec[2],
			Intensity: v,
		})
	}

	return rows, nil
}

// ReadVertexSim parses the optional vertex CSV into similarity rows.
func ReadVertexSim(r io.Reader) ([]VertexRow, error) {
	records, err := readTable(r, vertexHeader)
	if err != nil {
		return nil, err
	}

	rows := make([]VertexRow, 0, len(records))
	for n, rec := range records {
		v, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: similarity %q: %w", n+2, rec[4], ErrBadNumber)
		}
		rows = append(rows, VertexRow{
			Level1:     rec[0],
			Level2:     rec[1],
			Vertex1:    rec[2],
			Vertex2:    rec[3],
			Similarity: v,
		})
	}

	return rows, nil
}

// readTable reads all records of a headed CSV and validates the header
// and per-record column counts. encoding/csv already rejects ragged
// quoting; we add the exact-header and arity checks on top.
func readTable(r io.Reader, header []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	got, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header: %w", ErrHeader)
	}
	if errors.Is(err, csv.ErrFieldCount) {
		return nil, fmt.Errorf("got %v, want %v: %w", got, header, ErrHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if !equalFields(got, header) {
		return nil, fmt.Errorf("got %v, want %v: %w", got, header, ErrHeader)
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.ErrFieldCount carries the line; keep our sentinel on top.
			return nil, fmt.Errorf("%v: %w", err, ErrColumns)
		}
		records = append(records, rec)
	}

	return records, nil
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
