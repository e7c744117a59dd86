package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/daisyworld/internal/daisy"
	"github.com/san-kum/daisyworld/internal/sim"
)

// WriteGenerationsCSV writes one row per generation: the index followed by
// the state columns.
func WriteGenerationsCSV(out io.Writer, gens []sim.Generation) error {
	w := csv.NewWriter(out)

	header := append([]string{"generation"}, daisy.Columns...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, g := range gens {
		row := []string{strconv.Itoa(g.Index)}
		for _, v := range g.State.Values() {
			row = append(row, formatFloat(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func ReadGenerationsCSV(in io.Reader) ([]sim.Generation, error) {
	records, err := readRecords(in, 1+len(daisy.Columns))
	if err != nil {
		return nil, err
	}

	gens := make([]sim.Generation, 0, len(records))
	for i, record := range records {
		idx, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, i+1, err)
		}
		vals, err := parseFloats(record[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, i+1, err)
		}
		gens = append(gens, sim.Generation{Index: idx, State: daisy.StateFromValues(vals)})
	}
	return gens, nil
}

// WriteSweepCSV writes one row per flux point: multiplier, flux, then the
// ascending, descending (when present) and no-life states.
func WriteSweepCSV(out io.Writer, res *sim.SweepResult) error {
	w := csv.NewWriter(out)
	hasDesc := len(res.Descending) == res.Len() && res.Len() > 0

	header := []string{"multiplier", "flux"}
	header = append(header, prefixed("up")...)
	if hasDesc {
		header = append(header, prefixed("down")...)
	}
	header = append(header, prefixed("barren")...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range res.Flux {
		row := []string{formatFloat(res.Multipliers[i]), formatFloat(res.Flux[i])}
		states := []daisy.State{res.Ascending[i]}
		if hasDesc {
			states = append(states, res.Descending[i])
		}
		states = append(states, res.Barren[i])
		for _, x := range states {
			for _, v := range x.Values() {
				row = append(row, formatFloat(v))
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func ReadSweepCSV(in io.Reader) (*sim.SweepResult, error) {
	r := csv.NewReader(in)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	n := len(daisy.Columns)
	var hasDesc bool
	switch len(header) {
	case 2 + 2*n:
	case 2 + 3*n:
		hasDesc = true
	default:
		return nil, fmt.Errorf("%w: %d columns", ErrMalformed, len(header))
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	res := &sim.SweepResult{}
	for i, record := range records {
		vals, err := parseFloats(record)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, i+1, err)
		}
		res.Multipliers = append(res.Multipliers, vals[0])
		res.Flux = append(res.Flux, vals[1])
		off := 2
		res.Ascending = append(res.Ascending, daisy.StateFromValues(vals[off:off+n]))
		off += n
		if hasDesc {
			res.Descending = append(res.Descending, daisy.StateFromValues(vals[off:off+n]))
			off += n
		}
		res.Barren = append(res.Barren, daisy.StateFromValues(vals[off:off+n]))
	}
	return res, nil
}

// readRecords reads a csv with a header row and returns the data rows.
func readRecords(in io.Reader, fields int) ([][]string, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = fields

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	return records[1:], nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
