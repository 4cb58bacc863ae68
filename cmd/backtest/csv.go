package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/evdnx/gobt/types"
)

// loadCandlesCSV reads a candle file with the columns
// time,open,high,low,close,volume (header row optional).
func loadCandlesCSV(path string) ([]types.Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 6

	var out []types.Candle
	line := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		line++
		c, err := parseCandle(rec)
		if err != nil {
			if line == 1 {
				continue // header row
			}
			return nil, errors.Wrapf(err, "%s line %d", path, line)
		}
		out = append(out, c)
	}
	return out, nil
}

func parseCandle(rec []string) (types.Candle, error) {
	t, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil {
		return types.Candle{}, err
	}
	vals := make([]float64, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(rec[i+1], 64)
		if err != nil {
			return types.Candle{}, err
		}
		vals[i] = v
	}
	return types.Candle{
		Time:   t,
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vals[4],
	}, nil
}
