package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lox/midas/internal/fileutil"
	"github.com/lox/midas/internal/statistics"
)

// CSVHeader is the first row of every results file
var CSVHeader = []string{"Game", "Seat", "Wins", "Draws", "Losses", "Total", "FinalBalance"}

// WriteCSV writes one row per game and seat
func WriteCSV(w io.Writer, results []statistics.SeatResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Game),
			r.Seat,
			strconv.Itoa(r.Wins()),
			strconv.Itoa(r.Draws()),
			strconv.Itoa(r.Losses()),
			strconv.Itoa(r.Hands()),
			strconv.FormatFloat(r.FinalBalance, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes results to filename, replacing it atomically
func SaveCSV(filename string, results []statistics.SeatResult) error {
	err := fileutil.WriteAtomic(filename, 0o644, func(w io.Writer) error {
		return WriteCSV(w, results)
	})
	if err != nil {
		return fmt.Errorf("failed to save results to %s: %w", filename, err)
	}
	return nil
}
