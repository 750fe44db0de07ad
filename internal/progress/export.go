package progress

import (
	"bytes"
	"cmp"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"
)

var csvHeader = []string{"Word", "Attempts", "Correct", "Accuracy", "Last Seen"}

// ExportCSV writes one row per attempted word, sorted by word text.
func (e *Engine) ExportCSV(w io.Writer) error {
	type row struct {
		text string
		rec  []string
	}

	var rows []row
	for id, ws := range e.store.WordStats() {
		if ws.Attempts == 0 {
			continue
		}
		text := e.Label(id)
		lastSeen := ""
		if ws.LastSeen != nil {
			lastSeen = ws.LastSeen.Format(time.RFC3339)
		}
		rows = append(rows, row{text: text, rec: []string{
			text,
			strconv.Itoa(ws.Attempts),
			strconv.Itoa(ws.Correct),
			fmt.Sprintf("%d%%", int(math.Round(ws.Accuracy()*100))),
			lastSeen,
		}})
	}
	slices.SortFunc(rows, func(a, b row) int { return cmp.Compare(a.text, b.text) })

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSV returns the export as a string.
func (e *Engine) CSV() string {
	var buf bytes.Buffer
	if err := e.ExportCSV(&buf); err != nil {
		e.logger.Warn("export csv failed", zap.Error(err))
	}
	return buf.String()
}
