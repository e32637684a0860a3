package sizing

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteBreakdownCSV writes rows to path, creating the parent directory.
func WriteBreakdownCSV(path string, rows []BreakdownRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeBreakdownCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func EncodeBreakdownCSV(out io.Writer, rows []BreakdownRow) error {
	w := csv.NewWriter(out)

	header := []string{"index", "step", "operator", "factor", "kwh"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Index),
			r.Step,
			r.Operator,
			fmtFloat(r.Factor),
			fmtFloat(r.Kwh),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
