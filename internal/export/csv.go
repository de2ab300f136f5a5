// Package export renders client records as CSV or XLSX spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"agendados/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns is the header row shared by both formats.
var columns = []string{
	"Nombre",
	"Celular",
	"Monto PP",
	"Tasa PP",
	"Deuda",
	"Monto CD",
	"Tasa CD",
	"Comentarios",
	"Fecha",
	"Hora",
	"Alarma",
	"Registrado",
}

// CSVWriter wraps csv.Writer for exporting client records.
type CSVWriter struct {
	csv *csv.Writer
	loc *time.Location
}

// NewCSVWriter creates a CSVWriter that writes to w, rendering dates in loc.
func NewCSVWriter(w io.Writer, loc *time.Location) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w), loc: loc}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecords converts a batch of records to rows and writes them.
func (w *CSVWriter) WriteRecords(recs []domain.ClientRecord) error {
	for i := range recs {
		if err := w.csv.Write(recordToRow(&recs[i], w.loc)); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// WriteCSV writes the BOM, the header and every record to w.
func WriteCSV(out io.Writer, recs []domain.ClientRecord, loc *time.Location) error {
	if _, err := out.Write(BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	w := NewCSVWriter(out, loc)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteRecords(recs); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func recordToRow(rec *domain.ClientRecord, loc *time.Location) []string {
	at := rec.ScheduledAt.In(loc)
	return []string{
		rec.Name,
		rec.Phone,
		rec.PersonalLoanAmount,
		rec.PersonalLoanRate,
		rec.Debt,
		rec.DebtPurchaseAmount,
		rec.DebtPurchaseRate,
		rec.Comment,
		at.Format("02/01/2006"),
		at.Format("15:04"),
		formatBool(rec.AlarmActive),
		rec.CreatedAt.In(loc).Format(time.RFC3339),
	}
}

func formatBool(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}

// FileName returns the download name for an export taken at now.
func FileName(format domain.ExportFormat, now time.Time) string {
	return fmt.Sprintf("clientes_%s.%s", now.Format("20060102_1504"), format)
}
