package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

// Format names an export encoding
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// ParseFormat resolves a user supplied format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatPDF:
		return f, nil
	default:
		return "", errors.NewInvalidInputError("format", s, "must be csv, json or pdf")
	}
}

// Options controls document level settings of an export
type Options struct {
	Title string
}

// Exporter writes a task list in one format
type Exporter interface {
	Export(w io.Writer, tasks []*domain.Task) error
}

// New returns the exporter for format
func New(format Format, opts Options) (Exporter, error) {
	switch format {
	case FormatCSV:
		return csvExporter{}, nil
	case FormatJSON:
		return jsonExporter{}, nil
	case FormatPDF:
		return pdfExporter{title: opts.Title}, nil
	default:
		return nil, errors.NewInvalidInputError("format", string(format), "must be csv, json or pdf")
	}
}

type record struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type csvExporter struct{}

func (csvExporter) Export(w io.Writer, tasks []*domain.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "text", "completed"}); err != nil {
		return err
	}
	for _, t := range tasks {
		row := []string{strconv.FormatInt(t.ID, 10), t.Text, strconv.FormatBool(t.Completed)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonExporter struct{}

func (jsonExporter) Export(w io.Writer, tasks []*domain.Task) error {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, record{ID: t.ID, Text: t.Text, Completed: t.Completed})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

type pdfExporter struct {
	title string
}

// Export renders one line per task. The core PDF fonts only cover
// cp1252, so completed tasks are marked with a checkbox rather than
// combining strike marks.
func (p pdfExporter) Export(w io.Writer, tasks []*domain.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	title := p.title
	if title == "" {
		title = "Task List"
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, tr(title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	if len(tasks) == 0 {
		pdf.MultiCell(0, 6, "No tasks", "0", "L", false)
	}
	for _, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %d  %s", mark, t.ID, domain.ClearStrike(t.Text))
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}

	return pdf.Output(w)
}
