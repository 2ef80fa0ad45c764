package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/xuri/excelize/v2"
)

// Format is the file type an export is encoded as.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatXLSX:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// ContentType is the MIME type of a download in format f.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Kind selects an export layout.
type Kind string

const (
	KindSummary        Kind = "summary"
	KindDetail         Kind = "detail"
	KindRanking        Kind = "ranking"
	KindJustifications Kind = "justifications"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "":
		return KindSummary, nil
	case KindSummary, KindDetail, KindRanking, KindJustifications:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown export kind %q", s)
	}
}

// Filename returns the download name of an export for period.
func Filename(kind Kind, format Format, period attendance.Period) string {
	suffix := fmt.Sprintf("%04d", period.Year)
	if !period.IsYear() {
		suffix = fmt.Sprintf("%04d_%02d", period.Year, period.Month)
	}
	ext := "." + string(format)
	switch kind {
	case KindDetail:
		return "reporte_detallado_" + suffix + ext
	case KindRanking:
		return "ranking_" + suffix + ext
	case KindJustifications:
		return "justificaciones_" + suffix + ext
	default:
		return "asistencias_" + suffix + ext
	}
}

func sheetName(kind Kind) string {
	switch kind {
	case KindDetail:
		return "Detalle"
	case KindRanking:
		return "Ranking"
	case KindJustifications:
		return "Justificaciones"
	default:
		return "Asistencias"
	}
}

func hours(h float64) string {
	return strconv.FormatFloat(h, 'f', 1, 64)
}

func writeAll(w io.Writer, format Format, kind Kind, header []string, rows [][]string) error {
	if format == FormatXLSX {
		return writeWorkbook(w, sheetName(kind), header, rows)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func writeWorkbook(w io.Writer, sheet string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	for i, row := range append([][]string{header}, rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

// WriteSummary writes the monthly summary in its given order.
func WriteSummary(w io.Writer, format Format, entries []attendance.MonthlySummaryEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID,
			e.Name,
			hours(e.TotalHours),
			hours(e.AccumulatedHours),
			strconv.Itoa(e.DaysAbsent),
			hours(e.AverageHours),
			string(e.Status),
		})
	}
	return writeAll(w, format, KindSummary, []string{
		"ID", "Nombre", "Horas Totales (MTD)", "Horas Acumuladas (YTD)",
		"Días Ausentes", "Promedio Horas/Día", "Estado",
	}, rows)
}

// WriteRanking writes the ranking with its positions.
func WriteRanking(w io.Writer, format Format, entries []attendance.RankingEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Position),
			e.ID,
			e.Name,
			hours(e.TotalHours),
			strconv.Itoa(e.DaysWorked),
			hours(e.AverageHours),
		})
	}
	return writeAll(w, format, KindRanking, []string{
		"Posición", "ID", "Nombre", "Horas Totales", "Días Trabajados", "Promedio Horas/Día",
	}, rows)
}

// WriteDetail writes one row per person-day.
func WriteDetail(w io.Writer, format Format, persons []*attendance.PersonRecord) error {
	rows := [][]string{}
	for _, p := range persons {
		for _, d := range p.DailyRecords {
			rows = append(rows, []string{
				p.ID,
				p.Name,
				d.Date,
				orNA(d.Entry),
				orNA(d.Exit),
				hours(d.Hours),
				string(d.Status),
			})
		}
	}
	return writeAll(w, format, KindDetail, []string{
		"ID", "Nombre", "Fecha", "Entrada", "Salida", "Horas Trabajadas", "Estado",
	}, rows)
}

// WriteJustifications writes the justification listing.
func WriteJustifications(w io.Writer, format Format, items []justification.JustificationResponse) error {
	rows := make([][]string, 0, len(items))
	for _, j := range items {
		created := j.CreatedAt
		if len(created) >= 10 {
			created = created[:10]
		}
		rows = append(rows, []string{
			j.PersonnelID,
			j.PersonnelName,
			j.Date,
			string(j.Type),
			j.Description,
			created,
		})
	}
	return writeAll(w, format, KindJustifications, []string{
		"ID Personal", "Nombre", "Fecha", "Tipo", "Descripción", "Fecha Creación",
	}, rows)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
