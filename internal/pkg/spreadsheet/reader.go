package spreadsheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrMissingColumn  = errors.New("required column not found")
	ErrEmptyFile      = errors.New("file has no rows")
	ErrUnreadableFile = errors.New("file is not a readable spreadsheet")
)

// Header aliases of the clock device export, compared after folding case and accents.
var (
	idHeaders    = []string{"numero", "id"}
	nameHeaders  = []string{"nombre"}
	timeHeaders  = []string{"tiempo"}
	labelHeaders = []string{"estado"}
)

// foldHeader lowercases s and strips diacritics, so "Número" matches "numero".
func foldHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// sniffDelimiter picks the separator that occurs most often in the header line.
func sniffDelimiter(header []byte) rune {
	best, bestCount := ',', bytes.Count(header, []byte{','})
	for _, d := range []rune{';', '\t'} {
		if n := bytes.Count(header, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// zipMagic opens every .xlsx workbook.
var zipMagic = []byte("PK\x03\x04")

// rowFunc yields the next row, or io.EOF after the last one.
type rowFunc func() ([]string, error)

// ReadEvents reads a clock export, either an .xlsx workbook (first sheet) or a
// delimited text file. Columns are located by header name; rows without an id
// or a name are skipped, an empty time is kept.
func ReadEvents(r io.Reader) ([]attendance.RawEvent, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	// UTF-8 BOM written by spreadsheet tools
	if b, err := br.Peek(3); err == nil && bytes.Equal(b, []byte{0xEF, 0xBB, 0xBF}) {
		br.Discard(3)
	}

	first, err := br.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(bytes.TrimSpace(first)) == 0 {
		return nil, ErrEmptyFile
	}

	if bytes.HasPrefix(first, zipMagic) {
		return readWorkbook(br)
	}

	if i := bytes.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}

	cr := csv.NewReader(br)
	cr.Comma = sniffDelimiter(first)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	return eventsFromRows(cr.Read, nil)
}

func readWorkbook(r io.Reader) ([]attendance.RawEvent, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	defer rows.Close()

	next := func() ([]string, error) {
		if !rows.Next() {
			if err := rows.Error(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		return rows.Columns(excelize.Options{RawCellValue: true})
	}

	return eventsFromRows(next, excelTime)
}

// excelTime renders a date cell stored as a serial number the way the device
// writes text timestamps. Text cells pass through.
func excelTime(raw string) string {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return raw
	}
	return t.Format("02/01/2006 15:04:05")
}

func eventsFromRows(next rowFunc, timeCell func(string) string) ([]attendance.RawEvent, error) {
	header, err := next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		key := foldHeader(h)
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}
	column := func(aliases []string) int {
		for _, a := range aliases {
			if i, ok := index[a]; ok {
				return i
			}
		}
		return -1
	}

	idCol, nameCol := column(idHeaders), column(nameHeaders)
	timeCol, labelCol := column(timeHeaders), column(labelHeaders)
	for name, col := range map[string]int{"Número": idCol, "Nombre": nameCol, "Tiempo": timeCol, "Estado": labelCol} {
		if col < 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	field := func(row []string, col int) string {
		if col < len(row) {
			return strings.TrimSpace(row[col])
		}
		return ""
	}

	events := []attendance.RawEvent{}
	for {
		row, err := next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		id, name := field(row, idCol), field(row, nameCol)
		if id == "" || name == "" {
			continue
		}
		ts := field(row, timeCol)
		if timeCell != nil && ts != "" {
			ts = timeCell(ts)
		}
		events = append(events, attendance.RawEvent{
			PersonID:   id,
			PersonName: name,
			Timestamp:  ts,
			EventLabel: field(row, labelCol),
		})
	}

	return events, nil
}
