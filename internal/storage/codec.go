package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/models"
)

var errMissingHeader = errors.New("missing header row")

// dateLayouts are accepted for the date column, most specific last.
// Any time-of-day is dropped after parsing.
var dateLayouts = []string{
	constants.DateFormat,
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// savedAtLayouts also cover the space-separated form written by older exports.
var savedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	constants.DateFormat,
}

// EncodeLog writes log as CSV with the fixed column header.
func EncodeLog(w io.Writer, log models.Log) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(constants.Columns); err != nil {
		return fmt.Errorf("%w: header: %w", ErrSerialization, err)
	}

	for i, entry := range log {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrSerialization, i+1, err)
		}
		if err := cw.Write(encodeRecord(entry)); err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrSerialization, i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return nil
}

func encodeRecord(e models.LogEntry) []string {
	savedAt := ""
	if !e.SavedAt.IsZero() {
		savedAt = e.SavedAt.Format(time.RFC3339Nano)
	}
	return []string{
		e.Date.Format(constants.DateFormat),
		e.Exercise,
		strconv.Itoa(e.WaterGlasses),
		e.Notes,
		string(e.Mood),
		string(e.Cramps),
		string(e.Bloating),
		strconv.Itoa(e.EnergyLevel),
		savedAt,
	}
}

// RowError reports a data row that could not be parsed into an entry.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// DecodeLog parses a CSV data file. The header must match the fixed schema
// exactly and every row must hold a valid entry.
func DecodeLog(r io.Reader) (models.Log, error) {
	cr, err := newLogReader(r)
	if err != nil {
		return nil, err
	}

	log := models.Log{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		line, _ := cr.FieldPos(0)
		entry, err := decodeRecord(record)
		if err == nil {
			err = entry.Validate()
		}
		if err != nil {
			return nil, RowError{Line: line, Err: err}
		}
		log = append(log, entry)
	}

	return log, nil
}

// DecodeLogLenient parses a data file for inspection and repair. Rows with
// out-of-range values are kept as they are so a validator can report them;
// rows that cannot be parsed at all, including ones with the wrong number of
// fields, are skipped and returned as RowErrors. Only a bad header or broken
// CSV quoting fails the whole decode.
func DecodeLogLenient(r io.Reader) (models.Log, []RowError, error) {
	cr, err := newLogReader(r)
	if err != nil {
		return nil, nil, err
	}

	log := models.Log{}
	var skipped []RowError
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) && errors.Is(err, csv.ErrFieldCount) {
			skipped = append(skipped, RowError{Line: perr.StartLine, Err: perr.Err})
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read row: %w", err)
		}

		line, _ := cr.FieldPos(0)
		entry, err := decodeRecord(record)
		if err != nil {
			skipped = append(skipped, RowError{Line: line, Err: err})
			continue
		}
		log = append(log, entry)
	}

	return log, skipped, nil
}

func newLogReader(r io.Reader) (*csv.Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(constants.Columns)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}
	return cr, nil
}

func checkHeader(header []string) error {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i, col := range constants.Columns {
		if strings.TrimSpace(header[i]) != col {
			return fmt.Errorf("unexpected column %d: got %q, want %q", i+1, header[i], col)
		}
	}
	return nil
}

// decodeRecord parses the fields of one row. Enum and range checks are left
// to the caller.
func decodeRecord(record []string) (models.LogEntry, error) {
	date, err := parseTimestamp(record[0], dateLayouts)
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("invalid date %q: %w", record[0], err)
	}
	water, err := parseInt(record[2])
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("invalid water_glasses %q: %w", record[2], err)
	}
	energy, err := parseInt(record[7])
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("invalid energy_level %q: %w", record[7], err)
	}

	var savedAt time.Time
	if s := strings.TrimSpace(record[8]); s != "" {
		savedAt, err = parseTimestamp(s, savedAtLayouts)
		if err != nil {
			return models.LogEntry{}, fmt.Errorf("invalid saved_at %q: %w", s, err)
		}
	}

	return models.LogEntry{
		Date:         models.NormalizeDate(date),
		Exercise:     record[1],
		WaterGlasses: water,
		Notes:        record[3],
		Mood:         models.Mood(record[4]),
		Cramps:       models.Cramps(record[5]),
		Bloating:     models.Bloating(record[6]),
		EnergyLevel:  energy,
		SavedAt:      savedAt,
	}, nil
}

func parseTimestamp(s string, layouts []string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseInt accepts integral floats ("8.0") as written by spreadsheet tools.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("not an integer")
	}
	return int(f), nil
}
