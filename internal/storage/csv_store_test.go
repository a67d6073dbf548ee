package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/models"
)

const headerLine = "date,exercise,water_glasses,notes,mood,cramps,bloating,energy_level,saved_at\n"

func setupTestStore(t *testing.T) (*CSVStore, string) {
	t.Helper()
	dataPath := filepath.Join(t.TempDir(), "data", constants.DataFileName)
	return NewCSVStore(dataPath), dataPath
}

func day(offset int) time.Time {
	return time.Date(2026, 4, 10+offset, 0, 0, 0, 0, time.Local)
}

func testEntry(t *testing.T, date time.Time, exercise string, water int) models.LogEntry {
	t.Helper()
	entry, err := models.NewLogEntry(date, exercise, water, "", "Good", "None", "No", 3)
	if err != nil {
		t.Fatalf("failed to build entry: %v", err)
	}
	return entry
}

func tempFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, constants.TempFilePrefix+"*"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	return matches
}

func TestEnsureInitialized_CreatesHeaderOnlyFile(t *testing.T) {
	store, dataPath := setupTestStore(t)

	if err := store.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized failed: %v", err)
	}

	data, err := os.ReadFile(dataPath)
	if err != nil {
		t.Fatalf("data file not created: %v", err)
	}
	if string(data) != headerLine {
		t.Errorf("data file = %q, want %q", data, headerLine)
	}
}

func TestEnsureInitialized_Idempotent(t *testing.T) {
	store, dataPath := setupTestStore(t)

	if _, err := store.Upsert(testEntry(t, day(0), "walk", 4)); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	before, _ := os.ReadFile(dataPath)

	for i := 0; i < 2; i++ {
		if err := store.EnsureInitialized(); err != nil {
			t.Fatalf("EnsureInitialized #%d failed: %v", i, err)
		}
	}

	after, _ := os.ReadFile(dataPath)
	if !bytes.Equal(before, after) {
		t.Errorf("EnsureInitialized modified an existing file:\nbefore %q\nafter  %q", before, after)
	}
}

func TestLoadAll_MissingFile(t *testing.T) {
	store, dataPath := setupTestStore(t)

	log := store.LoadAll()
	if len(log) != 0 {
		t.Errorf("expected empty log, got %d entries", len(log))
	}
	if _, err := os.Stat(dataPath); !os.IsNotExist(err) {
		t.Errorf("LoadAll should not create the data file")
	}
}

func TestLoadAll_DegradesOnBadContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "garbage", content: "\x00\x01 not a csv \"unterminated"},
		{name: "wrong header", content: "day,what\n2026-01-01,walk\n"},
		{name: "reordered header", content: "exercise,date,water_glasses,notes,mood,cramps,bloating,energy_level,saved_at\n"},
		{name: "short row", content: headerLine + "2026-01-01,walk,3\n"},
		{name: "bad date", content: headerLine + "yesterday,walk,3,,Good,None,No,3,\n"},
		{name: "bad mood", content: headerLine + "2026-01-01,walk,3,,Great,None,No,3,\n"},
		{name: "energy out of range", content: headerLine + "2026-01-01,walk,3,,Good,None,No,9,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, dataPath := setupTestStore(t)
			if err := os.MkdirAll(filepath.Dir(dataPath), 0700); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(dataPath, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			if log := store.LoadAll(); len(log) != 0 {
				t.Errorf("expected empty log, got %d entries", len(log))
			}
		})
	}
}

func TestLoadAll_NormalizesDates(t *testing.T) {
	store, dataPath := setupTestStore(t)
	content := headerLine +
		"2026-01-01 13:45:00,walk,3,,Good,None,No,3,2026-01-01 13:45:00.123456\n" +
		"2026-01-02T08:30:00Z,yoga,8.0,,Okay,Mild,Yes,4,\n"
	if err := os.MkdirAll(filepath.Dir(dataPath), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dataPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	log := store.LoadAll()
	if len(log) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(log))
	}
	for _, e := range log {
		if h, m, s := e.Date.Clock(); h != 0 || m != 0 || s != 0 || e.Date.Nanosecond() != 0 {
			t.Errorf("date %v still has a time of day", e.Date)
		}
	}
	if log[0].SavedAt.Nanosecond() != 123456000 {
		t.Errorf("saved_at fraction lost: %v", log[0].SavedAt)
	}
	if log[1].WaterGlasses != 8 {
		t.Errorf("water_glasses = %d, want 8", log[1].WaterGlasses)
	}
	if !log[1].SavedAt.IsZero() {
		t.Errorf("empty saved_at should decode to zero time, got %v", log[1].SavedAt)
	}
}

func TestUpsert_ReplacesExistingDate(t *testing.T) {
	store, _ := setupTestStore(t)

	first, err := store.Upsert(testEntry(t, day(0).Add(9*time.Hour), "10 squats", 4))
	if err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}

	second := testEntry(t, day(0), "20 pushups", 11)
	second.Mood = models.MoodBad
	second.Notes = "updated"
	saved, err := store.Upsert(second)
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	log := store.LoadAll()
	if len(log) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(log))
	}
	got := log[0]
	if got.Exercise != "20 pushups" || got.WaterGlasses != 11 || got.Mood != models.MoodBad || got.Notes != "updated" {
		t.Errorf("entry not replaced: %+v", got)
	}
	if got.SavedAt.Before(first.SavedAt) {
		t.Errorf("saved_at went backwards: %v < %v", got.SavedAt, first.SavedAt)
	}
	if !got.SavedAt.Equal(saved.SavedAt) {
		t.Errorf("returned saved_at %v does not match persisted %v", saved.SavedAt, got.SavedAt)
	}
}

func TestUpsert_NormalizesAndStamps(t *testing.T) {
	store, _ := setupTestStore(t)
	stamp := time.Date(2026, 4, 10, 21, 5, 0, 0, time.Local)
	store.now = func() time.Time { return stamp }

	entry := testEntry(t, day(0), "walk", 2)
	entry.Date = day(0).Add(18*time.Hour + 30*time.Minute)

	saved, err := store.Upsert(entry)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if !saved.Date.Equal(day(0)) {
		t.Errorf("date = %v, want %v", saved.Date, day(0))
	}
	if !saved.SavedAt.Equal(stamp) {
		t.Errorf("saved_at = %v, want %v", saved.SavedAt, stamp)
	}
}

func TestUpsert_KeepsLogSorted(t *testing.T) {
	store, _ := setupTestStore(t)

	for _, offset := range []int{3, -2, 0, 5, -7} {
		if _, err := store.Upsert(testEntry(t, day(offset), "walk", offset+10)); err != nil {
			t.Fatalf("Upsert(%d) failed: %v", offset, err)
		}
	}

	log := store.LoadAll()
	if len(log) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(log))
	}
	for i := 1; i < len(log); i++ {
		if !log[i-1].Date.Before(log[i].Date) {
			t.Errorf("entries out of order at %d: %v then %v", i, log[i-1].Date, log[i].Date)
		}
	}
}

func TestLoadAll_CachedUntilWrite(t *testing.T) {
	store, dataPath := setupTestStore(t)
	if _, err := store.Upsert(testEntry(t, day(0), "walk", 3)); err != nil {
		t.Fatal(err)
	}

	if n := len(store.LoadAll()); n != 1 {
		t.Fatalf("expected 1 entry, got %d", n)
	}

	// An out-of-band edit is invisible while the snapshot is cached
	if err := os.WriteFile(dataPath, []byte(headerLine), 0600); err != nil {
		t.Fatal(err)
	}
	if n := len(store.LoadAll()); n != 1 {
		t.Errorf("expected cached snapshot with 1 entry, got %d", n)
	}

	if _, err := store.Upsert(testEntry(t, day(1), "yoga", 5)); err != nil {
		t.Fatal(err)
	}
	if n := len(store.LoadAll()); n != 1 {
		t.Errorf("expected fresh read after write (1 entry on disk), got %d", n)
	}
}

func TestInvalidate_RereadsOutOfBandEdit(t *testing.T) {
	store, dataPath := setupTestStore(t)
	if _, err := store.Upsert(testEntry(t, day(0), "walk", 3)); err != nil {
		t.Fatal(err)
	}
	if n := len(store.LoadAll()); n != 1 {
		t.Fatalf("expected 1 entry, got %d", n)
	}

	if err := os.WriteFile(dataPath, []byte(headerLine), 0600); err != nil {
		t.Fatal(err)
	}
	store.Invalidate()

	if n := len(store.LoadAll()); n != 0 {
		t.Errorf("expected the edited file to be re-read, got %d entries", n)
	}
}

func TestLoadAll_ReturnsIndependentCopies(t *testing.T) {
	store, _ := setupTestStore(t)
	if _, err := store.Upsert(testEntry(t, day(0), "walk", 3)); err != nil {
		t.Fatal(err)
	}

	first := store.LoadAll()
	first[0].Exercise = "mutated"

	if got := store.LoadAll()[0].Exercise; got != "walk" {
		t.Errorf("cached snapshot was mutated through a returned log: %q", got)
	}
}

func TestUpsert_ValidationErrorIsNotRetried(t *testing.T) {
	store, _ := setupTestStore(t)
	calls := 0
	store.rename = func(oldpath, newpath string) error {
		calls++
		return os.Rename(oldpath, newpath)
	}

	entry := testEntry(t, day(0), "walk", 3)
	entry.EnergyLevel = 11

	_, err := store.Upsert(entry)
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls != 0 {
		t.Errorf("invalid entry reached the write path %d times", calls)
	}
}

func TestUpsert_ExhaustsRetries(t *testing.T) {
	store, dataPath := setupTestStore(t)
	if _, err := store.Upsert(testEntry(t, day(0), "walk", 3)); err != nil {
		t.Fatal(err)
	}
	before, _ := os.ReadFile(dataPath)

	calls := 0
	store.rename = func(oldpath, newpath string) error {
		calls++
		return fmt.Errorf("simulated crash before rename")
	}

	_, err := store.Upsert(testEntry(t, day(1), "yoga", 9))
	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if pErr.Attempts != constants.MaxSaveAttempts {
		t.Errorf("attempts = %d, want %d", pErr.Attempts, constants.MaxSaveAttempts)
	}
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected last cause to be ErrStorageUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "simulated crash") {
		t.Errorf("last cause missing from error: %v", err)
	}
	if calls != constants.MaxSaveAttempts {
		t.Errorf("rename called %d times, want %d", calls, constants.MaxSaveAttempts)
	}

	after, _ := os.ReadFile(dataPath)
	if !bytes.Equal(before, after) {
		t.Errorf("prior version modified:\nbefore %q\nafter  %q", before, after)
	}
	if left := tempFiles(t, filepath.Dir(dataPath)); len(left) != 0 {
		t.Errorf("temp files left behind: %v", left)
	}

	reloaded := NewCSVStore(dataPath).LoadAll()
	if len(reloaded) != 1 || reloaded[0].Exercise != "walk" {
		t.Errorf("prior version not readable after failed write: %+v", reloaded)
	}
}

func TestUpsert_SucceedsOnRetry(t *testing.T) {
	store, _ := setupTestStore(t)

	calls := 0
	store.rename = func(oldpath, newpath string) error {
		calls++
		if calls == 2 {
			// The first rename belongs to initialization; fail the first data write
			return fmt.Errorf("transient failure")
		}
		return os.Rename(oldpath, newpath)
	}

	saved, err := store.Upsert(testEntry(t, day(0), "walk", 3))
	if err != nil {
		t.Fatalf("Upsert should recover on retry: %v", err)
	}
	if saved.Exercise != "walk" {
		t.Errorf("unexpected saved entry: %+v", saved)
	}
	if n := len(store.LoadAll()); n != 1 {
		t.Errorf("expected 1 entry, got %d", n)
	}
}

func TestUpsert_UnreadableDataPath(t *testing.T) {
	dir := t.TempDir()
	// A directory where the data file should be cannot be read as a file
	dataPath := filepath.Join(dir, "pcod_data.csv")
	if err := os.Mkdir(dataPath, 0700); err != nil {
		t.Fatal(err)
	}
	store := NewCSVStore(dataPath)

	if n := len(store.LoadAll()); n != 0 {
		t.Errorf("LoadAll should degrade to empty, got %d entries", n)
	}

	_, err := store.Upsert(testEntry(t, day(0), "walk", 3))
	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable cause, got %v", err)
	}
}

func TestUpsert_MalformedFileLeftIntact(t *testing.T) {
	good := headerLine +
		"2026-10-01,walk,8,,Good,None,No,4,2026-10-01T20:00:00Z\n" +
		"2026-10-02,yoga,6,,Okay,Mild,No,3,2026-10-02T20:00:00Z\n"

	tests := []struct {
		name    string
		content string
	}{
		{name: "lower case mood", content: good + "2026-10-03,run,5,,good,None,No,3,\n"},
		{name: "energy out of range", content: good + "2026-10-03,run,5,,Good,None,No,6,\n"},
		{name: "bad date", content: good + "3rd Oct,run,5,,Good,None,No,3,\n"},
		{name: "wrong header", content: "not,the,schema\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, dataPath := setupTestStore(t)
			if err := os.MkdirAll(filepath.Dir(dataPath), 0700); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(dataPath, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			entry := testEntry(t, time.Date(2026, 10, 4, 0, 0, 0, 0, time.Local), "swim", 7)
			_, err := store.Upsert(entry)
			var pErr *PersistenceError
			if !errors.As(err, &pErr) {
				t.Fatalf("expected PersistenceError, got %v", err)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed cause, got %v", err)
			}

			after, err := os.ReadFile(dataPath)
			if err != nil {
				t.Fatal(err)
			}
			if string(after) != tt.content {
				t.Errorf("data file rewritten:\nbefore %q\nafter  %q", tt.content, after)
			}
			if left := tempFiles(t, filepath.Dir(dataPath)); len(left) != 0 {
				t.Errorf("temp files left behind: %v", left)
			}
		})
	}
}

func TestUpsert_CollapsesDuplicateDates(t *testing.T) {
	store, dataPath := setupTestStore(t)
	content := headerLine +
		"2026-04-09,old,3,,Good,None,No,3,2026-04-09T08:00:00Z\n" +
		"2026-04-09,older,2,,Okay,None,No,2,2026-04-09T07:00:00Z\n" +
		"2026-04-10,walk,8,,Good,None,No,4,2026-04-10T20:00:00Z\n"
	if err := os.MkdirAll(filepath.Dir(dataPath), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dataPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	if dups := store.LoadAll().DuplicateDates(); len(dups) != 1 {
		t.Fatalf("expected the seeded duplicate to load, got %v", dups)
	}

	if _, err := store.Upsert(testEntry(t, day(-1), "new", 9)); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	log := store.LoadAll()
	if len(log) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(log), log)
	}
	if log[0].Exercise != "new" || log[1].Exercise != "walk" {
		t.Errorf("got %q, %q; want new, walk", log[0].Exercise, log[1].Exercise)
	}
}

func TestDecodeLogLenient(t *testing.T) {
	content := headerLine +
		"2026-10-01,walk,8,,Good,None,No,4,\n" +
		"2026-10-02,yoga,6,,good,None,No,6,\n" +
		"3rd Oct,run,5,,Good,None,No,3,\n" +
		"2026-10-04,swim,seven,,Good,None,No,3,\n" +
		"2026-10-05,short\n" +
		"2026-10-06,stretch,4,,Bad,Severe,Yes,1,\n"

	log, skipped, err := DecodeLogLenient(strings.NewReader(content))
	if err != nil {
		t.Fatalf("DecodeLogLenient failed: %v", err)
	}

	wantDays := []string{"2026-10-01", "2026-10-02", "2026-10-06"}
	if len(log) != len(wantDays) {
		t.Fatalf("decoded %d entries, want %d: %+v", len(log), len(wantDays), log)
	}
	for i, want := range wantDays {
		if log[i].Day() != want {
			t.Errorf("entry %d day = %s, want %s", i, log[i].Day(), want)
		}
	}
	if log[1].Mood != "good" || log[1].EnergyLevel != 6 {
		t.Errorf("out-of-range values not kept as read: %+v", log[1])
	}
	if log[1].Validate() == nil {
		t.Error("kept row should still fail validation")
	}

	wantLines := []int{4, 5, 6}
	if len(skipped) != len(wantLines) {
		t.Fatalf("skipped %v, want lines %v", skipped, wantLines)
	}
	for i, want := range wantLines {
		if skipped[i].Line != want {
			t.Errorf("skipped[%d].Line = %d, want %d", i, skipped[i].Line, want)
		}
	}
	if !errors.Is(skipped[2], csv.ErrFieldCount) {
		t.Errorf("short row error = %v, want ErrFieldCount", skipped[2])
	}

	if _, err := DecodeLog(strings.NewReader(content)); err == nil {
		t.Error("strict DecodeLog accepted the same content")
	}
}

func TestDecodeLogLenient_HeaderStillRequired(t *testing.T) {
	if _, _, err := DecodeLogLenient(strings.NewReader("day,what\n2026-01-01,walk\n")); err == nil {
		t.Error("expected an error for a wrong header")
	}
	if _, _, err := DecodeLogLenient(strings.NewReader("")); !errors.Is(err, errMissingHeader) {
		t.Errorf("empty input error = %v, want errMissingHeader", err)
	}
}

func TestReadLogFileLenient(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := ReadLogFileLenient(filepath.Join(dir, "missing.csv")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(bad, []byte("not,the,schema\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadLogFileLenient(bad); !errors.Is(err, ErrMalformed) {
		t.Errorf("bad header error = %v, want ErrMalformed", err)
	}

	mixed := filepath.Join(dir, "mixed.csv")
	content := headerLine + "2026-10-01,walk,8,,Good,None,No,4,\n" + "2026-10-02,run,x,,Good,None,No,4,\n"
	if err := os.WriteFile(mixed, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	log, skipped, err := ReadLogFileLenient(mixed)
	if err != nil {
		t.Fatalf("ReadLogFileLenient failed: %v", err)
	}
	if len(log) != 1 || len(skipped) != 1 || skipped[0].Line != 3 {
		t.Errorf("got %d entries and skipped %v, want 1 entry and line 3", len(log), skipped)
	}
}

func TestClearAll(t *testing.T) {
	store, dataPath := setupTestStore(t)
	for i := 0; i < 3; i++ {
		if _, err := store.Upsert(testEntry(t, day(i), "walk", i)); err != nil {
			t.Fatal(err)
		}
	}
	if n := len(store.LoadAll()); n != 3 {
		t.Fatalf("expected 3 entries, got %d", n)
	}

	for i := 0; i < 2; i++ {
		if err := store.ClearAll(); err != nil {
			t.Fatalf("ClearAll #%d failed: %v", i+1, err)
		}
		if n := len(store.LoadAll()); n != 0 {
			t.Errorf("after ClearAll #%d: expected empty log, got %d", i+1, n)
		}
		data, err := os.ReadFile(dataPath)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != headerLine {
			t.Errorf("after ClearAll #%d: file = %q, want header only", i+1, data)
		}
	}
}

func TestClearAll_MissingDirectory(t *testing.T) {
	store, dataPath := setupTestStore(t)
	if err := store.ClearAll(); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}
	if _, err := os.Stat(dataPath); err != nil {
		t.Errorf("ClearAll should leave a schema-only file: %v", err)
	}
}

func TestReplaceAll(t *testing.T) {
	store, _ := setupTestStore(t)
	if _, err := store.Upsert(testEntry(t, day(-5), "old", 1)); err != nil {
		t.Fatal(err)
	}
	_ = store.LoadAll()

	replacement := models.Log{
		testEntry(t, day(1), "b", 2),
		testEntry(t, day(-1), "a", 3),
	}
	if err := store.ReplaceAll(replacement); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	log := store.LoadAll()
	if len(log) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(log))
	}
	if log[0].Exercise != "a" || log[1].Exercise != "b" {
		t.Errorf("entries not sorted by date: %+v", log)
	}
	if replacement[0].Exercise != "b" {
		t.Error("ReplaceAll reordered its argument")
	}
}

func TestReplaceAll_RejectsInvalidEntry(t *testing.T) {
	store, dataPath := setupTestStore(t)
	if _, err := store.Upsert(testEntry(t, day(0), "keep", 4)); err != nil {
		t.Fatal(err)
	}
	before, _ := os.ReadFile(dataPath)

	bad := testEntry(t, day(-1), "bad", 4)
	bad.EnergyLevel = 0
	err := store.ReplaceAll(models.Log{bad})

	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	after, _ := os.ReadFile(dataPath)
	if !bytes.Equal(before, after) {
		t.Error("data file changed after rejected ReplaceAll")
	}
}

func TestExport_MatchesDataFile(t *testing.T) {
	store, dataPath := setupTestStore(t)
	for i := 0; i < 2; i++ {
		if _, err := store.Upsert(testEntry(t, day(i), "walk, then \"yoga\"", 8)); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := store.Export(&buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	data, _ := os.ReadFile(dataPath)
	if !bytes.Equal(buf.Bytes(), data) {
		t.Errorf("export differs from data file:\nexport %q\nfile   %q", buf.Bytes(), data)
	}
}

func TestPersistenceError(t *testing.T) {
	cause := fmt.Errorf("%w: disk full", ErrStorageUnavailable)
	err := &PersistenceError{Op: "save entry", Attempts: 3, Err: cause}

	if got, want := err.Error(), "failed to save entry after 3 attempts: storage unavailable: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Error("PersistenceError should unwrap to its cause")
	}
}
