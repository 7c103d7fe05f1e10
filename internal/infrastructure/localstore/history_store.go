// Package localstore persists the invoice history log as a single JSON
// document on the local filesystem. It is the service's only persisted state
// besides the contact table: one slot, newest record first, capped.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/crealab/invoice-studio/internal/domain/entity"
	"github.com/crealab/invoice-studio/internal/domain/repository"
)

// ErrCorruptedLog marks a log file that exists but does not decode. Only this
// failure mode allows Append to start the log over; transient I/O errors must
// never cost the existing records.
var ErrCorruptedLog = errors.New("history: corrupted log")

// DefaultCap is the number of records kept. Eviction is plain FIFO: the
// access pattern is always "most recent first", so nothing smarter is needed.
const DefaultCap = 10

const historyFile = "history.json"

var _ repository.HistoryRepository = (*HistoryStore)(nil)

// HistoryStore implements repository.HistoryRepository over a filesystem.
// Tests pass an afero.MemMapFs; production uses the OS filesystem rooted at
// the configured data directory.
type HistoryStore struct {
	fs  afero.Fs
	dir string
	cap int
}

// NewHistoryStore builds the store. cap <= 0 selects DefaultCap.
func NewHistoryStore(fs afero.Fs, dir string, cap int) *HistoryStore {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &HistoryStore{fs: fs, dir: dir, cap: cap}
}

// Append prepends the record, truncates to the cap and persists the whole
// log in one atomic write (temp file + rename). A failed write leaves the
// previous log intact; no partial state is ever observable.
func (s *HistoryStore) Append(record entity.HistoryRecord) error {
	records, err := s.read()
	if err != nil {
		// A corrupted log is replaced rather than kept broken. Any other read
		// failure (permissions, transient I/O) aborts the append: the existing
		// records may still be intact and must not be overwritten.
		if !errors.Is(err, ErrCorruptedLog) {
			return err
		}
		records = nil
	}

	records = append([]entity.HistoryRecord{record}, records...)
	if len(records) > s.cap {
		records = records[:s.cap]
	}
	return s.write(records)
}

// LoadMostRecent returns the newest record, or nil when the log is empty or
// absent. First run without a log file is normal, not an error.
func (s *HistoryStore) LoadMostRecent() (*entity.HistoryRecord, error) {
	records, err := s.read()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	r := records[0]
	return &r, nil
}

// List returns all records, most recent first.
func (s *HistoryStore) List() ([]entity.HistoryRecord, error) {
	return s.read()
}

// GetByID returns one record by its id, or nil when absent.
func (s *HistoryStore) GetByID(id int64) (*entity.HistoryRecord, error) {
	records, err := s.read()
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.ID == id {
			r := r
			return &r, nil
		}
	}
	return nil, nil
}

func (s *HistoryStore) path() string {
	return filepath.Join(s.dir, historyFile)
}

func (s *HistoryStore) read() ([]entity.HistoryRecord, error) {
	raw, err := afero.ReadFile(s.fs, s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("history: read log: %w", err)
	}
	var records []entity.HistoryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedLog, err)
	}
	// The file is written newest-first already; the stable sort only guards
	// against a hand-edited file and keeps file order for records sharing an
	// id (two exports in the same millisecond).
	sort.SliceStable(records, func(i, j int) bool { return records[i].ID > records[j].ID })
	return records, nil
}

func (s *HistoryStore) write(records []entity.HistoryRecord) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("history: create data dir: %w", err)
	}
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("history: encode log: %w", err)
	}

	tmp := s.path() + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, raw, 0o644); err != nil {
		return fmt.Errorf("history: write log: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path()); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("history: replace log: %w", err)
	}
	return nil
}
