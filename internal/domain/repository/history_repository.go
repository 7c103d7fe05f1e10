package repository

import "github.com/crealab/invoice-studio/internal/domain/entity"

// HistoryRepository is the append-only log of exported invoices.
//
// Implementations cap the log to the most recent entries (oldest evicted
// first) and must persist each append atomically: a reader never observes a
// partially written log. Persistence failures degrade the feature, they are
// never a correctness dependency of the live document.
type HistoryRepository interface {
	// Append prepends the record and truncates the log to the cap.
	Append(record entity.HistoryRecord) error
	// LoadMostRecent returns the newest record, or nil on first run.
	LoadMostRecent() (*entity.HistoryRecord, error)
	// List returns all records, most recent first.
	List() ([]entity.HistoryRecord, error)
	// GetByID returns one record, or nil when absent.
	GetByID(id int64) (*entity.HistoryRecord, error)
}
