package invoicing

import (
	"github.com/crealab/invoice-studio/internal/domain"
	"github.com/crealab/invoice-studio/internal/domain/entity"
	"github.com/crealab/invoice-studio/internal/domain/repository"
	"github.com/crealab/invoice-studio/pkg/logger"
)

// HistoryUseCase exposes the export history to the editor: browsing recent
// invoices and restoring one into the session. Store failures degrade to
// "history unavailable this session" instead of escalating.
type HistoryUseCase struct {
	store repository.HistoryRepository
	log   *logger.Logger
}

// NewHistoryUseCase builds the use case.
func NewHistoryUseCase(store repository.HistoryRepository, log *logger.Logger) *HistoryUseCase {
	return &HistoryUseCase{store: store, log: log}
}

// List returns the log, most recent first.
func (uc *HistoryUseCase) List() ([]entity.HistoryRecord, error) {
	records, err := uc.store.List()
	if err != nil {
		uc.log.Warn().Err(err).Msg("history list failed")
		return nil, domain.ErrHistoryUnavailable
	}
	return records, nil
}

// Load restores the record into the session: a full overwrite of the live
// document, template and logo.
func (uc *HistoryUseCase) Load(session *Session, id int64) (Snapshot, error) {
	rec, err := uc.store.GetByID(id)
	if err != nil {
		uc.log.Warn().Err(err).Int64("id", id).Msg("history load failed")
		return Snapshot{}, domain.ErrHistoryUnavailable
	}
	if rec == nil {
		return Snapshot{}, domain.ErrNotFound
	}
	return session.LoadRecord(*rec), nil
}

// RestoreLast loads the most recent record into the session at startup.
// Nothing to restore is normal; store failures are logged and skipped so a
// broken history never prevents the editor from starting.
func (uc *HistoryUseCase) RestoreLast(session *Session) {
	rec, err := uc.store.LoadMostRecent()
	if err != nil {
		uc.log.Warn().Err(err).Msg("could not restore last session from history")
		return
	}
	if rec == nil {
		return
	}
	session.LoadRecord(*rec)
	uc.log.Info().Int64("record_id", rec.ID).Msg("restored last invoice from history")
}
