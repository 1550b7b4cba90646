package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-manifest-sync/internal/logger"
	"github.com/MKhiriev/go-manifest-sync/models"
)

// tokenRepository is the SQL implementation of [TokenRepository] over the
// "committed_tokens" table. It works for both SQLite and PostgreSQL; the
// dialect only changes placeholders.
type tokenRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewTokenRepository constructs a [TokenRepository] backed by db.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Str("dialect", db.Dialect()).Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// GetCommittedToken implements [TokenRepository].
func (r *tokenRepository) GetCommittedToken(ctx context.Context, sourceID string) (string, error) {
	state, err := r.GetCommittedState(ctx, sourceID)
	if err != nil {
		return "", err
	}
	return state.Token, nil
}

// GetCommittedState implements [TokenRepository].
func (r *tokenRepository) GetCommittedState(ctx context.Context, sourceID string) (models.CommittedState, error) {
	log := logger.FromContext(ctx)
	state := models.CommittedState{SourceID: sourceID}

	query, args, err := buildSelectCommittedStateQuery(r.db.builder, sourceID)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.GetCommittedState").Msg("error building query")
		return state, wrapDBError(ErrBuildingSQLQuery, err)
	}

	var committedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&state.Token, &committedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return state, nil
	case err != nil:
		log.Err(err).Str("func", "*tokenRepository.GetCommittedState").Msg("error reading committed token")
		return state, r.db.classify(wrapDBError(ErrScanningRow, err))
	}

	if committedAt.Valid {
		at := committedAt.Time
		state.CommittedAt = &at
	}

	return state, nil
}

// SetCommittedToken implements [TokenRepository]. The upsert runs in its own
// transaction, so a crash leaves either the old row or the new one.
func (r *tokenRepository) SetCommittedToken(ctx context.Context, sourceID, token string) (err error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCommittedTokenQuery(r.db.builder, sourceID, token, r.now())
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.SetCommittedToken").Msg("error building query")
		return wrapDBError(ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.SetCommittedToken").Msg("error beginning transaction")
		return r.db.classify(wrapDBError(ErrBeginningTransaction, err))
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*tokenRepository.SetCommittedToken").Msg("error writing committed token")
		return r.db.classify(wrapDBError(ErrExecutingStatement, err))
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.SetCommittedToken").Msg("error committing transaction")
		return r.db.classify(wrapDBError(ErrCommitingTransaction, err))
	}

	log.Debug().Str("source_id", sourceID).Str("token", token).Msg("committed token stored")
	return nil
}
