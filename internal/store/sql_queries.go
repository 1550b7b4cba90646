package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	committedTokensTable = "committed_tokens"

	colSourceID    = "source_id"
	colToken       = "token"
	colCommittedAt = "committed_at"
)

// upsertCommittedTokenSuffix is understood by both PostgreSQL and SQLite
// (3.24+).
const upsertCommittedTokenSuffix = "ON CONFLICT (" + colSourceID + ") DO UPDATE SET " +
	colToken + " = excluded." + colToken + ", " +
	colCommittedAt + " = excluded." + colCommittedAt

func buildSelectCommittedStateQuery(b sq.StatementBuilderType, sourceID string) (string, []any, error) {
	return b.
		Select(colToken, colCommittedAt).
		From(committedTokensTable).
		Where(sq.Eq{colSourceID: sourceID}).
		ToSql()
}

func buildUpsertCommittedTokenQuery(b sq.StatementBuilderType, sourceID, token string, at time.Time) (string, []any, error) {
	return b.
		Insert(committedTokensTable).
		Columns(colSourceID, colToken, colCommittedAt).
		Values(sourceID, token, at).
		Suffix(upsertCommittedTokenSuffix).
		ToSql()
}
