package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arnarb/leikir-api/internal/logger"
	"github.com/arnarb/leikir-api/models"
	"github.com/jackc/pgerrcode"
)

// gameColumns is the canonical column order of the "games" table, used by
// the conditional update builder's RETURNING clause.
var gameColumns = []string{"game_id", "date", "home", "home_score", "away", "away_score"}

// gameRepository is the PostgreSQL-backed implementation of [GameRepository].
// Reads go through the joined projection so both team references come back
// as display names; writes operate on the raw row.
type gameRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewGameRepository constructs a [GameRepository] backed by the provided
// database connection and logger.
func NewGameRepository(db *DB, logger *logger.Logger) GameRepository {
	logger.Debug().Msg("creating game repository")
	return &gameRepository{
		db:     db,
		logger: logger,
	}
}

// ListGames returns every game, most recent first, with team names resolved.
func (r *gameRepository) ListGames(ctx context.Context) ([]models.Game, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listGames)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.ListGames").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var game models.Game
		if err = scanJoinedGame(rows, &game); err != nil {
			log.Err(err).Str("func", "*gameRepository.ListGames").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		games = append(games, game)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*gameRepository.ListGames").Msg("error: rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return games, nil
}

// GetGameByID retrieves one game through the joined projection.
//
// Error handling:
//   - no matching row → [ErrGameNotFound].
func (r *gameRepository) GetGameByID(ctx context.Context, id int64) (models.Game, error) {
	log := logger.FromContext(ctx)

	var game models.Game
	row := r.db.QueryRowContext(ctx, getGameByID, id)

	if err := scanJoinedGame(row, &game); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Game{}, ErrGameNotFound
		}
		log.Err(err).Str("func", "*gameRepository.GetGameByID").Msg("error: scanning error")
		return models.Game{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return game, nil
}

// FindGameRecord retrieves the raw "games" row, team references unresolved.
// Used by partial updates to confirm the target exists before compiling the
// statement.
func (r *gameRepository) FindGameRecord(ctx context.Context, id int64) (models.GameRecord, error) {
	log := logger.FromContext(ctx)

	var record models.GameRecord
	row := r.db.QueryRowContext(ctx, findGameRecord, id)

	if err := row.Scan(&record.ID, &record.Date, &record.HomeID, &record.HomeScore, &record.AwayID, &record.AwayScore); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.GameRecord{}, ErrGameNotFound
		}
		log.Err(err).Str("func", "*gameRepository.FindGameRecord").Msg("error: scanning error")
		return models.GameRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// InsertGame persists a new game row and returns its server-assigned id.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrReferencedTeamMissing].
func (r *gameRepository) InsertGame(ctx context.Context, record models.GameRecord) (int64, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, insertGame, record.Date, record.HomeID, record.HomeScore, record.AwayID, record.AwayScore)

	var id int64
	if err := row.Scan(&id); err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return 0, ErrReferencedTeamMissing
		}
		log.Err(err).Str("func", "*gameRepository.InsertGame").Msg("error: scanning error")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return id, nil
}

// UpdateGame compiles a partial UPDATE for the game with the given id from
// the positionally paired candidate lists and returns the updated raw row.
//
// Error handling mirrors [teamRepository.UpdateTeam], with
// foreign_key_violation (23503) → [ErrReferencedTeamMissing].
func (r *gameRepository) UpdateGame(ctx context.Context, id int64, fields []string, values []any) (models.GameRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildConditionalUpdate("games", "game_id", id, fields, values, gameColumns)
	if err != nil {
		if errors.Is(err, ErrFieldsValuesMismatch) {
			log.Error().Str("func", "*gameRepository.UpdateGame").
				Int("fields", len(fields)).Int("values", len(values)).
				Msg("error: update candidate lists out of step")
		}
		return models.GameRecord{}, err
	}

	var record models.GameRecord
	row := r.db.QueryRowContext(ctx, query, args...)

	if err = row.Scan(&record.ID, &record.Date, &record.HomeID, &record.HomeScore, &record.AwayID, &record.AwayScore); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.GameRecord{}, ErrGameNotFound
		}
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.GameRecord{}, ErrReferencedTeamMissing
		}
		log.Err(err).Str("func", "*gameRepository.UpdateGame").Msg("error: scanning error")
		return models.GameRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// DeleteGameByID removes the game whose id matches.
//
// Error handling:
//   - zero rows affected → [ErrGameNotFound].
func (r *gameRepository) DeleteGameByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteGameByID, id)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.DeleteGameByID").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.DeleteGameByID").Msg("error: rows affected unavailable")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrGameNotFound
	}

	return nil
}

// scanJoinedGame scans one row of the joined projection. A name is NULL when
// the referenced team no longer exists; the side keeps its zero-value name.
func scanJoinedGame(row interface{ Scan(...any) error }, game *models.Game) error {
	var homeName, awayName sql.NullString
	if err := row.Scan(&game.ID, &game.Date, &homeName, &game.Home.Score, &awayName, &game.Away.Score); err != nil {
		return err
	}
	game.Home.Name = homeName.String
	game.Away.Name = awayName.String
	return nil
}
