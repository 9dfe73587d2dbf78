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

// teamColumns is the canonical column order of the "teams" table, used by
// the conditional update builder's RETURNING clause.
var teamColumns = []string{"id", "name", "slug", "description"}

// teamRepository is the PostgreSQL-backed implementation of [TeamRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type teamRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTeamRepository constructs a [TeamRepository] backed by the provided
// database connection and logger.
func NewTeamRepository(db *DB, logger *logger.Logger) TeamRepository {
	logger.Debug().Msg("creating team repository")
	return &teamRepository{
		db:     db,
		logger: logger,
	}
}

// ListTeams returns every team ordered by id.
func (r *teamRepository) ListTeams(ctx context.Context) ([]models.Team, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTeams)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.ListTeams").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		if err = rows.Scan(&team.ID, &team.Name, &team.Slug, &team.Description); err != nil {
			log.Err(err).Str("func", "*teamRepository.ListTeams").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		teams = append(teams, team)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*teamRepository.ListTeams").Msg("error: rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return teams, nil
}

// FindTeamBySlug retrieves the team whose slug matches.
//
// Error handling:
//   - no matching row → [ErrTeamNotFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *teamRepository) FindTeamBySlug(ctx context.Context, slug string) (models.Team, error) {
	log := logger.FromContext(ctx)

	var team models.Team
	row := r.db.QueryRowContext(ctx, findTeamBySlug, slug)

	if err := row.Scan(&team.ID, &team.Name, &team.Slug, &team.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Team{}, ErrTeamNotFound
		}
		log.Err(err).Str("func", "*teamRepository.FindTeamBySlug").Msg("error: scanning error")
		return models.Team{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return team, nil
}

// InsertTeam persists a new team and returns the fully populated
// [models.Team] with its server-assigned id.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrTeamAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *teamRepository) InsertTeam(ctx context.Context, team models.Team) (models.Team, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, insertTeam, team.Name, team.Slug, team.Description)

	var saved models.Team
	if err := row.Scan(&saved.ID, &saved.Name, &saved.Slug, &saved.Description); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Team{}, ErrTeamAlreadyExists
		}
		log.Err(err).Str("func", "*teamRepository.InsertTeam").Msg("error: scanning error")
		return models.Team{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// UpdateTeam compiles a partial UPDATE for the team with the given id from
// the positionally paired candidate lists and returns the updated row.
//
// Error handling:
//   - nothing to update → [ErrNoFieldsToUpdate], untouched row intact.
//   - survivor count mismatch → [ErrFieldsValuesMismatch], nothing executed.
//   - no matching row → [ErrTeamNotFound].
//   - PostgreSQL unique_violation (23505) → [ErrTeamAlreadyExists].
func (r *teamRepository) UpdateTeam(ctx context.Context, id int64, fields []string, values []any) (models.Team, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildConditionalUpdate("teams", "id", id, fields, values, teamColumns)
	if err != nil {
		if errors.Is(err, ErrFieldsValuesMismatch) {
			log.Error().Str("func", "*teamRepository.UpdateTeam").
				Int("fields", len(fields)).Int("values", len(values)).
				Msg("error: update candidate lists out of step")
		}
		return models.Team{}, err
	}

	var team models.Team
	row := r.db.QueryRowContext(ctx, query, args...)

	if err = row.Scan(&team.ID, &team.Name, &team.Slug, &team.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Team{}, ErrTeamNotFound
		}
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Team{}, ErrTeamAlreadyExists
		}
		log.Err(err).Str("func", "*teamRepository.UpdateTeam").Msg("error: scanning error")
		return models.Team{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return team, nil
}

// DeleteTeamBySlug removes the team whose slug matches.
//
// Error handling:
//   - zero rows affected → [ErrTeamNotFound].
func (r *teamRepository) DeleteTeamBySlug(ctx context.Context, slug string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTeamBySlug, slug)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.DeleteTeamBySlug").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.DeleteTeamBySlug").Msg("error: rows affected unavailable")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTeamNotFound
	}

	return nil
}
