package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	listTeams = `SELECT id, name, slug, description
    FROM teams
    ORDER BY id;`

	findTeamBySlug = `SELECT id, name, slug, description
    FROM teams
    WHERE slug = $1;`

	insertTeam = `INSERT INTO teams (name, slug, description)
    VALUES ($1, $2, $3)
    RETURNING id, name, slug, description;`

	deleteTeamBySlug = `DELETE FROM teams
    WHERE slug = $1;`

	// Joined projection: team references resolved to display names. LEFT
	// JOIN so a game row still surfaces even if a referenced team vanished.
	listGames = `SELECT games.game_id, games.date, home.name, games.home_score, away.name, games.away_score
    FROM games
    LEFT JOIN teams AS home ON home.id = games.home
    LEFT JOIN teams AS away ON away.id = games.away
    ORDER BY games.date DESC, games.game_id DESC;`

	getGameByID = `SELECT games.game_id, games.date, home.name, games.home_score, away.name, games.away_score
    FROM games
    LEFT JOIN teams AS home ON home.id = games.home
    LEFT JOIN teams AS away ON away.id = games.away
    WHERE games.game_id = $1;`

	findGameRecord = `SELECT game_id, date, home, home_score, away, away_score
    FROM games
    WHERE game_id = $1;`

	insertGame = `INSERT INTO games (date, home, home_score, away, away_score)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING game_id;`

	deleteGameByID = `DELETE FROM games
    WHERE game_id = $1;`
)

// psql builds statements with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildConditionalUpdate compiles a partial UPDATE from positionally paired
// candidate lists: fields[i] names the column for values[i]. An empty field
// name marks the column absent; a nil value marks the value absent. The two
// lists are filtered independently and must survive with equal lengths.
//
// Returns [ErrNoFieldsToUpdate] when nothing survives, and
// [ErrFieldsValuesMismatch] when the survivor counts disagree.
func buildConditionalUpdate(table, idColumn string, id int64, fields []string, values []any, returning []string) (string, []any, error) {
	keptFields := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			keptFields = append(keptFields, f)
		}
	}

	keptValues := make([]any, 0, len(values))
	for _, v := range values {
		if v != nil {
			keptValues = append(keptValues, v)
		}
	}

	if len(keptFields) == 0 && len(keptValues) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}
	if len(keptFields) != len(keptValues) {
		return "", nil, ErrFieldsValuesMismatch
	}

	update := psql.Update(table)
	for i, field := range keptFields {
		update = update.Set(field, keptValues[i])
	}
	update = update.
		Where(sq.Eq{idColumn: id}).
		Suffix("RETURNING " + strings.Join(returning, ", "))

	query, args, err := update.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
