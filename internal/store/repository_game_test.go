package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arnarb/leikir-api/internal/logger"
	"github.com/arnarb/leikir-api/models"
	"github.com/jackc/pgerrcode"
)

func gameRecord(date time.Time, homeID int64, homeScore int, awayID int64, awayScore int) models.GameRecord {
	return models.GameRecord{
		Date:      date,
		HomeID:    homeID,
		HomeScore: homeScore,
		AwayID:    awayID,
		AwayScore: awayScore,
	}
}

func newTestGameRepo(t *testing.T) (*gameRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &gameRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func joinedGameRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"game_id", "date", "home_name", "home_score", "away_name", "away_score"})
}

func TestListGames_Success(t *testing.T) {
	repo, mock, db := newTestGameRepo(t)
	defer db.Close()

	played := time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT games.game_id").
		WillReturnRows(joinedGameRows().
			AddRow(1, played, "Boltaliðið", 2, "Dripplararnir", 1).
			AddRow(2, played, "Dripplararnir", 0, "Boltaliðið", 0))

	games, err := repo.ListGames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].Home.Name != "Boltaliðið" || games[0].Home.Score != 2 {
		t.Errorf("unexpected home side: %+v", games[0].Home)
	}
}

func TestListGames_NullTeamName(t *testing.T) {
	repo, mock, db := newTestGameRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT games.game_id").
		WillReturnRows(joinedGameRows().
			AddRow(1, time.Now(), nil, 2, "Dripplararnir", 1))

	games, err := repo.ListGames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if games[0].Home.Name != "" {
		t.Errorf("expected empty home name for NULL, got %q", games[0].Home.Name)
	}
}

func TestGetGameByID_Success(t *testing.T) {
	repo, mock, db := newTestGameRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT games.game_id").
		WithArgs(int64(1)).
		WillReturnRows(joinedGameRows().
			AddRow(1, time.Now(), "Boltaliðið", 3, "Dripplararnir", 1))

	game, err := repo.GetGameByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.ID != 1 || game.Away.Score != 1 {
		t.Errorf("unexpected game: %+v", game)
	}
}

func TestGetGameByID_NotFound(t *testing.T) {
	repo, mock, db := newTestGameRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT games.game_id").
		WithArgs(int64(404)).
		WillReturnRows(joinedGameRows())

	_, err := repo.GetGameByID(context.Background(), 404)
	if !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestFindGameRecord_NotFound(t *testing.T) {
	repo, mock, db := newTestGameRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT game_id, date, home, home_score, away, away_score").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"game_id", "date", "home", "home_score", "away", "away_score"}))

	_, err := repo.FindGameRecord(context.Background(), 404)
	if !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestInsertGame_Success(t *testing.T) {
	repo, mock, db := newTestGameRepo(t)
	defer db.Close()

	played := time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO games").
		WithArgs(played, int64(1), 2, int64(2), 1).
		WillReturnRows(sqlmock.NewRows([]string{"game_id"}).AddRow(5))

	id, err := repo.InsertGame(context.Background(), gameRecord(played, 1, 2, 2, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 5 {
		t.Errorf("expected id=5, got %d", id)
	}
}

func TestInsertGame_ForeignKeyViolation(t *testing.T) {
	repo, mock, db := newTestGameRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO games").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.InsertGame(context.Background(), gameRecord(time.Now(), 1, 2, 99, 1))
	if !errors.Is(err, ErrReferencedTeamMissing) {
		t.Fatalf("expected ErrReferencedTeamMissing, got %v", err)
	}
}

func TestUpdateGame_Success(t *testing.T) {
	repo, mock, db := newTestGameRepo(t)
	defer db.Close()

	played := time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC)

	mock.ExpectQuery("UPDATE games").
		WithArgs(3, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"game_id", "date", "home", "home_score", "away", "away_score"}).
			AddRow(1, played, 1, 3, 2, 1))

	record, err := repo.UpdateGame(context.Background(), 1,
		[]string{"", "", "home_score", "", ""},
		[]any{nil, nil, 3, nil, nil},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.HomeScore != 3 {
		t.Errorf("expected home score 3, got %d", record.HomeScore)
	}
}

func TestUpdateGame_NoFields(t *testing.T) {
	repo, mock, db := newTestGameRepo(t)
	defer db.Close()

	_, err := repo.UpdateGame(context.Background(), 1,
		make([]string, 5),
		make([]any, 5),
	)
	if !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected DB interaction: %v", err)
	}
}

func TestDeleteGameByID_NothingDeleted(t *testing.T) {
	repo, mock, db := newTestGameRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM games").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteGameByID(context.Background(), 404)
	if !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}
