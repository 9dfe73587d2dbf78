package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/arnarb/leikir-api/internal/logger"
	"github.com/arnarb/leikir-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestTeamRepo(t *testing.T) (*teamRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &teamRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func teamRows(teams ...models.Team) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "slug", "description"})
	for _, team := range teams {
		rows.AddRow(team.ID, team.Name, team.Slug, team.Description)
	}
	return rows
}

func TestListTeams_Success(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, slug, description").
		WillReturnRows(teamRows(
			models.Team{ID: 1, Name: "Boltaliðið", Slug: "boltalidid"},
			models.Team{ID: 2, Name: "Dripplararnir", Slug: "dripplararnir", Description: "dribblers"},
		))

	teams, err := repo.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if teams[0].Slug != "boltalidid" {
		t.Errorf("expected slug boltalidid, got %s", teams[0].Slug)
	}
}

func TestListTeams_EmptyResult(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, slug, description").
		WillReturnRows(teamRows())

	teams, err := repo.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if teams == nil || len(teams) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", teams)
	}
}

func TestListTeams_QueryError(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, slug, description").
		WillReturnError(errors.New("db network error"))

	_, err := repo.ListTeams(context.Background())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindTeamBySlug_Success(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, slug, description").
		WithArgs("boltalidid").
		WillReturnRows(teamRows(models.Team{ID: 1, Name: "Boltaliðið", Slug: "boltalidid"}))

	team, err := repo.FindTeamBySlug(context.Background(), "boltalidid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.ID != 1 {
		t.Errorf("expected ID=1, got %d", team.ID)
	}
}

func TestFindTeamBySlug_NotFound(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, slug, description").
		WithArgs("missing").
		WillReturnRows(teamRows())

	_, err := repo.FindTeamBySlug(context.Background(), "missing")
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestInsertTeam_Success(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	team := models.Team{Name: "whatda", Slug: "whatda"}

	mock.ExpectQuery("INSERT INTO teams").
		WithArgs(team.Name, team.Slug, team.Description).
		WillReturnRows(teamRows(models.Team{ID: 3, Name: "whatda", Slug: "whatda"}))

	saved, err := repo.InsertTeam(context.Background(), team)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 3 {
		t.Errorf("expected ID=3, got %d", saved.ID)
	}
	if saved.Slug != "whatda" {
		t.Errorf("expected slug whatda, got %s", saved.Slug)
	}
}

func TestInsertTeam_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO teams").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.InsertTeam(context.Background(), models.Team{Name: "whatda", Slug: "whatda"})
	if !errors.Is(err, ErrTeamAlreadyExists) {
		t.Fatalf("expected ErrTeamAlreadyExists, got %v", err)
	}
}

func TestInsertTeam_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO teams").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.InsertTeam(context.Background(), models.Team{Name: "whatda", Slug: "whatda"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestUpdateTeam_Success(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE teams").
		WithArgs("renamed", "renamed", int64(1)).
		WillReturnRows(teamRows(models.Team{ID: 1, Name: "renamed", Slug: "renamed"}))

	updated, err := repo.UpdateTeam(context.Background(), 1,
		[]string{"name", "slug", ""},
		[]any{"renamed", "renamed", nil},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "renamed" {
		t.Errorf("expected name renamed, got %s", updated.Name)
	}
}

func TestUpdateTeam_NoFields(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	// no expectations registered: the builder must bail before touching the DB
	_, err := repo.UpdateTeam(context.Background(), 1,
		[]string{"", "", ""},
		[]any{nil, nil, nil},
	)
	if !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected DB interaction: %v", err)
	}
}

func TestUpdateTeam_DesyncedLists(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	_, err := repo.UpdateTeam(context.Background(), 1,
		[]string{"name", "slug"},
		[]any{"renamed", nil},
	)
	if !errors.Is(err, ErrFieldsValuesMismatch) {
		t.Fatalf("expected ErrFieldsValuesMismatch, got %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected DB interaction: %v", err)
	}
}

func TestUpdateTeam_NotFound(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE teams").
		WithArgs("renamed", int64(99)).
		WillReturnRows(teamRows())

	_, err := repo.UpdateTeam(context.Background(), 99,
		[]string{"name", "", ""},
		[]any{"renamed", nil, nil},
	)
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestUpdateTeam_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE teams").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateTeam(context.Background(), 1,
		[]string{"name", "slug", ""},
		[]any{"taken", "taken", nil},
	)
	if !errors.Is(err, ErrTeamAlreadyExists) {
		t.Fatalf("expected ErrTeamAlreadyExists, got %v", err)
	}
}

func TestDeleteTeamBySlug_Success(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM teams").
		WithArgs("whatda").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTeamBySlug(context.Background(), "whatda"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTeamBySlug_NothingDeleted(t *testing.T) {
	repo, mock, db := newTestTeamRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM teams").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTeamBySlug(context.Background(), "missing")
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}
