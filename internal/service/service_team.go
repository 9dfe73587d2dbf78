package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/arnarb/leikir-api/internal/logger"
	"github.com/arnarb/leikir-api/internal/store"
	"github.com/arnarb/leikir-api/internal/utils"
	"github.com/arnarb/leikir-api/internal/validators"
	"github.com/arnarb/leikir-api/models"
)

// teamService is the concrete implementation of [TeamService]. A mutation
// runs the full pipeline: strip markup, validate shape and cross-field
// rules, check slug uniqueness, escape for storage, persist.
type teamService struct {
	teamRepository store.TeamRepository
	validator      *validators.TeamValidator
	logger         *logger.Logger
}

// NewTeamService constructs a [TeamService] wired to the given repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTeamService(teamRepository store.TeamRepository, logger *logger.Logger) TeamService {
	return &teamService{
		teamRepository: teamRepository,
		validator:      validators.NewTeamValidator(),
		logger:         logger,
	}
}

// ListTeams returns every stored team.
func (s *teamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepository.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing teams ended with error: %w", err)
	}
	return teams, nil
}

// GetTeamBySlug returns the team identified by slug.
func (s *teamService) GetTeamBySlug(ctx context.Context, slug string) (models.Team, error) {
	team, err := s.teamRepository.FindTeamBySlug(ctx, slug)
	if err != nil {
		return models.Team{}, fmt.Errorf("team lookup by slug failed: %w", err)
	}
	return team, nil
}

// CreateTeam runs the create pipeline for a team payload.
//
// The slug is derived from the stripped but not yet escaped name, so two
// inputs that differ only in escaping cannot mint distinct teams that
// collapse to the same slug. Uniqueness is asserted against that slug before
// the insert; the database unique constraint backstops the check under
// concurrent creates.
//
// Returns the persisted team or:
//   - [models.ValidationErrors] when the payload fails shape validation.
//   - [store.ErrTeamAlreadyExists] when the slug is already taken.
func (s *teamService) CreateTeam(ctx context.Context, payload models.TeamPayload) (models.Team, error) {
	log := logger.FromContext(ctx)

	payload = stripTeamPayload(payload)

	if errs := s.validator.ValidateCreate(payload); len(errs) > 0 {
		log.Debug().Int("failures", len(errs)).Msg("team create payload rejected")
		return models.Team{}, errs
	}

	teamSlug := utils.Sluggify(payload.Name.Value)

	if err := s.assertSlugFree(ctx, teamSlug); err != nil {
		return models.Team{}, err
	}

	team := models.Team{
		Name: utils.Escape(payload.Name.Value),
		Slug: teamSlug,
	}
	if payload.Description.Present {
		team.Description = utils.Escape(payload.Description.Value)
	}

	saved, err := s.teamRepository.InsertTeam(ctx, team)
	if err != nil {
		log.Err(err).Str("slug", teamSlug).Msg("team creation ended with error")
		return models.Team{}, fmt.Errorf("team creation ended with error: %w", err)
	}

	return saved, nil
}

// UpdateTeam runs the partial-update pipeline for the team identified by
// slug. Candidate fields and values are positionally paired lists; an absent
// payload field leaves both slots empty so the compiler drops the column.
// Renaming a team re-derives its slug and re-asserts uniqueness when the
// slug actually changes.
func (s *teamService) UpdateTeam(ctx context.Context, slug string, payload models.TeamPayload) (models.Team, error) {
	log := logger.FromContext(ctx)

	payload = stripTeamPayload(payload)

	if errs := s.validator.ValidateUpdate(payload); len(errs) > 0 {
		log.Debug().Int("failures", len(errs)).Msg("team update payload rejected")
		return models.Team{}, errs
	}

	current, err := s.teamRepository.FindTeamBySlug(ctx, slug)
	if err != nil {
		return models.Team{}, fmt.Errorf("team lookup by slug failed: %w", err)
	}

	fields := make([]string, 3)
	values := make([]any, 3)

	if payload.Name.Present {
		newSlug := utils.Sluggify(payload.Name.Value)
		if newSlug != current.Slug {
			if err = s.assertSlugFree(ctx, newSlug); err != nil {
				return models.Team{}, err
			}
		}
		fields[0], values[0] = "name", utils.Escape(payload.Name.Value)
		fields[1], values[1] = "slug", newSlug
	}
	if payload.Description.Present {
		fields[2], values[2] = "description", utils.Escape(payload.Description.Value)
	}

	updated, err := s.teamRepository.UpdateTeam(ctx, current.ID, fields, values)
	if err != nil {
		if errors.Is(err, store.ErrNoFieldsToUpdate) {
			return current, nil
		}
		log.Err(err).Str("slug", slug).Msg("team update ended with error")
		return models.Team{}, fmt.Errorf("team update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteTeam removes the team identified by slug.
func (s *teamService) DeleteTeam(ctx context.Context, slug string) error {
	if err := s.teamRepository.DeleteTeamBySlug(ctx, slug); err != nil {
		return fmt.Errorf("team deletion ended with error: %w", err)
	}
	return nil
}

// assertSlugFree fails with [store.ErrTeamAlreadyExists] when a team with
// the given slug is already stored.
func (s *teamService) assertSlugFree(ctx context.Context, slug string) error {
	_, err := s.teamRepository.FindTeamBySlug(ctx, slug)
	switch {
	case err == nil:
		return store.ErrTeamAlreadyExists
	case errors.Is(err, store.ErrTeamNotFound):
		return nil
	default:
		return fmt.Errorf("uniqueness check failed: %w", err)
	}
}

// stripTeamPayload removes markup from every supplied free-text field before
// validation, so length bounds apply to the surviving text.
func stripTeamPayload(payload models.TeamPayload) models.TeamPayload {
	if payload.Name.Present {
		payload.Name.Value = utils.StripMarkup(payload.Name.Value)
	}
	if payload.Description.Present {
		payload.Description.Value = utils.StripMarkup(payload.Description.Value)
	}
	return payload
}
