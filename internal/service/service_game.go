package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arnarb/leikir-api/internal/logger"
	"github.com/arnarb/leikir-api/internal/store"
	"github.com/arnarb/leikir-api/internal/utils"
	"github.com/arnarb/leikir-api/internal/validators"
	"github.com/arnarb/leikir-api/models"
)

// gameService is the concrete implementation of [GameService]. The wire
// format carries team display names on both sides; resolution to stored ids
// always happens here, against the full team listing.
type gameService struct {
	gameRepository store.GameRepository
	teamRepository store.TeamRepository
	validator      *validators.GameValidator
	logger         *logger.Logger
}

// NewGameService constructs a [GameService] wired to the given repositories.
func NewGameService(gameRepository store.GameRepository, teamRepository store.TeamRepository, logger *logger.Logger) GameService {
	return &gameService{
		gameRepository: gameRepository,
		teamRepository: teamRepository,
		validator:      validators.NewGameValidator(),
		logger:         logger,
	}
}

// ListGames returns every stored game with team names resolved.
func (s *gameService) ListGames(ctx context.Context) ([]models.Game, error) {
	games, err := s.gameRepository.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing games ended with error: %w", err)
	}
	return games, nil
}

// GetGameByID returns the game identified by id.
func (s *gameService) GetGameByID(ctx context.Context, id int64) (models.Game, error) {
	game, err := s.gameRepository.GetGameByID(ctx, id)
	if err != nil {
		return models.Game{}, fmt.Errorf("game lookup by id failed: %w", err)
	}
	return game, nil
}

// CreateGame runs the create pipeline for a game payload. Both side names
// must resolve to stored teams or the create fails with
// [ErrTeamNotResolved]; a partial game is never written. An absent date
// defaults to the current time. The created row is re-read through the
// joined projection so the response carries resolved names.
func (s *gameService) CreateGame(ctx context.Context, payload models.GamePayload) (models.Game, error) {
	log := logger.FromContext(ctx)

	payload = stripGamePayload(payload)

	if errs := s.validator.ValidateCreate(payload); len(errs) > 0 {
		log.Debug().Int("failures", len(errs)).Msg("game create payload rejected")
		return models.Game{}, errs
	}

	homeID, err := s.resolveTeam(ctx, payload.Home.Name.Value)
	if err != nil {
		return models.Game{}, err
	}
	awayID, err := s.resolveTeam(ctx, payload.Away.Name.Value)
	if err != nil {
		return models.Game{}, err
	}

	date := time.Now()
	if payload.Date.Present {
		// already validated, parse cannot fail here
		date, _ = validators.ParseDate(payload.Date.Value)
	}

	record := models.GameRecord{
		Date:      date,
		HomeID:    homeID,
		HomeScore: payload.Home.Score.Value,
		AwayID:    awayID,
		AwayScore: payload.Away.Score.Value,
	}

	id, err := s.gameRepository.InsertGame(ctx, record)
	if err != nil {
		log.Err(err).Int64("home", homeID).Int64("away", awayID).Msg("game creation ended with error")
		return models.Game{}, fmt.Errorf("game creation ended with error: %w", err)
	}

	created, err := s.gameRepository.GetGameByID(ctx, id)
	if err != nil {
		return models.Game{}, fmt.Errorf("reading back created game failed: %w", err)
	}

	return created, nil
}

// UpdateGame runs the partial-update pipeline for the game identified by id.
// Candidate fields and values are positionally paired lists covering date,
// both team references and both scores; a side name supplied in the payload
// is resolved to its id before compilation.
func (s *gameService) UpdateGame(ctx context.Context, id int64, payload models.GamePayload) (models.Game, error) {
	log := logger.FromContext(ctx)

	payload = stripGamePayload(payload)

	if errs := s.validator.ValidateUpdate(payload); len(errs) > 0 {
		log.Debug().Int("failures", len(errs)).Msg("game update payload rejected")
		return models.Game{}, errs
	}

	if _, err := s.gameRepository.FindGameRecord(ctx, id); err != nil {
		return models.Game{}, fmt.Errorf("game lookup by id failed: %w", err)
	}

	fields := make([]string, 5)
	values := make([]any, 5)

	if payload.Date.Present {
		date, _ := validators.ParseDate(payload.Date.Value)
		fields[0], values[0] = "date", date
	}
	if payload.Home.Name.Present {
		homeID, err := s.resolveTeam(ctx, payload.Home.Name.Value)
		if err != nil {
			return models.Game{}, err
		}
		fields[1], values[1] = "home", homeID
	}
	if payload.Home.Score.Present {
		fields[2], values[2] = "home_score", payload.Home.Score.Value
	}
	if payload.Away.Name.Present {
		awayID, err := s.resolveTeam(ctx, payload.Away.Name.Value)
		if err != nil {
			return models.Game{}, err
		}
		fields[3], values[3] = "away", awayID
	}
	if payload.Away.Score.Present {
		fields[4], values[4] = "away_score", payload.Away.Score.Value
	}

	if _, err := s.gameRepository.UpdateGame(ctx, id, fields, values); err != nil {
		if !errors.Is(err, store.ErrNoFieldsToUpdate) {
			log.Err(err).Int64("id", id).Msg("game update ended with error")
			return models.Game{}, fmt.Errorf("game update ended with error: %w", err)
		}
	}

	updated, err := s.gameRepository.GetGameByID(ctx, id)
	if err != nil {
		return models.Game{}, fmt.Errorf("reading back updated game failed: %w", err)
	}

	return updated, nil
}

// DeleteGame removes the game identified by id.
func (s *gameService) DeleteGame(ctx context.Context, id int64) error {
	if err := s.gameRepository.DeleteGameByID(ctx, id); err != nil {
		return fmt.Errorf("game deletion ended with error: %w", err)
	}
	return nil
}

// resolveTeam finds the stored id for a team display name. The lookup scans
// the full team listing rather than a point query: the set is small and the
// comparison must use the same escaped form the store holds.
func (s *gameService) resolveTeam(ctx context.Context, name string) (int64, error) {
	teams, err := s.teamRepository.ListTeams(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing teams for resolution failed: %w", err)
	}

	escaped := utils.Escape(name)
	for _, team := range teams {
		if team.Name == escaped {
			return team.ID, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrTeamNotResolved, name)
}

// stripGamePayload removes markup from every supplied free-text field before
// validation.
func stripGamePayload(payload models.GamePayload) models.GamePayload {
	if payload.Date.Present {
		payload.Date.Value = utils.StripMarkup(payload.Date.Value)
	}
	if payload.Home.Name.Present {
		payload.Home.Name.Value = utils.StripMarkup(payload.Home.Name.Value)
	}
	if payload.Away.Name.Present {
		payload.Away.Name.Value = utils.StripMarkup(payload.Away.Name.Value)
	}
	return payload
}
