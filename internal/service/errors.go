package service

import "errors"

// ErrTeamNotResolved is returned when a game payload names a team that does
// not resolve to any stored team. Surfaced to the caller as a bad request,
// never passed through as a partial game.
var ErrTeamNotResolved = errors.New("referenced team not found")
