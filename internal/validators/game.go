package validators

import "github.com/arnarb/leikir-api/models"

// GameValidator validates game payloads for create and partial update.
type GameValidator struct{}

func NewGameValidator() *GameValidator {
	return &GameValidator{}
}

// ValidateCreate checks a POST /games payload. Both side names and scores
// are required, the date is optional. Field failures accumulate; the
// distinct-sides rule runs only once the shape batch is clean.
func (v *GameValidator) ValidateCreate(p models.GamePayload) models.ValidationErrors {
	var errs models.ValidationErrors

	for _, r := range []struct {
		rule  StringRule
		value models.OptionalString
	}{
		{StringRule{Field: FieldHomeName, MinLength: 3, MaxLength: 128}, p.Home.Name},
		{StringRule{Field: FieldAwayName, MinLength: 3, MaxLength: 128}, p.Away.Name},
	} {
		if fe := r.rule.Check(r.value); fe != nil {
			errs = append(errs, *fe)
		}
	}

	if fe := (DateRule{Field: FieldDate, Optional: true}).Check(p.Date); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := (ScoreRule{Field: FieldHomeScore}).Check(p.Home.Score); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := (ScoreRule{Field: FieldAwayScore}).Check(p.Away.Score); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return errs
	}

	if fe := DistinctSides(p.Home.Name, p.Away.Name); fe != nil {
		return models.ValidationErrors{*fe}
	}

	return nil
}

// ValidateUpdate checks a PATCH /games/{id} payload: every field optional,
// the body must carry at least one of date/home/away, and supplied side
// names must still differ.
func (v *GameValidator) ValidateUpdate(p models.GamePayload) models.ValidationErrors {
	var errs models.ValidationErrors

	for _, r := range []struct {
		rule  StringRule
		value models.OptionalString
	}{
		{StringRule{Field: FieldHomeName, MinLength: 3, MaxLength: 128, Optional: true}, p.Home.Name},
		{StringRule{Field: FieldAwayName, MinLength: 3, MaxLength: 128, Optional: true}, p.Away.Name},
	} {
		if fe := r.rule.Check(r.value); fe != nil {
			errs = append(errs, *fe)
		}
	}

	if fe := (DateRule{Field: FieldDate, Optional: true}).Check(p.Date); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := (ScoreRule{Field: FieldHomeScore, Optional: true}).Check(p.Home.Score); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := (ScoreRule{Field: FieldAwayScore, Optional: true}).Check(p.Away.Score); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return errs
	}

	if fe := AtLeastOneOf(map[string]bool{
		FieldDate: p.Date.Present,
		"home":    p.Home.Present(),
		"away":    p.Away.Present(),
	}, FieldDate, "home", "away"); fe != nil {
		return models.ValidationErrors{*fe}
	}

	if fe := DistinctSides(p.Home.Name, p.Away.Name); fe != nil {
		return models.ValidationErrors{*fe}
	}

	return nil
}
