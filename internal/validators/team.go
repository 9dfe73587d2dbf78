package validators

import "github.com/arnarb/leikir-api/models"

// TeamValidator validates team payloads for create and partial update.
type TeamValidator struct{}

func NewTeamValidator() *TeamValidator {
	return &TeamValidator{}
}

// ValidateCreate checks a POST /teams payload: name is required (3–128),
// description is optional (≤1024). All field failures are collected.
func (v *TeamValidator) ValidateCreate(p models.TeamPayload) models.ValidationErrors {
	var errs models.ValidationErrors

	rules := []struct {
		rule  StringRule
		value models.OptionalString
	}{
		{StringRule{Field: FieldName, MinLength: 3, MaxLength: 128}, p.Name},
		{StringRule{Field: FieldDescription, MaxLength: 1024, Optional: true}, p.Description},
	}

	for _, r := range rules {
		if fe := r.rule.Check(r.value); fe != nil {
			errs = append(errs, *fe)
		}
	}

	return errs
}

// ValidateUpdate checks a PATCH /teams/{slug} payload: both fields optional,
// but the body must carry at least one of them.
func (v *TeamValidator) ValidateUpdate(p models.TeamPayload) models.ValidationErrors {
	var errs models.ValidationErrors

	rules := []struct {
		rule  StringRule
		value models.OptionalString
	}{
		{StringRule{Field: FieldName, MinLength: 3, MaxLength: 128, Optional: true}, p.Name},
		{StringRule{Field: FieldDescription, MaxLength: 1024, Optional: true}, p.Description},
	}

	for _, r := range rules {
		if fe := r.rule.Check(r.value); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if len(errs) > 0 {
		return errs
	}

	if fe := AtLeastOneOf(map[string]bool{
		FieldName:        p.Name.Present,
		FieldDescription: p.Description.Present,
	}, FieldName, FieldDescription); fe != nil {
		return models.ValidationErrors{*fe}
	}

	return nil
}
