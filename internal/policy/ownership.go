// Package policy holds the ownership checks shared by every service.
// Each check takes the caller and the already-loaded record and returns nil
// or an *apperr.Error of kind Forbidden.
package policy

import (
	"hirehub/internal/apperr"
	"hirehub/internal/models"
)

// RequireRole fails unless the caller has one of roles.
func RequireRole(caller models.Caller, roles ...models.Role) error {
	for _, role := range roles {
		if caller.Role == role {
			return nil
		}
	}
	return apperr.Forbidden("Access denied")
}

// RequireJobOwner fails unless the caller is the employer that posted job.
func RequireJobOwner(caller models.Caller, job *models.Job, message string) error {
	if job == nil || !caller.IsEmployer() || job.EmployerID != caller.ID {
		return apperr.Forbidden(message)
	}
	return nil
}

// RequireApplicationCandidate fails unless the caller submitted app.
func RequireApplicationCandidate(caller models.Caller, app *models.Application, message string) error {
	if app == nil || !caller.IsCandidate() || app.CandidateID != caller.ID {
		return apperr.Forbidden(message)
	}
	return nil
}

// RequireApplicationEmployer fails unless the caller owns the job app was
// submitted to. app.Job must be loaded.
func RequireApplicationEmployer(caller models.Caller, app *models.Application, message string) error {
	if app == nil {
		return apperr.Forbidden(message)
	}
	return RequireJobOwner(caller, app.Job, message)
}

// RequireInterviewParticipant lets the candidate of the interview's
// application or the employer owning its job through.
func RequireInterviewParticipant(caller models.Caller, interview *models.Interview, message string) error {
	if interview == nil || interview.Application == nil {
		return apperr.Forbidden(message)
	}
	app := interview.Application
	switch caller.Role {
	case models.RoleCandidate:
		return RequireApplicationCandidate(caller, app, message)
	case models.RoleEmployer:
		return RequireApplicationEmployer(caller, app, message)
	default:
		return apperr.Forbidden(message)
	}
}
