// Package forms holds the create and edit forms of the admin client.
//
// A form validates its input with ozzo-validation before any request is
// sent and converts itself into the JSON body the backend expects. Failures
// are reported as *utils.ValidationError values in field order, so the
// first failing field is the first error.
package forms

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/soley/admin-cli/internal/models"
	"github.com/soley/admin-cli/internal/utils"
)

// Form is implemented by every form in this package.
type Form interface {
	Validate() error
	Payload() any
}

// collect converts ozzo errors into validation errors ordered by fields.
func collect(errs validation.Errors, fields ...string) error {
	errs, _ = errs.Filter().(validation.Errors)
	if len(errs) == 0 {
		return nil
	}

	multi := utils.NewMultiError()
	for _, field := range fields {
		if err, ok := errs[field]; ok && err != nil {
			multi.Add(utils.NewValidationError(field, err.Error()))
		}
	}
	return multi.ErrOrNil()
}

// splitList splits on sep, trims, and drops empty entries.
func splitList(s, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// sameInEveryLanguage builds one Localized per entry with the text copied to every language.
func sameInEveryLanguage(entries []string) []models.Localized {
	out := make([]models.Localized, 0, len(entries))
	for _, e := range entries {
		l := make(models.Localized, len(models.Languages))
		for _, lang := range models.Languages {
			l[lang] = e
		}
		out = append(out, l)
	}
	return out
}
