package lines

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/metronav/metronav/pkg/errors"
	"github.com/metronav/metronav/pkg/network"
)

// lineRecord carries the structural rules every loaded line must satisfy.
type lineRecord struct {
	ID       string   `validate:"required,max=256,excludesall=/\\"`
	Stations []string `validate:"min=1,dive,required,max=256"`
}

var validate = validator.New()

// Validate checks a network against the input contract of route search:
// every line has a usable ID and at least one station, and every station name
// is clean. Unless opts.AllowDuplicateStations is set, a line listing the same
// station twice is rejected as well.
//
// All problems are reported together as one INVALID_NETWORK error whose cause
// joins the individual [errors.LineError] values.
func Validate(n *network.Network, opts Options) error {
	var problems []error
	for _, l := range n.Lines() {
		problems = append(problems, validateLine(l, opts)...)
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.Wrap(errors.ErrCodeInvalidNetwork, stderrors.Join(problems...), "%d problem(s) in line data", len(problems))
}

func validateLine(l network.Line, opts Options) []error {
	if err := validate.Struct(lineRecord{ID: l.ID, Stations: l.Stations}); err != nil {
		return structProblems(l, err)
	}

	var problems []error
	if err := errors.ValidateLineID(l.ID); err != nil {
		problems = append(problems, &errors.LineError{Line: l.ID, Reason: errors.UserMessage(err)})
	}
	seen := make(map[string]bool, len(l.Stations))
	for _, s := range l.Stations {
		if err := errors.ValidateStationName(s); err != nil {
			problems = append(problems, &errors.LineError{Line: l.ID, Station: s, Reason: errors.UserMessage(err)})
			continue
		}
		if seen[s] && !opts.AllowDuplicateStations {
			problems = append(problems, &errors.LineError{Line: l.ID, Station: s, Reason: "duplicate station"})
		}
		seen[s] = true
	}
	return problems
}

func structProblems(l network.Line, err error) []error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []error{&errors.LineError{Line: l.ID, Reason: err.Error()}}
	}
	var out []error
	for _, fe := range verrs {
		out = append(out, &errors.LineError{Line: l.ID, Reason: describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch {
	case fe.Field() == "ID" && fe.Tag() == "required":
		return "missing line ID"
	case fe.Field() == "ID" && fe.Tag() == "excludesall":
		return "line ID cannot contain path separators"
	case fe.Field() == "Stations" && fe.Tag() == "min":
		return "no stations"
	case strings.HasPrefix(fe.Field(), "Stations[") && fe.Tag() == "required":
		return "blank station name at " + strings.TrimPrefix(fe.Field(), "Stations")
	}
	return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
}
