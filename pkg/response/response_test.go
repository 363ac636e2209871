package response_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sksohail19/cricket-score-tracking-app/internal/repository"
	"github.com/sksohail19/cricket-score-tracking-app/internal/scoring"
	"github.com/sksohail19/cricket-score-tracking-app/internal/service"
	"github.com/sksohail19/cricket-score-tracking-app/pkg/response"
)

// fakeInvalid mimics service aggregated validation error to test mapping without reaching into internals.
type fakeInvalid struct{ fe []service.FieldError }

func (f *fakeInvalid) Error() string                { return service.ErrInvalidInput.Error() }
func (f *fakeInvalid) Unwrap() error                { return service.ErrInvalidInput }
func (f *fakeInvalid) Fields() []service.FieldError { return f.fe }

func TestMapError(t *testing.T) {
	cases := []struct {
		name     string
		in       error
		wantCode int
		wantErr  string
	}{
		{"invalid_input", &fakeInvalid{fe: []service.FieldError{{Field: "name", Message: "bad"}}}, 400, "invalid_input"},
		{"match_complete", scoring.ErrMatchComplete, 409, "match_complete"},
		{"delivery rejection", fmt.Errorf("%w: runs must be between 0 and 6", scoring.ErrInvalidDelivery), 400, "invalid_delivery"},
		{"batter not at crease", scoring.ErrBatterNotAtCrease, 400, "invalid_delivery"},
		{"corrupt log", scoring.ErrCorruptLog, 500, "invariant_violation"},
		{"not_persisted", fmt.Errorf("%w: disk full", service.ErrNotPersisted), 503, "not_persisted"},
		{"not_found", repository.ErrNotFound, 404, "not_found"},
		{"conflict", repository.ErrConflict, 409, "conflict"},
		{"internal", errors.New("boom"), 500, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, payload := response.MapError(tc.in)
			if code != tc.wantCode || payload.Error != tc.wantErr {
				t.Fatalf("unexpected mapping: got (%d,%s) want (%d,%s)", code, payload.Error, tc.wantCode, tc.wantErr)
			}
			if tc.wantErr == "invalid_input" && len(payload.FieldErrors) == 0 {
				t.Fatalf("expected field errors in payload")
			}
		})
	}
}
