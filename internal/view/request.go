package view

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// SelectionRequest is the wire form of a selection change. Absent fields leave the current
// value untouched.
type SelectionRequest struct {
	Risk      string `json:"risk,omitempty" validate:"omitempty,oneof=All Low Medium High" jsonschema:"risk level filter: All, Low, Medium or High"`
	Threshold *int   `json:"threshold,omitempty" validate:"omitnil,min=0,max=3000,step100" jsonschema:"minimum crime count, 0 to 3000 in steps of 100"`
	Sort      string `json:"sort,omitempty" validate:"omitempty,oneof=count name risk" jsonschema:"sort key: count (descending), name or risk"`
	Area      string `json:"area,omitempty" validate:"omitempty,max=64" jsonschema:"area name to toggle as the selected area"`
	CrimeType string `json:"crimeType,omitempty" validate:"omitempty,max=64" jsonschema:"crime type to toggle as the selected crime type"`
	Mode      string `json:"mode,omitempty" validate:"omitempty,oneof=bars grid" jsonschema:"layout: bars or grid"`
	Animation *bool  `json:"animation,omitempty" jsonschema:"whether bar transitions are animated"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("step100", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%ThresholdStep == 0
	})
	return v
}

// Validate checks the request against its struct tags.
func (r SelectionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	return nil
}

// Apply merges the request into s. Area and CrimeType toggle, so sending the current value
// deselects it.
func (r SelectionRequest) Apply(s Selection) Selection {
	if r.Risk != "" {
		s.RiskFilter = RiskFilter(r.Risk)
	}
	if r.Threshold != nil {
		s.CrimeThreshold = *r.Threshold
	}
	if r.Sort != "" {
		s.SortKey = SortKey(r.Sort)
	}
	if r.Area != "" {
		s.SelectedArea = ToggleSelection(s.SelectedArea, r.Area)
	}
	if r.CrimeType != "" {
		s.SelectedCrimeType = ToggleSelection(s.SelectedCrimeType, r.CrimeType)
	}
	if r.Mode != "" {
		s.Mode = Mode(r.Mode)
	}
	if r.Animation != nil {
		s.AnimationEnabled = *r.Animation
	}
	return s
}

// ParseSelection reads a request from query parameters.
func ParseSelection(values url.Values) (SelectionRequest, error) {
	req := SelectionRequest{
		Risk:      values.Get("risk"),
		Sort:      values.Get("sort"),
		Area:      values.Get("area"),
		CrimeType: values.Get("crimeType"),
		Mode:      values.Get("mode"),
	}
	if raw := values.Get("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("%w: threshold %q", ErrInvalidSelection, raw)
		}
		req.Threshold = &n
	}
	if raw := values.Get("animation"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return req, fmt.Errorf("%w: animation %q", ErrInvalidSelection, raw)
		}
		req.Animation = &b
	}
	return req, req.Validate()
}

// SelectionFromQuery builds a selection from the defaults plus the query parameters.
func SelectionFromQuery(values url.Values) (Selection, error) {
	req, err := ParseSelection(values)
	if err != nil {
		return Selection{}, err
	}
	return req.Apply(ResetSelection()), nil
}
