package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Input limits, counted in characters of the untrimmed text.
const (
	MaxResumeChars         = 12000
	MaxJobDescriptionChars = 6000
)

const msgBothRequired = "Both resume and job description are required."

// Request is the body accepted by the analyze endpoint. The max tags
// mirror MaxResumeChars and MaxJobDescriptionChars.
type Request struct {
	Resume         string `json:"resume" validate:"notblank,max=12000"`
	JobDescription string `json:"jobDescription" validate:"notblank,max=6000"`
}

var (
	validate = newValidator()
	printer  = message.NewPrinter(language.English)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank rejects strings that are empty once whitespace is trimmed.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks blankness of both fields first, then each length limit.
func (r Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Message: err.Error()}
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "notblank" {
			return &ValidationError{Message: msgBothRequired}
		}
	}
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Resume":
			return &ValidationError{Message: limitMessage("Resume", MaxResumeChars)}
		case "JobDescription":
			return &ValidationError{Message: limitMessage("Job description", MaxJobDescriptionChars)}
		}
	}
	return &ValidationError{Message: fieldErrs.Error()}
}

func limitMessage(field string, limit int) string {
	return printer.Sprintf("%s exceeds %d character limit.", field, limit)
}

// ValidateStrict checks the nested fields of a parsed analysis against the
// enums and ranges the prompt asks for.
func ValidateStrict(a FitAnalysis) error {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &SchemaError{Violations: []string{err.Error()}}
	}
	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return &SchemaError{Violations: violations}
}
