package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when the provider's credential is missing.
var ErrNotConfigured = errors.New("llm provider not configured")

// NotConfiguredError names the variable that would supply the credential.
type NotConfiguredError struct {
	EnvVar string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%v: %s is not set", ErrNotConfigured, e.EnvVar)
}

func (e *NotConfiguredError) Unwrap() error { return ErrNotConfigured }

// Client is a minimal LLM interface to allow pluggable providers.
type Client interface {
	// Generate sends a single prompt and returns the model's raw text.
	Generate(ctx context.Context, prompt string) (string, error)
	// Model names the model answering, used to scope cached results.
	Model() string
}

// Settings carries the sampling parameters shared by all providers.
type Settings struct {
	Model           string
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
}

// Unconfigured stands in for a provider whose API key is absent, so the
// service can start and report the problem per request.
type Unconfigured struct {
	EnvVar string
	model  string
}

func NewUnconfigured(envVar, model string) *Unconfigured {
	return &Unconfigured{EnvVar: envVar, model: model}
}

func (u *Unconfigured) Generate(context.Context, string) (string, error) {
	return "", &NotConfiguredError{EnvVar: u.EnvVar}
}

func (u *Unconfigured) Model() string { return u.model }
