package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"resume-fit/internal/analysis"
	"resume-fit/internal/cache"
	"resume-fit/internal/llm"
)

// Options tunes an Analyzer.
type Options struct {
	// Strict rejects analyses whose nested fields break the prompt's schema.
	Strict bool
	// CacheTTL is how long a normalized analysis stays cached.
	CacheTTL time.Duration
}

// Analyzer runs one resume against one job description: validate, prompt,
// generate, normalize.
type Analyzer struct {
	llm   llm.Client
	cache cache.Cache
	log   *slog.Logger
	opts  Options
}

func New(client llm.Client, c cache.Cache, log *slog.Logger, opts Options) *Analyzer {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	return &Analyzer{llm: client, cache: c, log: log, opts: opts}
}

// Analyze returns the normalized fit analysis for req. Errors are one of the
// typed errors in package analysis and carry their HTTP status.
func (a *Analyzer) Analyze(ctx context.Context, req analysis.Request) (analysis.FitAnalysis, error) {
	if err := req.Validate(); err != nil {
		return analysis.FitAnalysis{}, err
	}

	id := uuid.NewString()
	model := a.llm.Model()
	log := a.log.With("analysis_id", id, "model", model)

	key := cache.Key(model, req.Resume, req.JobDescription)
	if cached, err := a.cache.GetAnalysis(ctx, key); err != nil {
		log.Warn("cache lookup failed", "err", err)
	} else if cached != nil {
		log.Info("cache hit", "score", cached.OverallScore)
		return *cached, nil
	}

	start := time.Now()
	raw, err := a.llm.Generate(ctx, analysis.BuildPrompt(req.Resume, req.JobDescription))
	if err != nil {
		var nc *llm.NotConfiguredError
		if errors.As(err, &nc) {
			return analysis.FitAnalysis{}, &analysis.ConfigurationError{
				Message: fmt.Sprintf("API key not configured. Set %s in your environment.", nc.EnvVar),
				Err:     err,
			}
		}
		log.Error("generation failed", "err", err, "duration_ms", time.Since(start).Milliseconds())
		return analysis.FitAnalysis{}, &analysis.GenerationError{Err: err}
	}
	log.Debug("generation complete", "duration_ms", time.Since(start).Milliseconds(), "bytes", len(raw))

	result, err := analysis.Normalize(raw)
	if err != nil {
		var pe *analysis.ParseError
		if errors.As(err, &pe) {
			log.Error("unparseable model response", "err", pe.Err, "excerpt", pe.Excerpt)
		}
		return analysis.FitAnalysis{}, err
	}

	if a.opts.Strict {
		if err := analysis.ValidateStrict(result); err != nil {
			log.Error("model response failed strict validation", "err", err)
			return analysis.FitAnalysis{}, err
		}
	}

	if err := a.cache.SetAnalysis(ctx, key, &result, a.opts.CacheTTL); err != nil {
		log.Warn("failed to cache analysis", "err", err)
	}

	log.Info("analysis complete",
		"score", result.OverallScore,
		"fit_level", result.FitLevel,
		"skills", len(result.Skills),
		"gaps", len(result.Gaps),
	)
	return result, nil
}
