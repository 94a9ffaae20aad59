package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"resume-fit/internal/analysis"
	"resume-fit/internal/app"
	"resume-fit/internal/extract"
	"resume-fit/internal/httputil"
)

const (
	msgInvalidJSON    = "Invalid JSON body."
	msgAnalysisFailed = "Analysis failed. Please try again."
	msgResumeFile     = "A resume file is required."
	msgUnreadableFile = "Could not read text from the uploaded resume."

	shutdownTimeout = 10 * time.Second
)

// analyzeRequest accepts any JSON type per field so that a non-string value
// is reported as missing rather than as malformed JSON.
type analyzeRequest struct {
	Resume         any `json:"resume"`
	JobDescription any `json:"jobDescription"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.Build(ctx)
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := deps.Cache.Close(); err != nil {
			deps.Log.Warn("failed to close cache", "err", err)
		}
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", deps.Config.Port),
		Handler:           newRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		deps.Log.Info("gateway listening", "addr", srv.Addr, "model", deps.LLM.Model())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		deps.Log.Info("shutting down gateway")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server failed", "err", err)
	}
}

func newRouter(deps app.Deps) http.Handler {
	r := httputil.NewRouter(deps.Log, deps.Config.RequestTimeout)

	r.Post("/api/analyze", analyzeHandler(deps))
	r.Post("/api/analyze/upload", uploadHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	return r
}

func analyzeHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, deps.Config.MaxUploadSize)

		var body analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				httputil.Fail(deps.Log, w, fmt.Sprintf("request body too large (max %d bytes)", maxErr.Limit), err, http.StatusRequestEntityTooLarge)
				return
			}
			httputil.Fail(deps.Log, w, msgInvalidJSON, err, http.StatusBadRequest)
			return
		}

		req := analysis.Request{
			Resume:         stringOrEmpty(body.Resume),
			JobDescription: stringOrEmpty(body.JobDescription),
		}
		respond(deps, w, r, req)
	}
}

func uploadHandler(deps app.Deps) http.HandlerFunc {
	maxFileSize := deps.Config.MaxUploadSize

	return func(w http.ResponseWriter, r *http.Request) {
		// Validate file size before parsing
		if r.ContentLength > maxFileSize {
			httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil, http.StatusBadRequest)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxFileSize)

		file, header, err := r.FormFile("resume")
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), err, http.StatusBadRequest)
				return
			}
			httputil.Fail(deps.Log, w, msgResumeFile, err, http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Size > maxFileSize {
			httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil, http.StatusBadRequest)
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to read file", err, http.StatusInternalServerError)
			return
		}

		log := deps.Log.With("filename", header.Filename)
		text, err := extract.Text(header.Filename, header.Header.Get("Content-Type"), content)
		if err != nil {
			if errors.Is(err, extract.ErrUnsupportedType) {
				httputil.Fail(log, w, err.Error(), err, http.StatusBadRequest)
				return
			}
			httputil.Fail(log, w, msgUnreadableFile, err, http.StatusBadRequest)
			return
		}
		log.Debug("resume extracted", "chars", len([]rune(text)))

		req := analysis.Request{
			Resume:         text,
			JobDescription: r.FormValue("jobDescription"),
		}
		respond(deps, w, r, req)
	}
}

// respond runs the analysis and writes either the result or the error body.
func respond(deps app.Deps, w http.ResponseWriter, r *http.Request, req analysis.Request) {
	result, err := deps.Analyzer.Analyze(r.Context(), req)
	if err != nil {
		failAnalysis(deps.Log, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// failAnalysis exposes validation and configuration messages verbatim and
// hides everything else behind a generic message.
func failAnalysis(log *slog.Logger, w http.ResponseWriter, err error) {
	status := httputil.StatusFor(err)
	message := msgAnalysisFailed

	var verr *analysis.ValidationError
	var cerr *analysis.ConfigurationError
	switch {
	case errors.As(err, &verr):
		message = verr.Message
	case errors.As(err, &cerr):
		message = cerr.Message
	}
	httputil.Fail(log, w, message, err, status)
}

func stringOrEmpty(v any) string {
	s, _ := v.(string)
	return s
}
