package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pribylovaa/go-traffic-news/internal/client"
	"github.com/pribylovaa/go-traffic-news/internal/models"
	"github.com/pribylovaa/go-traffic-news/internal/service"
)

// Коды завершения процесса.
const (
	ExitSuccess    = 0
	ExitGeneral    = 1
	ExitUsageError = 2
	ExitUpstream   = 3
	ExitConfig     = 4
	ExitMapping    = 5
	ExitTimeout    = 6
)

// CLIError — ошибка с контекстом для пользователя и кодом завершения.
type CLIError struct {
	Summary    string
	Detail     string
	Suggestion string
	ExitCode   int
	Err        error
}

func (e *CLIError) Error() string {
	if e.Detail == "" {
		return e.Summary
	}
	return e.Summary + ": " + e.Detail
}

func (e *CLIError) Unwrap() error { return e.Err }

func usageError(err error, suggestion string) *CLIError {
	return &CLIError{
		Summary:    "invalid usage",
		Detail:     err.Error(),
		Suggestion: suggestion,
		ExitCode:   ExitUsageError,
		Err:        err,
	}
}

func configError(err error) *CLIError {
	return &CLIError{
		Summary:    "cannot load configuration",
		Detail:     err.Error(),
		Suggestion: "check --config, CONFIG_PATH and ADAC_* variables",
		ExitCode:   ExitConfig,
		Err:        err,
	}
}

// classify приводит ошибку прогона к CLIError.
// Уже классифицированные ошибки возвращаются как есть.
func classify(err error) *CLIError {
	var ce *CLIError
	if errors.As(err, &ce) {
		return ce
	}

	out := &CLIError{Summary: "request failed", Detail: err.Error(), ExitCode: ExitGeneral, Err: err}

	var he *client.HTTPError
	switch {
	case errors.Is(err, models.ErrUnknownState):
		out.Summary = "unknown federal state"
		out.Suggestion = "run 'traffic-news states' for the list of codes"
		out.ExitCode = ExitUsageError
	case errors.As(err, &he):
		out.Summary = fmt.Sprintf("upstream returned HTTP %d", he.StatusCode)
		out.ExitCode = ExitUpstream
	case errors.Is(err, client.ErrMapping):
		out.Summary = "unexpected upstream response"
		out.ExitCode = ExitMapping
	case errors.Is(err, service.ErrMaxPages), errors.Is(err, service.ErrStalled):
		out.Summary = "upstream result set incomplete"
		out.Suggestion = "raise --max-pages or narrow the filter"
		out.ExitCode = ExitMapping
	case errors.Is(err, context.DeadlineExceeded):
		out.Summary = "request timed out"
		out.Suggestion = "raise --timeout"
		out.ExitCode = ExitTimeout
	case errors.Is(err, context.Canceled):
		out.Summary = "interrupted"
	}

	return out
}

// ExitCode возвращает код завершения для ошибки Execute.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return classify(err).ExitCode
}

// FormatError печатает ошибку в w.
func FormatError(w io.Writer, err error, useColors bool) {
	e := classify(err)

	red := color.New(color.FgRed, color.Bold)
	cyan := color.New(color.FgCyan)
	if useColors {
		red.EnableColor()
		cyan.EnableColor()
	} else {
		red.DisableColor()
		cyan.DisableColor()
	}

	_, _ = red.Fprintf(w, "Error: %s\n", e.Summary)
	if e.Detail != "" {
		_, _ = fmt.Fprintf(w, "  Cause: %s\n", e.Detail)
	}
	if e.Suggestion != "" {
		_, _ = cyan.Fprintf(w, "  Suggestion: %s\n", e.Suggestion)
	}
}
