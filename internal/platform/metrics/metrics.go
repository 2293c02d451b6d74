// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes the Prometheus counters of the write path.

  - series_commands_total{command, outcome}: one increment per executed command.
  - series_best_effort_failures_total{step}: failures swallowed by best-effort steps.

Collectors register on the default registry at package initialisation and are
served by [Handler].
*/
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/taibuivan/serieshub/internal/platform/apperr"
)

// # Label Values

// Command labels.
const (
	CommandCreate         = "create"
	CommandCreateComplete = "create_complete"
	CommandUpdate         = "update"
	CommandDelete         = "delete"
	CommandAssignGenres   = "assign_genres"
	CommandRemoveGenres   = "remove_genres"
	CommandAddTitles      = "add_titles"
	CommandRemoveTitles   = "remove_titles"
	CommandUpdateImage    = "update_image"
)

// Outcome labels.
const (
	OutcomeSuccess     = "success"
	OutcomeValidation  = "validation"
	OutcomeNotFound    = "not_found"
	OutcomeStorage     = "storage"
	OutcomeConsistency = "consistency"
	OutcomeError       = "error"
)

// Best-effort step labels.
const (
	StepImageProcess = "image_process"
	StepImageAttach  = "image_attach"
	StepImageDelete  = "image_delete"
	StepCacheRead    = "cache_read"
	StepCacheWrite   = "cache_write"
)

// # Collectors

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "series_commands_total",
			Help: "Series write commands executed, by command and outcome.",
		},
		[]string{"command", "outcome"},
	)

	bestEffortFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "series_best_effort_failures_total",
			Help: "Failures swallowed by best-effort steps, by step.",
		},
		[]string{"step"},
	)
)

// ObserveCommand records one command execution, classifying err by its
// application error code.
func ObserveCommand(command string, err error) {
	commandsTotal.WithLabelValues(command, Outcome(err)).Inc()
}

// ObserveNotFound records a command that ended in a non-fatal not-found result.
func ObserveNotFound(command string) {
	commandsTotal.WithLabelValues(command, OutcomeNotFound).Inc()
}

// BestEffortFailure records a swallowed failure of the given step.
func BestEffortFailure(step string) {
	bestEffortFailures.WithLabelValues(step).Inc()
}

// Outcome maps an error onto its outcome label.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}

	appErr := apperr.As(err)
	if appErr == nil {
		return OutcomeError
	}

	switch appErr.Code {
	case apperr.CodeValidation:
		return OutcomeValidation
	case apperr.CodeNotFound:
		return OutcomeNotFound
	case apperr.CodeStorage:
		return OutcomeStorage
	case apperr.CodeConsistency:
		return OutcomeConsistency
	}
	return OutcomeError
}

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
