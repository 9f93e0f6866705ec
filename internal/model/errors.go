package model

import "errors"

// Configuration validation errors. These are fatal at load time: a weight
// table or threshold set that violates its invariant aborts startup rather
// than being silently corrected. Sentinel errors allow errors.Is checks in
// callers while keeping the messages human-readable.
var (
	// ErrNegativeWeight is returned when any signal weight is below zero.
	ErrNegativeWeight = errors.New("invalid weight table: weights must be non-negative")

	// ErrWeightSum is returned when the weights do not sum to 1.0 over the
	// full signal set.
	ErrWeightSum = errors.New("invalid weight table: weights must sum to 1.0")

	// ErrUnknownSignal is returned when the weight table names a signal that
	// is not part of the defined set.
	ErrUnknownSignal = errors.New("invalid weight table: unknown signal name")

	// ErrThresholdOrder is returned when the credibility thresholds are not
	// strictly ordered high > medium > low.
	ErrThresholdOrder = errors.New("invalid thresholds: must satisfy high > medium > low")

	// ErrThresholdRange is returned when any threshold falls outside [0,1].
	ErrThresholdRange = errors.New("invalid thresholds: must be within [0,1]")
)

// ErrNoInput is returned when an analysis is requested without any article
// content. It marks a caller mistake rather than a pipeline failure, so the
// web API can answer 400 instead of 502.
var ErrNoInput = errors.New("nothing to analyze")
