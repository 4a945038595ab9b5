package model

import "errors"

// Query understanding failure conditions. These are expected outcomes of
// ordinary user input, not system faults: callers surface the message and
// may re-prompt.
var (
	// ErrNoEntities means extraction produced zero entities for a non-empty query
	ErrNoEntities = errors.New("no entities found in query")

	// ErrInvalidQuery means the query lacks a sport entity or a temporal reference
	ErrInvalidQuery = errors.New("query must contain a sport-related entity and a temporal reference")

	// ErrUnknownSport means routing could not determine a sport domain
	ErrUnknownSport = errors.New("unable to determine sport from query")
)

// Data stage failure conditions
var (
	// ErrNoDataSource means the routed sport has no upstream data pipeline
	ErrNoDataSource = errors.New("no data source configured for sport")

	// ErrStatUnavailable means the requested stat has no column in the dataset
	ErrStatUnavailable = errors.New("stat not available in dataset")
)
