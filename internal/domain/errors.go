package domain

import "errors"

// Draft input validation errors
var (
	ErrUnknownPhase = errors.New("unknown draft phase")
	ErrInvalidRole  = errors.New("invalid role")
)

// Catalog errors
var (
	ErrChampionNotFound = errors.New("champion not found")
)
