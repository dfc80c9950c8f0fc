package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("resource not found")
	ErrDataShape           = errors.New("unexpected upstream data shape")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
