package entities

import "errors"

var (
	ErrInvalidClientName     = errors.New("invalid client name")
	ErrInvalidEstimateTitle  = errors.New("invalid estimate title")
	ErrInvalidEstimateStatus = errors.New("invalid estimate status")
	ErrInvalidPhotoURI       = errors.New("invalid photo uri")
	ErrInvalidPhotoType      = errors.New("invalid photo type")

	// ErrPersistFailed marks an add whose in-memory mutation succeeded but
	// whose collection write did not. The entity stays visible in reads.
	ErrPersistFailed = errors.New("persist failed")
)
