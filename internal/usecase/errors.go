package usecase

import "errors"

var (
	ErrStoreNotReady        = errors.New("data store not initialized")
	ErrEstimateWithoutItems = errors.New("estimate needs at least one line item")
	ErrInvalidLineItem      = errors.New("invalid line item")
	ErrEmptyPhotoBatch      = errors.New("photo batch is empty")
)
