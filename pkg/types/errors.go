package types

import "errors"

// Selection errors returned when a requested dataset or product cannot be
// resolved against the loaded catalog.
var (
	ErrDatasetNotFound   = errors.New("dataset not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrNotEnoughDatasets = errors.New("two datasets are required")
)
