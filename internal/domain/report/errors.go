package report

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported report format")
	ErrUnknownDataset    = errors.New("unknown report dataset")
	ErrInvalidDateRange  = errors.New("end date must not be before start date")
)
