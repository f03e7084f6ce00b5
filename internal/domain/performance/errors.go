package performance

import "errors"

var (
	ErrMetricNotFound   = errors.New("performance metric not found")
	ErrEmployeeNotFound = errors.New("referenced employee does not exist")
)
