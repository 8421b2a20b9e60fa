package funnel

import "errors"

var (
	ErrInvalidGrouping = errors.New("invalid grouping")
	ErrInvalidPeriod   = errors.New("invalid period")
	ErrInvalidMetric   = errors.New("invalid funnel metric")
	ErrFetchMetrics    = errors.New("error fetching funnel metrics")
	ErrFetchSales      = errors.New("error fetching sales")
)
