package aggregator

import "errors"

var ErrInvalidPolicy = errors.New("invalid aggregation policy")
