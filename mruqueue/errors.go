package mruqueue

import "errors"

var (
	ErrInvalidCapacity = errors.New("mruqueue: upper limit must be at least 1")
	ErrInvalidIndex    = errors.New("mruqueue: index outside the queue")
)
