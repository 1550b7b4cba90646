package server

import "errors"

var (
	errNoHandler = errors.New("no control API handler configured")
	errNoAddress = errors.New("no control API address configured")
)
