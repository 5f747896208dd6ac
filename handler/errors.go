package handler

import "github.com/pkg/errors"

// ErrClosed is returned by handlers used after Close
var ErrClosed = errors.New("handler: closed")
