package core

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidName         = errors.New("name must match [A-Za-z0-9]+")
	ErrUnknownServer       = errors.New("jenkins server does not exist")
	ErrInvalidNotification = errors.New("invalid build notification")
)
