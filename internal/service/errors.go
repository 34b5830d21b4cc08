package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidBaseURL        = errors.New("invalid gateway base url")
	ErrHashingPassword       = errors.New("error hashing password")
)
