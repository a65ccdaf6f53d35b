package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnsafeFilename = errors.New("filename does not match the generated-document pattern")
)
