package models

import (
	"errors"
	"fmt"
)

var (
	ErrManifestNotFound      = errors.New("manifest not found")
	ErrMalformedManifest     = errors.New("malformed manifest")
	ErrStampNotRegistered    = errors.New("stamp not registered in the workspace")
	ErrMissingServiceVersion = errors.New("service version missing")
	ErrRemoteOperationFailed = errors.New("remote operation failed")
	ErrGeneratorFailed       = errors.New("generator failed")
	ErrInvalidName           = errors.New("invalid name")
)

// MalformedManifestError names the manifest field that is missing or invalid.
type MalformedManifestError struct {
	Path  string
	Field string
}

func (e *MalformedManifestError) Error() string {
	return fmt.Sprintf("wrong manifest format in %s: field \"%s\" not found", e.Path, e.Field)
}

func (e *MalformedManifestError) Unwrap() error {
	return ErrMalformedManifest
}
