package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// MalformedPresetError means the persisted text could not be parsed as
// structured data at all. Distinct from NotFoundError: something is stored,
// it just cannot be read back.
type MalformedPresetError struct {
	Key string
	Err error
}

func (e MalformedPresetError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("stored preset %q is malformed", e.Key)
	}
	return "stored preset is malformed"
}

func (e MalformedPresetError) Unwrap() error { return e.Err }

// StoreWriteError means the underlying key-value store rejected a write.
type StoreWriteError struct {
	Key string
	Err error
}

func (e StoreWriteError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("failed to write preset %q", e.Key)
	}
	return "failed to write preset"
}

func (e StoreWriteError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsMalformedPreset(err error) bool {
	var target MalformedPresetError
	return errors.As(err, &target)
}

func IsStoreWrite(err error) bool {
	var target StoreWriteError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
