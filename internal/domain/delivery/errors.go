package delivery

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyEvent       = errors.New("delivery: webhook event is empty")
	ErrMalformedEvent   = errors.New("delivery: webhook event is malformed")
	ErrOrderNotFound    = errors.New("delivery: order could not be matched")
	ErrStoreNotFound    = errors.New("delivery: store could not be matched")
	ErrMissingField     = errors.New("delivery: required field is missing")
	ErrSettingsNotFound = errors.New("delivery: partner settings not found")
	ErrInvalidSettings  = errors.New("delivery: partner settings are invalid")
	ErrTaskNotFound     = errors.New("delivery: partner task not found")
	ErrPartnerRequest   = errors.New("delivery: partner request failed")
)

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}
