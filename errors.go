// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Filipe Johansson

package cloudsocket

import (
	"errors"
	"fmt"
)

var (
	// Room configuration errors
	ErrInvalidRoomConfig = errors.New("invalid room config")

	// Membership errors
	ErrClientNil       = errors.New("client is nil")
	ErrDuplicateClient = errors.New("client is already in the room")
	ErrClientNotFound  = errors.New("client not found")

	// Variable errors
	ErrInvalidName      = errors.New("invalid variable name")
	ErrInvalidValue     = errors.New("invalid variable value")
	ErrVariableExists   = errors.New("variable already exists")
	ErrVariableNotFound = errors.New("variable not found")
	ErrCapacityExceeded = errors.New("too many variables")

	// Client errors
	ErrClientConnNil = errors.New("client connection is nil")
	ErrNoDataToSend  = errors.New("message has no data to send")
)

func newInvalidRoomConfigError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRoomConfig, reason)
}

func newDuplicateClientError(id string) error {
	return fmt.Errorf("%w: %s", ErrDuplicateClient, id)
}

func newClientNotFoundError(id string) error {
	return fmt.Errorf("%w: %s", ErrClientNotFound, id)
}

func newInvalidNameError(name string) error {
	return fmt.Errorf("%w: %q", ErrInvalidName, name)
}

func newInvalidValueError(name string, value any) error {
	if _, ok := value.(string); ok {
		return fmt.Errorf("%w: %q: value too long", ErrInvalidValue, name)
	}
	return fmt.Errorf("%w: %q: expected string, got %T", ErrInvalidValue, name, value)
}

func newVariableExistsError(name string) error {
	return fmt.Errorf("%w: %q", ErrVariableExists, name)
}

func newVariableNotFoundError(name string) error {
	return fmt.Errorf("%w: %q", ErrVariableNotFound, name)
}

func newCapacityExceededError(max int) error {
	return fmt.Errorf("%w: limit is %d", ErrCapacityExceeded, max)
}

func newSendMessageError(id string, err error) error {
	return fmt.Errorf("failed to send message to %s: %w", id, err)
}
