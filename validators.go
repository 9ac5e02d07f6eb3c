// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Filipe Johansson

package cloudsocket

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const MaxUsernameLength = 29

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	usernameTag     = fmt.Sprintf("required,max=%d,username", MaxUsernameLength)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// IsValidUsername reports whether x is a string of 1 to 29 ASCII letters,
// digits, underscores or hyphens.
func IsValidUsername(x any) bool {
	s, ok := x.(string)
	if !ok {
		return false
	}
	return validate.Var(s, usernameTag) == nil
}

// IsValidRoomID reports whether x is a non-empty string of decimal digits.
func IsValidRoomID(x any) bool {
	s, ok := x.(string)
	if !ok {
		return false
	}
	return validate.Var(s, "required,number") == nil
}

// IsValidVariableMap reports whether x is a non-nil map or struct. The
// entries are not inspected; Room checks each variable on its own.
func IsValidVariableMap(x any) bool {
	v := reflect.ValueOf(x)
	if !v.IsValid() {
		return false
	}

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		return !v.IsNil()
	case reflect.Struct:
		return true
	default:
		return false
	}
}
