// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

// Package validation wraps go-playground/validator for the config loader
// and the HTTP API.
//
// Errors name fields by their koanf or json tag, so a message reads
// "model.beta must be less than or equal to 1" rather than quoting the Go
// struct path. Nested fields are dotted below the top-level struct.
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    rw.ValidationError(verr.Error(), verr.Details())
//	    return
//	}
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance     *validator.Validate
	instanceOnce sync.Once
)

// FieldError describes one failed constraint.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Value   any
	Message string
}

// FieldErrors is returned by ValidateStruct. It is nil when the value is
// valid.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(fe))
	for i := range fe {
		msgs[i] = fe[i].Message
	}
	return strings.Join(msgs, "; ")
}

// Details returns the error payload for API responses: the single field
// inline, or a "fields" list when several constraints failed.
func (fe FieldErrors) Details() map[string]any {
	switch len(fe) {
	case 0:
		return nil
	case 1:
		return map[string]any{"field": fe[0].Field, "tag": fe[0].Tag, "value": fe[0].Value}
	}
	fields := make([]map[string]any, len(fe))
	for i, f := range fe {
		fields[i] = map[string]any{"field": f.Field, "tag": f.Tag, "message": f.Message}
	}
	return map[string]any{"fields": fields}
}

// Validator returns the shared validator, building it on first use.
func Validator() *validator.Validate {
	instanceOnce.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(tagName)
		// NaN slips through gte/lte.
		_ = instance.RegisterValidation("finite", isFinite)
	})
	return instance
}

func isFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return true
}

// tagName prefers the koanf tag, then the json tag, then the Go name.
func tagName(fld reflect.StructField) string {
	for _, key := range []string{"koanf", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		switch name {
		case "-":
			return ""
		case "":
			continue
		}
		return name
	}
	return fld.Name
}

// ValidateStruct checks s against its validate tags.
func ValidateStruct(s any) FieldErrors {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{{Field: "unknown", Tag: "unknown", Message: err.Error()}}
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, v := range verrs {
		field := fieldPath(v)
		out = append(out, FieldError{
			Field:   field,
			Tag:     v.Tag(),
			Param:   v.Param(),
			Value:   v.Value(),
			Message: describe(field, v),
		})
	}
	return out
}

// fieldPath strips the top-level struct name: Config.model.beta becomes
// model.beta.
func fieldPath(v validator.FieldError) string {
	if _, rest, ok := strings.Cut(v.Namespace(), "."); ok {
		return rest
	}
	return v.Field()
}

func describe(field string, v validator.FieldError) string {
	p := v.Param()
	switch v.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, p)
	case "finite":
		return field + " must be a finite number"
	case "file":
		return field + " must name an existing file"
	case "hostname", "ip":
		return fmt.Sprintf("%s must be a valid %s", field, v.Tag())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, p)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, p)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, p)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, p)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, p)
	case "min", "max":
		bound := "at least"
		if v.Tag() == "max" {
			bound = "at most"
		}
		if v.Kind() == reflect.String {
			return fmt.Sprintf("%s must be %s %s characters", field, bound, p)
		}
		return fmt.Sprintf("%s must be %s %s", field, bound, p)
	}
	return fmt.Sprintf("%s failed %s validation", field, v.Tag())
}
