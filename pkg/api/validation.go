/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/carverauto/cpeconfig/pkg/catalog"
	"github.com/carverauto/cpeconfig/pkg/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	v.RegisterStructValidation(wifiRequestValidation, models.WiFiRequest{})
	v.RegisterStructValidation(refreshRequestValidation, models.RefreshRequest{})

	return v
}

// wifiRequestValidation requires a password for every secured mode.
func wifiRequestValidation(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(models.WiFiRequest)
	if !ok {
		return
	}

	if catalog.SecurityMode(req.SecurityMode).IsOpen() {
		return
	}

	if req.Password == "" {
		sl.ReportError(req.Password, "password", "Password", "required_unless_open", "")
	}
}

// refreshRequestValidation requires at least one name or an object.
func refreshRequestValidation(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(models.RefreshRequest)
	if !ok {
		return
	}

	if len(req.Names) == 0 && req.Object == "" {
		sl.ReportError(req.Names, "names", "Names", "required_without_object", "")
	}
}

func validateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError flattens the first validator error into a short
// "field: reason" message.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("%w: %w", errValidation, err)
	}

	e := validationErrs[0]
	field := e.Namespace()

	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	var msg string

	switch e.Tag() {
	case "required", "required_unless_open", "required_without_object":
		msg = "field is required"
	case "excluded_with":
		msg = "cannot be combined with " + strings.ToLower(e.Param())
	case "min":
		msg = "must be at least " + e.Param()
	case "max":
		msg = "must not exceed " + e.Param()
	case "oneof":
		msg = "must be one of " + strings.ReplaceAll(e.Param(), " ", ", ")
	default:
		msg = fmt.Sprintf("validation failed (%s)", e.Tag())
	}

	return fmt.Errorf("%w: %s: %s", errValidation, field, msg)
}
