// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"github.com/zeebo/errs"

	"github.com/avdva/posit/codec"
	"github.com/avdva/posit/fixed"
)

// Error classes returned by the package. Use Has to check an error, like
//
//	if posit.UnrepresentableInput.Has(err) { ... }
var (
	// InvalidField is returned for bad bit patterns and unsupported environments.
	InvalidField = &codec.InvalidField
	// UnsupportedConversion is returned when cinf is converted to a number
	// or a value does not fit the target type.
	UnsupportedConversion = &fixed.UnsupportedConversion
	// UnrepresentableInput is returned for inputs that are not dyadic fractions.
	UnrepresentableInput = &fixed.UnrepresentableInput
	// ParseError is returned for malformed strings.
	ParseError = errs.Class("parse error")
)
