package config

import (
	"reflect"

	sserr "github.com/StricklySoft/stricklysoft-glfw/pkg/errors"
)

// Validator may be implemented by a config struct to check constraints
// that tags cannot express. It runs after required-field validation.
//
// Example:
//
//	func (c *HostConfig) Validate() error {
//	    switch c.Handler {
//	    case "log", "last":
//	        return nil
//	    }
//	    return sserr.Newf(sserr.CodeValidationFormat, "config: unknown handler %q", c.Handler)
//	}
type Validator interface {
	Validate() error
}

func validate(cfg any, rv reflect.Value) error {
	err := walk(rv, "", "", func(f field) error {
		if f.tag.Get("required") == "true" && f.value.IsZero() {
			return sserr.Newf(sserr.CodeValidationRequired,
				"config: required field %q is empty", f.path).
				WithDetail("field", f.path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	v, ok := cfg.(Validator)
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		if _, isSSErr := sserr.AsError(err); isSSErr {
			return err
		}
		return sserr.Wrap(err, sserr.CodeValidation, "config: custom validation failed")
	}
	return nil
}
