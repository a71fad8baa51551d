package exchange

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// validateProperties rejects a missing properties object and reports the
// first failing field as an invalid parameter.
func validateProperties[T any](name string, props *T) error {
	if props == nil {
		return errs.NullParameter(name)
	}
	err := getValidator().Struct(props)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return errs.InvalidParameter(name, err.Error())
	}
	fieldErr := validationErrors[0]
	if fieldErr.Tag() == "required" {
		return errs.NullParameter(fieldErr.Field())
	}
	return errs.InvalidParameter(fieldErr.Field(), "failed "+fieldErr.Tag()+" "+fieldErr.Param())
}

var zeroTime time.Time

func validateEffectivity(from, to *time.Time) error {
	if from != nil && to != nil && !to.After(*from) {
		return errs.InvalidParameter("effectiveTo", "must be after effectiveFrom")
	}
	return nil
}

func validateGUID(guid, name string) error {
	if guid == "" {
		return errs.NullParameter(name)
	}
	return nil
}

func validateName(value, name string) error {
	if value == "" {
		return errs.NullParameter(name)
	}
	return nil
}

func validatePage(opts QueryOptions) error {
	if opts.StartFrom < 0 {
		return errs.InvalidParameter("startFrom", "must not be negative")
	}
	if opts.PageSize < 0 {
		return errs.InvalidParameter("pageSize", "must not be negative")
	}
	return nil
}
