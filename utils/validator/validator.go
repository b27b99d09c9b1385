package validatorx

import (
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Init initializes the validator singleton (idempotent, safe for
// concurrent callers). Field names in validation errors follow the json
// tag so the API reports the names clients actually sent.
func Init() {
	once.Do(func() {
		v = gpvalidator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}
