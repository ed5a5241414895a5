// Package bind provides form decoding and validation helpers for handlers
package bind

import (
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "batakh/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Init initializes the singleton validator with english translations and form tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer form tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("form")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc {
	if vSvc == nil {
		return Init()
	}
	return vSvc
}

// Form parses an urlencoded or multipart form into dst (a struct pointer with
// `form` tags on string fields) and validates it. Unknown form keys are ignored
// for forward compatibility with Duckling clients.
func Form(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeValidation, "malformed form body")
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return perr.Internalf("bind.Form requires a struct pointer, got %T", dst)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		fld := rt.Field(i)
		tag := fld.Tag.Get("form")
		if tag == "" || tag == "-" {
			continue
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if !r.Form.Has(tag) {
			continue
		}
		fv := rv.Field(i)
		if fv.Kind() == reflect.String && fv.CanSet() {
			fv.SetString(r.Form.Get(tag))
		}
	}

	return Validate(dst)
}

// Validate runs struct validation and maps the first failure into a
// validation-coded project error with a translated message
func Validate(dst any) error {
	svc := Get()
	if err := svc.Validator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); ok && len(verrs) > 0 {
			fe := verrs[0]
			return perr.WithField(
				perr.Validationf("%s", fe.Translate(svc.Translator)),
				fe.Field(),
			)
		}
		return perr.Wrap(err, perr.ErrorCodeValidation, "validation failed")
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	if v, ok := err.(validator.ValidationErrors); ok {
		*target = v
		return true
	}
	return false
}
