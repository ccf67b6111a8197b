// Package bind provides JSON bind and validation helpers for handlers
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	perr "legallens/internal/platform/errors"
	"legallens/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"golang.org/x/text/language"
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

// Get returns the validator singleton with english messages and json tag names
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		// max/min on strings count runes, the messages say characters
		short(v, trans, "min", "{0} must be at least {1} characters")
		short(v, trans, "max", "{0} must be at most {1} characters")

		_ = v.RegisterValidation("langtag", isLangTag)
		short(v, trans, "langtag", "{0} must be a language code such as en or hi")
		_ = v.RegisterValidation("notblank", isNotBlank)
		short(v, trans, "notblank", "{0} must not be blank")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// isLangTag accepts anything x/text can parse as a BCP 47 tag, plus "unknown"
func isLangTag(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" || strings.EqualFold(s, "unknown") {
		return true
	}
	_, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	return err == nil
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes       int64 // default 64KiB
	AllowUnknown   bool
	AllowEmptyBody bool
}

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors
// decode problems are ErrorCodeJSON, rule violations ErrorCodeValidation with the field set
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := JSONOptions{MaxBytes: 64 << 10}
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	var body io.Reader = r.Body
	if o.MaxBytes > 0 {
		// one extra byte tells an oversized body from one that fits exactly
		body = io.LimitReader(r.Body, o.MaxBytes+1)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return zero, perr.JSONErrf("read body: %v", err)
	}
	if o.MaxBytes > 0 && int64(len(raw)) > o.MaxBytes {
		return zero, perr.JSONErrf("body exceeds %d bytes", o.MaxBytes)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		if o.AllowEmptyBody {
			return zero, nil
		}
		return zero, perr.JSONErrf("empty body")
	}
	if !utf8.Valid(raw) {
		return zero, perr.JSONErrf("body is not valid utf-8")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if !o.AllowUnknown {
		dec.DisallowUnknownFields()
	}
	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct validation and returns the first violation as a coded error
func Validate(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

// ValidationFieldAndMessage returns the first field and translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field(), fe.Translate(Get().Translator)
	}
	if err == nil {
		return "", ""
	}
	return "", err.Error()
}

func short(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
