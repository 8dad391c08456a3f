package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

var (
	emailRegex      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex      = regexp.MustCompile(`^[+]?[1-9][0-9]{0,15}$`)
	phoneStripRegex = regexp.MustCompile(`[\s\-\(\)]`)
)

const (
	dateLayout     = "2006-01-02"
	maxAgeYears    = 150
	StrengthWeak   = "weak"
	StrengthMedium = "medium"
	StrengthStrong = "strong"
)

type CustomValidator struct {
	validator *validator.Validate
	now       func() time.Time
}

// FormResult is the outcome of validating a whole form.
type FormResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func NewValidator() *CustomValidator {
	cv := &CustomValidator{
		validator: validator.New(),
		now:       time.Now,
	}

	// Report fields by their JSON names so messages line up with the forms.
	cv.validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	cv.validator.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	cv.validator.RegisterValidation("email_simple", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	cv.validator.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	cv.validator.RegisterValidation("dob", func(fl validator.FieldLevel) bool {
		return cv.isValidDateOfBirth(fl.Field().String())
	})
	cv.validator.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil
	})
	cv.validator.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return PasswordStrength(fl.Field().String()) != StrengthWeak
	})

	return cv
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Messages lists every failing rule, one per field, in form field order.
func (cv *CustomValidator) Messages(err error) []string {
	var out []string
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			out = append(out, message(e))
		}
	}
	return out
}

// ValidateForm decodes raw form values into dst (a pointer to a struct with
// json and validate tags) and reports all violations at once.
func (cv *CustomValidator) ValidateForm(fields map[string]string, dst interface{}) (FormResult, error) {
	if err := decodeForm(fields, dst); err != nil {
		return FormResult{}, err
	}

	result := FormResult{Valid: true, Errors: []string{}}
	if err := cv.validator.Struct(dst); err != nil {
		if _, ok := err.(validator.ValidationErrors); !ok {
			return FormResult{}, err
		}
		result.Valid = false
		result.Errors = cv.Messages(err)
	}
	return result, nil
}

// ValidateField runs the rules of a single field, the way a form checks an
// input when it loses focus. An empty string means the field is valid.
func (cv *CustomValidator) ValidateField(fields map[string]string, dst interface{}, field string) (string, error) {
	if err := decodeForm(fields, dst); err != nil {
		return "", err
	}

	structField, ok := structFieldByJSONName(dst, field)
	if !ok {
		return "", nil
	}

	err := cv.validator.StructPartial(dst, structField)
	if err == nil {
		return "", nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "", err
	}
	for _, e := range validationErrors {
		if e.Field() == field {
			return fieldMessage(e), nil
		}
	}
	return "", nil
}

func decodeForm(fields map[string]string, dst interface{}) error {
	input := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if !isSecretField(k) {
			v = strings.TrimSpace(v)
		}
		input[k] = v
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       checkboxHook,
		Result:           dst,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// checkboxHook reads the values a browser submits for a checkbox. A ticked
// box arrives as "on"; anything unrecognized counts as unticked.
var checkboxHook mapstructure.DecodeHookFuncType = func(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	switch strings.ToLower(strings.TrimSpace(data.(string))) {
	case "on", "yes", "true", "1", "checked":
		return true, nil
	}
	return false, nil
}

func isSecretField(name string) bool {
	return strings.Contains(strings.ToLower(name), "password")
}

func structFieldByJSONName(dst interface{}, name string) (string, bool) {
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return "", false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if strings.SplitN(f.Tag.Get("json"), ",", 2)[0] == name {
			return f.Name, true
		}
	}
	return "", false
}

func (cv *CustomValidator) isValidDateOfBirth(value string) bool {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}
	now := cv.now()
	if date.After(now) {
		return false
	}
	return !date.Before(now.AddDate(-maxAgeYears, 0, 0))
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhone accepts an optional leading +, then up to 16 digits not
// starting with 0. Spaces, dashes and parentheses are ignored.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phoneStripRegex.ReplaceAllString(phone, ""))
}

// PasswordStrength scores a password one point each for length >= 8,
// length >= 12, lowercase, uppercase, digit and symbol.
func PasswordStrength(password string) string {
	score := 0
	length := utf8.RuneCountInString(password)
	if length >= 8 {
		score++
	}
	if length >= 12 {
		score++
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	for _, ok := range []bool{lower, upper, digit, symbol} {
		if ok {
			score++
		}
	}

	switch {
	case score <= 2:
		return StrengthWeak
	case score <= 4:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
