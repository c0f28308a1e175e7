package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
)

// Errors maps a form field name to its user-facing message. An empty map
// means the draft is valid. Validators are pure: same draft in, same
// mapping out, and nothing here touches the network or the session.
type Errors map[string]string

const maxImageSize = 5 << 20

var (
	hhmmPattern     = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	taxRatePattern  = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	dishNamePattern = regexp.MustCompile(`^[A-Za-z ]+$`)
	letterPattern   = regexp.MustCompile(`[A-Za-z]`)
	posIntPattern   = regexp.MustCompile(`^\d+$`)
)

var v = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	must(v.RegisterValidation("hhmm", matches(hhmmPattern)))
	must(v.RegisterValidation("taxrate", matches(taxRatePattern)))
	must(v.RegisterValidation("rating", floatBetween(0, 5)))
	must(v.RegisterValidation("latitude", floatBetween(-90, 90)))
	must(v.RegisterValidation("longitude", floatBetween(-180, 180)))
	must(v.RegisterValidation("posint", positiveInt))
	must(v.RegisterValidation("dishname", dishName))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func floatBetween(lo, hi float64) validator.Func {
	return func(fl validator.FieldLevel) bool {
		f, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
		return err == nil && f >= lo && f <= hi
	}
}

func positiveInt(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if !posIntPattern.MatchString(raw) {
		return false
	}
	n, err := strconv.Atoi(raw)
	return err == nil && n > 0
}

// Letters and spaces only, with at least one letter. RE2 has no lookahead,
// so the two conditions are checked separately.
func dishName(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	return dishNamePattern.MatchString(raw) && letterPattern.MatchString(raw)
}

func collect(err error, messages map[string]map[string]string) Errors {
	errs := Errors{}
	if err == nil {
		return errs
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = err.Error()
		return errs
	}

	for _, fe := range verrs {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		if msg, ok := messages[fe.Field()][fe.Tag()]; ok {
			errs[fe.Field()] = msg
			continue
		}
		errs[fe.Field()] = fmt.Sprintf("%s is invalid.", fe.Field())
	}
	return errs
}

func imageMessage(image *models.ImageFile) string {
	if int64(len(image.Content)) > maxImageSize {
		return "Image size should not exceed 5MB."
	}
	mtype := mimetype.Detect(image.Content)
	if !mtype.Is("image/jpeg") && !mtype.Is("image/png") {
		return "File must be a JPEG or PNG image."
	}
	return ""
}
