package teacher

import (
	"regexp"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/vruksha/portal/core"
)

var (
	orgCodeTag   = "orgcode"
	orgCodeText  = "invalid organization code"
	orgCodeRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{2,19}$`)
)

// InitValidators registers account-domain validators and their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(orgCodeTag, orgCodeValidation)
	core.RegisterCustomTranslation(validate, translator, orgCodeTag, orgCodeText)
}

// orgCodeValidation allows alphanumeric organization codes with inner dashes.
func orgCodeValidation(fl validator.FieldLevel) bool {
	return orgCodeRegex.MatchString(fl.Field().String())
}
