package lesson

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/vruksha/portal/core"
)

var (
	contentTypeTag  = "contenttype"
	contentTypeText = "unsupported content type"
)

// InitValidators registers lesson-domain validators and their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(contentTypeTag, contentTypeValidation)
	core.RegisterCustomTranslation(validate, translator, contentTypeTag, contentTypeText)
}

// contentTypeValidation checks that the tag is one of ContentTypes.
func contentTypeValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, ct := range ContentTypes {
		if val == ct {
			return true
		}
	}
	return false
}
