// util/validation_util.go

package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pcb_errors "github.com/pcbinspect/client/errors"
	"github.com/pcbinspect/client/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	v := validator.New(validator.WithRequiredStructEnabled())
	// messages use the json field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &ValidationUtil{validate: v}
}

// Struct validates s against its validate tags. The error wraps ErrValidation.
func (v *ValidationUtil) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", pcb_errors.ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", pcb_errors.ErrValidation, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func (v *ValidationUtil) ValidateCredentials(c model.Credentials) error {
	c.Email = strings.TrimSpace(c.Email)
	return v.Struct(c)
}

func (v *ValidationUtil) ValidateSignup(req model.SignupRequest) error {
	req.CorporateName = strings.TrimSpace(req.CorporateName)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	return v.Struct(req)
}

func (v *ValidationUtil) ValidateProfileUpdate(update model.ProfileUpdate) error {
	update.Name = strings.TrimSpace(update.Name)
	return v.Struct(update)
}

func (v *ValidationUtil) ValidateProject(req model.CreateProjectRequest) error {
	req.ModelName = strings.TrimSpace(req.ModelName)
	return v.Struct(req)
}

func (v *ValidationUtil) ValidateComment(req model.CommentCreate) error {
	req.Content = strings.TrimSpace(req.Content)
	return v.Struct(req)
}

func (v *ValidationUtil) ValidateRoleUpdate(req model.RoleUpdate) error {
	return v.Struct(req)
}

func (v *ValidationUtil) ValidateResultUpload(req model.ResultUpload) error {
	return v.Struct(req)
}
