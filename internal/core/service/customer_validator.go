package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/clientescrm/api-clientes/internal/core/domain"
	"github.com/clientescrm/api-clientes/internal/core/ports"
)

var (
	// Letters (including Spanish accented ones) and spaces only.
	nombreRegexp = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s]+$`)

	// Separators stripped from phone numbers before the digit check.
	telefonoSeparators = regexp.MustCompile(`[\s\-()]`)

	// Optional leading +, then 7 to 15 digits.
	telefonoRegexp = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// customerRules expresses the validation contract as validator/v10 tags over
// already-normalized values. Optional fields are empty strings when absent.
type customerRules struct {
	Nombre    string `validate:"required,min=2,max=50,nombre_persona"`
	Apellido  string `validate:"required,min=2,max=50,nombre_persona"`
	Email     string `validate:"required,email"`
	Telefono  string `validate:"omitempty,telefono"`
	Direccion string `validate:"omitempty,max=200"`
}

// CustomerValidator normalizes and validates customer payloads. Create and
// update share the exact same rule set; an update replaces all fields.
type CustomerValidator struct {
	v *validator.Validate
}

func NewCustomerValidator() *CustomerValidator {
	v := validator.New()

	// Tag registration only fails for empty tag names; safe to discard.
	_ = v.RegisterValidation("nombre_persona", func(fl validator.FieldLevel) bool {
		return nombreRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("telefono", func(fl validator.FieldLevel) bool {
		stripped := telefonoSeparators.ReplaceAllString(fl.Field().String(), "")
		return telefonoRegexp.MatchString(stripped)
	})

	return &CustomerValidator{v: v}
}

// Validate normalizes the input and checks every field, returning the
// normalized fields on success or a *domain.ValidationError listing every
// offending field. The phone is validated against its stripped digits but
// persisted in its original trimmed form.
func (cv *CustomerValidator) Validate(input ports.CustomerInput) (*domain.CustomerFields, error) {
	rules := customerRules{
		Nombre:    titleCase(strings.TrimSpace(input.Nombre)),
		Apellido:  titleCase(strings.TrimSpace(input.Apellido)),
		Email:     strings.TrimSpace(input.Email),
		Telefono:  strings.TrimSpace(input.Telefono),
		Direccion: strings.TrimSpace(input.Direccion),
	}

	if err := cv.v.Struct(rules); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return nil, err
		}
		fields := make([]domain.FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, fieldError(fe))
		}
		return nil, &domain.ValidationError{Fields: fields}
	}

	return &domain.CustomerFields{
		Nombre:    rules.Nombre,
		Apellido:  rules.Apellido,
		Email:     rules.Email,
		Telefono:  optional(rules.Telefono),
		Direccion: optional(rules.Direccion),
	}, nil
}

// fieldError converts a single validator failure into the message contract
// the API exposes.
func fieldError(fe validator.FieldError) domain.FieldError {
	campo := strings.ToLower(fe.StructField())

	var mensaje string
	switch fe.Tag() {
	case "required":
		mensaje = "El campo no puede estar vacío"
	case "min":
		mensaje = "Debe tener al menos " + fe.Param() + " caracteres"
	case "max":
		if campo == "direccion" {
			mensaje = "La dirección no puede exceder " + fe.Param() + " caracteres"
		} else {
			mensaje = "No puede exceder " + fe.Param() + " caracteres"
		}
	case "nombre_persona":
		mensaje = "Solo se permiten letras y espacios"
	case "telefono":
		mensaje = "Formato de teléfono inválido. Debe contener entre 7 y 15 dígitos"
	case "email":
		mensaje = "Formato de email inválido"
	default:
		mensaje = "Valor inválido"
	}

	return domain.FieldError{Campo: campo, Mensaje: mensaje}
}

// titleCase capitalizes the first letter of each word and lowercases the
// rest, Spanish-aware ("JUAN carlos" becomes "Juan Carlos").
func titleCase(s string) string {
	return cases.Title(language.Spanish).String(s)
}

// optional maps a blank value to absent.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
