package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/clientescrm/api-clientes/internal/core/domain"
	"github.com/clientescrm/api-clientes/internal/core/ports"
)

func validInput() ports.CustomerInput {
	return ports.CustomerInput{
		Nombre:   "ana",
		Apellido: "garcía",
		Email:    "ana@example.com",
	}
}

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
	out := make(map[string]string, len(ve.Fields))
	for _, f := range ve.Fields {
		out[f.Campo] = f.Mensaje
	}
	return out
}

func TestCustomerValidator_NormalizesNames(t *testing.T) {
	cv := NewCustomerValidator()

	input := validInput()
	input.Nombre = "  ana  "
	input.Apellido = "JUAN carlos"

	fields, err := cv.Validate(input)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if fields.Nombre != "Ana" {
		t.Fatalf("expected nombre Ana, got %q", fields.Nombre)
	}
	if fields.Apellido != "Juan Carlos" {
		t.Fatalf("expected apellido Juan Carlos, got %q", fields.Apellido)
	}
}

func TestCustomerValidator_AcceptsSpanishLetters(t *testing.T) {
	cv := NewCustomerValidator()

	input := validInput()
	input.Nombre = "josé maría"
	input.Apellido = "muñoz"

	fields, err := cv.Validate(input)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if fields.Nombre != "José María" {
		t.Fatalf("expected José María, got %q", fields.Nombre)
	}
	if fields.Apellido != "Muñoz" {
		t.Fatalf("expected Muñoz, got %q", fields.Apellido)
	}
}

func TestCustomerValidator_NameRules(t *testing.T) {
	cv := NewCustomerValidator()

	cases := []struct {
		name    string
		nombre  string
		mensaje string
	}{
		{"empty", "", "El campo no puede estar vacío"},
		{"whitespace only", "   ", "El campo no puede estar vacío"},
		{"too short", "A", "Debe tener al menos 2 caracteres"},
		{"too long", strings.Repeat("a", 51), "No puede exceder 50 caracteres"},
		{"digits", "Ana123", "Solo se permiten letras y espacios"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			input.Nombre = tc.nombre

			_, err := cv.Validate(input)
			msgs := fieldMessages(t, err)
			if got := msgs["nombre"]; got != tc.mensaje {
				t.Fatalf("expected %q, got %q", tc.mensaje, got)
			}
		})
	}
}

func TestCustomerValidator_Telefono(t *testing.T) {
	cv := NewCustomerValidator()

	// Accepted with separators; original trimmed form is what persists.
	input := validInput()
	input.Telefono = " +1 (555) 123-4567 "

	fields, err := cv.Validate(input)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if fields.Telefono == nil || *fields.Telefono != "+1 (555) 123-4567" {
		t.Fatalf("expected original trimmed phone preserved, got %v", fields.Telefono)
	}

	// Blank means absent.
	input.Telefono = "   "
	fields, err = cv.Validate(input)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if fields.Telefono != nil {
		t.Fatalf("expected blank phone to be absent, got %q", *fields.Telefono)
	}

	// Non-digits rejected.
	input.Telefono = "abc"
	_, err = cv.Validate(input)
	msgs := fieldMessages(t, err)
	if msgs["telefono"] != "Formato de teléfono inválido. Debe contener entre 7 y 15 dígitos" {
		t.Fatalf("unexpected message: %q", msgs["telefono"])
	}

	// Too few digits rejected.
	input.Telefono = "123456"
	if _, err := cv.Validate(input); err == nil {
		t.Fatalf("expected 6-digit phone to be rejected")
	}

	// Too many digits rejected.
	input.Telefono = "1234567890123456"
	if _, err := cv.Validate(input); err == nil {
		t.Fatalf("expected 16-digit phone to be rejected")
	}
}

func TestCustomerValidator_Direccion(t *testing.T) {
	cv := NewCustomerValidator()

	input := validInput()
	input.Direccion = "  Av. Siempre Viva 742  "

	fields, err := cv.Validate(input)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if fields.Direccion == nil || *fields.Direccion != "Av. Siempre Viva 742" {
		t.Fatalf("expected trimmed direccion, got %v", fields.Direccion)
	}

	input.Direccion = ""
	fields, err = cv.Validate(input)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if fields.Direccion != nil {
		t.Fatalf("expected blank direccion to be absent")
	}

	input.Direccion = strings.Repeat("x", 201)
	_, err = cv.Validate(input)
	msgs := fieldMessages(t, err)
	if msgs["direccion"] != "La dirección no puede exceder 200 caracteres" {
		t.Fatalf("unexpected message: %q", msgs["direccion"])
	}

	input.Direccion = strings.Repeat("x", 200)
	if _, err := cv.Validate(input); err != nil {
		t.Fatalf("expected 200-char direccion to pass: %v", err)
	}
}

func TestCustomerValidator_Email(t *testing.T) {
	cv := NewCustomerValidator()

	input := validInput()
	input.Email = "not-an-email"

	_, err := cv.Validate(input)
	msgs := fieldMessages(t, err)
	if msgs["email"] != "Formato de email inválido" {
		t.Fatalf("unexpected message: %q", msgs["email"])
	}
}

func TestCustomerValidator_ReportsAllOffendingFields(t *testing.T) {
	cv := NewCustomerValidator()

	input := ports.CustomerInput{
		Nombre:   "A",
		Apellido: "Garc1a",
		Email:    "bad",
		Telefono: "abc",
	}

	_, err := cv.Validate(input)
	msgs := fieldMessages(t, err)
	for _, campo := range []string{"nombre", "apellido", "email", "telefono"} {
		if _, ok := msgs[campo]; !ok {
			t.Fatalf("expected field %q in validation error, got %v", campo, msgs)
		}
	}
}
