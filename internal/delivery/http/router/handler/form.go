// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"

	"cryofood/internal/delivery/http/response"
	domainerrors "cryofood/internal/domain/errors"
	"cryofood/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CredentialInput is embedded in every protected request. It is exported so
// echo's form binder descends into it. Length limits match
// what bcrypt can represent; emptiness is left to the authorizer.
type CredentialInput struct {
	Username string `form:"username" json:"username" validate:"max=255"`
	Password string `form:"password" json:"password" validate:"maxbytes=72"`
}

func (in CredentialInput) credential() usecase.Credential {
	return usecase.Credential{Identifier: in.Username, Secret: in.Password}
}

// optionalString records whether a field was submitted at all, so an absent
// field and an empty one stay distinct.
type optionalString struct {
	value string
	set   bool
}

// UnmarshalParam implements echo.BindUnmarshaler for form fields.
func (o *optionalString) UnmarshalParam(src string) error {
	o.value, o.set = src, true

	return nil
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.value); err != nil {
		return err
	}
	o.set = true

	return nil
}

func (o optionalString) ptr() *string {
	if !o.set {
		return nil
	}
	v := o.value

	return &v
}

// bind decodes the request (form, multipart or JSON) into input and validates it.
func bind(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed request")
	}

	return c.Validate(input)
}

// HealthCheck answers a success envelope while the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, nil)
}
