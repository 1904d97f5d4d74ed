package handler

import (
	"log/slog"

	"cryofood/internal/delivery/http/response"
	"cryofood/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler serves the credential and account endpoints.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type accountInput struct {
	CredentialInput

	UserUsername string `form:"user-username" json:"user-username" validate:"required,max=255"`
	UserPassword string `form:"user-password" json:"user-password" validate:"required,maxbytes=72"`
}

type deleteAccountInput struct {
	CredentialInput

	TargetUsername string `form:"target-username" json:"target-username" validate:"required,max=255"`
}

// CheckUser handles POST /checkUser.
func (h *AccountHandler) CheckUser(c echo.Context) error {
	var input CredentialInput
	if err := bind(c, &input); err != nil {
		return err
	}

	if err := h.uc.CheckCredential(c.Request().Context(), input.credential()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, nil)
}

// GetUsers handles POST /getUsers.
func (h *AccountHandler) GetUsers(c echo.Context) error {
	var input CredentialInput
	if err := bind(c, &input); err != nil {
		return err
	}

	identifiers, err := h.uc.ListAccounts(c.Request().Context(), input.credential())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, identifiers)
}

// AddUser handles POST /addUser.
func (h *AccountHandler) AddUser(c echo.Context) error {
	var input accountInput
	if err := bind(c, &input); err != nil {
		return err
	}

	if err := h.uc.AddAccount(c.Request().Context(), input.credential(), input.UserUsername, input.UserPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, nil)
}

// ChangePassword handles POST /changePw.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	var input accountInput
	if err := bind(c, &input); err != nil {
		return err
	}

	if err := h.uc.RotatePassword(c.Request().Context(), input.credential(), input.UserUsername, input.UserPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, nil)
}

// DeleteUser handles POST /delUser. The account named by target-username is
// both the one protected from self-deletion and the one removed.
func (h *AccountHandler) DeleteUser(c echo.Context) error {
	var input deleteAccountInput
	if err := bind(c, &input); err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), input.credential(), input.TargetUsername); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, nil)
}
