package handler

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"cryofood/internal/delivery/http/response"
	"cryofood/internal/domain/entity"
	domainerrors "cryofood/internal/domain/errors"
	"cryofood/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FoodHandler serves the inventory endpoints.
type FoodHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

func NewFoodHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		uc:     uc,
		logger: logger,
	}
}

type addFoodInput struct {
	CredentialInput

	FoodName     string         `form:"food-name" json:"food-name" validate:"required,max=255"`
	FoodCategory optionalString `form:"food-category" json:"food-category"`
}

type removeFoodInput struct {
	CredentialInput

	// json.Number accepts both 7 and "7" from JSON clients.
	FID json.Number `form:"fid" json:"fid" validate:"required"`
}

type foodItemResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetFood handles POST /getFood.
func (h *FoodHandler) GetFood(c echo.Context) error {
	var input CredentialInput
	if err := bind(c, &input); err != nil {
		return err
	}

	items, err := h.uc.ListItems(c.Request().Context(), input.credential())
	if err != nil {
		return errors.WithStack(err)
	}

	content := make([]foodItemResponse, 0, len(items))
	for _, item := range items {
		content = append(content, toFoodItemResponse(item))
	}

	return response.Success(c, content)
}

// AddFood handles POST /addFood.
func (h *FoodHandler) AddFood(c echo.Context) error {
	var input addFoodInput
	if err := bind(c, &input); err != nil {
		return err
	}

	_, err := h.uc.AddItem(c.Request().Context(), input.credential(), usecase.AddItemInput{
		Name:     input.FoodName,
		Category: input.FoodCategory.ptr(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, nil)
}

// RemoveFood handles POST /remFood.
func (h *FoodHandler) RemoveFood(c echo.Context) error {
	var input removeFoodInput
	if err := bind(c, &input); err != nil {
		return err
	}

	id, err := strconv.ParseInt(input.FID.String(), 10, 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("fid must be an integer")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), input.credential(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, nil)
}

func toFoodItemResponse(item *entity.FoodItem) foodItemResponse {
	return foodItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		CreatedAt: item.CreatedAt,
	}
}
