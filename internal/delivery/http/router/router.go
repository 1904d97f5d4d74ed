// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cryofood/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	FoodHandler    *handler.FoodHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	foodHandler    *handler.FoodHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		foodHandler:    params.FoodHandler,
	}
}

type endpoint struct {
	path   string
	usage  string
	handle echo.HandlerFunc
}

// RegisterRoutes sets up all the API routes for the application. Every
// endpoint takes its arguments by POST and describes itself on GET.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	endpoints := []endpoint{
		{"/checkUser", handler.UsageCheckUser, r.accountHandler.CheckUser},
		{"/getUsers", handler.UsageGetUsers, r.accountHandler.GetUsers},
		{"/changePw", handler.UsageChangePw, r.accountHandler.ChangePassword},
		{"/addUser", handler.UsageAddUser, r.accountHandler.AddUser},
		{"/delUser", handler.UsageDelUser, r.accountHandler.DeleteUser},
		{"/getFood", handler.UsageGetFood, r.foodHandler.GetFood},
		{"/addFood", handler.UsageAddFood, r.foodHandler.AddFood},
		{"/remFood", handler.UsageRemFood, r.foodHandler.RemoveFood},
	}
	for _, ep := range endpoints {
		e.POST(ep.path, ep.handle)
		e.GET(ep.path, handler.Usage(ep.usage))
	}
}
