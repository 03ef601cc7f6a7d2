// Package router contains routing setup for the HTTP delivery.
package router

import (
	"teamed/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	LeadHandler    *handler.LeadHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	leadHandler    *handler.LeadHandler
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		leadHandler:    params.LeadHandler,
	}
}

// RegisterRoutes sets up all the API routes. Paths match the legacy Teamed
// surface; no route requires authentication beyond the login exchange itself.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Welcome)
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/register", r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)
	e.GET("/users", r.accountHandler.ListUsers)
	e.GET("/users/:email", r.accountHandler.GetUser)

	// Lead routes
	e.POST("/add_lead", r.leadHandler.AddLead)
	e.GET("/leads", r.leadHandler.ListLeads)
}
