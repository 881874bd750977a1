package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"zerowastechef/docs"
	"zerowastechef/internal/auth"
	"zerowastechef/internal/config"
	"zerowastechef/internal/handler"
)

// Register wires routes and middleware. Everything under the secured group
// requires a valid access token; anonymous requests are rejected before any
// store is touched.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	inventoryHandler *handler.InventoryHandler,
	advisorHandler *handler.AdvisorHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// Inventory routes
	secured.POST("/inventory", inventoryHandler.AddItem)
	secured.GET("/inventory", inventoryHandler.ListItems)
	secured.PUT("/inventory/:id", inventoryHandler.UpdateItem)
	secured.DELETE("/inventory/:id", inventoryHandler.DeleteItem)
	secured.DELETE("/inventory/name/:name", inventoryHandler.DeleteItemByName)

	// Recipe routes
	secured.POST("/recipes/suggest", advisorHandler.Suggest)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
