// Package router contains the route table of the HTTP API.
package router

import (
	"net/http"

	"bookstore/internal/delivery/api/middleware"
	"bookstore/internal/delivery/api/response"
	"bookstore/internal/delivery/api/router/handler"
	deliverymiddleware "bookstore/internal/delivery/middleware"
	domainerrors "bookstore/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	VerificationHandler *handler.VerificationHandler
	WishlistHandler     *handler.WishlistHandler
	BookHandler         *handler.BookHandler
	AuthMiddleware      *middleware.AuthMiddleware
	MetricsMiddleware   *deliverymiddleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	verificationHandler *handler.VerificationHandler
	wishlistHandler     *handler.WishlistHandler
	bookHandler         *handler.BookHandler
	authMiddleware      *middleware.AuthMiddleware
	metricsMiddleware   *deliverymiddleware.MetricsMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		verificationHandler: params.VerificationHandler,
		wishlistHandler:     params.WishlistHandler,
		bookHandler:         params.BookHandler,
		authMiddleware:      params.AuthMiddleware,
		metricsMiddleware:   params.MetricsMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Hello)
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metricsMiddleware.Handler()))

	api := e.Group("/api")

	users := api.Group("/users")
	{
		users.POST("", r.accountHandler.Signup)
		users.POST("/signin", r.accountHandler.Signin)
		users.POST("/signout", r.accountHandler.Signout, r.authMiddleware.Authenticate)
		users.POST("/change-password", r.accountHandler.ChangePassword, r.authMiddleware.Authenticate)

		// Reachable with the signup token, before the first signin.
		users.POST("/send-verification-code", r.verificationHandler.SendVerificationCode, r.authMiddleware.Identify)
		users.POST("/verify-verification-code", r.verificationHandler.VerifyVerificationCode, r.authMiddleware.Identify)

		users.POST("/send-forgot-password-code", r.verificationHandler.SendForgotPasswordCode)
		users.POST("/verify-forgot-password-code", r.verificationHandler.VerifyForgotPasswordCode)

		users.GET("/me", r.accountHandler.GetMe, r.authMiddleware.Authenticate)
		users.PUT("/me", r.accountHandler.UpdateMe, r.authMiddleware.Authenticate)
		users.DELETE("/me", r.accountHandler.DeleteMe, r.authMiddleware.Authenticate)

		users.GET("/wishlist", r.wishlistHandler.GetWishlist, r.authMiddleware.Authenticate)
		users.POST("/wishlist", r.wishlistHandler.AddToWishlist, r.authMiddleware.Authenticate)
		users.DELETE("/wishlist/:bookId", r.wishlistHandler.RemoveFromWishlist, r.authMiddleware.Authenticate)

		users.GET("/:id", r.accountHandler.GetAccount, r.authMiddleware.Authenticate)
	}

	books := api.Group("/books")
	{
		books.GET("", r.bookHandler.ListBooks)
		books.GET("/:id", r.bookHandler.GetBook)
		books.POST("", r.bookHandler.CreateBook, r.authMiddleware.Authenticate)
		books.PUT("/:id", r.bookHandler.UpdateBook, r.authMiddleware.Authenticate)
		books.DELETE("/:id", r.bookHandler.DeleteBook, r.authMiddleware.Authenticate)
	}

	e.RouteNotFound("/*", notFound)
}

func notFound(c echo.Context) error {
	return response.Error(c, http.StatusNotFound, domainerrors.ErrNotFound.ErrorCode(), domainerrors.ErrNotFound.Message(), nil)
}
