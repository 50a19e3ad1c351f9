package server

import (
	"context"

	"bakery-storefront/internal/handler"
	authmw "bakery-storefront/internal/middleware"
	"bakery-storefront/internal/repository"
	"bakery-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo               *echo.Echo
	sessionRepo        repository.SessionRepository
	cartHandler        *handler.CartHandler
	checkoutHandler    *handler.CheckoutHandler
	userHandler        *handler.UserHandler
	transactionHandler *handler.TransactionHandler
}

func NewServer(
	sessionRepo repository.SessionRepository,
	cartService service.CartService,
	checkoutService service.CheckoutService,
	userService service.UserService,
	transactionService service.TransactionService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:               e,
		sessionRepo:        sessionRepo,
		cartHandler:        handler.NewCartHandler(cartService),
		checkoutHandler:    handler.NewCheckoutHandler(checkoutService),
		userHandler:        handler.NewUserHandler(userService),
		transactionHandler: handler.NewTransactionHandler(transactionService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- session --------
	session := api.Group("/session")
	session.POST("/login", s.userHandler.Login)
	session.POST("/logout", s.userHandler.Logout)
	session.GET("", s.userHandler.Session)

	// -------- cart --------
	cart := api.Group("/cart")
	cart.GET("", s.cartHandler.GetCart)
	cart.POST("/items", s.cartHandler.AddItem)
	cart.PUT("/items/:id", s.cartHandler.UpdateQuantity)
	cart.DELETE("/items/:id", s.cartHandler.RemoveItem)
	cart.DELETE("", s.cartHandler.Clear)

	// -------- checkout --------
	pay := api.Group("/checkout")
	pay.POST("/card", s.checkoutHandler.PayWithCard)
	pay.POST("/pse", s.checkoutHandler.PayWithPSE)
	pay.GET("/last-transaction", s.checkoutHandler.LastTransaction)

	// -------- authenticated views --------
	requireSession := authmw.RequireSession(s.sessionRepo)

	profile := api.Group("/profile", requireSession)
	profile.GET("", s.userHandler.Profile)
	profile.PUT("", s.userHandler.UpdateProfile)
	profile.PUT("/password", s.userHandler.UpdatePassword)

	transactions := api.Group("/transactions", requireSession)
	transactions.GET("/history", s.transactionHandler.History)
	transactions.GET("/:id", s.transactionHandler.Details)

	admin := api.Group("/admin", requireSession, authmw.RequireAdmin())
	admin.GET("/transactions", s.transactionHandler.ListAll)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
