package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"time"

	"aggregat4/jwttoken/internal/domain"
	"aggregat4/jwttoken/internal/logging"
	"aggregat4/jwttoken/internal/repository"
	"aggregat4/jwttoken/internal/token"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var logger = logging.ForComponent("internal.server")

const (
	ForecastPath = "/weatherforecast"
	LoginPath    = "/weatherforecast/login"
	StatusPath   = "/status"

	ForecastCount = 5
)

type Controller struct {
	Store     repository.CredentialStore
	Config    domain.Configuration
	Tokens    *token.Service
	Verifier  *token.Verifier
	Forecasts *ForecastGenerator
}

// NewController wires the token service and verifier around the same JWT configuration.
func NewController(config domain.Configuration, store repository.CredentialStore, opts ...token.Option) (Controller, error) {
	tokens, err := token.NewService(config.JwtConfig, opts...)
	if err != nil {
		return Controller{}, err
	}
	verifier, err := token.NewVerifier(config.JwtConfig, opts...)
	if err != nil {
		return Controller{}, err
	}
	return Controller{
		Store:     store,
		Config:    config,
		Tokens:    tokens,
		Verifier:  verifier,
		Forecasts: NewForecastGenerator(),
	}, nil
}

// RunServer serves until ctx is cancelled or the listener fails.
func RunServer(ctx context.Context, controller Controller) error {
	e := InitServer(controller)
	errs := make(chan error, 1)
	go func() {
		errs <- e.Start(":" + strconv.Itoa(controller.Config.ServerPort))
	}()
	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logging.Info(logger, "Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

func InitServer(controller Controller) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	// Set server timeouts based on advice from https://blog.cloudflare.com/the-complete-guide-to-golang-net-http-timeouts/#1687428081
	e.Server.ReadTimeout = time.Duration(controller.Config.ServerReadTimeoutSeconds) * time.Second
	e.Server.WriteTimeout = time.Duration(controller.Config.ServerWriteTimeoutSeconds) * time.Second

	e.Pre(caseInsensitivePaths)
	e.Use(logging.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))

	e.GET(StatusPath, controller.Status)

	e.POST(LoginPath, controller.login)
	e.GET(ForecastPath, controller.forecasts, controller.RequireToken())

	return e
}

func (controller *Controller) Status(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (controller *Controller) login(c echo.Context) error {
	var request domain.LoginRequest
	if err := c.Bind(&request); err != nil {
		logging.Debug(logger, "Could not bind login request: {Error}", err)
		if errors.Is(err, echo.ErrUnsupportedMediaType) {
			return c.String(http.StatusUnsupportedMediaType, "Unsupported Media Type")
		}
		return c.String(http.StatusBadRequest, "Invalid client request")
	}
	if request.UserName == "" || request.Password == "" {
		return c.String(http.StatusBadRequest, "Invalid client request")
	}

	if !controller.validateCredentials(request.UserName, request.Password) {
		logging.Info(logger, "Login failed for {UserName}", request.UserName)
		return c.String(http.StatusUnauthorized, "Unauthorized")
	}

	jwtToken, err := controller.Tokens.GenerateToken()
	if err != nil {
		logging.Error(logger, "Error generating token: {Error}", err)
		return c.String(http.StatusInternalServerError, "Internal server error")
	}
	logging.Info(logger, "Issued token for {UserName}", request.UserName)
	return c.JSON(http.StatusOK, domain.LoginResponse{User: request.UserName, Token: jwtToken})
}

func (controller *Controller) forecasts(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.Forecasts.Generate(ForecastCount))
}

func (controller *Controller) validateCredentials(username, password string) bool {
	user := controller.Store.FindUser(username)
	if user == nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(user.Password)) == 1
}
