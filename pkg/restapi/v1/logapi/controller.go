/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anbesabank/fyda-otp/internal/pkg/log"
)

//go:generate mockgen -destination controller_mocks_test.go -package logapi_test -source=controller.go -mock_names router=Mockrouter

var logger = log.New("logapi")

type Controller struct{}

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

func NewController(router router) *Controller {
	c := &Controller{}

	router.POST("/loglevels", c.PostLogLevels)
	router.GET("/loglevels", c.GetLogLevels)

	return c
}

// PostLogLevels updates log levels.
// (POST /loglevels).
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	logLevelBytes, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	logLevels := string(logLevelBytes)

	if err = log.SetSpec(logLevels); err != nil {
		return fmt.Errorf("failed to set log spec: %w", err)
	}

	logger.Info("log levels modified", log.WithUserLogLevel(logLevels))

	return ctx.NoContent(http.StatusOK)
}

// GetLogLevels returns the current log spec.
// (GET /loglevels).
func (c *Controller) GetLogLevels(ctx echo.Context) error {
	return ctx.String(http.StatusOK, log.GetSpec())
}
