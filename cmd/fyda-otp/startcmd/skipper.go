/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const (
	healthCheckEndpoint   = "/healthcheck"
	versionEndpoint       = "/version"
	versionSystemEndpoint = "/version/system"
	logLevelsEndpoint     = "/loglevels"
	profilerEndpoints     = "/debug/pprof"
)

// OperationalSkipper skips tracing and request logging for operational endpoints.
func OperationalSkipper(c echo.Context) bool {
	switch c.Path() {
	case healthCheckEndpoint, versionEndpoint, versionSystemEndpoint, logLevelsEndpoint:
		return true
	}

	if strings.HasPrefix(c.Path(), profilerEndpoints) {
		return true
	}

	return echomw.DefaultSkipper(c)
}
