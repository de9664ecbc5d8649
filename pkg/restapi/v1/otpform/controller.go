/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package otpform_test github.com/anbesabank/fyda-otp/pkg/service/otpflow ServiceInterface

package otpform

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/anbesabank/fyda-otp/internal/pkg/log"
	"github.com/anbesabank/fyda-otp/pkg/restapi/resterr"
	"github.com/anbesabank/fyda-otp/pkg/service/otpflow"
)

const (
	// SessionCookie carries the session ID of a page load.
	SessionCookie = "fyda_otp_session"

	formPath = "/form"
)

var logger = log.New("otpform")

//go:embed templates/*.html
var templatesFS embed.FS

var formTemplate = template.Must(template.ParseFS(templatesFS, "templates/form.html")) //nolint:gochecknoglobals

var errNoSession = errors.New("session cookie is missing")

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Config holds configuration options and dependencies for Controller.
type Config struct {
	OTPFlowService otpflow.ServiceInterface
	SecureCookie   bool
}

// Controller serves the verification form as HTML pages and as a JSON API.
type Controller struct {
	svc          otpflow.ServiceInterface
	secureCookie bool
}

// IdentifierRequest is the body of POST /api/v1/session/identifier.
type IdentifierRequest struct {
	Identifier string `json:"identifier"`
}

// DigitRequest is the body of PUT /api/v1/session/otp/:index.
type DigitRequest struct {
	Value string `json:"value"`
}

// NewController registers the form and API routes.
func NewController(r router, config *Config) *Controller {
	c := &Controller{
		svc:          config.OTPFlowService,
		secureCookie: config.SecureCookie,
	}

	r.GET("/", c.LoadPage)
	r.GET(formPath, c.ShowForm)
	r.POST("/identifier", c.PostIdentifier)
	r.POST("/otp/digit", c.PostDigit)
	r.POST("/otp/verify", c.PostVerify)

	r.POST("/api/v1/session", c.CreateSession)
	r.GET("/api/v1/session", c.GetSession)
	r.POST("/api/v1/session/identifier", c.SubmitIdentifier)
	r.PUT("/api/v1/session/otp/:index", c.SetDigit)
	r.POST("/api/v1/session/otp/verify", c.VerifyOTP)

	return c
}

// LoadPage starts a session for the page query and renders the form.
// GET /.
func (c *Controller) LoadPage(e echo.Context) error {
	sess, err := c.svc.Start(e.Request().Context(), e.QueryParams())
	if err != nil {
		return resterr.NewSystemError(resterr.OTPFlowSvcComponent, "Start", err)
	}

	c.setSessionCookie(e, sess.ID)

	return c.render(e, sess)
}

// ShowForm renders the current session.
// GET /form.
func (c *Controller) ShowForm(e echo.Context) error {
	sessionID, err := sessionIDFromCookie(e)
	if err != nil {
		return e.Redirect(http.StatusSeeOther, "/")
	}

	sess, err := c.svc.Get(e.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return e.Redirect(http.StatusSeeOther, "/")
		}

		return resterr.NewSystemError(resterr.OTPFlowSvcComponent, "Get", err)
	}

	return c.render(e, sess)
}

// PostIdentifier submits the Fyda number form.
// POST /identifier.
func (c *Controller) PostIdentifier(e echo.Context) error {
	return c.formAction(e, "SubmitIdentifier", func(sessionID string) error {
		_, err := c.svc.SubmitIdentifier(e.Request().Context(), sessionID, e.FormValue("fyda_number"))

		return err
	})
}

// PostDigit submits one OTP field.
// POST /otp/digit.
func (c *Controller) PostDigit(e echo.Context) error {
	return c.formAction(e, "SetDigit", func(sessionID string) error {
		index, err := strconv.Atoi(e.FormValue("index"))
		if err != nil {
			return otpflow.ErrInvalidDigitIndex
		}

		_, err = c.svc.SetDigit(e.Request().Context(), sessionID, index, e.FormValue("value"))

		return err
	})
}

// PostVerify submits the manual verify action.
// POST /otp/verify.
func (c *Controller) PostVerify(e echo.Context) error {
	return c.formAction(e, "Verify", func(sessionID string) error {
		_, err := c.svc.Verify(e.Request().Context(), sessionID)

		return err
	})
}

// CreateSession starts a session for the request query.
// POST /api/v1/session.
func (c *Controller) CreateSession(e echo.Context) error {
	sess, err := c.svc.Start(e.Request().Context(), e.QueryParams())
	if err != nil {
		return resterr.NewSystemError(resterr.OTPFlowSvcComponent, "Start", err)
	}

	c.setSessionCookie(e, sess.ID)

	return e.JSON(http.StatusCreated, newSessionView(sess))
}

// GetSession returns the current session view.
// GET /api/v1/session.
func (c *Controller) GetSession(e echo.Context) error {
	return c.apiAction(e, "Get", func(sessionID string) (*otpflow.Session, error) {
		return c.svc.Get(e.Request().Context(), sessionID)
	})
}

// SubmitIdentifier submits the Fyda number.
// POST /api/v1/session/identifier.
func (c *Controller) SubmitIdentifier(e echo.Context) error {
	var req IdentifierRequest

	if err := e.Bind(&req); err != nil {
		return resterr.NewValidationError(resterr.BadRequest, "body", err)
	}

	return c.apiAction(e, "SubmitIdentifier", func(sessionID string) (*otpflow.Session, error) {
		return c.svc.SubmitIdentifier(e.Request().Context(), sessionID, req.Identifier)
	})
}

// SetDigit sets one OTP field.
// PUT /api/v1/session/otp/:index.
func (c *Controller) SetDigit(e echo.Context) error {
	index, err := strconv.Atoi(e.Param("index"))
	if err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "index", otpflow.ErrInvalidDigitIndex)
	}

	var req DigitRequest

	if err = e.Bind(&req); err != nil {
		return resterr.NewValidationError(resterr.BadRequest, "body", err)
	}

	return c.apiAction(e, "SetDigit", func(sessionID string) (*otpflow.Session, error) {
		return c.svc.SetDigit(e.Request().Context(), sessionID, index, req.Value)
	})
}

// VerifyOTP verifies the stored OTP digits.
// POST /api/v1/session/otp/verify.
func (c *Controller) VerifyOTP(e echo.Context) error {
	return c.apiAction(e, "Verify", func(sessionID string) (*otpflow.Session, error) {
		return c.svc.Verify(e.Request().Context(), sessionID)
	})
}

func (c *Controller) apiAction(
	e echo.Context,
	operation string,
	action func(sessionID string) (*otpflow.Session, error),
) error {
	sessionID, err := sessionIDFromCookie(e)
	if err != nil {
		return resterr.NewCustomError(resterr.DoesntExist, err)
	}

	sess, err := action(sessionID)
	if err != nil {
		return mapServiceError(operation, err)
	}

	return e.JSON(http.StatusOK, newSessionView(sess))
}

// formAction runs an HTML form action and redirects to the form. Rejected input leaves
// the session as it was and the form is shown again.
func (c *Controller) formAction(e echo.Context, operation string, action func(sessionID string) error) error {
	sessionID, err := sessionIDFromCookie(e)
	if err != nil {
		return e.Redirect(http.StatusSeeOther, "/")
	}

	if err = action(sessionID); err != nil {
		switch {
		case errors.Is(err, resterr.ErrDataNotFound):
			return e.Redirect(http.StatusSeeOther, "/")
		case isRejection(err):
			logger.Debugc(e.Request().Context(), "Form action rejected",
				log.WithSessionID(sessionID), log.WithError(err))
		default:
			return resterr.NewSystemError(resterr.OTPFlowSvcComponent, operation, err)
		}
	}

	return e.Redirect(http.StatusSeeOther, formPath)
}

func (c *Controller) render(e echo.Context, sess *otpflow.Session) error {
	var buf bytes.Buffer

	if err := formTemplate.Execute(&buf, &page{SessionView: newSessionView(sess), Title: pageTitle}); err != nil {
		return fmt.Errorf("render form: %w", err)
	}

	e.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return e.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (c *Controller) setSessionCookie(e echo.Context, sessionID string) {
	e.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionIDFromCookie(e echo.Context) (string, error) {
	cookie, err := e.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return "", errNoSession
	}

	return cookie.Value, nil
}

func isRejection(err error) bool {
	return errors.Is(err, otpflow.ErrInvalidDigit) ||
		errors.Is(err, otpflow.ErrInvalidDigitIndex) ||
		errors.Is(err, otpflow.ErrIncompleteOTP) ||
		errors.Is(err, otpflow.ErrInvalidStep) ||
		errors.Is(err, otpflow.ErrMissingParameters) ||
		errors.Is(err, otpflow.ErrOperationInProgress)
}

func mapServiceError(operation string, err error) error {
	switch {
	case errors.Is(err, otpflow.ErrInvalidDigit):
		return resterr.NewValidationError(resterr.InvalidValue, "value", err)
	case errors.Is(err, otpflow.ErrInvalidDigitIndex):
		return resterr.NewValidationError(resterr.InvalidValue, "index", err)
	case errors.Is(err, otpflow.ErrIncompleteOTP),
		errors.Is(err, otpflow.ErrInvalidStep),
		errors.Is(err, otpflow.ErrMissingParameters):
		return resterr.NewCustomError(resterr.ConditionNotMet, err)
	case errors.Is(err, otpflow.ErrOperationInProgress):
		return resterr.NewCustomError(resterr.Conflict, err)
	case errors.Is(err, resterr.ErrDataNotFound):
		return resterr.NewCustomError(resterr.DoesntExist, err)
	default:
		return resterr.NewSystemError(resterr.OTPFlowSvcComponent, operation, err)
	}
}
