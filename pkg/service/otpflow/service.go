/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package mocks -package otpflow_test -source=service.go -mock_names sessionStore=MockSessionStore,otpSender=MockOTPSender,codeVerifier=MockCodeVerifier,notifier=MockNotifier,metricsProvider=MockMetricsProvider

package otpflow

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anbesabank/fyda-otp/internal/pkg/log"
)

var logger = log.New("otpflow")

type sessionStore interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, session *Session) error
}

type otpSender interface {
	Send(ctx context.Context, identifier string) error
}

type codeVerifier interface {
	Verify(ctx context.Context, code string) (bool, error)
}

type notifier interface {
	Notify(ctx context.Context, state string)
}

type metricsProvider interface {
	OTPRequested()
	OTPVerification(success bool)
	SendOTPTime(value time.Duration)
	VerifyOTPTime(value time.Duration)
}

// ServiceInterface drives the verification form of a session.
type ServiceInterface interface {
	Start(ctx context.Context, query url.Values) (*Session, error)
	Get(ctx context.Context, sessionID string) (*Session, error)
	SubmitIdentifier(ctx context.Context, sessionID, value string) (*Session, error)
	SetDigit(ctx context.Context, sessionID string, index int, value string) (*Session, error)
	Verify(ctx context.Context, sessionID string) (*Session, error)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	SessionStore sessionStore
	OTPSender    otpSender
	CodeVerifier codeVerifier
	Notifier     notifier
	Metrics      metricsProvider
}

// Service implements the identifier and OTP steps of the form.
type Service struct {
	store    sessionStore
	sender   otpSender
	verifier codeVerifier
	notifier notifier
	metrics  metricsProvider
	locks    *sessionLocks
	nowF     func() time.Time
}

var _ ServiceInterface = (*Service)(nil)

// NewService returns a new Service instance.
func NewService(config *Config) *Service {
	return &Service{
		store:    config.SessionStore,
		sender:   config.OTPSender,
		verifier: config.CodeVerifier,
		notifier: config.Notifier,
		metrics:  config.Metrics,
		locks:    newSessionLocks(),
		nowF:     time.Now,
	}
}

// Start creates the session of a page load. The query parameters are validated once here.
func (s *Service) Start(ctx context.Context, query url.Values) (*Session, error) {
	sess := &Session{
		ID:            uuid.NewString(),
		Query:         cloneValues(query),
		MissingParams: MissingParams(query),
		Step:          StepEnteringID,
		CreatedAt:     s.nowF().UTC(),
	}

	if err := s.store.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if len(sess.MissingParams) > 0 {
		logger.Infoc(ctx, "Page loaded with missing parameters",
			log.WithSessionID(sess.ID), log.WithMissingParams(sess.MissingParams))
	} else {
		logger.Debugc(ctx, "Session started", log.WithSessionID(sess.ID))
	}

	return sess, nil
}

// Get returns the current state of the session.
func (s *Service) Get(ctx context.Context, sessionID string) (*Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return sess, nil
}

// SubmitIdentifier validates the Fyda number and requests an OTP for it.
// An invalid value is reported through the session message.
func (s *Service) SubmitIdentifier(ctx context.Context, sessionID, value string) (*Session, error) {
	unlock := s.locks.lock(sessionID)

	sess, err := s.loadActive(ctx, sessionID, StepEnteringID)
	if err != nil {
		unlock()

		return nil, err
	}

	sess.Identifier = value

	if err = ValidateIdentifier(value); err != nil {
		sess.Message = MsgInvalidIdentifier

		err = s.update(ctx, sess)
		unlock()

		if err != nil {
			return nil, err
		}

		return sess, nil
	}

	sess.Loading = true
	sess.Message = ""

	err = s.update(ctx, sess)
	unlock()

	if err != nil {
		return nil, err
	}

	s.metrics.OTPRequested()

	// The send completes even when the client goes away.
	ctx = context.WithoutCancel(ctx)

	st := s.nowF()
	sendErr := s.sender.Send(ctx, strings.TrimSpace(value))

	s.metrics.SendOTPTime(s.nowF().Sub(st))

	defer s.locks.lock(sessionID)()

	sess.Loading = false

	if sendErr != nil {
		if err = s.update(ctx, sess); err != nil {
			logger.Warnc(ctx, "Failed to clear loading flag", log.WithSessionID(sess.ID), log.WithError(err))
		}

		return nil, fmt.Errorf("send otp: %w", sendErr)
	}

	if err = s.advance(sess, StepEnteringOTP); err != nil {
		return nil, err
	}

	sess.Message = MsgOTPSent
	sess.Focus = 0

	if err = s.update(ctx, sess); err != nil {
		return nil, err
	}

	logger.Infoc(ctx, "OTP sent", log.WithSessionID(sess.ID), log.WithStep(sess.Step.String()))

	return sess, nil
}

// SetDigit stores one OTP field. Once all fields hold a digit the code is verified
// with the digits produced by this update.
func (s *Service) SetDigit(ctx context.Context, sessionID string, index int, value string) (*Session, error) {
	unlock := s.locks.lock(sessionID)

	sess, err := s.loadActive(ctx, sessionID, StepEnteringOTP)
	if err != nil {
		unlock()

		return nil, err
	}

	digits, err := sess.OTP.With(index, value)
	if err != nil {
		unlock()

		return nil, err
	}

	sess.OTP = digits
	sess.Focus = index

	if value != "" && index < OTPLength-1 {
		sess.Focus = index + 1
	}

	if !digits.Complete() {
		err = s.update(ctx, sess)
		unlock()

		if err != nil {
			return nil, err
		}

		return sess, nil
	}

	return s.verify(ctx, sess, digits, unlock)
}

// Verify checks the digits currently stored on the session.
func (s *Service) Verify(ctx context.Context, sessionID string) (*Session, error) {
	unlock := s.locks.lock(sessionID)

	sess, err := s.loadActive(ctx, sessionID, StepEnteringOTP)
	if err != nil {
		unlock()

		return nil, err
	}

	if !sess.OTP.Complete() {
		unlock()

		return nil, ErrIncompleteOTP
	}

	return s.verify(ctx, sess, sess.OTP, unlock)
}

// verify runs with the session lock held and releases it while the verifier is busy.
func (s *Service) verify(ctx context.Context, sess *Session, digits Digits, unlock func()) (*Session, error) {
	sess.Loading = true
	sess.Message = ""

	err := s.update(ctx, sess)
	unlock()

	if err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)

	st := s.nowF()
	ok, verifyErr := s.verifier.Verify(ctx, digits.Code())

	s.metrics.VerifyOTPTime(s.nowF().Sub(st))

	defer s.locks.lock(sess.ID)()

	sess.Loading = false

	if verifyErr != nil {
		if err = s.update(ctx, sess); err != nil {
			logger.Warnc(ctx, "Failed to clear loading flag", log.WithSessionID(sess.ID), log.WithError(err))
		}

		return nil, fmt.Errorf("verify otp: %w", verifyErr)
	}

	s.metrics.OTPVerification(ok)

	if !ok {
		sess.Message = MsgInvalidOTP

		if err = s.update(ctx, sess); err != nil {
			return nil, err
		}

		logger.Infoc(ctx, "OTP rejected", log.WithSessionID(sess.ID))

		return sess, nil
	}

	if err = s.advance(sess, StepVerified); err != nil {
		return nil, err
	}

	sess.Message = MsgOTPVerified

	if err = s.update(ctx, sess); err != nil {
		return nil, err
	}

	logger.Infoc(ctx, "OTP verified", log.WithSessionID(sess.ID), log.WithStep(sess.Step.String()))

	s.notifier.Notify(ctx, sess.State())

	return sess, nil
}

func (s *Service) loadActive(ctx context.Context, sessionID string, expected Step) (*Session, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err = sess.checkActive(expected); err != nil {
		return nil, err
	}

	return sess, nil
}

func (s *Service) advance(sess *Session, step Step) error {
	if err := validateStepTransition(sess.Step, step); err != nil {
		return err
	}

	sess.Step = step

	return nil
}

func (s *Service) update(ctx context.Context, sess *Session) error {
	if err := s.store.Update(ctx, sess); err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	return nil
}
