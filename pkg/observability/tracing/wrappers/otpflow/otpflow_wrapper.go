/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package otpflow . Service

package otpflow

import (
	"context"
	"net/url"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/anbesabank/fyda-otp/pkg/service/otpflow"
)

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements otpflow.ServiceInterface

type Service otpflow.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Start(ctx context.Context, query url.Values) (*otpflow.Session, error) {
	ctx, span := w.tracer.Start(ctx, "otpflow.Start")
	defer span.End()

	sess, err := w.svc.Start(ctx, query)
	if err != nil {
		span.RecordError(err)

		return nil, err
	}

	span.SetAttributes(sessionAttributes(sess)...)
	span.SetAttributes(attribute.StringSlice("missing_params", sess.MissingParams))

	return sess, nil
}

func (w *Wrapper) Get(ctx context.Context, sessionID string) (*otpflow.Session, error) {
	ctx, span := w.tracer.Start(ctx, "otpflow.Get")
	defer span.End()

	span.SetAttributes(attribute.String("session_id", sessionID))

	sess, err := w.svc.Get(ctx, sessionID)
	if err != nil {
		span.RecordError(err)

		return nil, err
	}

	return sess, nil
}

func (w *Wrapper) SubmitIdentifier(ctx context.Context, sessionID, value string) (*otpflow.Session, error) {
	ctx, span := w.tracer.Start(ctx, "otpflow.SubmitIdentifier")
	defer span.End()

	span.SetAttributes(attribute.String("session_id", sessionID))

	sess, err := w.svc.SubmitIdentifier(ctx, sessionID, value)
	if err != nil {
		span.RecordError(err)

		return nil, err
	}

	span.SetAttributes(sessionAttributes(sess)...)

	return sess, nil
}

func (w *Wrapper) SetDigit(ctx context.Context, sessionID string, index int, value string) (*otpflow.Session, error) {
	ctx, span := w.tracer.Start(ctx, "otpflow.SetDigit")
	defer span.End()

	span.SetAttributes(attribute.String("session_id", sessionID))
	span.SetAttributes(attribute.Int("index", index))

	sess, err := w.svc.SetDigit(ctx, sessionID, index, value)
	if err != nil {
		span.RecordError(err)

		return nil, err
	}

	span.SetAttributes(sessionAttributes(sess)...)

	return sess, nil
}

func (w *Wrapper) Verify(ctx context.Context, sessionID string) (*otpflow.Session, error) {
	ctx, span := w.tracer.Start(ctx, "otpflow.Verify")
	defer span.End()

	span.SetAttributes(attribute.String("session_id", sessionID))

	sess, err := w.svc.Verify(ctx, sessionID)
	if err != nil {
		span.RecordError(err)

		return nil, err
	}

	span.SetAttributes(sessionAttributes(sess)...)

	return sess, nil
}

// sessionAttributes never includes the identifier or the OTP digits.
func sessionAttributes(sess *otpflow.Session) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("session_id", sess.ID),
		attribute.String("step", sess.Step.String()),
		attribute.Bool("loading", sess.Loading),
	}
}
