// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JoyLabs

package http

import "errors"

// Sentinel errors of the webhook signature verification middleware. Callers
// can match against them with [errors.Is].
var (
	// ErrMissingSignature is returned when the incoming request carries no
	// signature header at all.
	ErrMissingSignature = errors.New("missing `" + signatureHeader + "` header")

	// ErrInvalidSignature is returned when the signature header does not
	// match the HMAC-SHA256 digest of the request body.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)
