// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

var (
	ErrEmptyAuthorizationHeader   = errors.New("empty Authorization header")
	ErrInvalidAuthorizationHeader = errors.New("invalid Authorization header")
	ErrEmptyToken                 = errors.New("empty bearer token")
	ErrTokenIsExpired             = errors.New("token is expired")
)
