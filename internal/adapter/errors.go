// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrUnauthorized indicates a missing, expired or rejected bearer token.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrRemoteUnavailable indicates a network failure, timeout, or an
	// unexpected status from the remote service.
	ErrRemoteUnavailable = errors.New("remote service unavailable")
	// ErrSnapshotTooLarge indicates a fast-store write over the size cap.
	ErrSnapshotTooLarge = errors.New("snapshot exceeds remote size cap")
)

// mapHTTPError converts a non-success resty response into the adapter error
// taxonomy. A nil return means the response is a success.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == 401 || code == 403:
		return ErrUnauthorized
	case code == 413:
		return ErrSnapshotTooLarge
	default:
		return fmt.Errorf("%w: unexpected status %d", ErrRemoteUnavailable, code)
	}
}
