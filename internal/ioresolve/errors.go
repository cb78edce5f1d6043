package ioresolve

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/pkg/errcode"
)

// RequestError creates an error for when the name-resolution service
// cannot be reached. The whole run aborts; partial enrichment is not an
// acceptable output state.
func RequestError(url string, err error) error {
	msg := `Cannot reach the name-resolution service

<em>Request:</em> %s

<em>Possible causes:</em>
  - No network connectivity
  - Service is down or the base URL is wrong
  - Request timed out (see resolver timeout_sec)

The run is aborted: partially enriched output is never written.`

	vars := []any{url}

	return &gn.Error{
		Code: errcode.ResolverRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("resolver request failed: %w", err),
	}
}

// ResponseError creates an error for a non-success HTTP status from the
// name-resolution service.
func ResponseError(url string, status int) error {
	msg := `Name-resolution service answered with status <em>%d</em>

<em>Request:</em> %s

<em>How to fix:</em>
  1. Retry later if the service is temporarily overloaded
  2. Check the resolver base_url setting`

	vars := []any{status, url}

	return &gn.Error{
		Code: errcode.ResolverResponseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("resolver answered status %d", status),
	}
}

// DecodeError creates an error for an answer the client cannot decode.
func DecodeError(url string, err error) error {
	msg := `Cannot decode the name-resolution answer

<em>Request:</em> %s

The service may have changed its response format.`

	vars := []any{url}

	return &gn.Error{
		Code: errcode.ResolverResponseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot decode resolver answer: %w", err),
	}
}
