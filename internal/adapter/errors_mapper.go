package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/smithy-go"
	"github.com/go-resty/resty/v2"
)

// mapAWSError classifies an error returned by an AWS SDK operation. The
// original error stays in the chain.
func mapAWSError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	switch apiErr.ErrorCode() {
	case "ResourceNotFoundException":
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case "BadRequestException", "ValidationException":
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	case "AccessDeniedException", "UnrecognizedClientException", "InvalidSignatureException",
		"ExpiredTokenException", "MissingAuthenticationTokenException":
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case "ThrottlingException", "TooManyRequestsException":
		return fmt.Errorf("%w: %w", ErrThrottled, err)
	case "InternalServerException", "ServiceUnavailableException":
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if apiErr.ErrorFault() == smithy.FaultServer {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return fmt.Errorf("%w: %w", ErrRejected, err)
}

// mapHTTPError classifies a non-2xx response from the AppConfig Agent.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrThrottled, body)
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrInternal, resp.StatusCode(), body)
	}

	return fmt.Errorf("%w: http %d: %s", ErrRejected, resp.StatusCode(), body)
}
