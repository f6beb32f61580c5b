package gitlab

import (
	"fmt"
	"io"

	appErrors "github.com/mrz1836/go-gitlab-repo/internal/errors"
	"github.com/mrz1836/go-gitlab-repo/internal/jsonutil"
)

// DecodeError reports a response body that does not match the shape the
// operation expects. The raw body is retained for diagnostics.
type DecodeError struct {
	Body []byte
	Err  error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("response decode failed: %v (body: %s)", e.Err, truncate(e.Body, errorBodySnippet))
}

// Unwrap returns the underlying decode failure
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}

// decodeEntity drains the response and deserializes a single entity.
// The body is always closed.
func decodeEntity[T any](resp *Response) (*T, error) {
	body, err := drain(resp)
	if err != nil {
		return nil, err
	}

	entity, err := jsonutil.UnmarshalJSON[T](body)
	if err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}
	return &entity, nil
}

// decodeList drains the response and deserializes an ordered sequence.
// Server-provided order is preserved; the decoder never reorders.
func decodeList[T any](resp *Response) ([]T, error) {
	body, err := drain(resp)
	if err != nil {
		return nil, err
	}

	list, err := jsonutil.UnmarshalJSON[[]T](body)
	if err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}
	return list, nil
}

// readText drains the response and returns the body as opaque text.
// The service labels raw endpoints text/plain, so the content type is
// deliberately ignored here.
func readText(resp *Response) (string, error) {
	body, err := drain(resp)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func drain(resp *Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "read response body")
	}
	return body, nil
}
