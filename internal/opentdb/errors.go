package opentdb

import (
	"errors"
	"fmt"
)

// ErrNetwork wraps transport failures talking to the trivia endpoint.
var ErrNetwork = errors.New("trivia endpoint unreachable")

// ErrMalformedResponse indicates the payload did not match the expected shape.
var ErrMalformedResponse = errors.New("malformed trivia response")

// ErrNonSuccessStatus indicates the API answered with a response_code other than 0.
var ErrNonSuccessStatus = errors.New("trivia response code is not success")

// StatusError carries the response_code of a rejected request.
type StatusError struct {
	Code int
}

// Error returns a readable message including the API's meaning of the code.
func (err *StatusError) Error() string {
	return fmt.Sprintf("%s: code %d (%s)", ErrNonSuccessStatus.Error(), err.Code, describeCode(err.Code))
}

// Is reports whether target is ErrNonSuccessStatus.
func (err *StatusError) Is(target error) bool {
	return target == ErrNonSuccessStatus
}

func describeCode(code int) string {
	switch code {
	case 1:
		return "no results"
	case 2:
		return "invalid parameter"
	case 3:
		return "token not found"
	case 4:
		return "token empty"
	case 5:
		return "rate limited"
	default:
		return "unknown"
	}
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}
