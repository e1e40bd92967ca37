package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of an upstream error body ends up in an error
// message.
const maxErrorBody = 256

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := truncateErrorBody(strings.TrimSpace(string(resp.Body())))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", ErrUpstreamStatus, ErrUnauthorized, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUpstreamStatus, resp.StatusCode(), body)
	}
}

// truncateErrorBody cuts body to at most maxErrorBody bytes without splitting
// a multi-byte character.
func truncateErrorBody(body string) string {
	if len(body) <= maxErrorBody {
		return body
	}
	n := maxErrorBody
	for n > 0 && !utf8.RuneStart(body[n]) {
		n--
	}
	return body[:n]
}
