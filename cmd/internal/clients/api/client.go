package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"

	"pkg.festserve.dev/festserve-cli/common/logger"
)

const (
	get = http.MethodGet

	headerRequestID = "X-Request-ID"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// NewClient creates a new API client. A zero timeout means requests never time out.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Tokens: tokens,
	}
}

// sendAuthorized issues a bearer-authenticated request and returns the response body.
// The token is read from c.Tokens at call time.
func (c *Client) sendAuthorized(ctx context.Context, method, endpoint string) ([]byte, error) {
	token, err := c.currentToken()
	if err != nil {
		return nil, err
	}

	req, err := c.prepareRequest(ctx, method, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return c.doRequest(req)
}

func (c *Client) currentToken() (string, error) {
	if c.Tokens == nil {
		return "", ErrNoToken
	}
	token, err := c.Tokens.Get()
	if err != nil {
		return "", eris.Wrap(err, "failed to read session token")
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// prepareRequest creates a request against BaseURL. A non-nil form is sent
// url-encoded. No credentials are attached here.
func (c *Client) prepareRequest(
	ctx context.Context,
	method, endpoint string,
	form url.Values,
) (*http.Request, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, body)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to create request")
	}

	if form != nil {
		req.Header.Set("Content-Type", contentTypeForm)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())

	return req, nil
}

// doRequest executes a single request. Transport errors are returned as-is;
// non-2xx statuses become ErrUnauthorized, ErrForbidden or *StatusError.
func (c *Client) doRequest(req *http.Request) ([]byte, error) {
	logger.DebugWithFields("api request", map[string]interface{}{
		"method":     req.Method,
		"url":        req.URL.String(),
		"request_id": req.Header.Get(headerRequestID),
	})

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Debugf("api response %s for %s %s", resp.Status, req.Method, req.URL.Path)
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, ErrUnauthorized
		case http.StatusForbidden:
			return nil, ErrForbidden
		}
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    errorMessage(body),
		}
	}

	return body, nil
}

// errorMessage extracts a human readable message from an error body. FastAPI
// puts it in "detail"; other services use "message".
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	if detail := gjson.GetBytes(body, "detail"); detail.Type == gjson.String {
		return detail.String()
	}
	return gjson.GetBytes(body, "message").String()
}

// parseResponse decodes a JSON body into T.
func parseResponse[T any](body []byte) (T, error) {
	var data T
	if !gjson.ValidBytes(body) {
		return data, eris.Wrap(ErrMalformedResponse, "response is not valid JSON")
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return *new(T), eris.Wrap(ErrMalformedResponse, err.Error())
	}
	return data, nil
}

// requireFields checks that every object in body (or body itself when it is
// an object) carries each of the given keys.
func requireFields(body []byte, fields ...string) error {
	result := gjson.ParseBytes(body)
	check := func(obj gjson.Result) error {
		if !obj.IsObject() {
			return eris.Wrap(ErrMalformedResponse, "expected a JSON object")
		}
		for _, field := range fields {
			if !obj.Get(field).Exists() {
				return eris.Wrapf(ErrMalformedResponse, "missing field %q", field)
			}
		}
		return nil
	}

	if !result.IsArray() {
		return check(result)
	}
	var err error
	result.ForEach(func(_, value gjson.Result) bool {
		err = check(value)
		return err == nil
	})
	return err
}
