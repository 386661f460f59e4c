package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/user"
)

// Error is a non-2xx answer of the API.
type Error struct {
	StatusCode int
	Message    string
}

func (err *Error) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("api: %d %s", err.StatusCode, http.StatusText(err.StatusCode))
	}
	return fmt.Sprintf("api: %d %s", err.StatusCode, err.Message)
}

// IsNotFound reports whether err is a 404 answer.
func IsNotFound(err error) bool {
	apiErr, ok := errors.Cause(err).(*Error)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to the school API on behalf of the session user.
type Client struct {
	baseURL string
	timeout time.Duration
	sess    user.Session
	logger  core.Logger
	rest    *rest.Client
}

func NewClient(conf *core.Config, sess user.Session, logger core.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.API.URL, "/"),
		timeout: conf.API.Timeout,
		sess:    sess,
		logger:  logger,
		rest:    &rest.Client{HTTPClient: &http.Client{}},
	}
}

func (c *Client) headers() map[string]string {
	h := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"X-Request-ID": uuid.New().String(),
	}
	if user.IsAuthenticated(c.sess) {
		h["Authorization"] = "Bearer " + c.sess.SessionToken()
	}
	return h
}

func idParam(id int) map[string]string {
	return map[string]string{"id": strconv.Itoa(id)}
}

// do sends one request and returns the decoded JSON answer, nil when the body is empty.
// Failures are logged and returned as *Error, or *core.ValidationError for field errors.
func (c *Client) do(ctx context.Context, method rest.Method, path string, query map[string]string, payload interface{}) (interface{}, error) {
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return nil, errors.Wrap(err, "encoding payload")
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := rest.Request{
		Method:      method,
		BaseURL:     c.baseURL + path,
		Headers:     c.headers(),
		QueryParams: query,
		Body:        body,
	}
	info := core.RequestInfo{Method: string(method), Path: path, ID: req.Headers["X-Request-ID"]}

	resp, err := c.rest.SendWithContext(ctx, req)
	if err != nil {
		err = errors.Wrapf(err, "%s %s", method, path)
		c.logger.Error("api request failed", err, info, c.sess)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err = parseError(resp)
		if core.FieldErrors(err) != nil {
			c.logger.Info("api request rejected", err, info)
		} else {
			c.logger.Error("api request failed", err, info, c.sess)
		}
		return nil, err
	}

	if strings.TrimSpace(resp.Body) == "" {
		return nil, nil
	}
	var data interface{}
	if err = json.Unmarshal([]byte(resp.Body), &data); err != nil {
		return nil, c.logInvalid(info, err)
	}
	return data, nil
}

// invalidResponse logs and returns a decoding failure found after do returned.
func (c *Client) invalidResponse(method rest.Method, path string, err error) error {
	return c.logInvalid(core.RequestInfo{Method: string(method), Path: path}, err)
}

func (c *Client) logInvalid(info core.RequestInfo, err error) error {
	err = errors.Wrapf(err, "%s %s: decoding response", info.Method, info.Path)
	c.logger.Error("api response invalid", err, info, c.sess)
	return err
}

// parseError reads an error answer. A 400 whose body maps fields to messages becomes a
// *core.ValidationError; bodies like {"error": "..."} or {"message": "..."} give the message.
func parseError(resp *rest.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	var body map[string]interface{}
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		apiErr.Message = strings.TrimSpace(resp.Body)
		return apiErr
	}
	for _, key := range []string{"error", "message", "detail"} {
		if msg, ok := body[key].(string); ok {
			apiErr.Message = msg
			return apiErr
		}
	}

	if resp.StatusCode == http.StatusBadRequest && len(body) > 0 {
		fields := make(map[string]string, len(body))
		for fld, val := range body {
			if msg := firstMessage(val); msg != "" {
				fields[fld] = msg
			}
		}
		if len(fields) > 0 {
			return core.NewFieldValidationError(fields)
		}
	}
	return apiErr
}

// firstMessage returns val when it is a string, or its first string element.
func firstMessage(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case []interface{}:
		for _, item := range v {
			if msg, ok := item.(string); ok {
				return msg
			}
		}
	}
	return ""
}
