package backend

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"serenity/config"
	"serenity/infras/otel"
	"serenity/shared/constant"
	"serenity/shared/failure"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	apiPrefix = "/api"

	otelAttrMethod = "http.method"
	otelAttrStatus = "http.status_code"

	MessageUnreachable = "Unable to reach the server. Please try again."
)

// ErrUnreachable marks transport and decoding failures, as opposed to errors the backend answered with.
var ErrUnreachable = errors.New("backend unreachable")

// Client talks JSON to the guest-house backend. A non-empty token is sent as a bearer credential.
type Client interface {
	Get(ctx context.Context, path, token string, out any) error
	Post(ctx context.Context, path string, body any, token string, out any) error
	Patch(ctx context.Context, path string, body any, token string, out any) error
	Delete(ctx context.Context, path, token string, out any) error
}

type clientImpl struct {
	http    *http.Client
	baseURL string
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	return &clientImpl{
		http:    &http.Client{Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second},
		baseURL: strings.TrimSuffix(cfg.Backend.BaseURL, "/"),
		otel:    otel,
	}
}

func (c *clientImpl) Get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, token, out)
}

func (c *clientImpl) Post(ctx context.Context, path string, body any, token string, out any) error {
	return c.do(ctx, http.MethodPost, path, body, token, out)
}

func (c *clientImpl) Patch(ctx context.Context, path string, body any, token string, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, token, out)
}

func (c *clientImpl) Delete(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, token, out)
}

func (c *clientImpl) do(ctx context.Context, method, path string, body any, token string, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".backend."+method)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrMethod:                method,
		constant.OtelPathAttributeKey: path,
	})

	var reader io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return failure.InternalError(fmt.Errorf("failed to encode request body: %w", marshalErr))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return failure.InternalError(fmt.Errorf("failed to build request: %w", err))
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	if token != constant.Empty {
		req.Header.Set(constant.RequestHeaderAuthorization, constant.AuthorizationBearerPrefix+token)
	}
	c.otel.Inject(ctx, req.Header)

	res, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")

		return unreachable(err)
	}
	defer res.Body.Close()

	scope.SetAttribute(otelAttrStatus, res.StatusCode)

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return unreachable(fmt.Errorf("failed to read response body: %w", err))
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return answered(res.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err = json.Unmarshal(raw, out); err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("failed to decode backend response")

		return unreachable(fmt.Errorf("failed to decode response body: %w", err))
	}

	return nil
}

type errorBody struct {
	Error string `json:"error"`
}

// answered turns a non-2xx response into a Failure carrying the backend's own message.
func answered(status int, raw []byte) error {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == constant.Empty {
		body.Error = fmt.Sprintf("Request failed: %d", status)
	}

	return &failure.Failure{Code: status, Message: body.Error}
}

type transportError struct {
	cause error
}

func unreachable(cause error) error {
	return &transportError{cause: cause}
}

func (e *transportError) Error() string {
	return MessageUnreachable
}

func (e *transportError) Unwrap() []error {
	return []error{failure.BadGateway(MessageUnreachable), ErrUnreachable, e.cause}
}
