package tomtom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/routing-gateway/internal/config"
	"github.com/routing-gateway/internal/domain"
	"github.com/routing-gateway/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewTomTomClient создает транспорт до TomTom Routing API. Повторов нет,
// таймаут только тот, что задан в конфиге.
func NewTomTomClient(cfg *config.TomTomConfig, logger *zap.Logger) repository.RoutingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// Do выполняет запрос и возвращает сырой ответ. Статус ответа не интерпретируется.
func (c *client) Do(ctx context.Context, req *domain.HTTPRequest) (*domain.RawResponse, error) {
	endpoint, err := url.Parse(c.baseURL + req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	query := url.Values{}
	for k, v := range req.Params {
		query.Set(k, v)
	}
	endpoint.RawQuery = query.Encode()

	var body io.Reader
	if req.HasBody() {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	// query содержит ключ, поэтому в логах только путь
	c.logger.Debug("Calling TomTom Routing API",
		zap.String("mode", string(req.Mode)),
		zap.String("method", req.Method),
		zap.String("path", req.Path))

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "*/*")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Failed to execute request",
			zap.String("mode", string(req.Mode)),
			zap.String("path", req.Path),
			zap.Error(redact(err)))
		return nil, &domain.TransportError{Method: req.Method, URL: c.baseURL + req.Path, Err: redact(err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read response body",
			zap.String("mode", string(req.Mode)),
			zap.Error(err))
		return nil, &domain.TransportError{Method: req.Method, URL: c.baseURL + req.Path, Err: err}
	}

	c.logger.Debug("TomTom Routing API responded",
		zap.String("mode", string(req.Mode)),
		zap.Int("status_code", resp.StatusCode),
		zap.Int("body_bytes", len(raw)))

	return &domain.RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       string(raw),
	}, nil
}

// redact убирает полный URL с ключом из *url.Error
func redact(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Err
	}
	return err
}
