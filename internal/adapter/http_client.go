// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ameledin/go-note-vault/internal/config"
	"github.com/ameledin/go-note-vault/models"
)

const defaultRequestTimeout = 30 * time.Second

type httpAIGateway struct {
	client *resty.Client
}

// NewHTTPAIGateway builds an [AIGateway] backed by an HTTP/REST client
// configured from cfg. The API key is attached as a bearer token to every
// request and never logged.
func NewHTTPAIGateway(cfg config.AI) AIGateway {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIKey)

	return &httpAIGateway{client: cli}
}

type textRequest struct {
	Text string `json:"text"`
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

func (g *httpAIGateway) CheckGrammar(ctx context.Context, text string) ([]models.GrammarIssue, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(textRequest{Text: text}).
		Post("/v1/grammar")
	if err != nil {
		return nil, fmt.Errorf("grammar request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var issues []models.GrammarIssue
	if err = json.Unmarshal(resp.Body(), &issues); err != nil {
		return nil, fmt.Errorf("decode grammar response: %w", err)
	}

	return issues, nil
}

func (g *httpAIGateway) Insights(ctx context.Context, text string) (models.NoteInsight, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(textRequest{Text: text}).
		Post("/v1/insights")
	if err != nil {
		return models.NoteInsight{}, fmt.Errorf("insights request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteInsight{}, err
	}

	var insight models.NoteInsight
	if err = json.Unmarshal(resp.Body(), &insight); err != nil {
		return models.NoteInsight{}, fmt.Errorf("decode insights response: %w", err)
	}

	return insight, nil
}

func (g *httpAIGateway) SuggestTags(ctx context.Context, text string) ([]string, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(textRequest{Text: text}).
		Post("/v1/tags")
	if err != nil {
		return nil, fmt.Errorf("suggest tags request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tags []string
	if err = json.Unmarshal(resp.Body(), &tags); err != nil {
		return nil, fmt.Errorf("decode suggest tags response: %w", err)
	}

	return tags, nil
}

func (g *httpAIGateway) Translate(ctx context.Context, text string, targetLanguage string) (models.Translation, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(translateRequest{Text: text, TargetLanguage: targetLanguage}).
		Post("/v1/translate")
	if err != nil {
		return models.Translation{}, fmt.Errorf("translate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Translation{}, err
	}

	var translation models.Translation
	if err = json.Unmarshal(resp.Body(), &translation); err != nil {
		return models.Translation{}, fmt.Errorf("decode translate response: %w", err)
	}

	return translation, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrGatewayUnavailable
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
