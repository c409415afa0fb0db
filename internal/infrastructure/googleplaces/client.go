package googleplaces

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

	"github.com/places-sync/internal/config"
	"github.com/places-sync/internal/domain"
	"github.com/places-sync/internal/domain/repository"
	"go.uber.org/zap"
)

// minPhoneLength - минимальная длина строки, классифицируемой как номер телефона
const minPhoneLength = 11

type client struct {
	httpClient    *http.Client
	baseURL       string
	legacyBaseURL string
	apiKey        string
	logger        *zap.Logger
}

// NewGooglePlacesClient создает новый клиент для Google Places API
func NewGooglePlacesClient(cfg *config.GoogleConfig, logger *zap.Logger) repository.PlacesAPI {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:       cfg.BaseURL,
		legacyBaseURL: cfg.LegacyBaseURL,
		apiKey:        cfg.APIKey,
		logger:        logger,
	}
}

// Search ищет место по произвольному тексту.
// Номера телефонов (префикс "+", длина >= 11) уходят в legacy endpoint
// findplacefromtext с inputtype=phonenumber, остальное - в searchText нового
// Places API v1. Запрос выполняется ровно один раз, без повторов.
func (c *client) Search(ctx context.Context, text string) domain.Outcome[[]domain.Candidate] {
	if c.apiKey == "" {
		return domain.Fail[[]domain.Candidate]("Server Error")
	}

	if isPhoneNumber(text) {
		return c.searchByPhone(ctx, text)
	}
	return c.searchByText(ctx, text)
}

// Details запрашивает детали места по place_id.
// Набор полей фиксирован (detailFields) и никогда не расширяется до "всех".
func (c *client) Details(ctx context.Context, placeID string) domain.Outcome[domain.RawDetails] {
	if c.apiKey == "" {
		return domain.Fail[domain.RawDetails]("Server Error")
	}

	reqURL := fmt.Sprintf("%s/v1/places/%s?fields=%s&key=%s",
		c.baseURL,
		url.PathEscape(placeID),
		detailFieldMask(),
		c.apiKey,
	)

	payload, errMsg := c.doRequest(ctx, http.MethodGet, reqURL, nil)
	if errMsg != "" {
		return domain.Fail[domain.RawDetails](errMsg)
	}

	c.logger.Debug("Place details fetched",
		zap.String("place_id", placeID))

	return domain.Ok(domain.RawDetails{
		Schema:  domain.SchemaV1,
		Payload: payload,
	})
}

// searchByText выполняет текстовый поиск через Places API v1
func (c *client) searchByText(ctx context.Context, text string) domain.Outcome[[]domain.Candidate] {
	reqURL := fmt.Sprintf("%s/v1/places:searchText?fields=%s&key=%s",
		c.baseURL,
		searchFieldMask(),
		c.apiKey,
	)

	body, err := json.Marshal(map[string]string{"textQuery": text})
	if err != nil {
		return domain.Fail[[]domain.Candidate](fmt.Sprintf("failed to encode request: %v", err))
	}

	payload, errMsg := c.doRequest(ctx, http.MethodPost, reqURL, body)
	if errMsg != "" {
		return domain.Fail[[]domain.Candidate](errMsg)
	}

	// Ответ v1: {places: [{id, displayName: {text}}]}
	candidates := make([]domain.Candidate, 0)
	places, _ := payload["places"].([]interface{})
	for _, p := range places {
		place, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		id, _ := place["id"].(string)
		if id == "" {
			continue
		}
		candidate := domain.Candidate{PlaceID: id}
		if name, ok := place["displayName"].(map[string]interface{}); ok {
			candidate.DisplayName, _ = name["text"].(string)
		}
		candidates = append(candidates, candidate)
	}

	c.logger.Debug("Place search completed",
		zap.String("query", text),
		zap.Int("candidates", len(candidates)))

	return domain.Ok(candidates)
}

// searchByPhone выполняет поиск по номеру телефона через legacy endpoint.
// Новый searchText не принимает inputtype=phonenumber, поэтому телефонные
// запросы остаются на старом API.
func (c *client) searchByPhone(ctx context.Context, phone string) domain.Outcome[[]domain.Candidate] {
	reqURL := fmt.Sprintf("%s/place/findplacefromtext/json?key=%s&inputtype=phonenumber&input=%s",
		c.legacyBaseURL,
		c.apiKey,
		url.QueryEscape(phone),
	)

	payload, errMsg := c.doRequest(ctx, http.MethodGet, reqURL, nil)
	if errMsg != "" {
		return domain.Fail[[]domain.Candidate](errMsg)
	}

	// Ответ legacy: {candidates: [{place_id}]}
	candidates := make([]domain.Candidate, 0)
	rawCandidates, _ := payload["candidates"].([]interface{})
	for _, rc := range rawCandidates {
		candidate, ok := rc.(map[string]interface{})
		if !ok {
			continue
		}
		id, _ := candidate["place_id"].(string)
		if id == "" {
			continue
		}
		name, _ := candidate["name"].(string)
		candidates = append(candidates, domain.Candidate{PlaceID: id, DisplayName: name})
	}

	c.logger.Debug("Phone search completed",
		zap.String("phone", phone),
		zap.Int("candidates", len(candidates)))

	return domain.Ok(candidates)
}

// doRequest выполняет HTTP запрос и декодирует JSON ответ.
// Любой статус кроме 200 и любая транспортная ошибка превращаются в текст
// ошибки; вызывающая сторона оборачивает его в Failure.
func (c *client) doRequest(ctx context.Context, method, reqURL string, body []byte) (map[string]interface{}, string) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Sprintf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Sprintf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Google Places API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, fmt.Sprintf("google places API error: status %d", resp.StatusCode)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Sprintf("failed to decode response: %v", err)
	}

	return payload, ""
}

// isPhoneNumber классифицирует входную строку как номер телефона
func isPhoneNumber(text string) bool {
	return strings.HasPrefix(text, "+") && len(text) >= minPhoneLength
}
