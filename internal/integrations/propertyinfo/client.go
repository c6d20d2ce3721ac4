package propertyinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с property-information сервисом
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента property-information сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProperty получает информацию об объекте по его ID
func (c *Client) GetProperty(ctx context.Context, propertyID string) (*PropertyResponse, error) {
	url := fmt.Sprintf("%s/homes/%s", c.baseURL, propertyID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var property PropertyResponse
	if err := json.NewDecoder(resp.Body).Decode(&property); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &property, nil
}

// IsSelfServeAllowed проверяет, разрешены ли самостоятельные туры по объекту.
// Любой сбой транспорта, парсинга или отсутствие флага в ответе сводится к
// ErrUnavailable: движок туров на такой результат отвечает отказом.
func (c *Client) IsSelfServeAllowed(ctx context.Context, propertyID string) (bool, error) {
	property, err := c.GetProperty(ctx, propertyID)
	if err != nil {
		c.log.Error("PropertyInfo unavailable for property_id=%s: %v", propertyID, err)
		return false, fmt.Errorf("%w: property_id=%s: %v", ErrUnavailable, propertyID, err)
	}

	if property.ListingInfo == nil || property.ListingInfo.IsSelfServeVisitsAllowed == nil {
		c.log.Warn("PropertyInfo response has no visit policy flag for property_id=%s", propertyID)
		return false, fmt.Errorf("%w: property_id=%s: missing visit policy flag", ErrUnavailable, propertyID)
	}

	return *property.ListingInfo.IsSelfServeVisitsAllowed, nil
}
