package ownerservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с OwnerService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента OwnerService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetOwner получает владельца календаря по ID
func (c *Client) GetOwner(ctx context.Context, ownerID string) (*CalendarOwner, error) {
	url := fmt.Sprintf("%s/internal/calendar-owners/%s", c.baseURL, ownerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid owner ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrOwnerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var owner CalendarOwner
	if err := json.NewDecoder(resp.Body).Decode(&owner); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &owner, nil
}

// Exists проверяет существование владельца календаря
func (c *Client) Exists(ctx context.Context, ownerID string) (bool, error) {
	_, err := c.GetOwner(ctx, ownerID)
	if err != nil {
		if err == ErrOwnerNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
