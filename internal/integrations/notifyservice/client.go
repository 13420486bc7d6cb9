package notifyservice

import (
	"bytes"
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
	Error(format string, v ...interface{})
}

// Client клиент для работы с NotifyService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotifyService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendEvent отправляет событие жизненного цикла заявки
func (c *Client) SendEvent(ctx context.Context, event *BookingEvent) error {
	url := fmt.Sprintf("%s/internal/notifications/booking", c.baseURL)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// SendEventWithGracefulDegradation отправляет событие с graceful degradation
// При недоступности NotifyService возвращает ErrServiceDegraded: бронирование
// уже зафиксировано в БД, терять его из-за уведомления нельзя
func (c *Client) SendEventWithGracefulDegradation(ctx context.Context, event *BookingEvent) error {
	c.log.Info("Sending %s event for request_id=%d", event.Type, event.RequestID)

	if err := c.SendEvent(ctx, event); err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("NotifyService unavailable, applying graceful degradation for request_id=%d: %v", event.RequestID, err)
		return fmt.Errorf("%w: request_id=%d, error=%v", ErrServiceDegraded, event.RequestID, err)
	}

	c.log.Info("Successfully sent %s event for request_id=%d", event.Type, event.RequestID)
	return nil
}
