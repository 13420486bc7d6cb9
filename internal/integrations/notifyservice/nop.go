package notifyservice

import "context"

// NopClient используется, когда сервис уведомлений выключен в конфигурации
type NopClient struct {
	log Logger
}

// NewNopClient создает клиента-заглушку
func NewNopClient(log Logger) *NopClient {
	return &NopClient{log: log}
}

// SendEventWithGracefulDegradation пишет событие только в лог
func (c *NopClient) SendEventWithGracefulDegradation(_ context.Context, event *BookingEvent) error {
	c.log.Info("Notifications disabled, skipping %s event for request_id=%d", event.Type, event.RequestID)
	return nil
}
