package reject_booking_request

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/integrations/notifyservice"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

type mockRequestRepo struct {
	request    *domain.BookingRequest
	rejectedID int64
	reason     string
}

func (m *mockRequestRepo) GetByID(_ context.Context, _ int64) (*domain.BookingRequest, error) {
	return m.request, nil
}

func (m *mockRequestRepo) MarkRejected(_ context.Context, id int64, reason string) error {
	m.rejectedID = id
	m.reason = reason
	return nil
}

type mockNotifyClient struct {
	events []*notifyservice.BookingEvent
}

func (m *mockNotifyClient) SendEventWithGracefulDegradation(_ context.Context, event *notifyservice.BookingEvent) error {
	m.events = append(m.events, event)
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func pendingRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		ID:              10,
		SalonID:         1,
		StaffID:         2,
		RequestedDate:   time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		RequestedTime:   types.TimeString("10:00"),
		DurationMinutes: 30,
		Status:          domain.RequestPending,
		ServiceName:     "Haircut",
	}
}

func TestReject_Success(t *testing.T) {
	requests := &mockRequestRepo{request: pendingRequest()}
	notify := &mockNotifyClient{}

	uc := NewUseCase(requests, notify, &fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RequestID: 10, Reason: "fully booked"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.RequestRejected), resp.Status)
	assert.Equal(t, int64(10), requests.rejectedID)
	assert.Equal(t, "fully booked", requests.reason)

	require.Len(t, notify.events, 1)
	assert.Equal(t, notifyservice.EventRequestRejected, notify.events[0].Type)
	require.NotNil(t, notify.events[0].Reason)
	assert.Equal(t, "fully booked", *notify.events[0].Reason)
}

func TestReject_ConfirmedRequest(t *testing.T) {
	request := pendingRequest()
	request.Status = domain.RequestConfirmed
	requests := &mockRequestRepo{request: request}

	uc := NewUseCase(requests, &mockNotifyClient{}, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 10})
	require.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.Zero(t, requests.rejectedID)
}

func TestReject_ReasonTooLong(t *testing.T) {
	uc := NewUseCase(&mockRequestRepo{}, &mockNotifyClient{}, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RequestID: 10,
		Reason:    strings.Repeat("x", domain.MaxRejectionReasonLength+1),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestReject_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockRequestRepo{}, &mockNotifyClient{}, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}
