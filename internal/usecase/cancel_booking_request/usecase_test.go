package cancel_booking_request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/integrations/notifyservice"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/ptr"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

type mockRequestRepo struct {
	request     *domain.BookingRequest
	cancelledID int64
	late        bool
}

func (m *mockRequestRepo) GetByID(_ context.Context, _ int64) (*domain.BookingRequest, error) {
	return m.request, nil
}

func (m *mockRequestRepo) MarkCancelled(_ context.Context, id int64, late bool) error {
	m.cancelledID = id
	m.late = late
	return nil
}

type mockAppointmentRepo struct {
	cancelledID int64
	reason      string
	late        bool
}

func (m *mockAppointmentRepo) Cancel(_ context.Context, id int64, reason string, late bool) error {
	m.cancelledID = id
	m.reason = reason
	m.late = late
	return nil
}

type mockPolicyRepo struct {
	policy *domain.BookingPolicy
}

func (m *mockPolicyRepo) GetBySalon(_ context.Context, _ int64) (*domain.BookingPolicy, error) {
	return m.policy, nil
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

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

func confirmedRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		ID:              10,
		SalonID:         1,
		StaffID:         2,
		ServiceID:       3,
		ClientID:        ptr.Ptr(int64(77)),
		RequestedDate:   testDate,
		RequestedTime:   types.TimeString("10:00"),
		DurationMinutes: 30,
		Status:          domain.RequestConfirmed,
		ServiceName:     "Haircut",
		AppointmentID:   ptr.Ptr(int64(55)),
	}
}

func newTestUseCase(requests *mockRequestRepo, appts *mockAppointmentRepo, now time.Time) (*UseCase, *mockNotifyClient) {
	notify := &mockNotifyClient{}
	uc := NewUseCase(requests, appts,
		&mockPolicyRepo{policy: domain.DefaultPolicy(1)},
		notify, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc, notify
}

func TestCancel_PendingRequest(t *testing.T) {
	request := confirmedRequest()
	request.Status = domain.RequestPending
	request.AppointmentID = nil

	requests := &mockRequestRepo{request: request}
	appts := &mockAppointmentRepo{}
	// За два дня до записи
	uc, notify := newTestUseCase(requests, appts, testDate.AddDate(0, 0, -2))

	resp, err := uc.Execute(context.Background(), &Request{RequestID: 10})
	require.NoError(t, err)

	assert.Equal(t, string(domain.RequestCancelled), resp.Status)
	assert.False(t, resp.LateCancellation)
	assert.Equal(t, int64(10), requests.cancelledID)
	// Записи в журнале не было, отменять нечего
	assert.Zero(t, appts.cancelledID)

	require.Len(t, notify.events, 1)
	assert.Equal(t, notifyservice.EventRequestCancelled, notify.events[0].Type)
}

func TestCancel_ConfirmedRequest_ReleasesAppointment(t *testing.T) {
	requests := &mockRequestRepo{request: confirmedRequest()}
	appts := &mockAppointmentRepo{}
	// За два дня до записи, порог в 24 часа не нарушен
	uc, _ := newTestUseCase(requests, appts, testDate.AddDate(0, 0, -2))

	resp, err := uc.Execute(context.Background(), &Request{RequestID: 10, Reason: "client asked"})
	require.NoError(t, err)

	assert.False(t, resp.LateCancellation)
	assert.Equal(t, int64(55), appts.cancelledID)
	assert.Equal(t, "client asked", appts.reason)
	assert.False(t, appts.late)
}

func TestCancel_LateCancellation_StillAllowed(t *testing.T) {
	requests := &mockRequestRepo{request: confirmedRequest()}
	appts := &mockAppointmentRepo{}
	// За три часа до записи при пороге в 24 часа
	uc, _ := newTestUseCase(requests, appts, testDate.Add(7*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{RequestID: 10})
	require.NoError(t, err)

	// Отмена проходит, но помечается поздней
	assert.Equal(t, string(domain.RequestCancelled), resp.Status)
	assert.True(t, resp.LateCancellation)
	assert.True(t, requests.late)
	assert.True(t, appts.late)
}

func TestCancel_TerminalRequest(t *testing.T) {
	request := confirmedRequest()
	request.Status = domain.RequestRejected

	requests := &mockRequestRepo{request: request}
	uc, notify := newTestUseCase(requests, &mockAppointmentRepo{}, testDate.AddDate(0, 0, -2))

	_, err := uc.Execute(context.Background(), &Request{RequestID: 10})
	require.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.Empty(t, notify.events)
}

func TestCancel_InvalidInput(t *testing.T) {
	uc, _ := newTestUseCase(&mockRequestRepo{}, &mockAppointmentRepo{}, testDate)

	_, err := uc.Execute(context.Background(), &Request{RequestID: -1})
	require.ErrorIs(t, err, ErrInvalidInput)
}
