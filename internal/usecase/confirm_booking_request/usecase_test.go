package confirm_booking_request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	requestRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/bookingrequest"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/integrations/notifyservice"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

type mockRequestRepo struct {
	request       *domain.BookingRequest
	getErr        error
	confirmedID   int64
	appointmentID int64
}

func (m *mockRequestRepo) GetByID(_ context.Context, id int64) (*domain.BookingRequest, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.request, nil
}

func (m *mockRequestRepo) MarkConfirmed(_ context.Context, id int64, appointmentID int64) error {
	m.confirmedID = id
	m.appointmentID = appointmentID
	return nil
}

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
	nextID       int64
}

func (m *mockAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.ID = m.nextID
	m.created = appt
	return appt, nil
}

func (m *mockAppointmentRepo) GetByStaffAndDate(_ context.Context, _ domain.StaffDayFilter) ([]*domain.Appointment, error) {
	return m.appointments, nil
}

type mockPolicyRepo struct {
	policy *domain.BookingPolicy
	err    error
}

func (m *mockPolicyRepo) GetBySalon(_ context.Context, _ int64) (*domain.BookingPolicy, error) {
	if m.err != nil {
		return nil, m.err
	}
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

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func pendingRequest() *domain.BookingRequest {
	clientID := int64(77)
	return &domain.BookingRequest{
		ID:              10,
		SalonID:         1,
		StaffID:         2,
		ServiceID:       3,
		ClientID:        &clientID,
		RequestedDate:   time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		RequestedTime:   types.TimeString("10:00"),
		DurationMinutes: 30,
		Status:          domain.RequestPending,
		ServiceName:     "Haircut",
	}
}

func newUseCase(requests *mockRequestRepo, appts *mockAppointmentRepo, policies *mockPolicyRepo, notify *mockNotifyClient) *UseCase {
	return NewUseCase(requests, appts, policies, notify, &fakeTxManager{}, noopLogger{})
}

func TestConfirm_Success(t *testing.T) {
	requests := &mockRequestRepo{request: pendingRequest()}
	appts := &mockAppointmentRepo{nextID: 55}
	notify := &mockNotifyClient{}

	uc := newUseCase(requests, appts, &mockPolicyRepo{err: nil, policy: domain.DefaultPolicy(1)}, notify)

	resp, err := uc.Execute(context.Background(), &Request{RequestID: 10})
	require.NoError(t, err)

	assert.Equal(t, string(domain.RequestConfirmed), resp.Status)
	assert.Equal(t, int64(55), resp.AppointmentID)
	assert.Equal(t, int64(10), requests.confirmedID)
	assert.Equal(t, int64(55), requests.appointmentID)

	require.NotNil(t, appts.created)
	assert.Equal(t, domain.AppointmentConfirmed, appts.created.Status)
	assert.Equal(t, types.TimeString("10:00"), appts.created.StartTime)

	require.Len(t, notify.events, 1)
	assert.Equal(t, notifyservice.EventRequestConfirmed, notify.events[0].Type)
}

func TestConfirm_SlotConflict_RequestStaysPending(t *testing.T) {
	requests := &mockRequestRepo{request: pendingRequest()}
	// Конкурирующая запись уже заняла 10:00
	appts := &mockAppointmentRepo{
		nextID: 55,
		appointments: []*domain.Appointment{
			{
				StartTime:       types.TimeString("10:00"),
				DurationMinutes: 30,
				Status:          domain.AppointmentConfirmed,
			},
		},
	}
	notify := &mockNotifyClient{}

	uc := newUseCase(requests, appts, &mockPolicyRepo{policy: domain.DefaultPolicy(1)}, notify)

	_, err := uc.Execute(context.Background(), &Request{RequestID: 10})
	require.ErrorIs(t, err, ErrSlotConflict)

	assert.Nil(t, appts.created)
	assert.Zero(t, requests.confirmedID)
	assert.Empty(t, notify.events)
}

func TestConfirm_BufferedConflict(t *testing.T) {
	requests := &mockRequestRepo{request: pendingRequest()}
	// Запись 10:30-11:00 с буфером 15 минут блокирует старт 10:00 для 30-минутной услуги
	appts := &mockAppointmentRepo{
		nextID: 55,
		appointments: []*domain.Appointment{
			{
				StartTime:       types.TimeString("10:30"),
				DurationMinutes: 30,
				Status:          domain.AppointmentConfirmed,
			},
		},
	}
	policy := domain.DefaultPolicy(1)
	policy.BufferMinutes = 15

	uc := newUseCase(requests, appts, &mockPolicyRepo{policy: policy}, &mockNotifyClient{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 10})
	require.ErrorIs(t, err, ErrSlotConflict)
}

func TestConfirm_AlreadyResolved(t *testing.T) {
	request := pendingRequest()
	request.Status = domain.RequestRejected
	requests := &mockRequestRepo{request: request}

	uc := newUseCase(requests, &mockAppointmentRepo{}, &mockPolicyRepo{policy: domain.DefaultPolicy(1)}, &mockNotifyClient{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 10})
	require.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestConfirm_NotFound(t *testing.T) {
	requests := &mockRequestRepo{getErr: requestRepo.ErrRequestNotFound}

	uc := newUseCase(requests, &mockAppointmentRepo{}, &mockPolicyRepo{policy: domain.DefaultPolicy(1)}, &mockNotifyClient{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 404})
	require.ErrorIs(t, err, ErrRequestNotFound)
}

func TestConfirm_InvalidInput(t *testing.T) {
	uc := newUseCase(&mockRequestRepo{}, &mockAppointmentRepo{}, &mockPolicyRepo{}, &mockNotifyClient{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}
