package submit_booking_request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	availabilityRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/availability"
	policyRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/policy"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/integrations/notifyservice"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/ptr"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

type mockRequestRepo struct {
	created       *domain.BookingRequest
	nextID        int64
	confirmedID   int64
	appointmentID int64
}

func (m *mockRequestRepo) Create(_ context.Context, request *domain.BookingRequest) (*domain.BookingRequest, error) {
	request.ID = m.nextID
	m.created = request
	return request, nil
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

type mockAvailabilityRepo struct {
	availability *domain.WeeklyAvailability
}

func (m *mockAvailabilityRepo) GetByStaffAndWeekday(_ context.Context, _ int64, _ int) (*domain.WeeklyAvailability, error) {
	if m.availability == nil {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	return m.availability, nil
}

type mockPolicyRepo struct {
	policy *domain.BookingPolicy
}

func (m *mockPolicyRepo) GetBySalon(_ context.Context, _ int64) (*domain.BookingPolicy, error) {
	if m.policy == nil {
		return nil, policyRepo.ErrPolicyNotFound
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

// Понедельник
var testDate = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
var testNow = time.Date(2025, 11, 2, 12, 0, 0, 0, time.UTC)

func mondayAvailability() *domain.WeeklyAvailability {
	return &domain.WeeklyAvailability{
		StaffID:     2,
		DayOfWeek:   1,
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("17:00"),
		IsAvailable: true,
	}
}

func validRequest() *Request {
	return &Request{
		SalonID:         1,
		StaffID:         2,
		ServiceID:       3,
		ClientID:        ptr.Ptr(int64(77)),
		RequestedDate:   testDate,
		RequestedTime:   types.TimeString("10:00"),
		DurationMinutes: 30,
		ServiceName:     "Haircut",
	}
}

func newTestUseCase(
	requests *mockRequestRepo,
	appts *mockAppointmentRepo,
	availability *mockAvailabilityRepo,
	policies *mockPolicyRepo,
	notify *mockNotifyClient,
) *UseCase {
	uc := NewUseCase(requests, appts, availability, policies, notify, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestSubmit_PendingWhenConfirmationRequired(t *testing.T) {
	requests := &mockRequestRepo{nextID: 10}
	appts := &mockAppointmentRepo{nextID: 55}
	notify := &mockNotifyClient{}

	uc := newTestUseCase(requests, appts,
		&mockAvailabilityRepo{availability: mondayAvailability()},
		&mockPolicyRepo{policy: domain.DefaultPolicy(1)},
		notify)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.RequestPending), resp.Status)
	assert.Nil(t, resp.AppointmentID)
	assert.Nil(t, appts.created)

	require.Len(t, notify.events, 1)
	assert.Equal(t, notifyservice.EventRequestSubmitted, notify.events[0].Type)
}

func TestSubmit_AutoConfirmWhenConfirmationNotRequired(t *testing.T) {
	requests := &mockRequestRepo{nextID: 10}
	appts := &mockAppointmentRepo{nextID: 55}
	notify := &mockNotifyClient{}

	policy := domain.DefaultPolicy(1)
	policy.ConfirmationRequired = false

	uc := newTestUseCase(requests, appts,
		&mockAvailabilityRepo{availability: mondayAvailability()},
		&mockPolicyRepo{policy: policy},
		notify)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.RequestConfirmed), resp.Status)
	require.NotNil(t, resp.AppointmentID)
	assert.Equal(t, int64(55), *resp.AppointmentID)

	require.NotNil(t, appts.created)
	assert.Equal(t, domain.AppointmentConfirmed, appts.created.Status)
	assert.Equal(t, int64(10), requests.confirmedID)

	require.Len(t, notify.events, 1)
	assert.Equal(t, notifyservice.EventRequestConfirmed, notify.events[0].Type)
}

func TestSubmit_GuestBookingNotAllowed(t *testing.T) {
	policy := domain.DefaultPolicy(1)
	policy.AllowGuestBooking = false

	uc := newTestUseCase(&mockRequestRepo{}, &mockAppointmentRepo{},
		&mockAvailabilityRepo{availability: mondayAvailability()},
		&mockPolicyRepo{policy: policy},
		&mockNotifyClient{})

	req := validRequest()
	req.ClientID = nil
	req.GuestName = ptr.Ptr("Guest")
	req.GuestEmail = ptr.Ptr("guest@example.com")

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrGuestBookingNotAllowed)
}

func TestSubmit_GuestWithDefaultPolicy(t *testing.T) {
	requests := &mockRequestRepo{nextID: 10}

	// Политика не настроена, дефолт разрешает гостевые заявки
	uc := newTestUseCase(requests, &mockAppointmentRepo{},
		&mockAvailabilityRepo{availability: mondayAvailability()},
		&mockPolicyRepo{},
		&mockNotifyClient{})

	req := validRequest()
	req.ClientID = nil
	req.GuestName = ptr.Ptr("Guest")
	req.GuestEmail = ptr.Ptr("guest@example.com")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RequestPending), resp.Status)
	assert.True(t, requests.created.IsGuest())
}

func TestSubmit_SlotTaken(t *testing.T) {
	appts := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				StartTime:       types.TimeString("10:00"),
				DurationMinutes: 30,
				Status:          domain.AppointmentConfirmed,
			},
		},
	}

	uc := newTestUseCase(&mockRequestRepo{}, appts,
		&mockAvailabilityRepo{availability: mondayAvailability()},
		&mockPolicyRepo{policy: domain.DefaultPolicy(1)},
		&mockNotifyClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestSubmit_StaffUnavailable(t *testing.T) {
	uc := newTestUseCase(&mockRequestRepo{}, &mockAppointmentRepo{},
		&mockAvailabilityRepo{},
		&mockPolicyRepo{policy: domain.DefaultPolicy(1)},
		&mockNotifyClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestSubmit_DateTooFarInFuture(t *testing.T) {
	policy := domain.DefaultPolicy(1)
	policy.MaxAdvanceDays = 7

	uc := newTestUseCase(&mockRequestRepo{}, &mockAppointmentRepo{},
		&mockAvailabilityRepo{availability: mondayAvailability()},
		&mockPolicyRepo{policy: policy},
		&mockNotifyClient{})

	req := validRequest()
	req.RequestedDate = testNow.AddDate(0, 0, 8)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestSubmit_TooLateToBook(t *testing.T) {
	policy := domain.DefaultPolicy(1)
	policy.MinAdvanceHours = 2

	uc := newTestUseCase(&mockRequestRepo{}, &mockAppointmentRepo{},
		&mockAvailabilityRepo{availability: mondayAvailability()},
		&mockPolicyRepo{policy: policy},
		&mockNotifyClient{})

	req := validRequest()
	req.RequestedDate = testNow
	req.RequestedTime = types.TimeString("13:00") // now 12:00, порог 14:00

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrTooLateToBook)
}

func TestSubmit_Validation(t *testing.T) {
	uc := newTestUseCase(&mockRequestRepo{}, &mockAppointmentRepo{},
		&mockAvailabilityRepo{availability: mondayAvailability()},
		&mockPolicyRepo{policy: domain.DefaultPolicy(1)},
		&mockNotifyClient{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{
			name:   "missing salon",
			mutate: func(req *Request) { req.SalonID = 0 },
		},
		{
			name:   "zero duration",
			mutate: func(req *Request) { req.DurationMinutes = 0 },
		},
		{
			name: "client and guest at once",
			mutate: func(req *Request) {
				req.GuestName = ptr.Ptr("Guest")
			},
		},
		{
			name: "guest without email",
			mutate: func(req *Request) {
				req.ClientID = nil
				req.GuestName = ptr.Ptr("Guest")
			},
		},
		{
			name: "guest with malformed email",
			mutate: func(req *Request) {
				req.ClientID = nil
				req.GuestName = ptr.Ptr("Guest")
				req.GuestEmail = ptr.Ptr("not-an-email")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
