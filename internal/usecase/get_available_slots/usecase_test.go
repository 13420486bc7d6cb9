package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	availabilityRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/availability"
	policyRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/policy"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

// Понедельник, далеко впереди относительно testNow
var testDate = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

var testNow = time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (m *mockAppointmentRepo) GetByStaffAndDate(_ context.Context, _ domain.StaffDayFilter) ([]*domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.appointments, nil
}

type mockAvailabilityRepo struct {
	availability *domain.WeeklyAvailability
	err          error
}

func (m *mockAvailabilityRepo) GetByStaffAndWeekday(_ context.Context, _ int64, _ int) (*domain.WeeklyAvailability, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.availability, nil
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

func workdayAvailability() *domain.WeeklyAvailability {
	return &domain.WeeklyAvailability{
		StaffID:     2,
		DayOfWeek:   int(testDate.Weekday()),
		StartTime:   types.TimeString("10:00"),
		EndTime:     types.TimeString("12:00"),
		IsAvailable: true,
	}
}

func newUseCase(appts *mockAppointmentRepo, avail *mockAvailabilityRepo, policies *mockPolicyRepo) *UseCase {
	uc := NewUseCase(appts, avail, policies, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		SalonID:                1,
		StaffID:                2,
		ServiceID:              3,
		Date:                   testDate,
		ServiceDurationMinutes: 30,
	}
}

func TestGetAvailableSlots_FreeDay(t *testing.T) {
	uc := newUseCase(
		&mockAppointmentRepo{},
		&mockAvailabilityRepo{availability: workdayAvailability()},
		&mockPolicyRepo{policy: domain.DefaultPolicy(1)},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Окно 10:00-12:00, услуга 30 минут: старты с 10:00 по 11:30 каждые 15 минут
	expected := []types.TimeString{"10:00", "10:15", "10:30", "10:45", "11:00", "11:15", "11:30"}
	assert.Equal(t, expected, resp.Slots)
}

func TestGetAvailableSlots_ExistingAppointmentBlocks(t *testing.T) {
	appts := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				StartTime:       types.TimeString("10:30"),
				DurationMinutes: 30,
				Status:          domain.AppointmentConfirmed,
			},
		},
	}

	uc := newUseCase(appts,
		&mockAvailabilityRepo{availability: workdayAvailability()},
		&mockPolicyRepo{policy: domain.DefaultPolicy(1)},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Запись 10:30-11:00 выбивает старты 10:15, 10:30 и 10:45
	expected := []types.TimeString{"10:00", "11:00", "11:15", "11:30"}
	assert.Equal(t, expected, resp.Slots)
}

func TestGetAvailableSlots_StaffUnavailable(t *testing.T) {
	uc := newUseCase(
		&mockAppointmentRepo{},
		&mockAvailabilityRepo{err: availabilityRepo.ErrAvailabilityNotFound},
		&mockPolicyRepo{policy: domain.DefaultPolicy(1)},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestGetAvailableSlots_DefaultPolicyFallback(t *testing.T) {
	uc := newUseCase(
		&mockAppointmentRepo{},
		&mockAvailabilityRepo{availability: workdayAvailability()},
		&mockPolicyRepo{err: policyRepo.ErrPolicyNotFound},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
}

func TestGetAvailableSlots_InvalidInput(t *testing.T) {
	uc := newUseCase(&mockAppointmentRepo{}, &mockAvailabilityRepo{}, &mockPolicyRepo{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"zero salon", func(req *Request) { req.SalonID = 0 }},
		{"zero staff", func(req *Request) { req.StaffID = 0 }},
		{"zero date", func(req *Request) { req.Date = time.Time{} }},
		{"duration too short", func(req *Request) { req.ServiceDurationMinutes = 0 }},
		{"duration too long", func(req *Request) { req.ServiceDurationMinutes = 10000 }},
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
