package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	appointmentRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/appointment"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/schedule/models"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

type mockAvailabilityRepo struct {
	upserted []*domain.WeeklyAvailability
}

func (m *mockAvailabilityRepo) GetByStaff(_ context.Context, _ int64) ([]*domain.WeeklyAvailability, error) {
	return m.upserted, nil
}

func (m *mockAvailabilityRepo) Upsert(_ context.Context, record *domain.WeeklyAvailability) (*domain.WeeklyAvailability, error) {
	m.upserted = append(m.upserted, record)
	return record, nil
}

type mockAppointmentRepo struct {
	appointment   *domain.Appointment
	updatedID     int64
	updatedStatus domain.AppointmentStatus
	cancelledID   int64
	reason        string
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if m.appointment == nil {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return m.appointment, nil
}

func (m *mockAppointmentRepo) GetByStaffAndDate(_ context.Context, _ domain.StaffDayFilter) ([]*domain.Appointment, error) {
	return nil, nil
}

func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	m.updatedID = id
	m.updatedStatus = status
	return nil
}

func (m *mockAppointmentRepo) Cancel(_ context.Context, id int64, reason string, _ bool) error {
	m.cancelledID = id
	m.reason = reason
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(appts *mockAppointmentRepo, availability *mockAvailabilityRepo) *Service {
	return NewService(appts, availability, noopLogger{})
}

func TestUpdateAvailability_MixedTemplate(t *testing.T) {
	availability := &mockAvailabilityRepo{}
	svc := newTestService(&mockAppointmentRepo{}, availability)

	resp, err := svc.UpdateAvailability(context.Background(), &models.UpdateAvailabilityRequest{
		UserID:  1,
		StaffID: 7,
		Days: []models.AvailabilityDay{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsAvailable: true},
			{DayOfWeek: 0, IsAvailable: false},
		},
	})
	require.NoError(t, err)

	require.Len(t, availability.upserted, 2)
	assert.Equal(t, types.TimeString("09:00"), availability.upserted[0].StartTime)
	assert.Equal(t, types.TimeString("18:00"), availability.upserted[0].EndTime)
	// Недоступный день сохраняется без окна
	assert.False(t, availability.upserted[1].IsAvailable)
	assert.Empty(t, availability.upserted[1].StartTime)
	assert.Empty(t, availability.upserted[1].EndTime)

	assert.Equal(t, int64(7), resp.StaffID)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, "09:00", resp.Days[0].StartTime)
	assert.Empty(t, resp.Days[1].StartTime)
}

func TestUpdateAvailability_DuplicateDay(t *testing.T) {
	availability := &mockAvailabilityRepo{}
	svc := newTestService(&mockAppointmentRepo{}, availability)

	_, err := svc.UpdateAvailability(context.Background(), &models.UpdateAvailabilityRequest{
		UserID:  1,
		StaffID: 7,
		Days: []models.AvailabilityDay{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsAvailable: true},
			{DayOfWeek: 1, StartTime: "10:00", EndTime: "19:00", IsAvailable: true},
		},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, availability.upserted)
}

func TestUpdateAvailability_InvalidInput(t *testing.T) {
	testCases := []struct {
		name    string
		staffID int64
		days    []models.AvailabilityDay
	}{
		{
			name:    "non-positive staff id",
			staffID: 0,
			days:    []models.AvailabilityDay{{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsAvailable: true}},
		},
		{
			name:    "empty days",
			staffID: 7,
			days:    []models.AvailabilityDay{},
		},
		{
			name:    "inverted window",
			staffID: 7,
			days:    []models.AvailabilityDay{{DayOfWeek: 1, StartTime: "18:00", EndTime: "09:00", IsAvailable: true}},
		},
		{
			name:    "available day without window",
			staffID: 7,
			days:    []models.AvailabilityDay{{DayOfWeek: 1, IsAvailable: true}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			availability := &mockAvailabilityRepo{}
			svc := newTestService(&mockAppointmentRepo{}, availability)

			_, err := svc.UpdateAvailability(context.Background(), &models.UpdateAvailabilityRequest{
				UserID:  1,
				StaffID: tc.staffID,
				Days:    tc.days,
			})
			require.ErrorIs(t, err, ErrInvalidInput)
			// Валидация идёт до первого upsert-а
			assert.Empty(t, availability.upserted)
		})
	}
}

func TestUpdateAppointmentStatus_Complete(t *testing.T) {
	appts := &mockAppointmentRepo{appointment: &domain.Appointment{
		ID:              42,
		SalonID:         1,
		StaffID:         7,
		ServiceID:       3,
		Date:            time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 30,
		Status:          domain.AppointmentConfirmed,
		ServiceName:     "Haircut",
	}}
	svc := newTestService(appts, &mockAvailabilityRepo{})

	resp, err := svc.UpdateAppointmentStatus(context.Background(), 42, &models.UpdateAppointmentStatusRequest{
		UserID: 1,
		Status: string(domain.AppointmentCompleted),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), appts.updatedID)
	assert.Equal(t, domain.AppointmentCompleted, appts.updatedStatus)
	assert.Equal(t, string(domain.AppointmentCompleted), resp.Status)
}

func TestUpdateAppointmentStatus_TerminalAppointment(t *testing.T) {
	appts := &mockAppointmentRepo{appointment: &domain.Appointment{
		ID:              42,
		Date:            time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 30,
		Status:          domain.AppointmentCompleted,
	}}
	svc := newTestService(appts, &mockAvailabilityRepo{})

	_, err := svc.UpdateAppointmentStatus(context.Background(), 42, &models.UpdateAppointmentStatusRequest{
		UserID: 1,
		Status: string(domain.AppointmentCancelled),
	})
	require.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Zero(t, appts.cancelledID)
}

func TestUpdateAppointmentStatus_NotFound(t *testing.T) {
	svc := newTestService(&mockAppointmentRepo{}, &mockAvailabilityRepo{})

	_, err := svc.UpdateAppointmentStatus(context.Background(), 404, &models.UpdateAppointmentStatusRequest{
		UserID: 1,
		Status: string(domain.AppointmentCompleted),
	})
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}
