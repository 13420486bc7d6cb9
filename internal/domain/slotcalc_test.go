package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAhmed11/KK-BookingService/pkg/ptr"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

// monday 2025-11-03
var testDate = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

func mondayAvailability(start, end types.TimeString) *WeeklyAvailability {
	return &WeeklyAvailability{
		StaffID:     1,
		DayOfWeek:   int(time.Monday),
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	}
}

func openPolicy() *BookingPolicy {
	return &BookingPolicy{
		SalonID:           1,
		MinAdvanceHours:   0,
		MaxAdvanceDays:    30,
		BufferMinutes:     0,
		CancellationHours: 24,
		AllowGuestBooking: true,
	}
}

func confirmedAppointment(start types.TimeString, durationMinutes int) *Appointment {
	return &Appointment{
		StaffID:         1,
		Date:            testDate,
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Status:          AppointmentConfirmed,
	}
}

func TestComputeAvailableStarts_FullDay(t *testing.T) {
	// Мастер работает 09:00-17:00, записей нет, услуга 30 минут:
	// слоты 09:00, 09:15, ..., 16:30 (последний, чей конец <= 17:00)
	starts, err := ComputeAvailableStarts(SlotInput{
		Date:                   testDate,
		Now:                    testDate.AddDate(0, 0, -1),
		ServiceDurationMinutes: 30,
		Availability:           mondayAvailability("09:00", "17:00"),
		Policy:                 openPolicy(),
	})
	require.NoError(t, err)

	require.Len(t, starts, 31)
	assert.Equal(t, types.TimeString("09:00"), starts[0])
	assert.Equal(t, types.TimeString("09:15"), starts[1])
	assert.Equal(t, types.TimeString("16:30"), starts[len(starts)-1])

	// Упорядоченность по возрастанию
	for i := 1; i < len(starts); i++ {
		assert.True(t, starts[i-1].IsBefore(starts[i]))
	}
}

func TestComputeAvailableStarts_BufferBlocksNeighbours(t *testing.T) {
	// Подтверждённая запись 10:00-10:30 с буфером 15 минут выбивает
	// старты 09:15..10:30, 09:00 и 10:45 остаются доступными
	policy := openPolicy()
	policy.BufferMinutes = 15

	starts, err := ComputeAvailableStarts(SlotInput{
		Date:                   testDate,
		Now:                    testDate.AddDate(0, 0, -1),
		ServiceDurationMinutes: 30,
		Availability:           mondayAvailability("09:00", "17:00"),
		Policy:                 policy,
		Appointments:           []*Appointment{confirmedAppointment("10:00", 30)},
	})
	require.NoError(t, err)

	set := make(map[types.TimeString]bool, len(starts))
	for _, s := range starts {
		set[s] = true
	}

	assert.True(t, set["09:00"])
	for _, blocked := range []types.TimeString{"09:15", "09:30", "09:45", "10:00", "10:15", "10:30"} {
		assert.False(t, set[blocked], "start %s must be blocked", blocked)
	}
	assert.True(t, set["10:45"])
}

func TestComputeAvailableStarts_MinAdvanceHours(t *testing.T) {
	// now = 10:00 того же дня, minAdvanceHours = 2: слоты раньше 12:00 не выдаются
	policy := openPolicy()
	policy.MinAdvanceHours = 2

	starts, err := ComputeAvailableStarts(SlotInput{
		Date:                   testDate,
		Now:                    time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
		ServiceDurationMinutes: 30,
		Availability:           mondayAvailability("09:00", "17:00"),
		Policy:                 policy,
	})
	require.NoError(t, err)

	require.NotEmpty(t, starts)
	assert.Equal(t, types.TimeString("12:00"), starts[0])
}

func TestComputeAvailableStarts_MinAdvanceCrossesMidnight(t *testing.T) {
	// Вечером накануне с minAdvanceHours = 12 утренние слоты следующего
	// дня тоже отфильтровываются
	policy := openPolicy()
	policy.MinAdvanceHours = 12

	starts, err := ComputeAvailableStarts(SlotInput{
		Date:                   testDate,
		Now:                    time.Date(2025, 11, 2, 23, 0, 0, 0, time.UTC),
		ServiceDurationMinutes: 30,
		Availability:           mondayAvailability("09:00", "17:00"),
		Policy:                 policy,
	})
	require.NoError(t, err)

	require.NotEmpty(t, starts)
	assert.Equal(t, types.TimeString("11:00"), starts[0])
}

func TestComputeAvailableStarts_MaxAdvanceDays(t *testing.T) {
	policy := openPolicy()
	policy.MaxAdvanceDays = 7

	// Дата за горизонтом бронирования - пустой список
	starts, err := ComputeAvailableStarts(SlotInput{
		Date:                   testDate.AddDate(0, 0, 8),
		Now:                    testDate,
		ServiceDurationMinutes: 30,
		Availability:           mondayAvailability("09:00", "17:00"),
		Policy:                 policy,
	})
	require.NoError(t, err)
	assert.Empty(t, starts)

	// Ровно на границе - слоты есть
	// (+7 дней от понедельника - снова понедельник)
	starts, err = ComputeAvailableStarts(SlotInput{
		Date:                   testDate.AddDate(0, 0, 7),
		Now:                    testDate,
		ServiceDurationMinutes: 30,
		Availability:           mondayAvailability("09:00", "17:00"),
		Policy:                 policy,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, starts)
}

func TestComputeAvailableStarts_UnavailableDay(t *testing.T) {
	av := mondayAvailability("09:00", "17:00")
	av.IsAvailable = false

	starts, err := ComputeAvailableStarts(SlotInput{
		Date:                   testDate,
		Now:                    testDate.AddDate(0, 0, -1),
		ServiceDurationMinutes: 30,
		Availability:           av,
		Policy:                 openPolicy(),
	})
	require.NoError(t, err)
	assert.Empty(t, starts)

	// Отсутствие записи доступности эквивалентно недоступному дню
	starts, err = ComputeAvailableStarts(SlotInput{
		Date:                   testDate,
		Now:                    testDate.AddDate(0, 0, -1),
		ServiceDurationMinutes: 30,
		Availability:           nil,
		Policy:                 openPolicy(),
	})
	require.NoError(t, err)
	assert.Empty(t, starts)
}

func TestComputeAvailableStarts_DateInPast(t *testing.T) {
	starts, err := ComputeAvailableStarts(SlotInput{
		Date:                   testDate,
		Now:                    testDate.AddDate(0, 0, 1),
		ServiceDurationMinutes: 30,
		Availability:           mondayAvailability("09:00", "17:00"),
		Policy:                 openPolicy(),
	})
	require.NoError(t, err)
	assert.Empty(t, starts)
}

func TestComputeAvailableStarts_DurationLongerThanWindow(t *testing.T) {
	starts, err := ComputeAvailableStarts(SlotInput{
		Date:                   testDate,
		Now:                    testDate.AddDate(0, 0, -1),
		ServiceDurationMinutes: 10 * 60,
		Availability:           mondayAvailability("09:00", "17:00"),
		Policy:                 openPolicy(),
	})
	require.NoError(t, err)
	assert.Empty(t, starts)
}

func TestComputeAvailableStarts_InvalidConfiguration(t *testing.T) {
	badWindow := mondayAvailability("17:00", "09:00")

	tests := []struct {
		name string
		in   SlotInput
	}{
		{
			name: "non-positive duration",
			in: SlotInput{
				Date:                   testDate,
				Now:                    testDate,
				ServiceDurationMinutes: 0,
				Availability:           mondayAvailability("09:00", "17:00"),
				Policy:                 openPolicy(),
			},
		},
		{
			name: "start after end",
			in: SlotInput{
				Date:                   testDate,
				Now:                    testDate,
				ServiceDurationMinutes: 30,
				Availability:           badWindow,
				Policy:                 openPolicy(),
			},
		},
		{
			name: "missing policy",
			in: SlotInput{
				Date:                   testDate,
				Now:                    testDate,
				ServiceDurationMinutes: 30,
				Availability:           mondayAvailability("09:00", "17:00"),
			},
		},
		{
			name: "negative buffer",
			in: SlotInput{
				Date:                   testDate,
				Now:                    testDate,
				ServiceDurationMinutes: 30,
				Availability:           mondayAvailability("09:00", "17:00"),
				Policy: &BookingPolicy{
					SalonID:        1,
					BufferMinutes:  -5,
					MaxAdvanceDays: 7,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeAvailableStarts(tt.in)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestComputeAvailableStarts_Deterministic(t *testing.T) {
	in := SlotInput{
		Date:                   testDate,
		Now:                    time.Date(2025, 11, 3, 8, 30, 0, 0, time.UTC),
		ServiceDurationMinutes: 45,
		Availability:           mondayAvailability("09:00", "17:00"),
		Policy:                 openPolicy(),
		Appointments: []*Appointment{
			confirmedAppointment("11:00", 60),
			confirmedAppointment("15:30", 30),
		},
	}

	first, err := ComputeAvailableStarts(in)
	require.NoError(t, err)
	second, err := ComputeAvailableStarts(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeAvailableStarts_IgnoresInactiveAppointments(t *testing.T) {
	cancelled := confirmedAppointment("10:00", 30)
	cancelled.Status = AppointmentCancelled
	completed := confirmedAppointment("11:00", 30)
	completed.Status = AppointmentCompleted

	starts, err := ComputeAvailableStarts(SlotInput{
		Date:                   testDate,
		Now:                    testDate.AddDate(0, 0, -1),
		ServiceDurationMinutes: 30,
		Availability:           mondayAvailability("09:00", "17:00"),
		Policy:                 openPolicy(),
		Appointments:           []*Appointment{cancelled, completed},
	})
	require.NoError(t, err)
	assert.Len(t, starts, 31)
}

func TestStartBlocked_PendingCountsAsActive(t *testing.T) {
	pending := confirmedAppointment("10:00", 30)
	pending.Status = AppointmentPending

	assert.True(t, StartBlocked("10:00", 30, 0, []*Appointment{pending}))
	assert.False(t, StartBlocked("10:30", 30, 0, []*Appointment{pending}))
	assert.True(t, StartBlocked("10:30", 30, 15, []*Appointment{pending}))
}

func TestBookingRequest_Transitions(t *testing.T) {
	r := &BookingRequest{Status: RequestPending, ClientID: ptr.Ptr(int64(7))}
	assert.True(t, r.CanBeConfirmed())
	assert.True(t, r.CanBeRejected())
	assert.True(t, r.CanBeCancelled())
	assert.False(t, r.IsGuest())

	r.Status = RequestConfirmed
	assert.False(t, r.CanBeConfirmed())
	assert.False(t, r.CanBeRejected())
	assert.True(t, r.CanBeCancelled())

	for _, terminal := range []RequestStatus{RequestRejected, RequestCancelled} {
		r.Status = terminal
		assert.False(t, r.CanBeConfirmed())
		assert.False(t, r.CanBeRejected())
		assert.False(t, r.CanBeCancelled())
	}
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	a := &Appointment{Status: AppointmentPending}
	assert.True(t, a.CanTransitionTo(AppointmentConfirmed))
	assert.True(t, a.CanTransitionTo(AppointmentCancelled))

	a.Status = AppointmentConfirmed
	assert.False(t, a.CanTransitionTo(AppointmentConfirmed))
	assert.True(t, a.CanTransitionTo(AppointmentCompleted))

	a.Status = AppointmentCompleted
	assert.False(t, a.CanTransitionTo(AppointmentCancelled))
	a.Status = AppointmentCancelled
	assert.False(t, a.CanTransitionTo(AppointmentConfirmed))
}
