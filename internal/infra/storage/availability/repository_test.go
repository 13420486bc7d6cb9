package availability

import (
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

func TestWindowValues_UnavailableDayBindsNull(t *testing.T) {
	// Недоступный день приходит из шаблона без окна
	record := &domain.WeeklyAvailability{
		StaffID:     7,
		DayOfWeek:   0,
		IsAvailable: false,
	}
	require.NoError(t, record.Validate())

	start, end := windowValues(record)
	assert.Nil(t, start)
	assert.Nil(t, end)

	// nil проходит конвертацию драйвера как NULL,
	// пустой TimeString через Valuer её не прошёл бы
	converted, err := driver.DefaultParameterConverter.ConvertValue(start)
	require.NoError(t, err)
	assert.Nil(t, converted)

	converted, err = driver.DefaultParameterConverter.ConvertValue(end)
	require.NoError(t, err)
	assert.Nil(t, converted)
}

func TestWindowValues_AvailableDayBindsWindow(t *testing.T) {
	record := &domain.WeeklyAvailability{
		StaffID:     7,
		DayOfWeek:   1,
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("18:00"),
		IsAvailable: true,
	}
	require.NoError(t, record.Validate())

	start, end := windowValues(record)

	converted, err := driver.DefaultParameterConverter.ConvertValue(start)
	require.NoError(t, err)
	assert.Equal(t, "09:00", converted)

	converted, err = driver.DefaultParameterConverter.ConvertValue(end)
	require.NoError(t, err)
	assert.Equal(t, "18:00", converted)
}
