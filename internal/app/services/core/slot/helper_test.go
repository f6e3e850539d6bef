package slot

import (
	"healthlinker-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestConvertWorkingHoursToWeeklyPlan(t *testing.T) {
	t.Run("valid template", func(t *testing.T) {
		plan, err := ConvertWorkingHoursToWeeklyPlan([]models.WorkingHour{
			{Day: "Monday", StartTime: "09:00", EndTime: "12:00"},
			{Day: "Friday", StartTime: "13:30", EndTime: "17:00"},
		})
		require.NoError(t, err)
		assert.Equal(t, []dayWindow{{Start: clock{H: 9}, End: clock{H: 12}}}, plan.Monday)
		assert.Equal(t, []dayWindow{{Start: clock{H: 13, M: 30}, End: clock{H: 17}}}, plan.Friday)
		assert.Empty(t, plan.Tuesday)
		assert.False(t, plan.IsEmpty())
	})

	cases := []struct {
		name  string
		hours []models.WorkingHour
	}{
		{"unknown day", []models.WorkingHour{{Day: "Funday", StartTime: "09:00", EndTime: "10:00"}}},
		{"bad start", []models.WorkingHour{{Day: "Monday", StartTime: "9am", EndTime: "10:00"}}},
		{"bad end", []models.WorkingHour{{Day: "Monday", StartTime: "09:00", EndTime: "25:00"}}},
		{"start after end", []models.WorkingHour{{Day: "Monday", StartTime: "17:00", EndTime: "09:00"}}},
		{"start equals end", []models.WorkingHour{{Day: "Monday", StartTime: "09:00", EndTime: "09:00"}}},
		{"duplicate day", []models.WorkingHour{
			{Day: "Monday", StartTime: "09:00", EndTime: "10:00"},
			{Day: "Monday", StartTime: "14:00", EndTime: "15:00"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ConvertWorkingHoursToWeeklyPlan(tc.hours)
			assert.Error(t, err)
		})
	}

	t.Run("empty template", func(t *testing.T) {
		plan, err := ConvertWorkingHoursToWeeklyPlan(nil)
		require.NoError(t, err)
		assert.True(t, plan.IsEmpty())
	})
}

func TestGenerateIntervals(t *testing.T) {
	loc := time.UTC
	// 2024-01-01 is a Monday.
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)

	t.Run("one hour window at thirty minutes", func(t *testing.T) {
		plan, err := ConvertWorkingHoursToWeeklyPlan([]models.WorkingHour{
			{Day: "Monday", StartTime: "09:00", EndTime: "10:00"},
		})
		require.NoError(t, err)

		got := GenerateIntervals(plan, 30, monday, monday, loc)
		require.Len(t, got, 2)
		assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, loc), got[0].Start)
		assert.Equal(t, time.Date(2024, 1, 1, 9, 30, 0, 0, loc), got[0].End)
		assert.Equal(t, time.Date(2024, 1, 1, 9, 30, 0, 0, loc), got[1].Start)
		assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, loc), got[1].End)
	})

	t.Run("partial trailing slot is dropped", func(t *testing.T) {
		plan, err := ConvertWorkingHoursToWeeklyPlan([]models.WorkingHour{
			{Day: "Monday", StartTime: "09:00", EndTime: "10:45"},
		})
		require.NoError(t, err)

		got := GenerateIntervals(plan, 30, monday, monday, loc)
		require.Len(t, got, 3)
		assert.Equal(t, time.Date(2024, 1, 1, 10, 30, 0, 0, loc), got[2].End)
	})

	t.Run("day without template yields nothing", func(t *testing.T) {
		plan, err := ConvertWorkingHoursToWeeklyPlan([]models.WorkingHour{
			{Day: "Monday", StartTime: "09:00", EndTime: "10:00"},
		})
		require.NoError(t, err)

		tuesday := monday.AddDate(0, 0, 1)
		assert.Empty(t, GenerateIntervals(plan, 30, tuesday, tuesday, loc))
	})

	t.Run("range is inclusive of both ends", func(t *testing.T) {
		plan, err := ConvertWorkingHoursToWeeklyPlan([]models.WorkingHour{
			{Day: "Monday", StartTime: "09:00", EndTime: "10:00"},
			{Day: "Wednesday", StartTime: "09:00", EndTime: "10:00"},
		})
		require.NoError(t, err)

		wednesday := monday.AddDate(0, 0, 2)
		got := GenerateIntervals(plan, 60, monday, wednesday, loc)
		require.Len(t, got, 2)
		assert.Equal(t, time.Monday, got[0].Start.Weekday())
		assert.Equal(t, time.Wednesday, got[1].Start.Weekday())
	})

	t.Run("non positive duration yields nothing", func(t *testing.T) {
		plan, err := ConvertWorkingHoursToWeeklyPlan([]models.WorkingHour{
			{Day: "Monday", StartTime: "09:00", EndTime: "10:00"},
		})
		require.NoError(t, err)
		assert.Empty(t, GenerateIntervals(plan, 0, monday, monday, loc))
	})
}

func TestExcludeBookedIntervals(t *testing.T) {
	loc := time.UTC
	at := func(h, m int) time.Time { return time.Date(2024, 1, 1, h, m, 0, 0, loc) }

	intervals := []Interval{
		{Start: at(9, 0), End: at(9, 30)},
		{Start: at(9, 30), End: at(10, 0)},
		{Start: at(10, 0), End: at(10, 30)},
	}
	booked := []models.Slot{
		{StartTime: at(9, 15), EndTime: at(9, 45), IsBooked: true},
	}

	got := excludeBookedIntervals(intervals, booked)
	require.Len(t, got, 1)
	assert.Equal(t, at(10, 0), got[0].Start)
}

func TestBuildSlots(t *testing.T) {
	loc := time.UTC
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, loc)
	slots := buildSlots(primitive.NewObjectID(), []Interval{{Start: start, End: start.Add(30 * time.Minute)}}, loc)

	require.Len(t, slots, 1)
	assert.False(t, slots[0].IsBooked)
	assert.Nil(t, slots[0].PatientID)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, loc), slots[0].Date)
	assert.False(t, slots[0].CreatedAt.IsZero())
}
