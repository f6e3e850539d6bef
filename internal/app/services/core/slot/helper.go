package slot

import (
	"fmt"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConvertWorkingHoursToWeeklyPlan maps stored working-hour templates to a WeeklyPlan.
// It fails fast on the first invalid entry so profile writes and slot generation agree
// on what a valid template is.
func ConvertWorkingHoursToWeeklyPlan(hours []models.WorkingHour) (WeeklyPlan, error) {
	var wp WeeklyPlan
	for i, wh := range hours {
		wd, ok := utils.ParseWeekday(wh.Day)
		if !ok {
			return WeeklyPlan{}, fmt.Errorf("workingHours[%d]: unknown day '%s'", i, wh.Day)
		}
		start, ok := parseClock(wh.StartTime)
		if !ok {
			return WeeklyPlan{}, fmt.Errorf("workingHours[%d]: invalid start time '%s'", i, wh.StartTime)
		}
		end, ok := parseClock(wh.EndTime)
		if !ok {
			return WeeklyPlan{}, fmt.Errorf("workingHours[%d]: invalid end time '%s'", i, wh.EndTime)
		}
		if !validWindow(start, end) {
			return WeeklyPlan{}, fmt.Errorf("workingHours[%d]: start >= end (%02d:%02d >= %02d:%02d)", i, start.H, start.M, end.H, end.M)
		}

		windows := wp.windowsFor(wd)
		if len(*windows) > 0 {
			return WeeklyPlan{}, fmt.Errorf("workingHours[%d]: duplicate day '%s'", i, wh.Day)
		}
		*windows = append(*windows, dayWindow{Start: start, End: end})
	}
	return wp, nil
}

func parseClock(s string) (clock, bool) {
	h, m, err := utils.ParseClock(s)
	if err != nil {
		return clock{}, false
	}
	return clock{H: h, M: m}, true
}

func validWindow(a, b clock) bool {
	return a.minutes() < b.minutes()
}

// GenerateIntervals walks every calendar day in [start, end] (inclusive, in loc) and emits
// back-to-back slots of slotMinutes inside that weekday's window. A trailing partial slot
// is dropped.
func GenerateIntervals(plan WeeklyPlan, slotMinutes int, start, end time.Time, loc *time.Location) []Interval {
	if loc == nil {
		loc = time.Local
	}
	if slotMinutes <= 0 {
		return nil
	}

	first := utils.StartOfDay(start.In(loc))
	last := utils.StartOfDay(end.In(loc))

	var out []Interval
	for day := first; !day.After(last); day = utils.NextDay(day) {
		out = append(out, generateSlotsForDayWindows(day, loc, plan.forWeekday(day.Weekday()), slotMinutes)...)
	}
	return out
}

func generateSlotsBetween(start, end time.Time, slotMinutes int) []Interval {
	if slotMinutes <= 0 {
		return nil
	}
	lenSlot := time.Duration(slotMinutes) * time.Minute
	var out []Interval
	for t := start; ; t = t.Add(lenSlot) {
		if t.Add(lenSlot).After(end) {
			break
		}
		out = append(out, Interval{Start: t, End: t.Add(lenSlot)})
	}
	return out
}

func generateSlotsForDayWindows(day time.Time, tz *time.Location, windows []dayWindow, slotMinutes int) []Interval {
	if tz == nil {
		tz = time.Local
	}
	var out []Interval
	for _, w := range windows {
		dayStart := atClock(day, w.Start.H, w.Start.M, tz)
		dayEnd := atClock(day, w.End.H, w.End.M, tz)
		out = append(out, generateSlotsBetween(dayStart, dayEnd, slotMinutes)...)
	}
	return out
}

func atClock(day time.Time, h, m int, loc *time.Location) time.Time {
	d := day.In(loc)
	y, mo, dd := d.Date()
	return time.Date(y, mo, dd, h, m, 0, 0, loc)
}

// excludeBookedIntervals drops generated intervals that overlap a slot a patient already holds.
func excludeBookedIntervals(intervals []Interval, booked []models.Slot) []Interval {
	if len(booked) == 0 {
		return intervals
	}
	out := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		overlaps := false
		for _, b := range booked {
			if iv.Start.Before(b.EndTime) && b.StartTime.Before(iv.End) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			out = append(out, iv)
		}
	}
	return out
}

func buildSlots(doctorID primitive.ObjectID, intervals []Interval, loc *time.Location) []models.Slot {
	slots := make([]models.Slot, 0, len(intervals))
	for _, iv := range intervals {
		s := models.Slot{
			DoctorID:  doctorID,
			StartTime: iv.Start,
			EndTime:   iv.End,
			Date:      utils.StartOfDay(iv.Start.In(loc)),
			IsBooked:  false,
		}
		s.SetCreatedAtUpdatedAt()
		slots = append(slots, s)
	}
	return slots
}
