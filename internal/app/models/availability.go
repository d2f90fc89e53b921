package models

import (
	"fmt"
	"strings"
	"therapyconnect-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const daysInWeek = 7

var weekdayNames = [daysInWeek]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
var weekdayAbbreviations = [daysInWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return constvars.ResponseUnknown
	}
	return weekdayNames[d]
}

func (d Weekday) Abbreviation() string {
	if d < Monday || d > Sunday {
		return constvars.ResponseUnknown
	}
	return weekdayAbbreviations[d]
}

func ParseWeekday(name string) (Weekday, bool) {
	for i, weekdayName := range weekdayNames {
		if strings.EqualFold(weekdayName, name) {
			return Weekday(i), true
		}
	}
	return 0, false
}

type TimeOfDay int

const (
	Morning TimeOfDay = iota
	Afternoon
	Evening
)

const slotsPerDay = 3

var timeOfDayNames = [slotsPerDay]string{"morning", "afternoon", "evening"}
var timeOfDayClock = [slotsPerDay]string{constvars.SlotTimeMorning, constvars.SlotTimeAfternoon, constvars.SlotTimeEvening}

func (t TimeOfDay) String() string {
	if t < Morning || t > Evening {
		return constvars.ResponseUnknown
	}
	return timeOfDayNames[t]
}

func (t TimeOfDay) Clock() string {
	if t < Morning || t > Evening {
		return constvars.ResponseUnknown
	}
	return timeOfDayClock[t]
}

func ParseTimeOfDay(name string) (TimeOfDay, bool) {
	for i, timeOfDayName := range timeOfDayNames {
		if strings.EqualFold(timeOfDayName, name) {
			return TimeOfDay(i), true
		}
	}
	return 0, false
}

func WeekdayNames() []string {
	return append([]string(nil), weekdayNames[:]...)
}

func TimeOfDayNames() []string {
	return append([]string(nil), timeOfDayNames[:]...)
}

// AvailabilityGrid marks which part of each weekday a therapist works.
type AvailabilityGrid [daysInWeek][slotsPerDay]bool

func (g *AvailabilityGrid) Set(day Weekday, slot TimeOfDay, available bool) {
	g[day][slot] = available
}

func (g AvailabilityGrid) IsAvailable(day Weekday, slot TimeOfDay) bool {
	return g[day][slot]
}

func (g AvailabilityGrid) HasAnySlot() bool {
	for _, day := range g {
		for _, available := range day {
			if available {
				return true
			}
		}
	}
	return false
}

// Slots lists the selected cells as "Mon 09:00" style strings, ordered by
// weekday and then by time of day.
func (g AvailabilityGrid) Slots() []string {
	var slots []string
	for day := Monday; day <= Sunday; day++ {
		for slot := Morning; slot <= Evening; slot++ {
			if g[day][slot] {
				slots = append(slots, fmt.Sprintf(constvars.SlotFormat, day.Abbreviation(), slot.Clock()))
			}
		}
	}
	return slots
}

func (g AvailabilityGrid) ToMap() map[string]map[string]bool {
	result := make(map[string]map[string]bool, daysInWeek)
	for day := Monday; day <= Sunday; day++ {
		slots := make(map[string]bool, slotsPerDay)
		for slot := Morning; slot <= Evening; slot++ {
			slots[slot.String()] = g[day][slot]
		}
		result[day.String()] = slots
	}
	return result
}

func (g AvailabilityGrid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.ToMap())
}

// UnmarshalJSON accepts {"monday":{"morning":true}}. Missing days and slots
// stay false; unknown keys are rejected.
func (g *AvailabilityGrid) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]bool
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var grid AvailabilityGrid
	for dayName, slots := range raw {
		day, ok := ParseWeekday(dayName)
		if !ok {
			return fmt.Errorf("unknown weekday %q", dayName)
		}
		for slotName, available := range slots {
			slot, ok := ParseTimeOfDay(slotName)
			if !ok {
				return fmt.Errorf("unknown time of day %q", slotName)
			}
			grid[day][slot] = available
		}
	}
	*g = grid
	return nil
}
