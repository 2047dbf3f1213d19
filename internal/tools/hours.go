package tools

import (
	"fmt"
	"strings"
	"time"
)

// DayType names the four schedules a dining week breaks into.
type DayType string

const (
	DayWeekday  DayType = "weekday" // Monday through Thursday
	DayFriday   DayType = "friday"
	DaySaturday DayType = "saturday"
	DaySunday   DayType = "sunday"
)

// PeriodHours is one serving window.
type PeriodHours struct {
	Period string `json:"period"`
	Open   string `json:"open"`
	Close  string `json:"close"`
}

// LocationHours is the weekly schedule for one location. A day type
// with no entry means the location is closed that day.
type LocationHours struct {
	Name string
	Days map[DayType][]PeriodHours
}

// HoursResult reports one location's hours for today.
type HoursResult struct {
	Location    string        `json:"location"`
	Today       string        `json:"today"`
	CurrentTime string        `json:"current_time"`
	Hours       []PeriodHours `json:"hours"`
	Status      string        `json:"status"`
	Note        string        `json:"note"`
}

// LocationStatus is one location's entry in an all-locations report.
type LocationStatus struct {
	Status string        `json:"status"`
	Hours  []PeriodHours `json:"hours,omitempty"`
}

// AllHoursResult reports every location's hours for today.
type AllHoursResult struct {
	Today       string                    `json:"today"`
	CurrentTime string                    `json:"current_time"`
	Locations   map[string]LocationStatus `json:"locations"`
	Note        string                    `json:"note"`
}

// TimeInfo gives the orchestrator temporal context for its
// recommendations.
type TimeInfo struct {
	CurrentTime string  `json:"current_time"`
	DayOfWeek   string  `json:"day_of_week"`
	Date        string  `json:"date"`
	IsWeekend   bool    `json:"is_weekend"`
	DayType     DayType `json:"day_type"`
	Hint        string  `json:"hint"`
}

const (
	clockFormat = "03:04 PM"
	dateFormat  = "January 02, 2006"

	holidayNote = "Hours may vary on holidays. Check NYU Eats for updates."
	timeHint    = "Use this to recommend currently open locations and appropriate meal periods."
)

// StatusUnknown is the ForLocation status for a name that matches no
// known location.
const StatusUnknown = "Unknown"

// Schedule answers hours questions from an immutable per-location
// table. The clock is injected so tests can pin the day.
type Schedule struct {
	locations []LocationHours
	now       func() time.Time
}

// NewSchedule creates a Schedule. A nil locations slice falls back to
// the published campus hours, a nil clock to time.Now.
func NewSchedule(locations []LocationHours, now func() time.Time) *Schedule {
	if locations == nil {
		locations = DefaultHours()
	}
	if now == nil {
		now = time.Now
	}
	return &Schedule{locations: locations, now: now}
}

// NewYorkClock returns a clock pinned to the campus timezone, falling
// back to server local time when tzdata is unavailable.
func NewYorkClock() func() time.Time {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.Now
	}
	return func() time.Time { return time.Now().In(loc) }
}

func dayTypeFor(t time.Time) DayType {
	switch t.Weekday() {
	case time.Friday:
		return DayFriday
	case time.Saturday:
		return DaySaturday
	case time.Sunday:
		return DaySunday
	}
	return DayWeekday
}

// ForLocation looks up today's hours for the first location whose name
// contains the given text, case-insensitively. An unmatched name
// yields an Unknown status rather than an error so the caller can
// recover.
func (s *Schedule) ForLocation(location string) HoursResult {
	now := s.now()
	dayType := dayTypeFor(now)
	needle := strings.ToLower(location)

	for _, loc := range s.locations {
		if !strings.Contains(strings.ToLower(loc.Name), needle) {
			continue
		}

		today, open := loc.Days[dayType]
		if !open {
			return HoursResult{
				Location:    loc.Name,
				Today:       now.Weekday().String(),
				CurrentTime: now.Format(clockFormat),
				Status:      "CLOSED today",
				Note:        fmt.Sprintf("%s is closed on %ss.", loc.Name, now.Weekday()),
			}
		}

		return HoursResult{
			Location:    loc.Name,
			Today:       now.Weekday().String(),
			CurrentTime: now.Format(clockFormat),
			Hours:       today,
			Status:      "Open today",
			Note:        holidayNote,
		}
	}

	return HoursResult{
		Location:    location,
		Today:       now.Weekday().String(),
		CurrentTime: now.Format(clockFormat),
		Status:      StatusUnknown,
		Note:        "Hours not available for this location.",
	}
}

// AllToday reports opening status and hours for every location.
func (s *Schedule) AllToday() AllHoursResult {
	now := s.now()
	dayType := dayTypeFor(now)

	statuses := make(map[string]LocationStatus, len(s.locations))
	for _, loc := range s.locations {
		if hours, open := loc.Days[dayType]; open {
			statuses[loc.Name] = LocationStatus{Status: "Open", Hours: hours}
		} else {
			statuses[loc.Name] = LocationStatus{Status: "Closed"}
		}
	}

	return AllHoursResult{
		Today:       now.Weekday().String(),
		CurrentTime: now.Format(clockFormat),
		Locations:   statuses,
		Note:        holidayNote,
	}
}

// CurrentTime reports the clock, day of week and day type.
func (s *Schedule) CurrentTime() TimeInfo {
	now := s.now()
	weekday := now.Weekday()

	return TimeInfo{
		CurrentTime: now.Format(clockFormat),
		DayOfWeek:   weekday.String(),
		Date:        now.Format(dateFormat),
		IsWeekend:   weekday == time.Saturday || weekday == time.Sunday,
		DayType:     dayTypeFor(now),
		Hint:        timeHint,
	}
}

// DefaultHours returns the published NYU Eats schedules.
func DefaultHours() []LocationHours {
	weekdayMeals := func(breakfastOpen string) []PeriodHours {
		return []PeriodHours{
			{Period: "Breakfast", Open: breakfastOpen, Close: "10:30 AM"},
			{Period: "Lunch", Open: "11:00 AM", Close: "3:00 PM"},
			{Period: "Dinner", Open: "4:00 PM", Close: "9:00 PM"},
		}
	}
	allDay := func(open, close string) []PeriodHours {
		return []PeriodHours{{Period: "All Day", Open: open, Close: close}}
	}

	return []LocationHours{
		{
			Name: "NYU EATS at Downstein",
			Days: map[DayType][]PeriodHours{
				DayWeekday: weekdayMeals("7:00 AM"),
				DayFriday:  weekdayMeals("7:00 AM"),
				DaySaturday: {
					{Period: "Brunch", Open: "9:00 AM", Close: "3:00 PM"},
					{Period: "Dinner", Open: "4:00 PM", Close: "9:00 PM"},
				},
				DaySunday: {
					{Period: "Brunch", Open: "9:00 AM", Close: "3:00 PM"},
					{Period: "Dinner", Open: "4:00 PM", Close: "9:00 PM"},
				},
			},
		},
		{
			Name: "NYU EATS at Third North",
			Days: map[DayType][]PeriodHours{
				DayWeekday: weekdayMeals("7:30 AM"),
				DayFriday:  weekdayMeals("7:30 AM"),
				DaySaturday: {
					{Period: "Brunch", Open: "10:00 AM", Close: "3:00 PM"},
					{Period: "Dinner", Open: "4:00 PM", Close: "9:00 PM"},
				},
				DaySunday: {
					{Period: "Brunch", Open: "10:00 AM", Close: "3:00 PM"},
					{Period: "Dinner", Open: "4:00 PM", Close: "9:00 PM"},
				},
			},
		},
		{
			Name: "NYU EATS at Lipton",
			Days: map[DayType][]PeriodHours{
				DayWeekday: weekdayMeals("7:30 AM"),
				DayFriday:  weekdayMeals("7:30 AM"),
				DaySaturday: {
					{Period: "Brunch", Open: "11:00 AM", Close: "3:00 PM"},
					{Period: "Dinner", Open: "4:00 PM", Close: "8:00 PM"},
				},
				DaySunday: {
					{Period: "Brunch", Open: "11:00 AM", Close: "3:00 PM"},
					{Period: "Dinner", Open: "4:00 PM", Close: "8:00 PM"},
				},
			},
		},
		{
			Name: "The Marketplace at Kimmel",
			Days: map[DayType][]PeriodHours{
				DayWeekday: {
					{Period: "Breakfast", Open: "7:30 AM", Close: "10:30 AM"},
					{Period: "Lunch", Open: "11:00 AM", Close: "3:00 PM"},
					{Period: "Dinner", Open: "4:00 PM", Close: "8:00 PM"},
				},
				DayFriday: {
					{Period: "Breakfast", Open: "7:30 AM", Close: "10:30 AM"},
					{Period: "Lunch", Open: "11:00 AM", Close: "3:00 PM"},
					{Period: "Dinner", Open: "4:00 PM", Close: "8:00 PM"},
				},
			},
		},
		{
			Name: "Palladium",
			Days: map[DayType][]PeriodHours{
				DayWeekday:  {{Period: "Dinner", Open: "4:00 PM", Close: "10:00 PM"}},
				DayFriday:   {{Period: "Dinner", Open: "4:00 PM", Close: "10:00 PM"}},
				DaySaturday: {{Period: "Dinner", Open: "4:00 PM", Close: "10:00 PM"}},
				DaySunday: {
					{Period: "Brunch", Open: "11:00 AM", Close: "3:00 PM"},
					{Period: "Dinner", Open: "5:00 PM", Close: "10:00 PM"},
				},
			},
		},
		{
			Name: "Crave NYU",
			Days: map[DayType][]PeriodHours{
				DayWeekday:  allDay("10:30 AM", "8:30 PM"),
				DayFriday:   allDay("10:30 AM", "8:30 PM"),
				DaySaturday: allDay("10:30 AM", "8:30 PM"),
				DaySunday:   allDay("10:30 AM", "8:30 PM"),
			},
		},
		{
			Name: "Upstein",
			Days: map[DayType][]PeriodHours{
				DayWeekday: allDay("10:30 AM", "10:00 PM"),
				DayFriday:  allDay("10:30 AM", "8:00 PM"),
			},
		},
		{
			Name: "Kosher Eatery",
			Days: map[DayType][]PeriodHours{
				DayWeekday: allDay("11:30 AM", "7:30 PM"),
				DayFriday:  allDay("11:30 AM", "2:00 PM"),
				DaySunday:  allDay("12:30 PM", "7:30 PM"),
			},
		},
		{
			Name: "Jasper Kane Cafe",
			Days: map[DayType][]PeriodHours{
				DayWeekday: {
					{Period: "Breakfast", Open: "7:30 AM", Close: "10:30 AM"},
					{Period: "Lunch", Open: "11:00 AM", Close: "3:00 PM"},
				},
				DayFriday: {
					{Period: "Breakfast", Open: "7:30 AM", Close: "10:30 AM"},
					{Period: "Lunch", Open: "11:00 AM", Close: "3:00 PM"},
				},
			},
		},
		{
			Name: "Starbucks",
			Days: map[DayType][]PeriodHours{
				DayWeekday:  allDay("7:00 AM", "9:00 PM"),
				DayFriday:   allDay("7:00 AM", "9:00 PM"),
				DaySaturday: allDay("8:00 AM", "8:00 PM"),
				DaySunday:   allDay("8:00 AM", "8:00 PM"),
			},
		},
		{
			Name: "Dunkin'",
			Days: map[DayType][]PeriodHours{
				DayWeekday:  allDay("7:00 AM", "8:00 PM"),
				DayFriday:   allDay("7:00 AM", "8:00 PM"),
				DaySaturday: allDay("8:00 AM", "6:00 PM"),
				DaySunday:   allDay("8:00 AM", "6:00 PM"),
			},
		},
		{
			Name: "U-Hall Commons Cafe",
			Days: map[DayType][]PeriodHours{
				DayWeekday: {{Period: "Dinner", Open: "5:00 PM", Close: "11:00 PM"}},
				DayFriday:  {{Period: "Dinner", Open: "5:00 PM", Close: "11:00 PM"}},
			},
		},
		{
			Name: "Peet's Coffee",
			Days: map[DayType][]PeriodHours{
				DayWeekday: allDay("7:45 AM", "5:00 PM"),
				DayFriday:  allDay("7:45 AM", "2:00 PM"),
			},
		},
		{
			Name: "Flavor Lab by NYU Eats",
			Days: map[DayType][]PeriodHours{
				DayWeekday:  allDay("11:00 AM", "8:00 PM"),
				DayFriday:   allDay("11:00 AM", "8:00 PM"),
				DaySaturday: allDay("11:00 AM", "8:00 PM"),
				DaySunday:   allDay("11:00 AM", "8:00 PM"),
			},
		},
	}
}
