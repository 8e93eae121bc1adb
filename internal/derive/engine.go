// Package derive expands event type templates into synthetic meeting
// instances for display. The expansion is a pure function of the template
// list, the reference time, and the injected identifier generator; it never
// fails and never persists anything.
package derive

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Template describes the event type fields the engine consumes.
type Template struct {
	ID              string
	Title           string
	DurationMinutes int
	Platform        string
	Availability    string
}

// Attendee identifies a sample attendee from the fixed roster.
type Attendee struct {
	Name  string
	Email string
}

// Meeting is a derived booking instance tied to exactly one template.
type Meeting struct {
	ID         string
	TemplateID string
	Title      string
	Attendee   Attendee
	Date       time.Time
	Start      time.Time
	End        time.Time
	Timezone   string
	Status     string
	JoinLink   string
	CreatedAt  time.Time
}

// MeetingsPerTemplate is the fixed fan-out factor: every template expands
// into exactly this many meetings.
const MeetingsPerTemplate = 2

// StatusScheduled is the only status derived meetings carry in this scope.
const StatusScheduled = "scheduled"

// Business-hours clamp bounds for derived start times. Start hours are forced
// into [OpeningHour, ClosingHour); end times are left unclamped.
const (
	OpeningHour = 9
	ClosingHour = 17
)

// defaultStartMinutes is used when no time pattern can be parsed out of a
// template's availability string (10:30).
const defaultStartMinutes = 10*60 + 30

// secondMeetingOffsetMinutes shifts the second meeting of each pair.
const secondMeetingOffsetMinutes = 60

// defaultTimezone is the fixed timezone label attached to derived meetings.
const defaultTimezone = "Europe/Berlin"

// defaultRoster is the fixed rotating set of sample attendees.
var defaultRoster = []Attendee{
	{Name: "Sarah Chen", Email: "sarah.chen@example.com"},
	{Name: "James Okafor", Email: "james.okafor@example.com"},
	{Name: "Maria Santos", Email: "maria.santos@example.com"},
	{Name: "Tom Becker", Email: "tom.becker@example.com"},
	{Name: "Priya Sharma", Email: "priya.sharma@example.com"},
}

// availabilityTimeRe extracts the first "H:MM am|pm" fragment from a
// free-text availability description.
var availabilityTimeRe = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)`)

// Engine expands templates into meetings.
type Engine struct {
	roster      []Attendee
	idGenerator func() string
	location    *time.Location
	timezone    string
}

// Option configures an Engine.
type Option func(*Engine)

// WithRoster overrides the attendee roster.
func WithRoster(roster []Attendee) Option {
	return func(e *Engine) {
		if len(roster) > 0 {
			e.roster = append([]Attendee(nil), roster...)
		}
	}
}

// WithLocation overrides the location used for date placement.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.location = loc
		}
	}
}

// NewEngine constructs an Engine. The idGenerator supplies meeting IDs and
// join link suffixes; when nil, a counter-free empty generator is used and
// callers get empty IDs, so production wiring must always inject one.
func NewEngine(idGenerator func() string, opts ...Option) *Engine {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	engine := &Engine{
		roster:      defaultRoster,
		idGenerator: idGenerator,
		location:    time.Local,
		timezone:    defaultTimezone,
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Derive expands every template into MeetingsPerTemplate meetings and returns
// the full set sorted ascending by start instant, ties preserving input
// order. An empty template list yields an empty result.
//
// Placement semantics, per template index i and pair index j:
//   - attendee: roster[(i*MeetingsPerTemplate + j) mod len(roster)]
//   - date: the k-th meeting of the flattened sequence (k zero-based) lands
//     k+1 calendar days after now
//   - start: the first "H:MM am|pm" fragment of the availability string,
//     falling back to 10:30 when absent; the second meeting of the pair is
//     shifted 60 minutes later; hours are then clamped into business hours
//   - end: start plus the template duration, unclamped
//
// Malformed availability strings are indistinguishable from absent ones:
// both silently produce the 10:30 default.
func (e *Engine) Derive(templates []Template, now time.Time) []Meeting {
	loc := e.location
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	meetings := make([]Meeting, 0, len(templates)*MeetingsPerTemplate)
	for i, template := range templates {
		baseMinutes := parseStartMinutes(template.Availability)

		for j := 0; j < MeetingsPerTemplate; j++ {
			k := i*MeetingsPerTemplate + j
			attendee := e.roster[k%len(e.roster)]

			startMinutes := baseMinutes
			if j > 0 {
				startMinutes += j * secondMeetingOffsetMinutes
			}
			hour, minute := clampBusinessHours(startMinutes/60, startMinutes%60)

			year, month, day := now.AddDate(0, 0, k+1).Date()
			date := time.Date(year, month, day, 0, 0, 0, 0, loc)
			start := time.Date(year, month, day, hour, minute, 0, 0, loc)
			end := start.Add(time.Duration(template.DurationMinutes) * time.Minute)

			meetings = append(meetings, Meeting{
				ID:         e.idGenerator(),
				TemplateID: template.ID,
				Title:      template.Title,
				Attendee:   attendee,
				Date:       date,
				Start:      start,
				End:        end,
				Timezone:   e.timezone,
				Status:     StatusScheduled,
				JoinLink:   e.joinLink(template.Platform),
				CreatedAt:  now,
			})
		}
	}

	sort.SliceStable(meetings, func(a, b int) bool {
		return meetings[a].Start.Before(meetings[b].Start)
	})

	return meetings
}

// parseStartMinutes extracts the first clock time from an availability
// description as minutes since midnight, converting to the 24-hour clock.
func parseStartMinutes(availability string) int {
	match := availabilityTimeRe.FindStringSubmatch(availability)
	if match == nil {
		return defaultStartMinutes
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil || hour < 1 || hour > 12 {
		return defaultStartMinutes
	}
	minute, err := strconv.Atoi(match[2])
	if err != nil || minute > 59 {
		return defaultStartMinutes
	}

	if strings.EqualFold(match[3], "pm") && hour != 12 {
		hour += 12
	}
	if strings.EqualFold(match[3], "am") && hour == 12 {
		hour = 0
	}

	return hour*60 + minute
}

// clampBusinessHours forces start hours into [OpeningHour, ClosingHour).
// Clamped slots land on the hour, so two meetings can still collide when both
// clamp to the same boundary.
func clampBusinessHours(hour, minute int) (int, int) {
	if hour < OpeningHour {
		return OpeningHour, 0
	}
	if hour >= ClosingHour {
		return ClosingHour - 1, 0
	}
	return hour, minute
}

// joinLink synthesises a platform-appropriate meeting URL. Platforms are
// matched by substring; anything unrecognised gets a generic placeholder.
func (e *Engine) joinLink(platform string) string {
	suffix := e.idGenerator()
	lowered := strings.ToLower(platform)
	switch {
	case strings.Contains(lowered, "google meet"):
		return "https://meet.google.com/" + suffix
	case strings.Contains(lowered, "zoom"):
		return "https://zoom.us/j/" + suffix
	case strings.Contains(lowered, "teams"):
		return "https://teams.microsoft.com/l/meetup-join/" + suffix
	default:
		return "https://example.com/meeting/" + suffix
	}
}
