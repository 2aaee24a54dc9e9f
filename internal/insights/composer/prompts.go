package composer

import (
	"fmt"
	"html"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"insight-mailer/internal/store"
)

const insightDataPlaceholder = "{{INSIGHT_DATA}}"

const systemPrompt = `You write short, personal emails for a music listening service.
Reply with a single JSON object and nothing else, using exactly these keys:
"subject": a subject line of at most 80 characters,
"body_html": the email body as HTML using only <p>, <strong>, <em>, <ul>, <li> and <a> tags.
Do not invent numbers that are not in the data you are given.`

var defaultTemplates = map[string]string{
	store.InsightKindGrowthTrend: `Write an email to {user_name} about a song they have been playing a lot more than before.
Celebrate the growth and suggest they share it with friends.
Insight data: {{INSIGHT_DATA}}`,

	store.InsightKindArtistFocus: `Write an email to {user_name} about the artist that dominated their listening recently.
Mention how large the artist's share of their plays was and suggest similar artists to explore.
Insight data: {{INSIGHT_DATA}}`,

	store.InsightKindDiversity: `Write an email to {user_name} praising how varied their listening has been.
Mention how many different artists and tracks they played.
Insight data: {{INSIGHT_DATA}}`,

	store.InsightKindCustom: `Write an email to {user_name}.
{{INSIGHT_DATA}}`,
}

// DefaultTemplate returns the built-in prompt for kind.
func DefaultTemplate(kind string) string {
	if t, ok := defaultTemplates[kind]; ok {
		return t
	}
	return defaultTemplates[store.InsightKindCustom]
}

var placeholderPattern = regexp.MustCompile(`\{([a-z][a-z0-9_]*)\}`)

// Substitute replaces {name} placeholders with vars. Placeholders without a value are left as
// written and returned sorted.
func Substitute(template string, vars map[string]string) (string, []string) {
	unknown := map[string]struct{}{}
	out := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := vars[name]; ok {
			return v
		}
		unknown[name] = struct{}{}
		return match
	})

	missing := make([]string, 0, len(unknown))
	for name := range unknown {
		missing = append(missing, name)
	}
	sort.Strings(missing)
	return out, missing
}

// userVars are available to every prompt.
func userVars(user store.User) map[string]string {
	return map[string]string{
		"user_name":  user.DisplayName(),
		"user_email": user.Email,
	}
}

// metricVars expose a user's listening snapshot to custom prompts.
func metricVars(m store.UserMetrics) map[string]string {
	vars := userVars(m.User)
	vars["top_song"] = m.TopSong
	vars["top_artist"] = m.TopArtist
	vars["total_plays"] = strconv.Itoa(m.TotalPlays)
	vars["weekly_plays"] = strconv.Itoa(m.WeeklyPlays)
	vars["monthly_plays"] = strconv.Itoa(m.MonthlyPlays)
	vars["growth_rate"] = strconv.FormatFloat(m.GrowthRate, 'f', 1, 64)
	vars["listening_hours"] = strconv.FormatFloat(m.ListeningHours, 'f', 1, 64)
	vars["discovery_count"] = strconv.Itoa(m.DiscoveryCount)
	vars["favorite_genre"] = m.FavoriteGenre
	vars["weekend_vs_weekday"] = weekendVsWeekday(m.WeekendPlays, m.WeekdayPlays)
	if m.PeakHour != nil {
		vars["peak_hour"] = fmt.Sprintf("%02d:00", *m.PeakHour)
	} else {
		vars["peak_hour"] = ""
	}
	return vars
}

func weekendVsWeekday(weekend, weekday int) string {
	switch {
	case weekend == 0 && weekday == 0:
		return ""
	case weekend > weekday:
		return "more active on weekends"
	case weekday > weekend:
		return "more active during the week"
	default:
		return "evenly split between weekdays and weekends"
	}
}

// escapeVars returns vars safe to place inside an html body.
func escapeVars(vars map[string]string) map[string]string {
	escaped := make(map[string]string, len(vars))
	for k, v := range vars {
		escaped[k] = html.EscapeString(v)
	}
	return escaped
}

// mergeNames returns the sorted union of placeholder name lists.
func mergeNames(lists ...[]string) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, list := range lists {
		for _, name := range list {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// payloadVars lets templates reference candidate fields directly, e.g. {song_title}.
func payloadVars(vars map[string]string, payload map[string]any) {
	for k, v := range payload {
		if _, taken := vars[k]; taken {
			continue
		}
		vars[k] = strings.TrimSpace(fmt.Sprint(v))
	}
}
