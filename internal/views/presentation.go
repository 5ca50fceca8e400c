package views

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"community_portal/internal/models"
)

// Icon names a glyph from the page icon font together with its colour class.
type Icon struct {
	Name  string
	Class string
}

// Style is a badge or card style: the label to show and its CSS classes.
type Style struct {
	Label string
	Class string
}

// Each table below is indexed by the enumeration's position and must list
// every value; the blank assignments fail to compile otherwise.

var priorityIcons = [...]Icon{
	{"check-circle", "text-green-600"},
	{"info", "text-blue-600"},
	{"alert-triangle", "text-orange-600"},
	{"alert-triangle", "text-red-600"},
}

var _ = [1]struct{}{}[len(priorityIcons)-len(models.Priorities)]

var priorityBadges = [...]string{
	"bg-green-100 text-green-800 border-green-200",
	"bg-blue-100 text-blue-800 border-blue-200",
	"bg-orange-100 text-orange-800 border-orange-200",
	"bg-red-100 text-red-800 border-red-200",
}

var _ = [1]struct{}{}[len(priorityBadges)-len(models.Priorities)]

var statusIcons = [...]Icon{
	{"clock", "text-blue-600"},
	{"alert-triangle", "text-orange-600"},
	{"check-circle", "text-green-600"},
	{"x-circle", "text-gray-600"},
}

var _ = [1]struct{}{}[len(statusIcons)-len(models.IssueStatuses)]

var statusBadges = [...]string{
	"bg-blue-100 text-blue-800 border-blue-200",
	"bg-orange-100 text-orange-800 border-orange-200",
	"bg-green-100 text-green-800 border-green-200",
	"bg-gray-100 text-gray-800 border-gray-200",
}

var _ = [1]struct{}{}[len(statusBadges)-len(models.IssueStatuses)]

var conditionBadges = [...]string{
	"bg-green-100 text-green-800",
	"bg-blue-100 text-blue-800",
	"bg-yellow-100 text-yellow-800",
	"bg-orange-100 text-orange-800",
}

var _ = [1]struct{}{}[len(conditionBadges)-len(models.Conditions)]

var emergencyIcons = [...]Icon{
	{"shield", "text-blue-600"},
	{"flame", "text-red-600"},
	{"heart", "text-pink-600"},
	{"zap", "text-yellow-600"},
	{"phone", "text-gray-600"},
}

var _ = [1]struct{}{}[len(emergencyIcons)-len(models.EmergencyCategories)]

var emergencyColors = [...]string{
	"bg-blue-100 border-blue-200",
	"bg-red-100 border-red-200",
	"bg-pink-100 border-pink-200",
	"bg-yellow-100 border-yellow-200",
	"bg-gray-100 border-gray-200",
}

var _ = [1]struct{}{}[len(emergencyColors)-len(models.EmergencyCategories)]

// Legacy rows written before the enumerations were enforced get these.
var (
	unknownIcon  = Icon{"help-circle", "text-gray-400"}
	unknownClass = "bg-gray-100 text-gray-500 border-dashed border-gray-300"
)

var avatarColors = [...]string{
	"bg-red-500", "bg-blue-500", "bg-green-500", "bg-yellow-500",
	"bg-purple-500", "bg-pink-500", "bg-indigo-500", "bg-cyan-500",
}

var defaultEventImages = [...]string{
	"https://images.unsplash.com/photo-1511578314322-379afb476865",
	"https://images.unsplash.com/photo-1523580494863-6f3031224c94",
	"https://images.unsplash.com/photo-1492684223066-81342ee5ff30",
	"https://images.unsplash.com/photo-1501281668745-f7f57925c3b4",
	"https://images.unsplash.com/photo-1516450360452-9312f5e86fc7",
}

const eventImageParams = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"

func warnUnknown(kind, value string) {
	logrus.WithFields(logrus.Fields{"kind": kind, "value": value}).Warn("unrecognised value in stored record")
}

func PriorityIcon(p models.Priority) Icon {
	if i := p.Index(); i >= 0 {
		return priorityIcons[i]
	}
	warnUnknown("priority", string(p))
	return unknownIcon
}

func PriorityBadge(p models.Priority) Style {
	if i := p.Index(); i >= 0 {
		return Style{Label: strings.ToUpper(string(p)), Class: priorityBadges[i]}
	}
	warnUnknown("priority", string(p))
	return Style{Label: "UNKNOWN", Class: unknownClass}
}

func StatusIcon(s models.IssueStatus) Icon {
	if i := s.Index(); i >= 0 {
		return statusIcons[i]
	}
	warnUnknown("issue_status", string(s))
	return unknownIcon
}

// StatusBadge labels in_progress as "IN PROGRESS".
func StatusBadge(s models.IssueStatus) Style {
	if i := s.Index(); i >= 0 {
		return Style{
			Label: strings.ToUpper(strings.ReplaceAll(string(s), "_", " ")),
			Class: statusBadges[i],
		}
	}
	warnUnknown("issue_status", string(s))
	return Style{Label: "UNKNOWN", Class: unknownClass}
}

// ConditionBadge returns ok=false for items without a condition.
func ConditionBadge(c *models.Condition) (Style, bool) {
	if c == nil {
		return Style{}, false
	}
	label := strings.ToUpper(strings.ReplaceAll(string(*c), "-", " "))
	if i := c.Index(); i >= 0 {
		return Style{Label: label, Class: conditionBadges[i]}, true
	}
	warnUnknown("condition", string(*c))
	return Style{Label: label, Class: unknownClass}, true
}

func EmergencyIcon(e models.EmergencyCategory) Icon {
	if i := e.Index(); i >= 0 {
		return emergencyIcons[i]
	}
	warnUnknown("emergency_category", string(e))
	return unknownIcon
}

func EmergencyColor(e models.EmergencyCategory) string {
	if i := e.Index(); i >= 0 {
		return emergencyColors[i]
	}
	warnUnknown("emergency_category", string(e))
	return unknownClass
}

// Initials takes the first letter of up to two words, upper-cased.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return b.String()
}

// AvatarColor picks one of eight colours from the first character of name.
func AvatarColor(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return avatarColors[0]
	}
	return avatarColors[int(r)%len(avatarColors)]
}

// EventImage falls back to a stock image chosen by the event id, so the same
// event always gets the same picture.
func EventImage(e models.Event) string {
	if e.ImageURL != "" {
		return e.ImageURL
	}
	var idx int
	if n := len(e.ID); n > 0 {
		idx = int(e.ID[n-1]) % len(defaultEventImages)
	}
	return defaultEventImages[idx] + eventImageParams
}

// VoteTone colours a forum post's net vote count.
func VoteTone(net int) string {
	switch {
	case net > 0:
		return "text-green-600"
	case net < 0:
		return "text-red-600"
	default:
		return "text-gray-600"
	}
}

// NetVotesLabel renders +3, 0 or -2.
func NetVotesLabel(net int) string {
	if net > 0 {
		return fmt.Sprintf("+%d", net)
	}
	return fmt.Sprintf("%d", net)
}

// FormatRupees groups digits the Indian way (12,34,567) and keeps up to two
// decimals.
func FormatRupees(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	intPart, frac := s[:len(s)-3], s[len(s)-2:]

	var groups []string
	if len(intPart) > 3 {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		groups = append(groups, tail)
	} else {
		groups = []string{intPart}
	}

	out := strings.Join(groups, ",")
	if frac != "00" {
		out += "." + strings.TrimSuffix(frac, "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

// Humanize turns snake_case categories into words.
func Humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
