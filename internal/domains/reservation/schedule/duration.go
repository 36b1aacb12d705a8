package schedule

import "strings"

const (
	// DefaultDuration is the number of hour slots a service blocks unless
	// the duration table says otherwise.
	DefaultDuration = 1

	doubleDuration = 2
)

// Durations maps normalized service labels to the number of consecutive
// hour slots they block. Business data lives here rather than in control
// flow; add new multi-hour services to this table.
var Durations = map[string]int{
	"protein treatment + haircut": doubleDuration,
}

// NormalizeLabel lowercases a service label and collapses runs of
// whitespace, so "  Protein  Treatment + Haircut " and
// "protein treatment + haircut" resolve to the same table entry.
func NormalizeLabel(service string) string {
	return strings.Join(strings.Fields(strings.ToLower(service)), " ")
}

// DurationFor returns how many hour slots the given service occupies.
// Labels not in the table but containing both "protein" and "haircut"
// still count as double duration; client forms are free-text and the
// compound label arrives in several spellings.
func DurationFor(service string) int {
	label := NormalizeLabel(service)

	if duration, ok := Durations[label]; ok {
		return duration
	}

	if strings.Contains(label, "protein") && strings.Contains(label, "haircut") {
		return doubleDuration
	}

	return DefaultDuration
}
