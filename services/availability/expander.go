package availability

import (
	"sort"

	"fitbook/models"
)

// ExpandSlots turns rule time ranges into the sorted, deduplicated
// candidate start times for a service duration. Candidates start at each
// range's start and step by the duration itself, so slots are
// back-to-back and never overlap; a candidate t is kept only while
// t+duration <= range.End. Overlapping ranges may yield the same start
// twice; the result contains it once.
func ExpandSlots(rules []models.AvailabilityRule, durationMinutes int) []models.MinuteOfDay {
	if durationMinutes <= 0 {
		return []models.MinuteOfDay{}
	}

	seen := make(map[models.MinuteOfDay]struct{})
	slots := make([]models.MinuteOfDay, 0)
	for _, rule := range rules {
		for _, tr := range rule.Ranges {
			for t := tr.Start; int(t)+durationMinutes <= int(tr.End); t += models.MinuteOfDay(durationMinutes) {
				if _, dup := seen[t]; dup {
					continue
				}
				seen[t] = struct{}{}
				slots = append(slots, t)
			}
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}
