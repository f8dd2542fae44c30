package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"example.com/mergington/internal/domain"
)

// seedActivity mirrors the JSON shape served by the list endpoint.
type seedActivity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// DefaultActivities returns the built-in activity catalog.
func DefaultActivities() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{},
		},
		{
			Name:            "Soccer Team",
			Description:     "Join our varsity soccer team and compete in regional tournaments",
			Schedule:        "Mondays, Wednesdays, Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu", "sarah@mergington.edu"},
		},
	}
}

// LoadSeedFile reads an activity catalog from a JSON file keyed by
// activity name, the same shape the list endpoint serves. Activities come
// back sorted by name so startup logs stay deterministic.
func LoadSeedFile(path string) ([]domain.Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries map[string]seedActivity
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]domain.Activity, 0, len(entries))
	for _, name := range names {
		entry := entries[name]
		out = append(out, domain.Activity{
			Name:            name,
			Description:     entry.Description,
			Schedule:        entry.Schedule,
			MaxParticipants: entry.MaxParticipants,
			Participants:    entry.Participants,
		})
	}
	return out, nil
}
