package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultActivitiesCatalog(t *testing.T) {
	activities := DefaultActivities()
	require.Len(t, activities, 3)

	byName := make(map[string]int, len(activities))
	for i, act := range activities {
		byName[act.Name] = i
	}
	require.Contains(t, byName, "Chess Club")
	require.Contains(t, byName, "Programming Class")
	require.Contains(t, byName, "Soccer Team")

	chess := activities[byName["Chess Club"]]
	require.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	require.Equal(t, 12, chess.MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)

	programming := activities[byName["Programming Class"]]
	require.NotNil(t, programming.Participants)
	require.Empty(t, programming.Participants)

	soccer := activities[byName["Soccer Team"]]
	require.Equal(t, 25, soccer.MaxParticipants)
	require.Equal(t, []string{"alex@mergington.edu", "sarah@mergington.edu"}, soccer.Participants)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	payload := `{
		"Robotics Lab": {
			"description": "Build and program robots",
			"schedule": "Wednesdays, 3:30 PM - 5:00 PM",
			"max_participants": 8,
			"participants": ["ada@mergington.edu"]
		},
		"Drama Society": {
			"description": "Stage productions each semester",
			"schedule": "Mondays, 4:00 PM - 6:00 PM",
			"max_participants": 30,
			"participants": []
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	activities, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, activities, 2)

	// Sorted by name for deterministic startup.
	require.Equal(t, "Drama Society", activities[0].Name)
	require.Equal(t, "Robotics Lab", activities[1].Name)
	require.Equal(t, 8, activities[1].MaxParticipants)
	require.Equal(t, []string{"ada@mergington.edu"}, activities[1].Participants)
}

func TestLoadSeedFileMissing(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	require.ErrorContains(t, err, "read seed file")
}

func TestLoadSeedFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := LoadSeedFile(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "parse seed file")
}
