package seeders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfficeWeek(t *testing.T) {
	require.Len(t, officeWeek, 7)

	for i, d := range officeWeek {
		assert.Equal(t, i, d.DayOfWeek)
		if d.DayOfWeek == 0 || d.DayOfWeek == 6 {
			assert.True(t, d.IsDayOff, "день %d", d.DayOfWeek)
			assert.Zero(t, d.WorkHour)
			continue
		}
		assert.False(t, d.IsDayOff)
		assert.Equal(t, 8.0, d.WorkHour)
		require.NotNil(t, d.BreakStart)
		assert.Equal(t, "13:00", *d.BreakStart)
	}
}

func TestAdminReferencesSeededDictionaries(t *testing.T) {
	codes := func(refs []refSeed) []string {
		out := make([]string, 0, len(refs))
		for _, r := range refs {
			out = append(out, r.Code)
		}
		return out
	}
	assert.Contains(t, codes(departmentsData), "HQ")
	assert.Subset(t, codes(rolesData), []string{"ADMIN", "HR"})
	assert.Equal(t, "STANDARD", leaveBenefitsData[0].Code)
}
