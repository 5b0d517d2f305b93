package views_test

import (
	"testing"

	"github.com/carewell/eldercare/internal/models"
	"github.com/carewell/eldercare/internal/views"
	"github.com/stretchr/testify/require"
)

func residentTerms(r models.Resident) []string {
	return []string{r.Name, r.Room}
}

func TestFilter(t *testing.T) {
	residents := []models.Resident{
		{ID: "resident-1", Name: "Margaret Wilson", Room: "302A"},
		{ID: "resident-2", Name: "Robert Thompson", Room: "205B"},
		{ID: "resident-3", Name: "Dorothy Martinez", Room: "401C"},
		{ID: "resident-4", Name: "James Anderson", Room: "308A"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{
			name:    "empty query returns the collection unchanged",
			query:   "",
			wantIDs: []string{"resident-1", "resident-2", "resident-3", "resident-4"},
		},
		{
			name:    "matches name case-insensitively",
			query:   "margaret",
			wantIDs: []string{"resident-1"},
		},
		{
			name:    "substring, not prefix",
			query:   "thomp",
			wantIDs: []string{"resident-2"},
		},
		{
			name:    "matches room",
			query:   "302",
			wantIDs: []string{"resident-1"},
		},
		{
			name:    "matches several items",
			query:   "0A",
			wantIDs: []string{"resident-1", "resident-4"},
		},
		{
			name:    "no match yields empty result",
			query:   "zzz",
			wantIDs: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := views.Filter(residents, tt.query, residentTerms)
			var ids []string
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	residents := []models.Resident{
		{ID: "resident-1", Name: "Margaret Wilson", Room: "302A"},
		{ID: "resident-2", Name: "Robert Thompson", Room: "205B"},
	}
	once := views.Filter(residents, "wilson", residentTerms)
	twice := views.Filter(once, "wilson", residentTerms)
	require.Equal(t, once, twice)
}
