package navigation_test

import (
	"testing"

	"github.com/carewell/eldercare/internal/models"
	"github.com/carewell/eldercare/internal/navigation"
	"github.com/stretchr/testify/require"
)

func TestReduce_SelectRole(t *testing.T) {
	tests := []struct {
		name    string
		state   navigation.State
		role    models.Role
		want    navigation.State
	}{
		{
			name:  "resident lands on home",
			state: navigation.Initial(),
			role:  models.RoleResident,
			want:  navigation.State{Role: models.RoleResident, Tab: models.TabHome},
		},
		{
			name:  "caretaker lands on residents",
			state: navigation.Initial(),
			role:  models.RoleCaretaker,
			want:  navigation.State{Role: models.RoleCaretaker, Tab: models.TabResidents},
		},
		{
			name:  "invalid role is ignored",
			state: navigation.Initial(),
			role:  models.Role("admin"),
			want:  navigation.Initial(),
		},
		{
			name:  "already selected role is ignored",
			state: navigation.State{Role: models.RoleResident, Tab: models.TabHealth},
			role:  models.RoleCaretaker,
			want:  navigation.State{Role: models.RoleResident, Tab: models.TabHealth},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := navigation.Reduce(tt.state, navigation.SelectRole{Role: tt.role})
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReduce_SelectTab_ResetsSubNavigation(t *testing.T) {
	// Switching tabs abandons drill-down, modal, and search no matter what
	// the prior state looked like.
	states := []navigation.State{
		{Role: models.RoleCaretaker, Tab: models.TabResidents, DetailID: "resident-1"},
		{Role: models.RoleCaretaker, Tab: models.TabReminders, ModalOpen: true},
		{Role: models.RoleCaretaker, Tab: models.TabResidents, SearchQuery: "302", DetailID: "resident-2", ModalOpen: true},
	}
	for _, state := range states {
		got := navigation.Reduce(state, navigation.SelectTab{Tab: models.TabMonitoring})
		require.Equal(t, navigation.State{Role: models.RoleCaretaker, Tab: models.TabMonitoring}, got)
	}
}

func TestReduce_SelectTab_RejectsForeignTabs(t *testing.T) {
	tests := []struct {
		name  string
		state navigation.State
		tab   models.Tab
	}{
		{
			name:  "no role selected",
			state: navigation.Initial(),
			tab:   models.TabHome,
		},
		{
			name:  "caretaker tab on resident dashboard",
			state: navigation.State{Role: models.RoleResident, Tab: models.TabHome},
			tab:   models.TabMonitoring,
		},
		{
			name:  "unknown tab",
			state: navigation.State{Role: models.RoleCaretaker, Tab: models.TabResidents},
			tab:   models.Tab("billing"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := navigation.Reduce(tt.state, navigation.SelectTab{Tab: tt.tab})
			require.Equal(t, tt.state, got)
		})
	}
}

func TestReduce_DetailRoundTrip(t *testing.T) {
	start := navigation.State{Role: models.RoleCaretaker, Tab: models.TabResidents}

	opened := navigation.Reduce(start, navigation.OpenDetail{ID: "resident-2"})
	require.Equal(t, "resident-2", opened.DetailID)
	require.Equal(t, start.Role, opened.Role)
	require.Equal(t, start.Tab, opened.Tab)

	closed := navigation.Reduce(opened, navigation.CloseDetail{})
	require.Equal(t, start, closed)
}

func TestReduce_OpenDetail_OnlyWhereSupported(t *testing.T) {
	tests := []struct {
		name       string
		state      navigation.State
		wantDetail string
	}{
		{
			name:       "resident home has no drill-down",
			state:      navigation.State{Role: models.RoleResident, Tab: models.TabHome},
			wantDetail: "",
		},
		{
			name:       "resident chat drills down",
			state:      navigation.State{Role: models.RoleResident, Tab: models.TabChat},
			wantDetail: "conv-1",
		},
		{
			name:       "caretaker monitoring drills down",
			state:      navigation.State{Role: models.RoleCaretaker, Tab: models.TabMonitoring},
			wantDetail: "resident-1",
		},
		{
			name:       "emergency contacts drill down",
			state:      navigation.State{Role: models.RoleResident, Tab: models.TabEmergency},
			wantDetail: "contact-2",
		},
		{
			name:       "resident settings has no drill-down",
			state:      navigation.State{Role: models.RoleResident, Tab: models.TabSettings},
			wantDetail: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.wantDetail
			if id == "" {
				id = "anything"
			}
			got := navigation.Reduce(tt.state, navigation.OpenDetail{ID: id})
			require.Equal(t, tt.wantDetail, got.DetailID)
		})
	}
}

func TestReduce_ModalExcludesDetail(t *testing.T) {
	state := navigation.State{Role: models.RoleCaretaker, Tab: models.TabResidents, DetailID: "resident-1"}

	opened := navigation.Reduce(state, navigation.OpenModal{})
	require.True(t, opened.ModalOpen)
	require.Empty(t, opened.DetailID, "opening a modal leaves the detail view")

	reopened := navigation.Reduce(opened, navigation.OpenDetail{ID: "resident-2"})
	require.False(t, reopened.ModalOpen, "opening a detail closes the modal")
	require.Equal(t, "resident-2", reopened.DetailID)

	closed := navigation.Reduce(opened, navigation.CloseModal{})
	require.False(t, closed.ModalOpen)
}

func TestReduce_OpenModal_OnlyWhereSupported(t *testing.T) {
	state := navigation.State{Role: models.RoleResident, Tab: models.TabHome}
	require.Equal(t, state, navigation.Reduce(state, navigation.OpenModal{}))
}

func TestReduce_Logout_FromAnyState(t *testing.T) {
	states := []navigation.State{
		navigation.Initial(),
		{Role: models.RoleResident, Tab: models.TabChat, DetailID: "conv-2"},
		{Role: models.RoleCaretaker, Tab: models.TabReminders, ModalOpen: true, SearchQuery: "margaret"},
	}
	for _, state := range states {
		require.Equal(t, navigation.Initial(), navigation.Reduce(state, navigation.Logout{}))
	}
}

func TestReduce_SetSearchQuery_TouchesNothingElse(t *testing.T) {
	state := navigation.State{Role: models.RoleCaretaker, Tab: models.TabResidents, DetailID: "resident-3"}
	got := navigation.Reduce(state, navigation.SetSearchQuery{Query: "302"})
	require.Equal(t, "302", got.SearchQuery)
	got.SearchQuery = state.SearchQuery
	require.Equal(t, state, got)
}
