// Package navigation holds the dashboard navigation state machine. The state
// is a plain serializable record owned by the session; every transition is a
// pure synchronous reduction of (state, event) into a new state, so the whole
// machine can be exercised without a running server.
package navigation

import "github.com/carewell/eldercare/internal/models"

// State records where the user currently is. The zero value is the initial
// state: no role selected, role-selection screen shown.
type State struct {
	Role        models.Role
	Tab         models.Tab
	DetailID    string
	ModalOpen   bool
	SearchQuery string
}

// Initial returns the state a fresh session starts in.
func Initial() State {
	return State{}
}

// Event is a discrete user action reduced into a new State. Events carry no
// behaviour themselves; Reduce interprets them.
type Event interface {
	isEvent()
}

// SelectRole picks a dashboard on the role-selection screen.
type SelectRole struct {
	Role models.Role
}

// SelectTab activates a top-level tab. Switching tabs always abandons any
// open drill-down, modal, and search.
type SelectTab struct {
	Tab models.Tab
}

// OpenDetail drills down into one record of the active tab's collection.
type OpenDetail struct {
	ID string
}

// CloseDetail returns from a detail view to the tab's list view.
type CloseDetail struct{}

// OpenModal shows the active tab's create/add form.
type OpenModal struct{}

// CloseModal dismisses the create/add form.
type CloseModal struct{}

// Logout resets the whole session back to the role-selection screen.
type Logout struct{}

// SetSearchQuery updates the filter of the visible collection and nothing else.
type SetSearchQuery struct {
	Query string
}

func (SelectRole) isEvent()     {}
func (SelectTab) isEvent()      {}
func (OpenDetail) isEvent()     {}
func (CloseDetail) isEvent()    {}
func (OpenModal) isEvent()      {}
func (CloseModal) isEvent()     {}
func (Logout) isEvent()         {}
func (SetSearchQuery) isEvent() {}

// Reduce computes the next state from a user action. Invalid events for the
// current state leave it unchanged; Reduce never panics and never errors.
// Whether a DetailID actually resolves to a record is the view resolver's
// concern, not the reducer's.
func Reduce(s State, e Event) State {
	switch event := e.(type) {
	case SelectRole:
		// Switching identities goes through logout; a selected role stays.
		if s.Role != models.RoleNone || !event.Role.Valid() {
			return s
		}
		return State{Role: event.Role, Tab: models.DefaultTab(event.Role)}

	case SelectTab:
		if !event.Tab.ValidFor(s.Role) {
			return s
		}
		return State{Role: s.Role, Tab: event.Tab}

	case OpenDetail:
		if event.ID == "" || !s.Tab.SupportsDetail(s.Role) {
			return s
		}
		next := s
		next.DetailID = event.ID
		next.ModalOpen = false
		return next

	case CloseDetail:
		next := s
		next.DetailID = ""
		return next

	case OpenModal:
		if !s.Tab.SupportsModal(s.Role) {
			return s
		}
		next := s
		next.ModalOpen = true
		next.DetailID = ""
		return next

	case CloseModal:
		next := s
		next.ModalOpen = false
		return next

	case Logout:
		return Initial()

	case SetSearchQuery:
		next := s
		next.SearchQuery = event.Query
		return next

	default:
		return s
	}
}
