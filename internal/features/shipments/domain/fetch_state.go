package domain

import "time"

// View names one of the independent shipment list views.
type View string

const (
	// ViewDashboard is the dashboard summary view.
	ViewDashboard View = "dashboard"
	// ViewOrders is the full orders table.
	ViewOrders View = "orders"
)

// Views returns every known view.
func Views() []View {
	return []View{ViewDashboard, ViewOrders}
}

// Phase is the fetch lifecycle stage of a view.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseFailed  Phase = "failed"
)

// Presentation is what a view should render for a given FetchState.
type Presentation string

const (
	// PresentationIdle means nothing was requested yet.
	PresentationIdle Presentation = "idle"
	// PresentationLoading is a spinner with no rows to show.
	PresentationLoading Presentation = "loading"
	// PresentationRefreshing is a spinner over the previously loaded rows.
	PresentationRefreshing Presentation = "refreshing"
	// PresentationError is the inline error panel with a retry control.
	PresentationError Presentation = "error"
	// PresentationEmpty is the "no shipments" state.
	PresentationEmpty Presentation = "empty"
	// PresentationPopulated is the shipment table.
	PresentationPopulated Presentation = "populated"
)

// FetchState is the view state of one FetchController.
//
// Shipments always holds the last successfully loaded collection: the current
// one when Loaded, the stale one while Loading or Failed, empty before the
// first success.
type FetchState struct {
	// Phase is the current lifecycle stage.
	Phase Phase `json:"phase"`
	// Shipments is the last loaded collection.
	Shipments []Shipment `json:"shipments"`
	// Message is the human readable failure, set only when Failed.
	Message string `json:"message,omitempty"`
	// Skipped lists records rejected by the last successful projection.
	Skipped []SkippedRecord `json:"skipped,omitempty"`
	// LoadedAt is when Shipments was loaded. Zero before the first success.
	LoadedAt time.Time `json:"loaded_at"`
}

// Stale reports whether Shipments may be superseded by a pending or failed fetch.
func (s FetchState) Stale() bool {
	return s.Phase == PhaseLoading || s.Phase == PhaseFailed
}

// Presentation derives what the view renders from the state alone.
func (s FetchState) Presentation() Presentation {
	switch s.Phase {
	case PhaseLoading:
		if len(s.Shipments) == 0 {
			return PresentationLoading
		}
		return PresentationRefreshing
	case PhaseFailed:
		return PresentationError
	case PhaseLoaded:
		if len(s.Shipments) == 0 {
			return PresentationEmpty
		}
		return PresentationPopulated
	default:
		return PresentationIdle
	}
}
