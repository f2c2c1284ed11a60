package entity

// User-facing strings
const (
	LoadingText            = "⏳ Checking..."
	ConnectionFailureText  = "⚠️ Unable to connect to the backend."
	FallbackPredictionText = "Unable to determine result."
	AlertEmptyURL          = "Please enter a URL."
	AlertMultipleURLs      = "Please enter only one URL at a time."
	ShowDetailsLabel       = "▼ Show More Details"
	HideDetailsLabel       = "▲ Hide Details"
	ReasonBullet           = "• "
	PhishingMarker         = "Phishing"
)

// ResultStatus represents the state of the result region
type ResultStatus string

const (
	ResultStatusHidden          ResultStatus = "hidden"
	ResultStatusChecking        ResultStatus = "checking"
	ResultStatusSuccess         ResultStatus = "success"
	ResultStatusDanger          ResultStatus = "danger"
	ResultStatusConnectionError ResultStatus = "connection_error"
)

// Category is the styling class applied to the result region
type Category string

const (
	CategoryNone    Category = ""
	CategorySuccess Category = "success"
	CategoryDanger  Category = "danger"
)

// Region is a display area holding a single line of text
type Region struct {
	Visible bool   `json:"visible"`
	Text    string `json:"text"`
}

// ResultRegion shows the verdict
type ResultRegion struct {
	Visible  bool         `json:"visible"`
	Status   ResultStatus `json:"status"`
	Category Category     `json:"category"`
	Text     string       `json:"text"`
}

// ListRegion shows the extra reasons
type ListRegion struct {
	Visible bool     `json:"visible"`
	Items   []string `json:"items"`
}

// ToggleRegion is the collapsible details panel and its toggle control.
// Enabled is false when the form has no toggle control.
type ToggleRegion struct {
	Enabled bool   `json:"enabled"`
	Visible bool   `json:"visible"`
	Label   string `json:"label"`
}

// FormState is the full visible state of the submission form
type FormState struct {
	Input        string       `json:"input"`
	EnteredURL   Region       `json:"entered_url"`
	Result       ResultRegion `json:"result"`
	ExtraReasons ListRegion   `json:"extra_reasons"`
	Details      ToggleRegion `json:"details"`
	Alert        string       `json:"alert,omitempty"`

	// In-flight bookkeeping
	Pending    int    `json:"pending"`
	Sequence   uint64 `json:"sequence"`
	Generation uint64 `json:"generation"`
}

// NewFormState returns the initial, fully hidden form
func NewFormState(detailsToggle bool) FormState {
	return FormState{
		Result: ResultRegion{
			Status: ResultStatusHidden,
		},
		ExtraReasons: ListRegion{
			Items: []string{},
		},
		Details: ToggleRegion{
			Enabled: detailsToggle,
			Label:   ShowDetailsLabel,
		},
	}
}

// IsChecking returns true while the result region shows the loading indicator
func (s FormState) IsChecking() bool {
	return s.Result.Status == ResultStatusChecking
}

// IsSettled returns true when nothing is waiting on the classifier
func (s FormState) IsSettled() bool {
	return s.Pending == 0
}

// Clone returns a copy that shares no slices with s
func (s FormState) Clone() FormState {
	out := s
	out.ExtraReasons.Items = append([]string{}, s.ExtraReasons.Items...)
	return out
}
