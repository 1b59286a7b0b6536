package types

// ActionType discriminates the structured results handed back to the host
// UI/action layer in response to user commands on an order.
type ActionType string

const (
	// ActionTypeWindow opens a view on a model, optionally on one record
	ActionTypeWindow ActionType = "act_window"
	// ActionTypeClose closes the active window without opening anything
	ActionTypeClose ActionType = "act_window_close"
)

// ViewMode is a view the host can render for a window action
type ViewMode string

const (
	ViewModeForm   ViewMode = "form"
	ViewModeList   ViewMode = "list"
	ViewModeKanban ViewMode = "kanban"
)

// Action is a descriptor telling the host UI which view and record to open.
// It carries no behavior of its own; the host interprets it.
type Action struct {
	Type    ActionType     `json:"type"`
	Name    string         `json:"name,omitempty"`
	Model   string         `json:"model,omitempty"`
	ResID   string         `json:"res_id,omitempty"`
	Views   []ViewMode     `json:"views,omitempty"`
	Domain  map[string]any `json:"domain,omitempty"`
	Context map[string]any `json:"context,omitempty"`
}

// CloseAction is returned when a command has nothing to show, for example a
// view request on an order without lines.
func CloseAction() *Action {
	return &Action{Type: ActionTypeClose}
}
