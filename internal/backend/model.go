package backend

// Wire types for the companion validation backend. Field names follow its
// JSON contract: snake_case keys, ISO 8601 date strings.

type Email struct {
	ID      string `json:"id,omitempty"`
	From    string `json:"from_addr"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
	Preview string `json:"preview"`
}

type EventRequest struct {
	Title     string `json:"title"`
	Location  string `json:"location,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes,omitempty"`
	AllDay    bool   `json:"all_day"`
}

type EventResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	EventData map[string]any `json:"event_data,omitempty"`
}

type ReminderRequest struct {
	Title    string `json:"title"`
	Notes    string `json:"notes,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
	Priority int    `json:"priority"`
}

type ReminderResponse struct {
	Success      bool           `json:"success"`
	Message      string         `json:"message"`
	ReminderData map[string]any `json:"reminder_data,omitempty"`
}
