package model

// Note is a free-text note with an optional reminder date.
type Note struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	ReminderDate FlexTime `json:"reminder_date"`
	Done         bool     `json:"done"`
}
