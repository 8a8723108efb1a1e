package api

import (
	"context"
	"fmt"

	"github.com/Dat0801/jarvis-cli/internal/model"
)

// NoteParams create or update a note.
type NoteParams struct {
	Title        string `json:"title,omitempty"`
	Body         string `json:"body,omitempty"`
	ReminderDate string `json:"reminder_date,omitempty"`
	Done         *bool  `json:"done,omitempty"`
}

// ListNotes fetches all notes.
func (c *Client) ListNotes(ctx context.Context) ([]model.Note, error) {
	notes, err := getList[model.Note](ctx, c, "notes", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// GetNote fetches a single note.
func (c *Client) GetNote(ctx context.Context, id int64) (*model.Note, error) {
	var note model.Note
	if err := c.getJSON(ctx, fmt.Sprintf("notes/%d", id), nil, &note); err != nil {
		return nil, fmt.Errorf("failed to fetch note %d: %w", id, err)
	}
	return &note, nil
}

// CreateNote creates a note.
func (c *Client) CreateNote(ctx context.Context, params NoteParams) (*model.Note, error) {
	var note model.Note
	if err := c.postJSON(ctx, "notes", params, &note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return &note, nil
}

// UpdateNote applies a partial note update.
func (c *Client) UpdateNote(ctx context.Context, id int64, params NoteParams) (*model.Note, error) {
	var note model.Note
	if err := c.patchJSON(ctx, fmt.Sprintf("notes/%d", id), params, &note); err != nil {
		return nil, fmt.Errorf("failed to update note %d: %w", id, err)
	}
	return &note, nil
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("notes/%d", id)); err != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, err)
	}
	return nil
}

// ReminderCount returns how many notes have a pending reminder.
func (c *Client) ReminderCount(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.getJSON(ctx, "notes/reminder-count", nil, &resp); err != nil {
		return 0, fmt.Errorf("failed to fetch reminder count: %w", err)
	}
	return resp.Count, nil
}
