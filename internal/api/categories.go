package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Dat0801/jarvis-cli/internal/model"
)

// CategoryParams create or update a category.
type CategoryParams struct {
	Type     model.CategoryType `json:"type,omitempty"`
	Name     string             `json:"name,omitempty"`
	Icon     string             `json:"icon,omitempty"`
	ParentID *int64             `json:"parent_id,omitempty"`
}

// CategoryTree fetches the one-level category tree for a type. An empty
// type returns every category.
func (c *Client) CategoryTree(ctx context.Context, categoryType model.CategoryType) ([]model.Category, error) {
	q := url.Values{}
	if categoryType != "" {
		q.Set("type", string(categoryType))
	}
	tree, err := getList[model.Category](ctx, c, "categories/tree", q)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category tree: %w", err)
	}
	return tree, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, params CategoryParams) (*model.Category, error) {
	var category model.Category
	if err := c.postJSON(ctx, "categories", params, &category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

// UpdateCategory applies a partial category update.
func (c *Client) UpdateCategory(ctx context.Context, id int64, params CategoryParams) (*model.Category, error) {
	var category model.Category
	if err := c.patchJSON(ctx, fmt.Sprintf("categories/%d", id), params, &category); err != nil {
		return nil, fmt.Errorf("failed to update category %d: %w", id, err)
	}
	return &category, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("categories/%d", id)); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	return nil
}
