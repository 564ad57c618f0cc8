package api

import (
	"context"

	"frontend/internal/domain/models"
)

func (c *Client) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var out struct {
		Stats models.DashboardStats `json:"stats"`
	}
	if err := c.get(ctx, "/admin/dashboard", &out); err != nil {
		return models.DashboardStats{}, err
	}
	return out.Stats, nil
}

func (c *Client) PendingSummary(ctx context.Context) (models.PendingSummary, error) {
	var out struct {
		Pending models.PendingSummary `json:"pending"`
	}
	if err := c.get(ctx, "/admin/pending", &out); err != nil {
		return models.PendingSummary{}, err
	}
	return out.Pending, nil
}
