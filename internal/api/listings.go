package api

import (
	"context"

	"frontend/internal/domain/models"
)

func (c *Client) ListTransportation(ctx context.Context) ([]models.Transportation, error) {
	var out struct {
		Vehicles []models.Transportation `json:"vehicles"`
	}
	if err := c.get(ctx, "/transportation", &out); err != nil {
		return nil, err
	}
	return out.Vehicles, nil
}

func (c *Client) GetTransportation(ctx context.Context, id string) (models.Transportation, error) {
	var out struct {
		Vehicle models.Transportation `json:"vehicle"`
	}
	if err := c.get(ctx, "/transportation/"+id, &out); err != nil {
		return models.Transportation{}, err
	}
	return out.Vehicle, nil
}

func (c *Client) ListTours(ctx context.Context) ([]models.Tour, error) {
	var out struct {
		Tours []models.Tour `json:"tours"`
	}
	if err := c.get(ctx, "/tours", &out); err != nil {
		return nil, err
	}
	return out.Tours, nil
}

func (c *Client) GetTour(ctx context.Context, id string) (models.Tour, error) {
	var out struct {
		Tour models.Tour `json:"tour"`
	}
	if err := c.get(ctx, "/tours/"+id, &out); err != nil {
		return models.Tour{}, err
	}
	return out.Tour, nil
}

func (c *Client) ListAccommodations(ctx context.Context) ([]models.Accommodation, error) {
	var out struct {
		Accommodations []models.Accommodation `json:"accommodations"`
	}
	if err := c.get(ctx, "/accommodations", &out); err != nil {
		return nil, err
	}
	return out.Accommodations, nil
}

func (c *Client) GetAccommodation(ctx context.Context, id string) (models.Accommodation, error) {
	var out struct {
		Accommodation models.Accommodation `json:"accommodation"`
	}
	if err := c.get(ctx, "/accommodations/"+id, &out); err != nil {
		return models.Accommodation{}, err
	}
	return out.Accommodation, nil
}
