package client

import (
	"context"
	"fmt"

	"facility-inspect/internal/domain"

	"go.uber.org/zap"
)

// ListInspections fetches the full inspection collection.
func (c *Client) ListInspections(ctx context.Context) ([]domain.InspectionRecord, error) {
	var records []domain.InspectionRecord
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&records).
		Get("/inspections/")

	if err := c.wrap(resp, err); err != nil {
		return nil, err
	}
	c.logger.Debug("fetched inspections", zap.Int("count", len(records)))
	return records, nil
}

// GetInspection fetches a single record by id.
func (c *Client) GetInspection(ctx context.Context, id int) (*domain.InspectionRecord, error) {
	var record domain.InspectionRecord
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&record).
		Get(fmt.Sprintf("/inspections/%d", id))

	if err := c.wrap(resp, err); err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateInspection creates a record. The payload carries no id; the server
// assigns one and returns the created record.
func (c *Client) CreateInspection(ctx context.Context, rec domain.InspectionRecord) (*domain.InspectionRecord, error) {
	rec.ID = 0
	rec.CreatedAt = ""

	var created domain.InspectionRecord
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rec).
		SetResult(&created).
		Post("/inspections/")

	if err := c.wrap(resp, err); err != nil {
		return nil, err
	}
	c.logger.Info("created inspection", zap.Int("id", created.ID))
	return &created, nil
}

// UpdateInspection replaces a record with the full payload.
func (c *Client) UpdateInspection(ctx context.Context, id int, rec domain.InspectionRecord) (*domain.InspectionRecord, error) {
	var updated domain.InspectionRecord
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rec).
		SetResult(&updated).
		Put(fmt.Sprintf("/inspections/%d", id))

	if err := c.wrap(resp, err); err != nil {
		return nil, err
	}
	c.logger.Info("updated inspection", zap.Int("id", id))
	return &updated, nil
}

// DeleteInspection deletes a record by id.
func (c *Client) DeleteInspection(ctx context.Context, id int) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/inspections/%d", id))

	if err := c.wrap(resp, err); err != nil {
		return err
	}
	c.logger.Info("deleted inspection", zap.Int("id", id))
	return nil
}
