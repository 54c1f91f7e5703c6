// ABOUTME: Profile and adjustment-settings persistence for Charm KV storage.
// ABOUTME: Both live under fixed keys; writes notify change listeners.
package charm

import (
	"fmt"

	"github.com/harperreed/nutrient/internal/models"
)

// GetProfile returns the stored health profile, or a wrapped
// models.ErrNotFound when profile setup has not happened yet.
func (c *Client) GetProfile() (*models.HealthProfile, error) {
	data, ok, err := c.get(ProfileKey)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("profile: %w", models.ErrNotFound)
	}

	profile, err := unmarshalJSON[models.HealthProfile](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return profile, nil
}

// SetProfile validates and stores the profile, replacing any previous one.
func (c *Client) SetProfile(p *models.HealthProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	data, err := marshalJSON(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := c.set(ProfileKey, data); err != nil {
		return fmt.Errorf("set profile: %w", err)
	}

	c.Notify("profile")
	return nil
}

// ClearProfile removes the stored profile.
func (c *Client) ClearProfile() error {
	_, ok, err := c.get(ProfileKey)
	if err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	if ok {
		if err := c.delete(ProfileKey); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}
	}
	c.Notify("profile")
	return nil
}

// GetSettings returns the stored adjustment settings, or the default
// {home, normal, medium} triple when none have been saved.
func (c *Client) GetSettings() (models.AdjustmentSettings, error) {
	data, ok, err := c.get(SettingsKey)
	if err != nil {
		return models.AdjustmentSettings{}, fmt.Errorf("get settings: %w", err)
	}
	if !ok {
		return models.DefaultAdjustmentSettings(), nil
	}

	settings, err := unmarshalJSON[models.AdjustmentSettings](data)
	if err != nil {
		return models.AdjustmentSettings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return *settings, nil
}

// SetSettings validates and stores the adjustment settings.
func (c *Client) SetSettings(s models.AdjustmentSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	data, err := marshalJSON(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := c.set(SettingsKey, data); err != nil {
		return fmt.Errorf("set settings: %w", err)
	}

	c.Notify("settings")
	return nil
}
