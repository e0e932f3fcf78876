package settings

import "context"

// System defines the public contract for settings operations.
type System interface {
	Handler() *Handler

	// Get loads the current settings, filling unset keys with defaults.
	Get(ctx context.Context) (Settings, error)
	// Update upserts the patch's present keys and returns the resulting settings.
	Update(ctx context.Context, patch Patch) (Settings, error)
}
