// Package storefront holds the controllers behind the customer screens: the
// catalogue, product detail, cart page and account forms.
package storefront

import (
	"context"
	"log/slog"

	"github.com/Areeb006/FAJR/internal/notify"
)

// reporter turns controller outcomes into notifications and log lines.
type reporter struct {
	notifier notify.Notifier
	logger   *slog.Logger
}

// fail notifies the user and logs err, then returns it.
func (r reporter) fail(ctx context.Context, action string, err error) error {
	r.logger.WarnContext(ctx, "storefront action failed",
		slog.String("action", action),
		slog.String("error", err.Error()),
	)
	notify.Error(ctx, r.notifier, err)
	return err
}

func (r reporter) succeed(ctx context.Context, msg string) {
	if msg == "" {
		return
	}
	r.notifier.Notify(ctx, notify.LevelSuccess, msg)
}
