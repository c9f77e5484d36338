// Package notify abstracts the push-notification primitive the reminder
// scheduler talks to. Delivery is best-effort: failures are reported to
// the caller, which decides whether to retry on a later tick.
package notify

import "context"

type Notifier interface {
	// RequestPermission asks the delivery channel whether notifications
	// may be sent. Failure never blocks the caller.
	RequestPermission(ctx context.Context) (bool, error)
	// Schedule delivers a notification immediately and returns an opaque
	// id that can be handed to Cancel.
	Schedule(ctx context.Context, title, body string) (string, error)
	// Cancel revokes a previously scheduled notification, best-effort.
	Cancel(ctx context.Context, id string) error
}
