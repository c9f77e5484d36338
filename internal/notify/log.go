package notify

import (
	"context"

	"github.com/google/uuid"

	"github.com/AdityasahuX07/Lens-Time/internal"
)

// LogNotifier writes notifications to the log. It is the default backend
// when no real delivery channel is configured.
type LogNotifier struct {
	logger internal.Logger
}

func NewLogNotifier(logger internal.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) RequestPermission(ctx context.Context) (bool, error) {
	return true, nil
}

func (n *LogNotifier) Schedule(ctx context.Context, title, body string) (string, error) {
	id := uuid.NewString()
	n.logger.Infof("notification [%s] %s: %s", id, title, body)
	return id, nil
}

func (n *LogNotifier) Cancel(ctx context.Context, id string) error {
	n.logger.Infof("notification [%s] cancelled", id)
	return nil
}

var _ Notifier = (*LogNotifier)(nil)
