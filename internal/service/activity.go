package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"minifeed/internal/pkg"
)

// publishTimeout caps how long a request waits on the activity stream.
const publishTimeout = 500 * time.Millisecond

// publish forwards a to the activity stream. The request has already been
// committed, so a failed publish is only logged.
func publish(ctx context.Context, events pkg.Publisher, log *zap.Logger, a pkg.Activity) {
	if events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := events.Publish(ctx, a); err != nil {
		log.Warn("activity publish failed",
			zap.String("type", a.Type),
			zap.String("actor", a.Actor),
			zap.Error(err))
	}
}
