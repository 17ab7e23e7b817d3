package notification

import (
	"context"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// LogNotifier records invitation and launch notices in the log. No messages
// leave the service; delivery belongs to a channel this application does
// not own.
type LogNotifier struct {
	logger logger.Logger
}

func NewLogNotifier(logger logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyParticipantInvited(ctx context.Context, p *domain.Participant, eventName string) {
	if ctx.Err() != nil {
		return
	}
	n.logger.Info("sending invitation notice",
		logger.String("email", p.Email),
		logger.String("event", eventName),
	)
}

func (n *LogNotifier) NotifyEventPublished(ctx context.Context, eventName string, invited int) {
	if ctx.Err() != nil {
		return
	}
	n.logger.Info("event published",
		logger.String("event", eventName),
		logger.Int("invited", invited),
	)
}
