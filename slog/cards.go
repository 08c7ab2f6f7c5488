package slog

import (
	"log/slog"
	"time"

	"github.com/jobscout/jobscout"
)

// Ensure LoggingCardParser implements jobscout.CardParser.
var _ jobscout.CardParser = (*LoggingCardParser)(nil)

// LoggingCardParser wraps a CardParser with debug logging.
type LoggingCardParser struct {
	next   jobscout.CardParser
	logger *slog.Logger
}

// NewLoggingCardParser creates a new LoggingCardParser.
func NewLoggingCardParser(next jobscout.CardParser, logger *slog.Logger) *LoggingCardParser {
	return &LoggingCardParser{next: next, logger: logger}
}

// ParseCards delegates to the wrapped parser and logs the card count.
func (p *LoggingCardParser) ParseCards(body string) (cards []jobscout.Fragment, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("parse cards",
			"count", len(cards),
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseCards(body)
}
