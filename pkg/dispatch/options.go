package dispatch

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type settings struct {
	logger *zap.Logger
	newID  func() string
	now    func() time.Time
	extra  []Operation
}

// Option configures the dispatcher.
type Option func(*settings)

// WithLogger sets a custom logger for the dispatcher.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithIDGenerator replaces the notary log id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *settings) { s.newID = fn }
}

// WithClock replaces the notary log timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(s *settings) { s.now = fn }
}

// WithOperation registers op, replacing any operation with the same contract and name.
func WithOperation(op Operation) Option {
	return func(s *settings) { s.extra = append(s.extra, op) }
}

func applyOptions(opts []Option) settings {
	s := settings{
		logger: zap.NewNop(),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
