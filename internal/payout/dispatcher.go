// Package payout delivers authorised withdrawals to the transfer system.
// Withdrawal records a payout row in the claim transaction; the dispatcher
// picks undispatched rows up, publishes them and stamps them as dispatched.
package payout

//go:generate mockgen -source=dispatcher.go -destination=mock_dispatcher.go -package=payout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/fundslock/internal/config"
	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/pkg/rabbitmq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	Exchange   = "fundslock.payouts"
	RoutingKey = "payout.authorized"

	maxRetries    = 3
	retryInterval = time.Second
)

type Repo interface {
	FindPending(ctx context.Context, limit uint32) ([]domain.Payout, error)
	MarkDispatched(ctx context.Context, id string, at time.Time) error
}

// Message is the body published for every authorised payout. Amounts are
// decimal strings in the smallest value unit.
type Message struct {
	ID           string    `json:"id"`
	DepositID    string    `json:"deposit_id"`
	Recipient    string    `json:"recipient"`
	Principal    string    `json:"principal"`
	Interest     string    `json:"interest"`
	Total        string    `json:"total"`
	AuthorizedAt time.Time `json:"authorized_at"`
}

func NewMessage(p domain.Payout) Message {
	return Message{
		ID:           p.ID,
		DepositID:    p.DepositID,
		Recipient:    p.Recipient,
		Principal:    p.Principal.String(),
		Interest:     p.Interest.String(),
		Total:        p.Total().String(),
		AuthorizedAt: p.CreatedAt,
	}
}

type Service struct {
	repo           Repo
	publisher      rabbitmq.Publisher
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
	retryInterval  time.Duration
	inFlight       sync.Map
	now            func() time.Time
}

func New(cfg *config.Config, repo Repo, publisher rabbitmq.Publisher) *Service {
	return &Service{
		repo:           repo,
		publisher:      publisher,
		limit:          cfg.PayoutBatch,
		workerPool:     NewWorkerPool(cfg.PayoutWorkers),
		updateInterval: cfg.PayoutInterval,
		retryInterval:  retryInterval,
		now:            time.Now,
	}
}

// Start runs the dispatch loop until ctx is done. It blocks.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("payout dispatcher started", zap.Duration("interval", s.updateInterval))
	defer func() {
		s.workerPool.Close()
		s.publisher.Close()
		zap.L().Info("payout dispatcher stopped")
	}()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.dispatchPending(ctx)
		}
	}
}

func (s *Service) dispatchPending(ctx context.Context) {
	payouts, err := s.repo.FindPending(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch pending payouts", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, p := range payouts {
		if _, loaded := s.inFlight.LoadOrStore(p.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(p.ID)
				return s.dispatch(ctx, p)
			})
			if err != nil {
				s.inFlight.Delete(p.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to schedule payouts", zap.Error(err))
	}
}

func (s *Service) dispatch(ctx context.Context, p domain.Payout) error {
	msg := NewMessage(p)

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = s.publisher.Publish(ctx, Exchange, RoutingKey, msg); err == nil {
			break
		}
		zap.L().Warn("payout publish failed", zap.String("id", p.ID), zap.Int("attempt", attempt), zap.Error(err))
		if attempt == maxRetries {
			return fmt.Errorf("failed to publish payout %s after %d attempts: %w", p.ID, maxRetries, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.retryInterval * time.Duration(attempt)):
		}
	}

	if err := s.repo.MarkDispatched(ctx, p.ID, s.now().UTC()); err != nil {
		return fmt.Errorf("failed to mark payout %s dispatched: %w", p.ID, err)
	}
	zap.L().Info("payout dispatched", zap.String("id", p.ID), zap.String("recipient", p.Recipient), zap.String("total", msg.Total))
	return nil
}
