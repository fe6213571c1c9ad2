package payout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/fundslock/internal/config"
	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/pkg/rabbitmq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	authorizedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	dispatchedAt = time.Date(2024, 5, 1, 12, 0, 5, 0, time.UTC)
)

func NewMock(t *testing.T) (*Service, *MockRepo, *rabbitmq.MockPublisher, *MockWorkerPoolI) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	publisher := rabbitmq.NewMockPublisher(ctrl)
	pool := NewMockWorkerPoolI(ctrl)

	cfg := &config.Config{PayoutBatch: 10, PayoutWorkers: 1, PayoutInterval: 10 * time.Millisecond}
	service := New(cfg, repo, publisher)
	service.workerPool.Close()
	service.workerPool = pool
	service.retryInterval = time.Millisecond
	service.now = func() time.Time { return dispatchedAt }
	return service, repo, publisher, pool
}

func runTasks(pool *MockWorkerPoolI) {
	pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task Task) error {
		return task()
	}).AnyTimes()
}

func payoutFixture(id string) domain.Payout {
	return domain.Payout{
		ID:        id,
		DepositID: "0x01",
		Recipient: "alice",
		Principal: decimal.RequireFromString("1000000000000000000"),
		Interest:  decimal.RequireFromString("70000000000000000"),
		CreatedAt: authorizedAt,
	}
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage(payoutFixture("p1"))

	assert.Equal(t, Message{
		ID:           "p1",
		DepositID:    "0x01",
		Recipient:    "alice",
		Principal:    "1000000000000000000",
		Interest:     "70000000000000000",
		Total:        "1070000000000000000",
		AuthorizedAt: authorizedAt,
	}, msg)
}

func TestService_dispatchPending(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(repo *MockRepo, publisher *rabbitmq.MockPublisher, pool *MockWorkerPoolI)
	}{
		{
			name: "Publishes and stamps every pending payout",
			prepareMock: func(repo *MockRepo, publisher *rabbitmq.MockPublisher, pool *MockWorkerPoolI) {
				runTasks(pool)
				repo.EXPECT().FindPending(gomock.Any(), uint32(10)).Return([]domain.Payout{payoutFixture("p1"), payoutFixture("p2")}, nil)
				publisher.EXPECT().Publish(gomock.Any(), Exchange, RoutingKey, NewMessage(payoutFixture("p1"))).Return(nil)
				publisher.EXPECT().Publish(gomock.Any(), Exchange, RoutingKey, NewMessage(payoutFixture("p2"))).Return(nil)
				repo.EXPECT().MarkDispatched(gomock.Any(), "p1", dispatchedAt).Return(nil)
				repo.EXPECT().MarkDispatched(gomock.Any(), "p2", dispatchedAt).Return(nil)
			},
		},
		{
			name: "Fetch failure dispatches nothing",
			prepareMock: func(repo *MockRepo, publisher *rabbitmq.MockPublisher, pool *MockWorkerPoolI) {
				repo.EXPECT().FindPending(gomock.Any(), uint32(10)).Return(nil, errors.New("db error"))
			},
		},
		{
			name: "Transient publish failure is retried",
			prepareMock: func(repo *MockRepo, publisher *rabbitmq.MockPublisher, pool *MockWorkerPoolI) {
				runTasks(pool)
				repo.EXPECT().FindPending(gomock.Any(), uint32(10)).Return([]domain.Payout{payoutFixture("p1")}, nil)
				gomock.InOrder(
					publisher.EXPECT().Publish(gomock.Any(), Exchange, RoutingKey, gomock.Any()).Return(errors.New("channel closed")),
					publisher.EXPECT().Publish(gomock.Any(), Exchange, RoutingKey, gomock.Any()).Return(nil),
				)
				repo.EXPECT().MarkDispatched(gomock.Any(), "p1", dispatchedAt).Return(nil)
			},
		},
		{
			name: "Persistent publish failure leaves the payout pending",
			prepareMock: func(repo *MockRepo, publisher *rabbitmq.MockPublisher, pool *MockWorkerPoolI) {
				runTasks(pool)
				repo.EXPECT().FindPending(gomock.Any(), uint32(10)).Return([]domain.Payout{payoutFixture("p1")}, nil)
				publisher.EXPECT().Publish(gomock.Any(), Exchange, RoutingKey, gomock.Any()).Return(errors.New("broker down")).Times(maxRetries)
			},
		},
		{
			name: "Scheduling failure",
			prepareMock: func(repo *MockRepo, publisher *rabbitmq.MockPublisher, pool *MockWorkerPoolI) {
				repo.EXPECT().FindPending(gomock.Any(), uint32(10)).Return([]domain.Payout{payoutFixture("p1")}, nil)
				pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(context.Canceled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, publisher, pool := NewMock(t)
			tt.prepareMock(repo, publisher, pool)

			service.dispatchPending(context.Background())

			_, busy := service.inFlight.Load("p1")
			assert.False(t, busy)
		})
	}
}

func TestService_dispatchPendingSkipsInFlight(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	service.inFlight.Store("p1", struct{}{})

	repo.EXPECT().FindPending(gomock.Any(), uint32(10)).Return([]domain.Payout{payoutFixture("p1")}, nil)

	service.dispatchPending(context.Background())
}

func TestService_dispatch(t *testing.T) {
	t.Run("Mark failure is reported", func(t *testing.T) {
		service, repo, publisher, _ := NewMock(t)
		publisher.EXPECT().Publish(gomock.Any(), Exchange, RoutingKey, gomock.Any()).Return(nil)
		repo.EXPECT().MarkDispatched(gomock.Any(), "p1", dispatchedAt).Return(errors.New("db error"))

		err := service.dispatch(context.Background(), payoutFixture("p1"))
		assert.ErrorContains(t, err, "failed to mark payout p1 dispatched")
	})

	t.Run("Canceled context stops retries", func(t *testing.T) {
		service, _, publisher, _ := NewMock(t)
		service.retryInterval = time.Hour
		ctx, cancel := context.WithCancel(context.Background())

		publisher.EXPECT().Publish(gomock.Any(), Exchange, RoutingKey, gomock.Any()).DoAndReturn(func(context.Context, string, string, any) error {
			cancel()
			return errors.New("broker down")
		})

		err := service.dispatch(ctx, payoutFixture("p1"))
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestService_Start(t *testing.T) {
	service, repo, publisher, pool := NewMock(t)
	repo.EXPECT().FindPending(gomock.Any(), uint32(10)).Return(nil, nil).AnyTimes()
	pool.EXPECT().Close()
	publisher.EXPECT().Close()

	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		service.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop")
	}
}
