package reward

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avdeyev/paymate/internal/domain"
)

const (
	xpPerTransfer  = 25
	queueSize      = 1024
	processTimeout = time.Second * 5
	dedupKeyPrefix = "reward:settled:"
	dedupTTL       = time.Hour * 24
)

// levelThresholds is ascending; the level is the count of thresholds not
// exceeding the accumulated experience.
var levelThresholds = []int64{100, 250, 500, 1000, 2500, 5000}

var inflightSettlements sync.Map

// Settlement identifies one committed transfer. The settlement id is the
// deduplication key under at-least-once delivery.
type Settlement struct {
	SettlementID string
	UserID       int
	Amount       int64
}

type Repo interface {
	GetProfile(ctx context.Context, userID int) (*domain.RewardProfile, error)
	ApplyGrant(ctx context.Context, userID int, points int64, settlementID string) (int64, bool, error)
	SetLevel(ctx context.Context, userID int, level int) error
}

type Service struct {
	repo       Repo
	dedup      *redis.Client
	queue      chan Settlement
	workerPool WorkerPoolI
}

func New(repo Repo, dedup *redis.Client, workers int) *Service {
	return &Service{
		repo:       repo,
		dedup:      dedup,
		queue:      make(chan Settlement, queueSize),
		workerPool: NewWorkerPool(workers),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reward dispatcher started")
	go s.run(ctx)
}

// Settle enqueues a settlement without blocking the caller. A full queue drops
// the event; crediting is best effort and safe to redeliver later.
func (s *Service) Settle(settlement Settlement) {
	select {
	case s.queue <- settlement:
	default:
		zap.L().Warn("Reward queue full, dropping settlement", zap.String("settlementID", settlement.SettlementID))
	}
}

func (s *Service) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reward dispatcher")
			s.workerPool.Close()
			return
		case settlement := <-s.queue:
			batch := []Settlement{settlement}
		drain:
			for {
				select {
				case next := <-s.queue:
					batch = append(batch, next)
				default:
					break drain
				}
			}
			s.dispatch(ctx, batch)
		}
	}
}

func (s *Service) dispatch(ctx context.Context, batch []Settlement) {
	var g errgroup.Group
	for _, settlement := range batch {
		settlement := settlement

		if _, loaded := inflightSettlements.LoadOrStore(settlement.SettlementID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inflightSettlements.Delete(settlement.SettlementID)
				return s.process(settlement)
			})
			if err != nil {
				inflightSettlements.Delete(settlement.SettlementID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching settlements", zap.Error(err))
	}
}

// process runs detached from the transfer's request context: the transfer has
// already committed and reported success by the time crediting happens.
func (s *Service) process(settlement Settlement) error {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	key := dedupKeyPrefix + settlement.SettlementID
	claimed, err := s.dedup.SetNX(ctx, key, 1, dedupTTL).Result()
	if err != nil {
		// The grant table's unique settlement id still dedups below.
		zap.L().Warn("Reward dedup cache unavailable", zap.Error(err))
	} else if !claimed {
		return nil
	}

	experience, granted, err := s.repo.ApplyGrant(ctx, settlement.UserID, xpPerTransfer, settlement.SettlementID)
	if err != nil {
		s.dedup.Del(context.Background(), key)
		return err
	}
	if !granted {
		return nil
	}

	if err := s.repo.SetLevel(ctx, settlement.UserID, LevelFor(experience)); err != nil {
		return err
	}

	zap.L().Info("Reward granted",
		zap.Int("userID", settlement.UserID),
		zap.String("settlementID", settlement.SettlementID),
		zap.Int64("experience", experience),
	)
	return nil
}

// Profile returns the user's reward state, zero-valued for accounts that have
// not earned anything yet.
func (s *Service) Profile(ctx context.Context, userID int) (*domain.RewardProfile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &domain.RewardProfile{UserID: userID}, nil
	}
	return profile, nil
}

// LevelFor returns the highest level whose threshold does not exceed the
// experience total.
func LevelFor(experience int64) int {
	level := 0
	for _, threshold := range levelThresholds {
		if experience < threshold {
			break
		}
		level++
	}
	return level
}
