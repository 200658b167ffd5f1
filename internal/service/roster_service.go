package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/group-allocator/internal/allocation"
	"github.com/spec-kit/group-allocator/internal/domain"
	"github.com/spec-kit/group-allocator/internal/events"
	"github.com/spec-kit/group-allocator/internal/observability"
	"github.com/spec-kit/group-allocator/internal/repository"
	apperrors "github.com/spec-kit/group-allocator/pkg/util/errorutil"
)

// Allocation is the current grouping of the roster.
type Allocation struct {
	Groups      []domain.Group     `json:"groups"`
	Unassigned  []domain.Player    `json:"unassigned"`
	Counts      domain.RoleCounts  `json:"counts"`
	Composition domain.Composition `json:"composition"`
}

// RosterService owns the roster and the groups formed from it. Every roster
// change re-runs allocation; shuffling replaces the held groups until the next
// change.
type RosterService struct {
	players    repository.PlayerRepository
	dispatcher events.Dispatcher
	shuffler   allocation.Shuffler
	metrics    *observability.Metrics
	logger     *zap.Logger

	mu      sync.Mutex
	loaded  bool
	current allocation.Result
	counts  domain.RoleCounts
}

// RosterDependencies bundles collaborators.
type RosterDependencies struct {
	PlayerRepo repository.PlayerRepository
	Dispatcher events.Dispatcher
	Shuffler   allocation.Shuffler
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewRosterService creates the service.
func NewRosterService(deps RosterDependencies) *RosterService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	shuffler := deps.Shuffler
	if shuffler == nil {
		shuffler = allocation.NewShuffler()
	}
	return &RosterService{
		players:    deps.PlayerRepo,
		dispatcher: deps.Dispatcher,
		shuffler:   shuffler,
		metrics:    deps.Metrics,
		logger:     logger,
	}
}

// AddPlayer validates and appends a player, then regroups the roster.
func (s *RosterService) AddPlayer(ctx context.Context, name, role string) (*domain.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", map[string]any{"field": "name"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.players.FindByName(ctx, name); err == nil {
		return nil, apperrors.NewConflict("a player with this name already exists", map[string]any{"name": name})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.MapError(err)
	}

	if strings.TrimSpace(role) == "" {
		return nil, apperrors.NewValidationError("role required", map[string]any{"field": "role"})
	}
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": role})
	}

	player := &domain.Player{
		ID:   uuid.NewString(),
		Name: name,
		Role: parsedRole,
	}
	if err := s.players.Create(ctx, player); err != nil {
		return nil, apperrors.MapError(err)
	}
	// The roster already changed; regroup even if the request is cancelled.
	if err := s.reallocate(context.WithoutCancel(ctx)); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.logger.Info("player added",
		zap.String("actor", ActorFromContext(ctx)),
		zap.String("player_id", player.ID),
		zap.Stringer("role", player.Role),
		zap.Int("groups", len(s.current.Groups)))
	s.publish(ctx, events.EventPlayerAdded, events.PlayerAddedPayload{
		Player:     *player,
		Groups:     len(s.current.Groups),
		Unassigned: len(s.current.Unassigned),
	})
	return player, nil
}

// RemovePlayer drops a player from the roster, then regroups it.
func (s *RosterService) RemovePlayer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.players.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("player", map[string]any{"player_id": id})
		}
		return apperrors.MapError(err)
	}
	if err := s.players.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	if err := s.reallocate(context.WithoutCancel(ctx)); err != nil {
		return apperrors.MapError(err)
	}

	s.logger.Info("player removed",
		zap.String("actor", ActorFromContext(ctx)),
		zap.String("player_id", player.ID),
		zap.Int("groups", len(s.current.Groups)))
	s.publish(ctx, events.EventPlayerRemoved, events.PlayerRemovedPayload{
		Player:     *player,
		Groups:     len(s.current.Groups),
		Unassigned: len(s.current.Unassigned),
	})
	return nil
}

// ListPlayers returns the roster in insertion order along with role counts.
func (s *RosterService) ListPlayers(ctx context.Context) ([]domain.Player, domain.RoleCounts, error) {
	players, err := s.players.List(ctx)
	if err != nil {
		return nil, domain.RoleCounts{}, apperrors.MapError(err)
	}
	return players, allocation.CountByRole(players), nil
}

// CurrentAllocation returns the groups and unassigned players currently held.
func (s *RosterService) CurrentAllocation(ctx context.Context) (Allocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if err := s.reallocate(ctx); err != nil {
			return Allocation{}, apperrors.MapError(err)
		}
	}
	return s.snapshot(), nil
}

// ShuffleGroups redistributes members of the current groups. It refuses when
// fewer than two groups exist.
func (s *RosterService) ShuffleGroups(ctx context.Context) (Allocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if err := s.reallocate(ctx); err != nil {
			return Allocation{}, apperrors.MapError(err)
		}
	}
	if len(s.current.Groups) < 2 {
		return Allocation{}, apperrors.NewNothingToShuffle(len(s.current.Groups))
	}

	s.current.Groups = allocation.Redistribute(s.current.Groups, s.shuffler)
	s.metrics.RecordShuffle()

	s.logger.Info("groups shuffled",
		zap.String("actor", ActorFromContext(ctx)),
		zap.Int("groups", len(s.current.Groups)))
	s.publish(ctx, events.EventGroupsShuffled, events.GroupsShuffledPayload{
		Groups: domain.CloneGroups(s.current.Groups),
	})
	return s.snapshot(), nil
}

// reallocate recomputes groups from the stored roster. Callers hold s.mu.
func (s *RosterService) reallocate(ctx context.Context) error {
	roster, err := s.players.List(ctx)
	if err != nil {
		s.loaded = false
		return err
	}
	s.current = allocation.Allocate(roster)
	s.counts = allocation.CountByRole(roster)
	s.loaded = true
	return nil
}

func (s *RosterService) snapshot() Allocation {
	return Allocation{
		Groups:      domain.CloneGroups(s.current.Groups),
		Unassigned:  append([]domain.Player{}, s.current.Unassigned...),
		Counts:      s.counts,
		Composition: domain.GroupComposition,
	}
}

func (s *RosterService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}
