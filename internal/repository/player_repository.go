package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/spec-kit/group-allocator/internal/domain"
)

// ErrNotFound is returned when a player does not exist.
var ErrNotFound = errors.New("player not found")

// PlayerRepository manages the roster. List preserves insertion order.
type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Player, error)
	FindByName(ctx context.Context, name string) (*domain.Player, error)
	List(ctx context.Context) ([]domain.Player, error)
}

type playerRepository struct {
	mu      sync.RWMutex
	players []domain.Player
}

// NewPlayerRepository constructs an in-memory roster.
func NewPlayerRepository() PlayerRepository {
	return &playerRepository{}
}

func (r *playerRepository) Create(ctx context.Context, player *domain.Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = append(r.players, *player)
	return nil
}

func (r *playerRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i:i], r.players[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *playerRepository) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.players {
		if p.ID == id {
			player := p
			return &player, nil
		}
	}
	return nil, ErrNotFound
}

// FindByName matches names case-insensitively.
func (r *playerRepository) FindByName(ctx context.Context, name string) (*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.players {
		if strings.EqualFold(p.Name, name) {
			player := p
			return &player, nil
		}
	}
	return nil, ErrNotFound
}

func (r *playerRepository) List(ctx context.Context) ([]domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Player, len(r.players))
	copy(result, r.players)
	return result, nil
}
