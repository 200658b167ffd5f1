package dto

import "github.com/spec-kit/group-allocator/internal/domain"

// AddPlayerRequest payload.
type AddPlayerRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// PlayerListResponse lists the roster.
type PlayerListResponse struct {
	Players []domain.Player   `json:"players"`
	Counts  domain.RoleCounts `json:"counts"`
}
