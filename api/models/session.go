package models

import (
	"time"

	"github.com/simantaparida/featurevote/storage"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type FeatureEntry struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type CreateSessionRequest struct {
	Title    string         `json:"title"`
	Features []FeatureEntry `json:"features"`
}

type JoinSessionRequest struct {
	Name string `json:"name"`
}

type FeatureResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type PlayerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

type SessionResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	Players   []PlayerResponse  `json:"players,omitempty"`
	Features  []FeatureResponse `json:"features,omitempty"`
}

func TransformFeatureFromStorage(f *storage.Feature) FeatureResponse {
	return FeatureResponse{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
	}
}

func TransformPlayerFromStorage(p *storage.Player) PlayerResponse {
	return PlayerResponse{
		ID:    p.ID,
		Name:  p.Name,
		Ready: p.Ready,
	}
}

func TransformSessionFromStorage(s *storage.Session, players []*storage.Player, features []*storage.Feature) SessionResponse {
	response := SessionResponse{
		ID:        s.ID,
		Title:     s.Title,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
	for _, p := range players {
		response.Players = append(response.Players, TransformPlayerFromStorage(p))
	}
	for _, f := range features {
		response.Features = append(response.Features, TransformFeatureFromStorage(f))
	}
	return response
}
