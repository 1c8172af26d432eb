package cirtusai

import (
	"context"
	"net/http"
)

// AgentsService is a stateless facade over the agent-listing endpoints.
// It returns capability data faithfully; authorization policy lives with
// the caller.
type AgentsService struct {
	session *Session
}

// ListAgents returns the caller's master agent, including its linked
// children and their capability sets.
func (s *AgentsService) ListAgents(ctx context.Context) (*Agent, error) {
	if err := s.session.requireAuth("list agents"); err != nil {
		return nil, err
	}
	var agent Agent
	if err := s.session.Request(ctx, http.MethodGet, "/agents", nil, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetChildren returns the ordered list of child agents linked to the
// caller's master agent.
func (s *AgentsService) GetChildren(ctx context.Context) ([]ChildAgent, error) {
	if err := s.session.requireAuth("list child agents"); err != nil {
		return nil, err
	}
	var children []ChildAgent
	if err := s.session.Request(ctx, http.MethodGet, "/agents/children", nil, &children); err != nil {
		return nil, err
	}
	return children, nil
}
