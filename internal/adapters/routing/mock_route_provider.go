package routing

import (
	"context"
	"fmt"
	"grid-route-client/internal/domain"
	"math"
	"sync"
)

type MockPath struct {
	Source, Target int64
	Path           domain.Path
}

// MockRouteProvider is an in-memory RouteProvider.
// Snap returns the registered node closest to the query; ShortestPath
// returns a registered path or domain.ErrPathNotFound.
type MockRouteProvider struct {
	nodes []domain.GridNode
	paths map[[2]int64]domain.Path

	mu    sync.Mutex
	calls int
}

func NewMockRouteProvider(nodes []domain.GridNode, paths []MockPath) *MockRouteProvider {
	m := make(map[[2]int64]domain.Path, len(paths))
	for _, p := range paths {
		m[[2]int64{p.Source, p.Target}] = p.Path
	}
	return &MockRouteProvider{nodes: nodes, paths: m}
}

func (p *MockRouteProvider) Snap(ctx context.Context, c domain.Coordinate) (domain.GridNode, error) {
	p.count()
	if err := ctx.Err(); err != nil {
		return domain.GridNode{}, err
	}
	if len(p.nodes) == 0 {
		return domain.GridNode{}, fmt.Errorf("mock snap: no nodes registered")
	}

	best, bestDist := p.nodes[0], math.Inf(1)
	for _, n := range p.nodes {
		if d := c.DistanceTo(n.Coordinate); d < bestDist {
			best, bestDist = n, d
		}
	}

	return best, nil
}

func (p *MockRouteProvider) ShortestPath(ctx context.Context, source, target int64) (domain.Path, error) {
	p.count()
	if err := ctx.Err(); err != nil {
		return domain.Path{}, err
	}

	path, ok := p.paths[[2]int64{source, target}]
	if !ok || len(path.Coordinates) == 0 {
		return domain.Path{}, domain.ErrPathNotFound
	}

	return path, nil
}

// Calls returns how many provider methods have been invoked.
func (p *MockRouteProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *MockRouteProvider) count() {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
}
