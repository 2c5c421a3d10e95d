package bookmarks

import (
	"context"
	"fmt"
	"sync"

	"github.com/linknest/linknest/internal/model"
)

// MemoryService implements Service on an in-memory forest. It backs
// tests and any host that does not want a database on disk.
type MemoryService struct {
	notifier
	mu     sync.Mutex
	forest []model.Node
}

// NewMemoryService creates a MemoryService seeded with the given
// forest (may be nil).
func NewMemoryService(forest []model.Node) *MemoryService {
	return &MemoryService{forest: forest}
}

// GetTree returns a deep copy of the forest.
func (s *MemoryService) GetTree(ctx context.Context) ([]model.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyForest(s.forest), nil
}

// Create appends a new leaf bookmark under the given parent.
func (s *MemoryService) Create(ctx context.Context, params CreateParams) (model.Node, error) {
	if params.URL == "" {
		return model.Node{}, &model.ValidationError{Field: "url", Message: "url is required"}
	}

	node := model.Node{
		ID:    model.NewID(),
		Title: params.Title,
		URL:   params.URL,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if params.ParentID == nil {
		s.forest = append(s.forest, node)
		return node, nil
	}
	parent := findNode(s.forest, *params.ParentID)
	if parent == nil {
		return model.Node{}, fmt.Errorf("node %s not found", *params.ParentID)
	}
	parent.Children = append(parent.Children, node)
	return node, nil
}

// Update applies a partial update and fires a Changed event.
func (s *MemoryService) Update(ctx context.Context, id string, params UpdateParams) error {
	s.mu.Lock()
	node := findNode(s.forest, id)
	if node == nil {
		s.mu.Unlock()
		return fmt.Errorf("node %s not found", id)
	}
	if params.Title != nil {
		node.Title = *params.Title
	}
	if params.URL != nil {
		node.URL = *params.URL
	}
	s.mu.Unlock()

	s.publish(Event{Kind: EventChanged, ID: id})
	return nil
}

// Remove deletes a node and its descendants, then fires a Removed
// event.
func (s *MemoryService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	forest, removed := removeNode(s.forest, id)
	if removed == nil {
		s.mu.Unlock()
		return fmt.Errorf("node %s not found", id)
	}
	s.forest = forest
	s.mu.Unlock()

	s.publish(Event{Kind: EventRemoved, ID: id})
	return nil
}

// Move detaches a node and re-attaches it at the end of the target
// folder, then fires a Moved event.
func (s *MemoryService) Move(ctx context.Context, id string, newParentID *string) error {
	s.mu.Lock()
	forest, detached := removeNode(s.forest, id)
	if detached == nil {
		s.mu.Unlock()
		return fmt.Errorf("node %s not found", id)
	}
	s.forest = forest

	if newParentID == nil {
		s.forest = append(s.forest, *detached)
	} else {
		parent := findNode(s.forest, *newParentID)
		if parent == nil {
			// Reattach at root rather than lose the subtree
			s.forest = append(s.forest, *detached)
			s.mu.Unlock()
			return fmt.Errorf("node %s not found", *newParentID)
		}
		parent.Children = append(parent.Children, *detached)
	}
	s.mu.Unlock()

	s.publish(Event{Kind: EventMoved, ID: id})
	return nil
}

// findNode returns a pointer to the node with the given ID, or nil.
func findNode(forest []model.Node, id string) *model.Node {
	for i := range forest {
		if forest[i].ID == id {
			return &forest[i]
		}
		if found := findNode(forest[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}

// removeNode removes the node with the given ID from the forest and
// returns the updated forest plus the detached node (nil if absent).
func removeNode(forest []model.Node, id string) ([]model.Node, *model.Node) {
	for i := range forest {
		if forest[i].ID == id {
			detached := forest[i]
			return append(forest[:i], forest[i+1:]...), &detached
		}
		children, detached := removeNode(forest[i].Children, id)
		if detached != nil {
			forest[i].Children = children
			return forest, detached
		}
	}
	return forest, nil
}

// copyForest returns a deep copy of a node forest.
func copyForest(forest []model.Node) []model.Node {
	if forest == nil {
		return nil
	}
	out := make([]model.Node, len(forest))
	for i, n := range forest {
		out[i] = n
		out[i].Children = copyForest(n.Children)
	}
	return out
}
