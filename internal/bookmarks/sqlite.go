package bookmarks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/linknest/linknest/internal/model"
)

// SQLiteService implements Service on a SQLite database opened via
// the storage package. One row per node; folders have an empty URL.
type SQLiteService struct {
	notifier
	db *sql.DB
}

// NewSQLiteService creates a SQLiteService on an already-opened and
// migrated database.
func NewSQLiteService(db *sql.DB) *SQLiteService {
	return &SQLiteService{db: db}
}

// GetTree loads the full node forest, children ordered by position.
func (s *SQLiteService) GetTree(ctx context.Context) ([]model.Node, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, url, parent_id
		FROM nodes
		ORDER BY position, rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type flatNode struct {
		node     model.Node
		parentID *string
	}

	var flat []flatNode
	for rows.Next() {
		var fn flatNode
		var parentID sql.NullString
		if err := rows.Scan(&fn.node.ID, &fn.node.Title, &fn.node.URL, &parentID); err != nil {
			return nil, err
		}
		if parentID.Valid {
			fn.parentID = &parentID.String
		}
		flat = append(flat, fn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Index nodes by ID and children IDs by parent, in scan order
	// (already position-sorted), then assemble the forest depth-first.
	byID := make(map[string]model.Node, len(flat))
	children := make(map[string][]string)
	var rootIDs []string
	for _, fn := range flat {
		byID[fn.node.ID] = fn.node
		if fn.parentID == nil {
			rootIDs = append(rootIDs, fn.node.ID)
			continue
		}
		children[*fn.parentID] = append(children[*fn.parentID], fn.node.ID)
	}

	var build func(id string) model.Node
	build = func(id string) model.Node {
		n := byID[id]
		for _, childID := range children[id] {
			n.Children = append(n.Children, build(childID))
		}
		return n
	}

	forest := make([]model.Node, 0, len(rootIDs))
	for _, id := range rootIDs {
		forest = append(forest, build(id))
	}
	return forest, nil
}

// Create inserts a new leaf bookmark and returns it with its assigned
// ID. Fails if the URL is missing.
func (s *SQLiteService) Create(ctx context.Context, params CreateParams) (model.Node, error) {
	if params.URL == "" {
		return model.Node{}, &model.ValidationError{Field: "url", Message: "url is required"}
	}

	node := model.Node{
		ID:    model.NewID(),
		Title: params.Title,
		URL:   params.URL,
	}

	position, err := s.nextPosition(ctx, params.ParentID)
	if err != nil {
		return model.Node{}, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO nodes (id, title, url, parent_id, position)
		VALUES (?, ?, ?, ?, ?)
	`, node.ID, node.Title, node.URL, params.ParentID, position)
	if err != nil {
		return model.Node{}, err
	}

	return node, nil
}

// CreateFolder inserts a new folder node (no URL) and returns it.
func (s *SQLiteService) CreateFolder(ctx context.Context, title string, parentID *string) (model.Node, error) {
	node := model.Node{
		ID:    model.NewID(),
		Title: title,
	}

	position, err := s.nextPosition(ctx, parentID)
	if err != nil {
		return model.Node{}, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO nodes (id, title, url, parent_id, position)
		VALUES (?, ?, '', ?, ?)
	`, node.ID, node.Title, parentID, position)
	if err != nil {
		return model.Node{}, err
	}

	return node, nil
}

// Update applies a partial update and fires a Changed event.
func (s *SQLiteService) Update(ctx context.Context, id string, params UpdateParams) error {
	if params.Title == nil && params.URL == nil {
		return nil
	}

	var res sql.Result
	var err error
	switch {
	case params.Title != nil && params.URL != nil:
		res, err = s.db.ExecContext(ctx,
			"UPDATE nodes SET title = ?, url = ? WHERE id = ?", *params.Title, *params.URL, id)
	case params.Title != nil:
		res, err = s.db.ExecContext(ctx,
			"UPDATE nodes SET title = ? WHERE id = ?", *params.Title, id)
	default:
		res, err = s.db.ExecContext(ctx,
			"UPDATE nodes SET url = ? WHERE id = ?", *params.URL, id)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("node %s not found", id)
	}

	s.publish(Event{Kind: EventChanged, ID: id})
	return nil
}

// Remove deletes a node (and, via cascade, its descendants) and fires
// a Removed event.
func (s *SQLiteService) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM nodes WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("node %s not found", id)
	}

	s.publish(Event{Kind: EventRemoved, ID: id})
	return nil
}

// Move reparents a node to the end of the target folder and fires a
// Moved event.
func (s *SQLiteService) Move(ctx context.Context, id string, newParentID *string) error {
	position, err := s.nextPosition(ctx, newParentID)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE nodes SET parent_id = ?, position = ? WHERE id = ?", newParentID, position, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("node %s not found", id)
	}

	s.publish(Event{Kind: EventMoved, ID: id})
	return nil
}

// nextPosition returns the next sibling position under a parent.
func (s *SQLiteService) nextPosition(ctx context.Context, parentID *string) (int, error) {
	var query string
	var row *sql.Row
	if parentID == nil {
		query = "SELECT COALESCE(MAX(position), -1) + 1 FROM nodes WHERE parent_id IS NULL"
		row = s.db.QueryRowContext(ctx, query)
	} else {
		query = "SELECT COALESCE(MAX(position), -1) + 1 FROM nodes WHERE parent_id = ?"
		row = s.db.QueryRowContext(ctx, query, *parentID)
	}

	var position int
	if err := row.Scan(&position); err != nil {
		return 0, err
	}
	return position, nil
}
