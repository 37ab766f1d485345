package store

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// DumpJSON renders the subtree rooted at id as a JSON string for
// debug/log attachment (spec §7: error logs carry tree context). Each
// node becomes an object with its construct name, its text payload (for
// Texty nodes), and its children/items, built incrementally with
// sjson.Set rather than marshaling a Go struct tree, since the shape
// varies by arity kind and holes need to render as a sentinel rather
// than be walked.
func (s *Store) DumpJSON(id NodeID) (string, error) {
	return s.dumpNode(id, "")
}

func (s *Store) dumpNode(id NodeID, json string) (string, error) {
	v, ok := s.Get(id)
	if !ok {
		return "", ErrNotFound
	}

	var err error
	if json, err = sjson.Set(json, "id", int(id)); err != nil {
		return "", err
	}

	if v.IsHole {
		if json, err = sjson.Set(json, "hole", true); err != nil {
			return "", err
		}
		return json, nil
	}

	if json, err = sjson.Set(json, "construct", v.Construct); err != nil {
		return "", err
	}

	switch {
	case v.IsTexty:
		if json, err = sjson.Set(json, "text", v.Text); err != nil {
			return "", err
		}
	case v.IsFixed:
		for i, child := range v.Children {
			childJSON, err := s.dumpNode(child, "")
			if err != nil {
				return "", fmt.Errorf("dump child %d of node %d: %w", i, id, err)
			}
			if json, err = sjson.SetRaw(json, fmt.Sprintf("children.%d", i), childJSON); err != nil {
				return "", err
			}
		}
	case v.IsListy:
		for i, item := range v.Items {
			itemJSON, err := s.dumpNode(item, "")
			if err != nil {
				return "", fmt.Errorf("dump item %d of node %d: %w", i, id, err)
			}
			if json, err = sjson.SetRaw(json, fmt.Sprintf("items.%d", i), itemJSON); err != nil {
				return "", err
			}
		}
	}

	return json, nil
}
