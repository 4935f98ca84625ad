package domain

import (
	"encoding/json"
	"time"
)

// Category is a node in the two-level product taxonomy. ParentID is nil for
// roots; Level is always consistent with the parent chain; Slug is derived
// from Name and regenerated only when the name changes.
type Category struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Slug            string     `json:"slug"`
	ParentID        *string    `json:"parentId"`
	Level           int        `json:"level"`
	IsActive        bool       `json:"isActive"`
	SortOrder       int        `json:"sortOrder"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	MetaTitle       string     `json:"metaTitle,omitempty"`
	MetaDescription string     `json:"metaDescription,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	ProductCount    int        `json:"productCount"`
	Children        []Category `json:"children,omitempty"`
}

// CategoryCreateRequest is the payload for creating a category.
type CategoryCreateRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	ParentID        *string `json:"parentId,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
	SortOrder       *int    `json:"sortOrder,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
	MetaTitle       string  `json:"metaTitle,omitempty"`
	MetaDescription string  `json:"metaDescription,omitempty"`
}

// NullableID is a tri-state id field for partial updates: absent (zero
// value), explicit null, or a concrete id. encoding/json calls UnmarshalJSON
// for a present key even when its value is null, so the three states survive
// decoding, which a plain pointer cannot express.
type NullableID struct {
	Present bool
	Value   *string
}

// SomeID returns a present NullableID carrying id.
func SomeID(id string) NullableID {
	return NullableID{Present: true, Value: &id}
}

// NullID returns a present NullableID carrying an explicit null.
func NullID() NullableID {
	return NullableID{Present: true}
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

func (n NullableID) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// CategoryUpdateRequest is a partial update. Nil fields are left untouched.
// ParentID is tri-state so "absent" (no reparent) and "set to null" (move to
// root) stay distinguishable after JSON decoding.
type CategoryUpdateRequest struct {
	Name            *string    `json:"name,omitempty"`
	Description     *string    `json:"description,omitempty"`
	ParentID        NullableID `json:"parentId"`
	IsActive        *bool      `json:"isActive,omitempty"`
	SortOrder       *int       `json:"sortOrder,omitempty"`
	ImageURL        *string    `json:"imageUrl,omitempty"`
	MetaTitle       *string    `json:"metaTitle,omitempty"`
	MetaDescription *string    `json:"metaDescription,omitempty"`
}

// CategoryFilter narrows category list queries. FilterByParent distinguishes
// "no parent filter" from "roots only" (RootsOnly) and "children of ParentID".
type CategoryFilter struct {
	FilterByParent  bool
	RootsOnly       bool
	ParentID        string
	IncludeChildren bool
}

// CategoryListResponse is the envelope for category list queries.
type CategoryListResponse struct {
	Categories []Category `json:"categories"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}
