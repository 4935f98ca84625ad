package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/localstyle/brand-admin-go/internal/domain"
)

// The parentId field of an update must keep "absent", "explicit null", and
// "concrete id" apart after JSON decoding, or moving a category back to the
// root becomes unreachable over the wire.
func TestCategoryUpdateRequest_ParentIDDecoding(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantValue   *string
	}{
		{"absent", `{"name":"Shoes"}`, false, nil},
		{"explicit null", `{"parentId":null}`, true, nil},
		{"concrete id", `{"parentId":"cat_42"}`, true, strAddr("cat_42")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req domain.CategoryUpdateRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.body, err)
			}
			if req.ParentID.Present != tt.wantPresent {
				t.Errorf("Present = %v, want %v", req.ParentID.Present, tt.wantPresent)
			}
			switch {
			case tt.wantValue == nil && req.ParentID.Value != nil:
				t.Errorf("Value = %q, want nil", *req.ParentID.Value)
			case tt.wantValue != nil && (req.ParentID.Value == nil || *req.ParentID.Value != *tt.wantValue):
				t.Errorf("Value = %v, want %q", req.ParentID.Value, *tt.wantValue)
			}
		})
	}
}

func TestNullableID_Constructors(t *testing.T) {
	if n := domain.NullID(); !n.Present || n.Value != nil {
		t.Errorf("NullID() = %+v, want present with nil value", n)
	}
	if n := domain.SomeID("cat_7"); !n.Present || n.Value == nil || *n.Value != "cat_7" {
		t.Errorf("SomeID() = %+v, want present with cat_7", n)
	}
}

func strAddr(s string) *string { return &s }
