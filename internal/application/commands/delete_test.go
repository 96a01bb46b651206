package commands

import (
	"context"
	"testing"

	"calcvault/internal/domain"
)

func TestDeleteCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{name: "valid id", id: "a"},
		{name: "empty id", id: "", wantErr: true, errMsg: "item ID is required"},
		{name: "root", id: domain.RootID, wantErr: true, errMsg: "root cannot be deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&DeleteCommand{ID: tt.id}).Validate()
			if tt.wantErr {
				if err == nil || !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDeleteCommand_File(t *testing.T) {
	v, _ := newTestVault(t, sampleDocument())

	result, err := NewDeleteCommand(v, "a").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Applied || result.Removed != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	doc := mustLoad(t, v)
	if _, ok := doc.FindFile("a"); ok {
		t.Errorf("file still present")
	}
	if len(doc.Folders) != 3 {
		t.Errorf("folders changed")
	}
}

func TestDeleteCommand_FolderOrphansChildren(t *testing.T) {
	v, _ := newTestVault(t, sampleDocument())

	result, err := NewDeleteCommand(v, "f1").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Applied || result.Removed != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	doc := mustLoad(t, v)
	if _, ok := doc.FindFolder("f1"); ok {
		t.Errorf("folder still present")
	}
	// Children stay, pointing at the deleted folder
	child, ok := doc.FindFolder("f2")
	if !ok || child.ParentID != "f1" {
		t.Errorf("expected orphaned child folder, got %+v", child)
	}
	file, ok := doc.FindFile("a")
	if !ok || file.FolderID != "f1" {
		t.Errorf("expected orphaned file, got %+v", file)
	}

	tree := BuildTree(doc)
	if len(tree.Orphans) != 2 {
		t.Errorf("expected 2 orphans, got %d", len(tree.Orphans))
	}
}

func TestDeleteCommand_Cascade(t *testing.T) {
	v, _ := newTestVault(t, sampleDocument())

	cmd := NewDeleteCommand(v, "f1")
	cmd.Cascade = true
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// f1, f2 and beach.png
	if !result.Applied || result.Removed != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}

	doc := mustLoad(t, v)
	if len(doc.Folders) != 1 || doc.Folders[0].ID != "f3" {
		t.Errorf("unexpected folders: %+v", doc.Folders)
	}
	if len(doc.Files) != 1 || doc.Files[0].ID != "b" {
		t.Errorf("unexpected files: %+v", doc.Files)
	}
}

func TestDeleteCommand_RemovesFromBothLists(t *testing.T) {
	doc := sampleDocument()
	doc.Files = append(doc.Files, domain.File{ID: "f3", Name: "clash", FolderID: domain.RootID})
	v, _ := newTestVault(t, doc)

	result, err := NewDeleteCommand(v, "f3").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Removed != 2 {
		t.Errorf("Removed = %d, want 2", result.Removed)
	}

	after := mustLoad(t, v)
	if _, ok := after.FindFolder("f3"); ok {
		t.Errorf("folder f3 still present")
	}
	if _, ok := after.FindFile("f3"); ok {
		t.Errorf("file f3 still present")
	}
}

func TestDeleteCommand_UnknownIsNoOp(t *testing.T) {
	v, store := newTestVault(t, sampleDocument())
	saves := store.Saves()

	result, err := NewDeleteCommand(v, "nope").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Applied {
		t.Errorf("expected no-op")
	}
	if store.Saves() != saves {
		t.Errorf("expected no save")
	}
}
