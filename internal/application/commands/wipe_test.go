package commands

import (
	"context"
	"testing"
)

func TestWipeCommand(t *testing.T) {
	v, _ := newTestVault(t, sampleDocument())

	result, err := NewWipeCommand(v).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Applied {
		t.Errorf("expected wipe to apply")
	}

	doc := mustLoad(t, v)
	if len(doc.Files) != 0 || len(doc.Folders) != 0 || doc.IsLockEnabled || doc.Secret != "" {
		t.Errorf("expected default document, got %+v", doc)
	}
}
