package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestGet_FileNotExist(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	v, ok, err := fs.Get(context.Background(), "pakjobs_auth")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || v != nil {
		t.Errorf("expected no value, got %q (ok=%v)", v, ok)
	}
}

func TestPutThenGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	fs := NewFileStore(path)
	ctx := context.Background()

	if err := fs.Put(ctx, "a", []byte(`{"x":1}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := fs.Put(ctx, "b", []byte("plain")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	v, ok, err := fs.Get(ctx, "a")
	if err != nil || !ok {
		t.Fatalf("Get(a) = %q, %v, %v", v, ok, err)
	}
	if string(v) != `{"x":1}` {
		t.Errorf("Get(a) = %q; want %q", v, `{"x":1}`)
	}

	// read back the raw file
	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	var out map[string]string
	if err := json.Unmarshal(buf, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out["b"] != "plain" || len(out) != 2 {
		t.Errorf("unexpected saved data: %+v", out)
	}
}

func TestPut_Overwrites(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	ctx := context.Background()

	_ = fs.Put(ctx, "k", []byte("one"))
	_ = fs.Put(ctx, "k", []byte("two"))

	v, _, _ := fs.Get(ctx, "k")
	if string(v) != "two" {
		t.Errorf("Get(k) = %q; want %q", v, "two")
	}
}

func TestGet_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := NewFileStore(path)

	if _, _, err := fs.Get(context.Background(), "k"); err == nil {
		t.Fatal("expected error for corrupt file")
	}

	// Put replaces the unreadable file
	if err := fs.Put(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	v, ok, err := fs.Get(context.Background(), "k")
	if err != nil || !ok || string(v) != "v" {
		t.Errorf("Get(k) = %q, %v, %v", v, ok, err)
	}
}

func TestPut_UnwritablePath(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "no", "such", "dir", "store.json"))
	if err := fs.Put(context.Background(), "k", []byte("v")); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}
