package resource

import (
	"context"
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"syscall"
	"testing"
)

func TestFileCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "satellite_pe_tools.yaml")
	file := &File{Path: path, Content: []byte("url: https://sat.example.com\n"), Mode: 0o644}

	status, err := file.Apply(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusChanged {
		t.Errorf("expected changed, got %s", status)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "url: https://sat.example.com\n" {
		t.Errorf("unexpected content %q", content)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("expected mode 0644, got %o", info.Mode().Perm())
	}
}

func TestFileUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("same"), 0o600); err != nil {
		t.Fatal(err)
	}

	file := &File{Path: path, Content: []byte("same"), Mode: 0o600}
	status, err := file.Apply(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusUnchanged {
		t.Errorf("expected unchanged, got %s", status)
	}
}

func TestFileContentDrift(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	file := &File{Path: path, Content: []byte("new"), Mode: 0o644}
	status, err := file.Apply(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusChanged {
		t.Errorf("expected changed, got %s", status)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "new" {
		t.Errorf("expected new content, got %q", content)
	}
}

func TestFileOwnershipDrift(t *testing.T) {
	current, err := user.Current()
	if err != nil {
		t.Fatal(err)
	}
	if current.Uid != "0" {
		t.Skip("changing file ownership needs root")
	}
	nobody, err := user.Lookup("nobody")
	if err != nil {
		t.Skip("no nobody user on this host")
	}

	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("same"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Content and mode already match, only the owner is wrong.
	file := &File{Path: path, Content: []byte("same"), Mode: 0o644, Owner: "nobody"}
	status, err := file.Apply(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusChanged {
		t.Errorf("expected changed for ownership drift, got %s", status)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	uid, _ := strconv.Atoi(nobody.Uid)
	if got := int(info.Sys().(*syscall.Stat_t).Uid); got != uid {
		t.Errorf("expected file owned by nobody (%d), got %d", uid, got)
	}

	status, err = file.Apply(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusUnchanged {
		t.Errorf("second apply should be unchanged, got %s", status)
	}
}

func TestFileUnknownOwner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("same"), 0o644); err != nil {
		t.Fatal(err)
	}

	file := &File{Path: path, Content: []byte("same"), Mode: 0o644, Owner: "no-such-user-xk7"}
	if _, err := file.Apply(context.Background(), false); err == nil {
		t.Error("expected an error for an unknown owner")
	}
}

func TestFileNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")

	file := &File{Path: path, Content: []byte("content"), Mode: 0o644}
	status, err := file.Apply(context.Background(), true)
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusChanged {
		t.Errorf("noop must report drift, got %s", status)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("noop must not create the file")
	}
}

func TestDirectoryCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trusted-external-commands")

	dir := &Directory{Path: path, Mode: 0o755}
	status, err := dir.Apply(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusChanged {
		t.Errorf("expected changed, got %s", status)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() || info.Mode().Perm() != 0o755 {
		t.Errorf("expected 0755 directory, got %v", info.Mode())
	}

	status, err = dir.Apply(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusUnchanged {
		t.Errorf("second apply should be unchanged, got %s", status)
	}
}

func TestDirectoryFileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	dir := &Directory{Path: path, Mode: 0o755}
	if _, err := dir.Apply(context.Background(), false); err == nil {
		t.Error("expected an error when a file blocks the directory path")
	}
}

func TestSymlinkCreates(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "katello-server-ca.pem")
	if err := os.WriteFile(target, []byte("pem"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(tmp, "katello-default-ca.crt")

	link := &Symlink{Path: path, Target: target}
	status, err := link.Apply(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusChanged {
		t.Errorf("expected changed, got %s", status)
	}

	got, err := os.Readlink(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != target {
		t.Errorf("expected link to %s, got %s", target, got)
	}

	status, err = link.Apply(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusUnchanged {
		t.Errorf("second apply should be unchanged, got %s", status)
	}
}

func TestSymlinkReplacesWrongTarget(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "link")
	if err := os.Symlink(filepath.Join(tmp, "wrong"), path); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(tmp, "right")
	link := &Symlink{Path: path, Target: target}
	status, err := link.Apply(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusChanged {
		t.Errorf("expected changed, got %s", status)
	}

	got, _ := os.Readlink(path)
	if got != target {
		t.Errorf("expected link to %s, got %s", target, got)
	}
}

func TestSymlinkRegularFileInTheWay(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "not-a-link")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	link := &Symlink{Path: path, Target: filepath.Join(tmp, "target")}
	if _, err := link.Apply(context.Background(), false); err == nil {
		t.Error("expected an error when a regular file blocks the link path")
	}
}
