package resource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/user"
	"strconv"
	"syscall"
)

// File asserts a regular file with exact content and mode. Owner and Group
// are looked up by name and may be left empty to keep the current ownership.
type File struct {
	Path    string
	Content []byte
	Mode    os.FileMode
	Owner   string
	Group   string
}

func (f *File) Name() string {
	return "file " + f.Path
}

func (f *File) Apply(_ context.Context, noop bool) (Status, error) {
	uid, gid, err := lookupIDs(f.Owner, f.Group)
	if err != nil {
		return StatusFailed, err
	}

	current, readErr := os.ReadFile(f.Path)
	inSync := readErr == nil && bytes.Equal(current, f.Content)

	if inSync {
		info, statErr := os.Stat(f.Path)
		switch {
		case statErr != nil:
			inSync = false
		case info.Mode().Perm() != f.Mode.Perm():
			inSync = false
		case ownershipDrifted(info, uid, gid):
			inSync = false
		}
	}

	if inSync {
		return StatusUnchanged, nil
	}
	if noop {
		return StatusChanged, nil
	}

	if err := os.WriteFile(f.Path, f.Content, f.Mode); err != nil {
		return StatusFailed, fmt.Errorf("writing %s: %w", f.Path, err)
	}
	if err := os.Chmod(f.Path, f.Mode); err != nil {
		return StatusFailed, fmt.Errorf("chmod %s: %w", f.Path, err)
	}
	if uid >= 0 || gid >= 0 {
		if err := os.Chown(f.Path, uid, gid); err != nil {
			return StatusFailed, fmt.Errorf("chown %s: %w", f.Path, err)
		}
	}
	return StatusChanged, nil
}

// Directory asserts a directory with the given mode.
type Directory struct {
	Path string
	Mode os.FileMode
}

func (d *Directory) Name() string {
	return "directory " + d.Path
}

func (d *Directory) Apply(_ context.Context, noop bool) (Status, error) {
	info, err := os.Stat(d.Path)
	if err == nil && info.IsDir() && info.Mode().Perm() == d.Mode.Perm() {
		return StatusUnchanged, nil
	}
	if err == nil && !info.IsDir() {
		return StatusFailed, fmt.Errorf("%s exists and is not a directory", d.Path)
	}
	if noop {
		return StatusChanged, nil
	}

	if err := os.MkdirAll(d.Path, d.Mode); err != nil {
		return StatusFailed, fmt.Errorf("creating %s: %w", d.Path, err)
	}
	if err := os.Chmod(d.Path, d.Mode); err != nil {
		return StatusFailed, fmt.Errorf("chmod %s: %w", d.Path, err)
	}
	return StatusChanged, nil
}

// Symlink asserts a symbolic link at Path pointing at Target. A wrong or
// dangling link is replaced, a regular file in the way is an error.
type Symlink struct {
	Path   string
	Target string
}

func (s *Symlink) Name() string {
	return "symlink " + s.Path
}

func (s *Symlink) Apply(_ context.Context, noop bool) (Status, error) {
	current, err := os.Readlink(s.Path)
	if err == nil && current == s.Target {
		return StatusUnchanged, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		// Readlink fails with EINVAL when the path is a regular file.
		if info, statErr := os.Lstat(s.Path); statErr == nil && info.Mode()&os.ModeSymlink == 0 {
			return StatusFailed, fmt.Errorf("%s exists and is not a symlink", s.Path)
		}
	}
	if noop {
		return StatusChanged, nil
	}

	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return StatusFailed, fmt.Errorf("removing %s: %w", s.Path, err)
	}
	if err := os.Symlink(s.Target, s.Path); err != nil {
		return StatusFailed, fmt.Errorf("linking %s -> %s: %w", s.Path, s.Target, err)
	}
	return StatusChanged, nil
}

// lookupIDs resolves owner and group names to numeric ids, -1 meaning
// "leave as is".
func lookupIDs(owner, group string) (int, int, error) {
	uid, gid := -1, -1
	if owner != "" {
		u, err := user.Lookup(owner)
		if err != nil {
			return 0, 0, fmt.Errorf("looking up user %s: %w", owner, err)
		}
		uid, err = strconv.Atoi(u.Uid)
		if err != nil {
			return 0, 0, fmt.Errorf("parsing uid %q of user %s: %w", u.Uid, owner, err)
		}
	}
	if group != "" {
		g, err := user.LookupGroup(group)
		if err != nil {
			return 0, 0, fmt.Errorf("looking up group %s: %w", group, err)
		}
		gid, err = strconv.Atoi(g.Gid)
		if err != nil {
			return 0, 0, fmt.Errorf("parsing gid %q of group %s: %w", g.Gid, group, err)
		}
	}
	return uid, gid, nil
}

func ownershipDrifted(info os.FileInfo, uid, gid int) bool {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return false
	}
	if uid >= 0 && int(stat.Uid) != uid {
		return true
	}
	return gid >= 0 && int(stat.Gid) != gid
}
