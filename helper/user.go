package helper

import (
	"fmt"
	"os/user"
)

// RequireRoot fails unless the current user is root, since every managed
// path lives under /etc.
func RequireRoot() error {
	current, err := user.Current()
	if err != nil {
		return err
	}
	if current.Username != "root" {
		return fmt.Errorf("needs to be run as root, current user is %s", current.Username)
	}
	return nil
}
