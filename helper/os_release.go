package helper

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadOSReleaseEnv exports the key/value pairs from /etc/os-release into the
// process environment so PRETTY_NAME, ID, ID_LIKE etc. are available.
func LoadOSReleaseEnv() error {
	err := godotenv.Load("/etc/os-release")
	if err != nil {
		slog.Error("error loading /etc/os-release", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// OSPrettyName returns the PRETTY_NAME from /etc/os-release, if loaded.
func OSPrettyName() string {
	return os.Getenv("PRETTY_NAME")
}

func OSID() string {
	return os.Getenv("ID")
}

func OSIDLike() string {
	return os.Getenv("ID_LIKE")
}
