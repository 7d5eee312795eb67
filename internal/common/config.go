package common

import (
	"path/filepath"
	"strings"
)

// Config is the closed two-key configuration surface: the directory holding
// the snapshot file, and the snapshot's filename within it.
type Config struct {
	Dir        string
	DbFilename string
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Dir:        "DIR",
		DbFilename: "DB_FILENAME",
	}
}

// Get implements CONFIG GET's closed key set: "dir" and "dbfilename".
func (c *Config) Get(key string) (string, bool) {
	switch strings.ToLower(key) {
	case "dir":
		return c.Dir, true
	case "dbfilename":
		return c.DbFilename, true
	default:
		return "", false
	}
}

// ParseArgs scans os.Args-style CLI flags of the form "--dir <value>" and
// "--dbfilename <value>". Unknown flags are reported to logger and
// otherwise ignored, following the teacher's pattern of logging unexpected
// configuration rather than aborting startup.
func ParseArgs(args []string, logger *Logger) *Config {
	cfg := DefaultConfig()
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			logger.Warn("ignoring unrecognized argument %q", arg)
			continue
		}
		name := strings.TrimPrefix(arg, "--")
		if i+1 >= len(args) {
			logger.Warn("flag %q given without a value, ignoring", arg)
			break
		}
		value := args[i+1]
		i++
		switch name {
		case "dir":
			cfg.Dir = value
		case "dbfilename":
			cfg.DbFilename = value
		default:
			logger.Warn("ignoring unrecognized flag %q", arg)
		}
	}
	return cfg
}

// SnapshotPath returns the path to the configured snapshot file.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.Dir, c.DbFilename)
}
