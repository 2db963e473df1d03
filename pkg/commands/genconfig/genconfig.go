package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/wtlaunch/pkg/config"
	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/arthur-debert/wtlaunch/pkg/filesystem"
	"github.com/arthur-debert/wtlaunch/pkg/logging"
	"github.com/arthur-debert/wtlaunch/pkg/types"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Config is rendered; nil renders the defaults
	Config *config.Config

	// Write stores the file at Path instead of only returning it
	Write bool
	Path  string
	Force bool

	FileSystem types.FS
}

// GenConfigResult holds the rendered file
type GenConfigResult struct {
	Content string
	Path    string
	Written bool
}

// GenConfig renders the configuration as a TOML file and optionally writes it
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	cfg := opts.Config
	if cfg == nil {
		defaults, err := config.Defaults()
		if err != nil {
			return nil, err
		}
		cfg = defaults
	}

	content, err := config.Generate(cfg)
	if err != nil {
		return nil, err
	}
	result := &GenConfigResult{Content: string(content)}
	if !opts.Write {
		return result, nil
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	path := opts.Path
	if path == "" {
		path = config.DefaultPath()
	}
	result.Path = path

	if _, err := fs.Stat(path); err == nil && !opts.Force {
		return result, errors.Newf(errors.ErrInvalidInput, "%s already exists, use --force to overwrite", path).
			WithDetail("path", path)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", filepath.Dir(path))
	}
	if err := fs.WriteFile(path, content, 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	result.Written = true

	logger.Info().Str("path", path).Msg("Wrote configuration file")
	return result, nil
}
