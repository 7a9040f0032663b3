package config

import (
	"bytes"
	"context"
	_ "embed"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/cjdinger/lint-sasjs/errors"
	"github.com/cjdinger/lint-sasjs/fs"
)

// schemaSource holds the #Config definition JSON and CUE sources are unified with.
//
//go:embed schema.cue
var schemaSource []byte

// Format is a configuration file syntax.
type Format int

const (
	// FormatCUE covers CUE and JSON, which CUE parses natively.
	FormatCUE Format = iota
	FormatYAML
	FormatTOML
)

// FormatOf picks the decoder for a configuration file from its name.
func FormatOf(path string) (Format, error) {
	if filepath.Base(path) == FileName {
		return FormatCUE, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".cue":
		return FormatCUE, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, errors.Newf(errors.CodeUnsupportedFormat, "unsupported configuration format %q", path)
	}
}

// loadConfig reads the file, decodes it according to its format, fills in
// defaults for file discovery, and validates the result unless told not to.
func loadConfig(ctx context.Context, filesystem fs.ReadFS, path string, opts LoadOptions) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(
			err,
			errors.CodeConfigLoadFailed,
			"failed to read configuration",
			map[string]interface{}{
				"path": path,
			},
		)
	}

	cfg, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if opts.SkipValidation {
		return cfg, nil
	}
	if err := Validate(cfg, opts.Version); err != nil {
		return nil, errors.WrapWithContext(
			err,
			errors.GetCode(err),
			"invalid configuration",
			map[string]interface{}{
				"path": path,
			},
		)
	}
	return cfg, nil
}

// Decode parses data in the format implied by path. It does not validate.
func Decode(path string, data []byte) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	switch format {
	case FormatCUE:
		err = decodeCUE(path, data, &cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatTOML:
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	}
	if err != nil {
		return nil, errors.WrapWithContext(
			err,
			errors.CodeConfigDecodeFailed,
			"failed to decode configuration",
			map[string]interface{}{
				"path": path,
			},
		)
	}
	return &cfg, nil
}

// decodeCUE compiles the source, unifies it with #Config and decodes the
// result, so type and range errors surface with CUE positions.
func decodeCUE(path string, data []byte, out *Config) error {
	cctx := cuecontext.New()

	schema := cctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "invalid embedded configuration schema")
	}

	value := cctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return errors.New(errors.CodeConfigDecodeFailed, cueerrors.Details(err, nil))
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return errors.New(errors.CodeInvalidConfig, cueerrors.Details(err, nil))
	}

	return unified.Decode(out)
}
