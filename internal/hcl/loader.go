package hcl

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/synergrid/internal/config"
	"github.com/vk/synergrid/internal/ctxlog"
	"github.com/vk/synergrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file reachable from the given paths and translates
// the module blocks into the agnostic model. Block order within a file, and
// sorted file order across a directory, determine load order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	filePaths, err := collectFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Found HCL files to load.", "files", filePaths)

	parser := hclparse.NewParser()
	model := &config.Model{}
	seen := make(map[string]string)
	optimizerFile := ""

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}

		var cfg schema.Config
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &cfg); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode configuration in %s: %w", filePath, diags)
		}

		if cfg.Optimizer != nil {
			if optimizerFile != "" {
				return nil, fmt.Errorf("optimizer block declared in both %s and %s", optimizerFile, filePath)
			}
			optimizerFile = filePath
			model.Scorer = cfg.Optimizer.Scorer
		}

		for _, mod := range cfg.Modules {
			if prev, dup := seen[mod.Name]; dup {
				if prev == filePath {
					return nil, fmt.Errorf("module %q declared twice in %s", mod.Name, filePath)
				}
				return nil, fmt.Errorf("module %q declared in both %s and %s", mod.Name, prev, filePath)
			}
			seen[mod.Name] = filePath

			def, err := l.translateModule(mod)
			if err != nil {
				return nil, fmt.Errorf("failed to process module %q in %s: %w", mod.Name, filePath, err)
			}
			model.Modules = append(model.Modules, def)
		}

		logger.Debug("Successfully loaded definitions from HCL file.", "file", filePath)
	}

	logger.Info("Configuration loaded.", "modules_declared", len(model.Modules))
	return model, nil
}

// translateModule converts an HCL module block into the agnostic definition,
// evaluating its option attributes into concrete cty values.
func (l *Loader) translateModule(mod *schema.Module) (*config.ModuleDefinition, error) {
	def := &config.ModuleDefinition{
		Name:    mod.Name,
		Options: make(map[string]cty.Value),
	}

	if mod.Options == nil {
		return def, nil
	}

	attrs, diags := mod.Options.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid options: %w", diags)
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate option %q: %w", name, diags)
		}
		def.Options[name] = val
	}
	return def, nil
}

// collectFiles expands the given paths into a flat list of .hcl files.
// Files are taken as-is; directories are walked recursively with the results
// sorted for a stable load order.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config path %s: %w", path, err)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		var found []string
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk config directory %s: %w", path, err)
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}
