package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/mod/modfile"
)

func findModFile(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(current, "go.mod")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", errors.Errorf("no go.mod found above %s", dir)
		}
		current = parent
	}
}

// requiresFabrikate reports the module declared in the go.mod at modPath and whether
// generated code in it can import fabrikate.
func requiresFabrikate(modPath string) (string, bool, error) {
	data, err := os.ReadFile(modPath)
	if err != nil {
		return "", false, err
	}
	f, err := modfile.ParseLax(modPath, data, nil)
	if err != nil {
		return "", false, errors.Wrapf(err, "parsing %s", modPath)
	}

	var module string
	if f.Module != nil {
		module = f.Module.Mod.Path
	}
	if module == FabrikateModule {
		return module, true, nil
	}
	for _, req := range f.Require {
		if req.Mod.Path == FabrikateModule {
			return module, true, nil
		}
	}
	return module, false, nil
}

// checkModule warns when the module around dir does not require fabrikate. Generation goes
// ahead regardless.
func checkModule(logger *zap.Logger, dir string) {
	modPath, err := findModFile(dir)
	if err != nil {
		logger.Warn("cannot locate module", zap.Error(err))
		return
	}
	module, ok, err := requiresFabrikate(modPath)
	if err != nil {
		logger.Warn("cannot read module", zap.String("path", modPath), zap.Error(err))
		return
	}
	if !ok {
		logger.Warn("module does not require fabrikate, run go get before building",
			zap.String("module", module), zap.String("require", FabrikateModule))
		return
	}
	logger.Debug("module", zap.String("module", module), zap.String("path", modPath))
}
