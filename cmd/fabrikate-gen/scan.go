package main

import (
	"fmt"
	"go/types"
	"path"
	"reflect"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

const (
	FabrikateModule = "github.com/antithesishq/fabrikate-go"
	GeneratedSuffix = "_fabrikate.go"

	tagName = "fabrikate"
)

type genInfo struct {
	PackageName string
	Imports     []importSpec
	Types       []typeInfo
}

type importSpec struct {
	Name string
	Path string
}

type typeInfo struct {
	Name   string
	Fields []fieldInfo
}

type fieldInfo struct {
	Name string
	Type string
}

func scanPackage(logger *zap.Logger, dir string) (*genInfo, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedTypes,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, errors.Wrapf(err, "loading package in %s", dir)
	}
	if len(pkgs) != 1 {
		return nil, errors.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, errors.Errorf("%s: %v", pkg.PkgPath, pkg.Errors[0])
	}
	logger.Debug("package loaded", zap.String("package", pkg.PkgPath), zap.Strings("files", pkg.GoFiles))
	return collect(logger, pkg.Types), nil
}

// collect lists the non-generic struct types of pkg in name order, with the fields a
// Fabrikate can fill.
func collect(logger *zap.Logger, pkg *types.Package) *genInfo {
	imports := newImportSet(pkg)
	info := &genInfo{PackageName: pkg.Name()}

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}
		if named.TypeParams().Len() > 0 {
			logger.Debug("skipping generic type", zap.String("type", name))
			continue
		}

		ti := typeInfo{Name: name}
		for i := 0; i < st.NumFields(); i++ {
			field := st.Field(i)
			if field.Name() == "_" || reflect.StructTag(st.Tag(i)).Get(tagName) == "-" {
				continue
			}
			if !fabricable(pkg, field.Type()) {
				logger.Debug("skipping field", zap.String("type", name), zap.String("field", field.Name()),
					zap.Stringer("field_type", field.Type()))
				continue
			}
			ti.Fields = append(ti.Fields, fieldInfo{
				Name: field.Name(),
				Type: types.TypeString(field.Type(), imports.qualify),
			})
		}
		logger.Debug("struct type", zap.String("type", name), zap.Int("fields", len(ti.Fields)))
		info.Types = append(info.Types, ti)
	}

	info.Imports = imports.specs()
	return info
}

// fabricable reports whether a field of type t can be named from pkg and has a chance of
// being fabricated: no channels, functions, unsafe pointers or non-empty interfaces.
func fabricable(pkg *types.Package, t types.Type) bool {
	t = types.Unalias(t)
	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg() != pkg && !obj.Exported() {
			return false
		}
		if args := named.TypeArgs(); args != nil {
			for i := 0; i < args.Len(); i++ {
				if !fabricable(pkg, args.At(i)) {
					return false
				}
			}
		}
	}

	switch u := t.Underlying().(type) {
	case *types.Chan, *types.Signature:
		return false
	case *types.Basic:
		return u.Kind() != types.UnsafePointer
	case *types.Interface:
		return u.Empty()
	case *types.Pointer:
		return fabricable(pkg, u.Elem())
	case *types.Slice:
		return fabricable(pkg, u.Elem())
	case *types.Array:
		return fabricable(pkg, u.Elem())
	case *types.Map:
		return fabricable(pkg, u.Key()) && fabricable(pkg, u.Elem())
	}
	return true
}

// importSet names the packages referenced by generated code, aliasing a package whose name
// is already taken by another path.
type importSet struct {
	self   *types.Package
	byPath map[string]string
	byName map[string]string
}

func newImportSet(self *types.Package) *importSet {
	s := &importSet{
		self:   self,
		byPath: make(map[string]string),
		byName: make(map[string]string),
	}
	s.add(FabrikateModule, "fabrikate")
	return s
}

func (s *importSet) add(importPath, name string) string {
	if alias, ok := s.byPath[importPath]; ok {
		return alias
	}
	alias := name
	for i := 2; s.byName[alias] != ""; i++ {
		alias = fmt.Sprintf("%s%d", name, i)
	}
	s.byPath[importPath] = alias
	s.byName[alias] = importPath
	return alias
}

func (s *importSet) qualify(p *types.Package) string {
	if p.Path() == s.self.Path() {
		return ""
	}
	return s.add(p.Path(), p.Name())
}

func (s *importSet) specs() []importSpec {
	specs := make([]importSpec, 0, len(s.byPath))
	for importPath, alias := range s.byPath {
		spec := importSpec{Path: importPath}
		if alias != path.Base(importPath) {
			spec.Name = alias
		}
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})
	return specs
}
