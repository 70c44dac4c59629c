package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

func writeModFile(t *testing.T, dir, content string) string {
	modPath := filepath.Join(dir, "go.mod")
	qt.Assert(t, qt.IsNil(os.WriteFile(modPath, []byte(content), 0644)))
	return modPath
}

func TestRequiresFabrikate(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		module   string
		required bool
	}{{
		name: "required",
		content: `module github.com/somebody/calctool

go 1.24

require github.com/antithesishq/fabrikate-go v0.1.0
`,
		module:   "github.com/somebody/calctool",
		required: true,
	}, {
		name: "missing",
		content: `module github.com/somebody/calctool

go 1.24

require github.com/google/uuid v1.6.0
`,
		module:   "github.com/somebody/calctool",
		required: false,
	}, {
		name:     "self",
		content:  "module github.com/antithesishq/fabrikate-go\n",
		module:   FabrikateModule,
		required: true,
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			modPath := writeModFile(t, t.TempDir(), test.content)
			module, required, err := requiresFabrikate(modPath)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(module, test.module))
			qt.Assert(t, qt.Equals(required, test.required))
		})
	}
}

func TestRequiresFabrikateMalformed(t *testing.T) {
	modPath := writeModFile(t, t.TempDir(), "module\nrequire (\n")
	_, _, err := requiresFabrikate(modPath)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestFindModFile(t *testing.T) {
	root := t.TempDir()
	want := writeModFile(t, root, "module example.com/models\n")
	nested := filepath.Join(root, "internal", "models")
	qt.Assert(t, qt.IsNil(os.MkdirAll(nested, 0755)))

	got, err := findModFile(nested)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, want))
}
