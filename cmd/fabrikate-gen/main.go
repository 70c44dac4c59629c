// Command fabrikate-gen writes a typed Fabricate<Type> function for every struct type of a Go
// package, filling each field from a *fabrikate.Fabrikate without reflection on the struct.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func usage(genName string) string {
	const usage = `
{{.gen_name}} generates typed fabricators for the struct types of a Go package

{{.gen_name}} [flags] [package-dir]

{{.gen_name}} loads the package in package-dir (default ".") and writes
<package>{{.suffix}} next to its sources. This can be initiated using the
'go generate .' command line tool after adding a line beginning in column 1
somewhere in the package:

  //go:generate go run {{.cmd_path}} -v .

Supported flags:
  -v    verbose messages to stderr
  -o    output file (default <package-dir>/<package>{{.suffix}})
  -h    show this help text

`
	usageVals := map[string]any{
		"gen_name": genName,
		"suffix":   GeneratedSuffix,
		"cmd_path": FabrikateModule + "/cmd/fabrikate-gen",
	}

	var buf bytes.Buffer
	tmpl := template.Must(template.New("usage").Parse(usage))
	if err := tmpl.Execute(&buf, usageVals); err != nil {
		panic(err)
	}
	return buf.String()
}

func newLogger(verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	var verbose bool
	var output string
	flag.BoolVar(&verbose, "v", false, "verbose messages to stderr")
	flag.StringVar(&output, "o", "", "output file")
	flag.Usage = func() {
		var out io.Writer = flag.CommandLine.Output()
		fmt.Fprint(out, usage(path.Base(os.Args[0])))
	}
	flag.Parse()

	dir := flag.Arg(0)
	if dir == "" {
		dir = "."
	}

	logger := newLogger(verbose)
	defer logger.Sync() //nolint:errcheck

	if err := run(logger, dir, output); err != nil {
		logger.Fatal("fabrikate-gen failed", zap.String("dir", dir), zap.Error(err))
	}
}

func run(logger *zap.Logger, dir, output string) error {
	checkModule(logger, dir)

	info, err := scanPackage(logger, dir)
	if err != nil {
		return err
	}
	if len(info.Types) == 0 {
		logger.Info("no struct types found", zap.String("package", info.PackageName))
		return nil
	}

	src, err := render(info)
	if err != nil {
		return err
	}
	if output == "" {
		output = filepath.Join(dir, info.PackageName+GeneratedSuffix)
	}
	if err := os.WriteFile(output, src, 0644); err != nil {
		return err
	}
	logger.Info("generated file", zap.String("path", output), zap.Int("types", len(info.Types)))
	return nil
}
