// Package local writes fabrikate's structured output to a local file.
//
// Output is off unless a path is given, usually through the FABRIKATE_LOCAL_OUTPUT
// environment variable. A path is truncated the first time it is used in a process and
// shared by every logger opened on it afterwards. Each entry is one JSON object per line
// carrying the wall clock time in UTC, the nanoseconds elapsed since the output was opened
// ("ticks"), the source name, the stream (log level) and the output text, followed by the
// entry's own fields.
package local

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	outputsMu sync.Mutex
	outputs   = map[string]*output{}
)

// output is a local output file shared by every logger writing to it. The file is opened
// and truncated once per process.
type output struct {
	core  zapcore.Core
	start time.Time
}

// NewLogger returns a logger writing JSON lines to outputPath. The first logger for a path
// truncates the file; later loggers for the same path append to the same stream. An empty
// path, or a path that cannot be opened, yields a no-op logger.
func NewLogger(outputPath, source string) *zap.Logger {
	if outputPath == "" {
		return zap.NewNop()
	}
	out, err := sharedOutput(outputPath)
	if err != nil {
		return zap.NewNop()
	}
	ticking := &tickingCore{Core: out.core, start: out.start}
	return zap.New(ticking).With(zap.String("source", source))
}

func sharedOutput(outputPath string) (*output, error) {
	key, err := filepath.Abs(outputPath)
	if err != nil {
		key = outputPath
	}

	outputsMu.Lock()
	defer outputsMu.Unlock()
	if out, ok := outputs[key]; ok {
		return out, nil
	}
	file, err := openOutputFile(outputPath)
	if err != nil {
		return nil, err
	}
	out := &output{core: newCore(zapcore.Lock(file)), start: time.Now()}
	outputs[key] = out
	return out, nil
}

func newCore(out zapcore.WriteSyncer) zapcore.Core {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:     "time",
		LevelKey:    "stream",
		MessageKey:  "output_text",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.UTC().Format(time.RFC3339Nano))
		},
		EncodeDuration: zapcore.NanosDurationEncoder,
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), out, zapcore.DebugLevel)
}

func openOutputFile(outputPath string) (*os.File, error) {
	// Open the file R/W (create if needed and possible)
	file, err := os.OpenFile(outputPath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	// Truncate the file if possible (if not, consider the file unusable)
	if err = file.Truncate(0); err != nil {
		file.Close()
		return nil, err
	}
	return file, nil
}

// tickingCore stamps every entry with the time elapsed since its output was opened.
type tickingCore struct {
	zapcore.Core
	start time.Time
}

func (c *tickingCore) With(fields []zapcore.Field) zapcore.Core {
	return &tickingCore{Core: c.Core.With(fields), start: c.start}
}

func (c *tickingCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *tickingCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	ticks := zap.Int64("ticks", time.Since(c.start).Nanoseconds())
	return c.Core.Write(entry, append(fields[:len(fields):len(fields)], ticks))
}
