// Package rebuild - helpers for Go programs that behave like scripts: check whether the
// compiled binary is older than its sources, rebuild it and run the new binary in place
// of the current process.
package rebuild

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/DavidGamba/dgtools/fsmodtime"
	"github.com/DavidGamba/dgtools/run"
	"github.com/DavidGamba/go-getflags/clog"
	"golang.org/x/tools/go/packages"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

var exitFn = os.Exit

// DefaultSources - Source patterns used when the caller doesn't name any, relative to
// the binary's directory.
var DefaultSources = []string{"*.go", "go.mod"}

// Needed - Check whether the binary needs a rebuild: true when any source pattern,
// relative to the binary's directory, has files modified after the binary, or when the
// binary doesn't exist. Returns the modified files.
func Needed(binary string, sources ...string) ([]string, bool, error) {
	if len(sources) == 0 {
		sources = DefaultSources
	}
	dir := filepath.Dir(binary)
	Logger.Printf("dir: %s, target: %s, sources: %v\n", dir, filepath.Base(binary), sources)
	files, modified, err := fsmodtime.Target(os.DirFS(dir), []string{filepath.Base(binary)}, sources)
	if err != nil {
		return nil, false, err
	}
	return files, modified, nil
}

// Self - Rebuild and re-run the current program when its sources changed.
//
// The first element of args is the path to the running binary, as in os.Args, and the
// binary's directory is where its sources live, the usual layout for a script
// directory. When the binary is current, Self returns and the program carries on. When
// it is stale, Self rebuilds it with `go build`, runs the new binary with the remaining
// args and exits the process with 0, or 1 when the new run fails.
func Self(ctx context.Context, args []string, sources ...string) error {
	return SelfWithFlags(ctx, args, nil, sources...)
}

// SelfWithFlags - Same as Self with extra `go build` flags, for example `-trimpath`.
func SelfWithFlags(ctx context.Context, args []string, buildFlags []string, sources ...string) error {
	if len(args) < 1 {
		return fmt.Errorf("empty argument list")
	}
	self := args[0]
	files, needed, err := Needed(self, sources...)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", self, err)
	}
	if !needed {
		Logger.Printf("%s is current\n", self)
		return nil
	}
	clog.Infof("rebuilding %s, modified: %v", self, files)
	dir := filepath.Dir(self)
	cmd := []string{"go", "build", "-o", filepath.Base(self)}
	cmd = append(cmd, buildFlags...)
	cmd = append(cmd, ".")
	err = run.CMD(cmd...).Dir(dir).Log().Run()
	if err != nil {
		return fmt.Errorf("failed to rebuild %s: %w", self, err)
	}
	err = run.CMD(append([]string{self}, args[1:]...)...).Run()
	if err != nil {
		clog.Errorf("%s failed: %s", self, err)
		exitFn(1)
	}
	exitFn(0)
	return nil
}

// Sources - Enumerate the Go source files of the package in the given directory, for
// callers that want the exact file list instead of the DefaultSources patterns. The
// files are returned relative to the directory, ready to pass to Self or Needed.
func Sources(dir string) ([]string, error) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedFiles, Dir: dir}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list package in %s: %w", dir, err)
	}
	sources := []string{}
	for _, pkg := range pkgs {
		for _, f := range pkg.GoFiles {
			sources = append(sources, filepath.Base(f))
		}
	}
	return sources, nil
}
