package rebuild

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/DavidGamba/dgtools/buildutils"
	"github.com/DavidGamba/go-getflags/clog"
)

// EnsureGoMod - Ensure a standalone script directory belongs to a Go module so the
// toolchain and gopls work on it. When the directory has no go.mod and is not inside the
// module that encloses the current working directory, a minimal go.mod is written. The
// module name defaults to the directory name.
func EnsureGoMod(dir, module string) error {
	modFile := filepath.Join(dir, "go.mod")
	if _, err := os.Stat(modFile); err == nil {
		Logger.Printf("%s already present\n", modFile)
		return nil
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if modDir, err := buildutils.GoModDir(); err == nil {
		if absDir == modDir || strings.HasPrefix(absDir, modDir+string(filepath.Separator)) {
			Logger.Printf("%s is inside module %s\n", dir, modDir)
			return nil
		}
	}
	if module == "" {
		module = filepath.Base(absDir)
	}
	content := fmt.Sprintf("module %s\n\ngo %s\n", module, goVersion())
	err = os.WriteFile(modFile, []byte(content), 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", modFile, err)
	}
	clog.Infof("generated %s", modFile)
	return nil
}

// goVersion - major.minor of the running toolchain, for the go.mod go directive.
func goVersion() string {
	v := runtime.Version()
	if !strings.HasPrefix(v, "go") {
		// Development toolchains report an unversioned string.
		return "1.20"
	}
	parts := strings.Split(strings.TrimPrefix(v, "go"), ".")
	if len(parts) < 2 {
		return "1.20"
	}
	return parts[0] + "." + parts[1]
}
