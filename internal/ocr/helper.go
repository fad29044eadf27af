package ocr

import (
	"fmt"
	"os"
)

// Default toolchain invocations for the Swift helper.
var (
	// DefaultRunner interprets the helper script directly.
	DefaultRunner = []string{"xcrun", "swift"}

	// DefaultCompiler builds the helper script into a native binary.
	DefaultCompiler = []string{"xcrun", "swiftc", "-O"}
)

// Locator decides which executable form of the recognition helper to invoke.
// A compiled binary is preferred over interpreting the script; compiling is
// optional and only trades a one-time cost for lower per-call latency.
type Locator struct {
	// ScriptPath is the Swift helper script location.
	ScriptPath string
	// BinPath is the build-output location of the compiled helper.
	BinPath string
	// Runner is the interpreter prefix used when no binary exists.
	Runner []string
}

// Command returns the command prefix (executable plus fixed leading
// arguments) for invoking the helper.
func (l Locator) Command() ([]string, error) {
	if info, err := os.Stat(l.BinPath); err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0 {
		return []string{l.BinPath}, nil
	}

	if _, err := os.Stat(l.ScriptPath); err != nil {
		return nil, fmt.Errorf("%w: helper script not found: %s", ErrHelperMissing, l.ScriptPath)
	}

	runner := l.Runner
	if len(runner) == 0 {
		runner = DefaultRunner
	}
	prefix := make([]string, 0, len(runner)+1)
	prefix = append(prefix, runner...)
	return append(prefix, l.ScriptPath), nil
}
