package alloc

import (
	"fmt"
	"os"
)

// Debug flag - set to true to enable verbose logging (compile-time toggle).
const debugAlloc = false

// Runtime flag for allocation logging - controlled by HEAP_LOG_ALLOC env var.
var logAlloc = os.Getenv("HEAP_LOG_ALLOC") != ""

// logf prints allocator diagnostics to stderr.
func logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[ALLOC] "+format+"\n", args...)
}
