package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/unbound-force/cursecov/internal/fault"
)

// Dialect is the source dialect a file is tokenized as.
type Dialect int

// Supported dialects.
const (
	JavaScript Dialect = iota + 1
	JSX
	TypeScript
	TSX
)

var dialectNames = map[Dialect]string{
	JavaScript: "javascript",
	JSX:        "jsx",
	TypeScript: "typescript",
	TSX:        "tsx",
}

func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// AllowsJSX reports whether JSX elements may appear in the dialect.
// Plain JavaScript files routinely carry JSX, so only TypeScript
// proper rejects it.
func (d Dialect) AllowsJSX() bool {
	return d != TypeScript
}

var extensionDialects = map[string]Dialect{
	".js":  JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".jsx": JSX,
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
}

// DialectFromPath maps a file extension (case-insensitive) to a Dialect.
// Declaration files such as "x.d.ts" are TypeScript. Any other
// extension is a fault.Dialect error.
func DialectFromPath(path string) (Dialect, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if d, ok := extensionDialects[ext]; ok {
		return d, nil
	}
	if ext == "" {
		return 0, fault.Newf(fault.Dialect, path, "file has no extension")
	}
	return 0, fault.Newf(fault.Dialect, path, "unsupported file extension %q", ext)
}
