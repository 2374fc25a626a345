package fileset_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/unbound-force/cursecov/internal/fault"
	"github.com/unbound-force/cursecov/internal/fileset"
)

// writeTree creates files (relative path -> content) under dir.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("creating dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
}

func TestSplitPatterns(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty_string", "", nil},
		{"single", "**/*.js", []string{"**/*.js"}},
		{"default_pair", "**/*.js,**/*.ts", []string{"**/*.js", "**/*.ts"}},
		{"trims_whitespace", " src/*.js , lib/*.ts ", []string{"src/*.js", "lib/*.ts"}},
		{"drops_empty_entries", "a.js,,b.js,", []string{"a.js", "b.js"}},
		{"only_commas", ",,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fileset.SplitPatterns(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitPatterns(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolve_IncludeMinusIgnore(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"hello.js":             "",
		"foo/hello2.js":        "",
		"foo/types.ts":         "",
		"vendor/lib.js":        "",
		"notes.txt":            "fucking text",
		"node_modules/dep.js":  "",
		"foo/deep/inner/a.mjs": "",
	})
	t.Chdir(dir)

	got, err := fileset.Resolve(
		fileset.SplitPatterns("**/*.js,**/*.ts"),
		fileset.SplitPatterns("vendor/**,node_modules/**"),
	)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := []string{
		"foo/hello2.js",
		"foo/types.ts",
		"hello.js",
	}
	for i := range want {
		want[i] = filepath.FromSlash(want[i])
	}
	if !reflect.DeepEqual(got.Sorted(), want) {
		t.Errorf("Resolve() = %v, want %v", got.Sorted(), want)
	}
	if got.Has("notes.txt") {
		t.Error("unlisted extension must never be resolved")
	}
}

func TestResolve_PathInBothSetsIsExcluded(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.js": "", "b.js": ""})
	t.Chdir(dir)

	got, err := fileset.Resolve([]string{"*.js"}, []string{"./a.js"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Has("a.js") {
		t.Error("a.js matched by include and ignore should be excluded")
	}
	if !got.Has("b.js") {
		t.Error("b.js should remain")
	}
}

func TestResolve_EmptyIgnoreIgnoresNothing(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.js": "", "sub/b.js": ""})
	t.Chdir(dir)

	got, err := fileset.Resolve([]string{"**/*.js"}, fileset.SplitPatterns(""))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 files, got %v", got.Sorted())
	}
}

func TestExpand_DeduplicatesOverlappingPatterns(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"src/app.js": ""})
	t.Chdir(dir)

	got, err := fileset.Expand([]string{"**/*.js", "src/*.js", "./src/app.js"})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected a single deduplicated path, got %v", got.Sorted())
	}
}

func TestExpand_ZeroMatchesIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())

	got, err := fileset.Expand([]string{"**/*.js", "missing/dir/*.ts"})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty set, got %v", got.Sorted())
	}
}

func TestExpand_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "weird.js"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeTree(t, dir, map[string]string{"real.js": ""})
	t.Chdir(dir)

	got, err := fileset.Expand([]string{"*.js"})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if got.Has("weird.js") {
		t.Error("directories must not be resolved as files")
	}
	if !got.Has("real.js") {
		t.Error("expected real.js")
	}
}

func TestExpand_MalformedPattern(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := fileset.Expand([]string{"src/[abc.js"})
	if err == nil {
		t.Fatal("expected error for malformed pattern")
	}
	if !fault.Is(err, fault.Pattern) {
		t.Errorf("expected Pattern fault, got %v", err)
	}
}

func TestResolve_MalformedIgnorePattern(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := fileset.Resolve([]string{"*.js"}, []string{"[z-a"})
	if !fault.Is(err, fault.Pattern) {
		t.Errorf("expected Pattern fault from ignore list, got %v", err)
	}
}

// lockedDir creates dir/name as a directory the current user cannot
// list. Root ignores permission bits, so for root it links to a procfs
// directory that stays unreadable without extra capabilities.
func lockedDir(t *testing.T, dir, name string) {
	t.Helper()
	locked := filepath.Join(dir, name)
	if os.Geteuid() == 0 {
		const target = "/proc/1/map_files"
		if _, err := os.ReadDir(target); err == nil || os.IsNotExist(err) {
			t.Skipf("no unreadable directory available for root (%s: %v)", target, err)
		}
		if err := os.Symlink(target, locked); err != nil {
			t.Fatal(err)
		}
		return
	}
	writeTree(t, dir, map[string]string{filepath.Join(name, "a.js"): ""})
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })
}

func TestExpand_UnreadableDirectory(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"literal_base", "locked/*.js"},
		{"below_double_star", "**/*.js"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTree(t, dir, map[string]string{"a.js": ""})
			lockedDir(t, dir, "locked")
			t.Chdir(dir)

			got, err := fileset.Expand([]string{tt.pattern})
			if !fault.Is(err, fault.Filesystem) {
				t.Errorf("Expand(%q) = %v, %v; want Filesystem fault", tt.pattern, got.Sorted(), err)
			}
		})
	}
}

func TestResolve_UnreadableDirectoryAbortsRun(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.js": "", "src/b.js": ""})
	lockedDir(t, filepath.Join(dir, "src"), "private")
	t.Chdir(dir)

	if _, err := fileset.Resolve([]string{"**/*.js"}, nil); !fault.Is(err, fault.Filesystem) {
		t.Errorf("expected Filesystem fault instead of a partial set, got %v", err)
	}
}

func TestSet_Difference(t *testing.T) {
	a := fileset.Set{}
	a.Add("x.js")
	a.Add("./y.js")
	b := fileset.Set{}
	b.Add("y.js")

	got := a.Difference(b).Sorted()
	if !reflect.DeepEqual(got, []string{"x.js"}) {
		t.Errorf("Difference = %v, want [x.js]", got)
	}
}
