package dictfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FanaticPythoner/symspellwhookspy/pkg/options"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/symspell"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newEngine() *symspell.SymSpell {
	return symspell.NewSymSpell(
		options.WithMaxDictionaryEditDistance(2),
		options.WithPrefixLength(7),
		options.WithCountThreshold(1),
	)
}

func TestLoadParsesWellFormedLines(t *testing.T) {
	path := writeTemp(t, "hello 10\nworld 20\n")
	engine := newEngine()

	n, err := Load(engine, path, DefaultOptions)
	if err != nil {
		t.Fatal(err)
	}
	equal(t, 2, n)
	equal(t, int64(30), engine.N())
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := writeTemp(t, "hello 10\nbadline\nworld notanumber\nok 5\n")
	engine := newEngine()

	n, err := Load(engine, path, DefaultOptions)
	if err != nil {
		t.Fatal(err)
	}
	equal(t, 2, n)
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := writeTemp(t, "hello 10\n\n\nworld 5\n")
	engine := newEngine()

	n, err := Load(engine, path, DefaultOptions)
	if err != nil {
		t.Fatal(err)
	}
	equal(t, 2, n)
}

func TestLoadRespectsCustomSeparator(t *testing.T) {
	path := writeTemp(t, "hello,10\nworld,20\n")
	engine := newEngine()

	n, err := Load(engine, path, Options{TermColumn: 0, CountColumn: 1, Separator: ","})
	if err != nil {
		t.Fatal(err)
	}
	equal(t, 2, n)
}

func TestLoadReturnsErrorForMissingFile(t *testing.T) {
	engine := newEngine()
	_, err := Load(engine, "/nonexistent/path/dict.txt", DefaultOptions)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func equal[T comparable](t *testing.T, want, got T) {
	t.Helper()
	if want == got {
		return
	}
	t.Errorf("want %v, got %v", want, got)
}
