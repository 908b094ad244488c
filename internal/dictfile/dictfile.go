// Package dictfile is the dictionary-file ingestion collaborator spec.md
// leaves external to the core engine: it turns lines of text into
// (term, count) pairs and feeds them to a symspell.SymSpell.
package dictfile

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/FanaticPythoner/symspellwhookspy/pkg/symspell"
)

// mmapThreshold is the file size at or above which Load memory-maps the
// dictionary file instead of buffering it through bufio.Scanner.
const mmapThreshold = 8 << 20 // 8 MiB

// Options configures how dictionary lines are parsed.
type Options struct {
	// TermColumn and CountColumn are zero-based indices into each line's
	// whitespace/Separator-delimited fields.
	TermColumn  int
	CountColumn int
	// Separator splits each line into fields. Empty means "any run of
	// whitespace" (strings.Fields semantics).
	Separator string
}

// DefaultOptions matches the column layout the teacher corrector and the
// rest of the pack's symspell ports assume: term first, count second,
// whitespace-separated.
var DefaultOptions = Options{TermColumn: 0, CountColumn: 1, Separator: ""}

// Load reads path and calls engine.CreateDictionaryEntry for every
// (term, count) pair it parses. Malformed lines (too few columns, a
// non-numeric count) are skipped, not treated as a fatal error. Lines with a
// negative count, which the core engine rejects with ErrInvalidArgument, are
// skipped the same way and do not make Load return an error.
func Load(engine *symspell.SymSpell, path string, opts Options) (int, error) {
	if opts.CountColumn == 0 && opts.TermColumn == 0 {
		opts = DefaultOptions
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("dictfile: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("dictfile: stat %s: %w", path, err)
	}

	if info.Size() >= mmapThreshold {
		return loadMapped(engine, f, opts)
	}
	return loadBuffered(engine, f, opts)
}

func loadBuffered(engine *symspell.SymSpell, f *os.File, opts Options) (int, error) {
	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if ok := ingestLine(engine, scanner.Text(), opts); ok {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("dictfile: scan: %w", err)
	}
	return count, nil
}

// loadMapped memory-maps f and scans it line by line out of the mapped
// region, avoiding a full in-process copy for large dictionaries.
func loadMapped(engine *symspell.SymSpell, f *os.File, opts Options) (int, error) {
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return 0, fmt.Errorf("dictfile: mmap: %w", err)
	}
	defer m.Unmap()

	count := 0
	data := []byte(m)
	for len(data) > 0 {
		nl := bytes.IndexByte(data, '\n')
		var line []byte
		if nl == -1 {
			line, data = data, nil
		} else {
			line, data = data[:nl], data[nl+1:]
		}
		line = bytes.TrimRight(line, "\r")
		if ingestLine(engine, string(line), opts) {
			count++
		}
	}
	return count, nil
}

func ingestLine(engine *symspell.SymSpell, line string, opts Options) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	var fields []string
	if opts.Separator == "" {
		fields = strings.Fields(line)
	} else {
		fields = strings.Split(line, opts.Separator)
	}

	maxCol := opts.TermColumn
	if opts.CountColumn > maxCol {
		maxCol = opts.CountColumn
	}
	if len(fields) <= maxCol {
		return false
	}

	term := strings.TrimSpace(fields[opts.TermColumn])
	countStr := strings.TrimSpace(fields[opts.CountColumn])
	count, err := strconv.ParseInt(countStr, 10, 64)
	if err != nil || term == "" {
		return false
	}

	if _, err := engine.CreateDictionaryEntry(term, count); err != nil {
		return false
	}
	return true
}
