package dictionary

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/charmbracelet/log"
)

//go:embed lists/*.txt
var embeddedLists embed.FS

// ClassicList is the word list used by the classic variant.
const ClassicList = "words.txt"

// MissionList returns the word list name for a mission level.
func MissionList(level int) string {
	return strconv.Itoa(level) + ".txt"
}

// Embedded returns the word lists compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embeddedLists, "lists")
	if err != nil {
		panic("dictionary: embedded lists missing: " + err.Error())
	}
	return sub
}

// Overlay looks a file up in Primary first and falls back to Fallback when
// Primary does not have it.
type Overlay struct {
	Primary  fs.FS
	Fallback fs.FS
}

// Open implements fs.FS.
func (o Overlay) Open(name string) (fs.File, error) {
	if o.Primary != nil {
		f, err := o.Primary.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) || o.Fallback == nil {
			return nil, err
		}
	}
	if o.Fallback == nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return o.Fallback.Open(name)
}

// Loader reads word lists from a file system.
type Loader struct {
	FS     fs.FS
	Logger *log.Logger
}

// NewLoader returns a loader over fsys. A nil fsys uses the embedded lists.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if fsys == nil {
		fsys = Embedded()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{FS: fsys, Logger: logger}
}

// Load reads name synchronously. On failure the returned dictionary is in
// the Failed state and the error is also returned.
func (l *Loader) Load(ctx context.Context, name string, minLen int) (*Dictionary, error) {
	d := New(name, minLen)
	err := l.fill(ctx, d)
	return d, err
}

// LoadAsync returns a Loading dictionary immediately and fills it from a
// background goroutine. done, if non-nil, is called after the dictionary is
// published.
func (l *Loader) LoadAsync(ctx context.Context, name string, minLen int, done func(*Dictionary)) *Dictionary {
	d := New(name, minLen)
	go func() {
		_ = l.fill(ctx, d)
		if done != nil {
			done(d)
		}
	}()
	return d
}

func (l *Loader) fill(ctx context.Context, d *Dictionary) error {
	words, err := l.read(ctx, d.name)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		err = fmt.Errorf("dictionary: load %s: %w", d.name, err)
		d.fail(err)
		l.Logger.Warn("word list unavailable", "list", d.name, "error", err)
		return err
	}

	d.publish(words)
	l.Logger.Debug("word list loaded", "list", d.name, "words", d.Len())
	return nil
}

func (l *Loader) read(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := l.FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
