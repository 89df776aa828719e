package dictionary

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// blockingFS holds every Open until release is closed.
type blockingFS struct {
	inner   fs.FS
	release chan struct{}
}

func (b blockingFS) Open(name string) (fs.File, error) {
	<-b.release
	return b.inner.Open(name)
}

func TestLoadFromMapFS(t *testing.T) {
	fsys := fstest.MapFS{
		"words.txt": {Data: []byte("cat,dog\nbird\nox\n")},
	}
	l := NewLoader(fsys, quietLogger())

	d, err := l.Load(context.Background(), "words.txt", 3)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !d.Ready() {
		t.Fatalf("expected Ready, got %v", d.State())
	}
	if d.Len() != 3 {
		t.Errorf("expected 3 words (OX filtered), got %d", d.Len())
	}
	if d.Name() != "words.txt" {
		t.Errorf("Name() = %q", d.Name())
	}
}

func TestLoadMissingFails(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, quietLogger())

	d, err := l.Load(context.Background(), "7.txt", 1)
	if err == nil {
		t.Fatal("expected error for missing list")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist in chain, got %v", err)
	}
	if d.State() != StateFailed || d.Err() == nil {
		t.Errorf("expected Failed state with error, got %v / %v", d.State(), d.Err())
	}
	if d.Len() != 0 || d.Contains("CAT") {
		t.Error("failed dictionary must be empty")
	}
}

func TestLoadCanceled(t *testing.T) {
	fsys := fstest.MapFS{"words.txt": {Data: []byte("cat")}}
	l := NewLoader(fsys, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d, err := l.Load(ctx, "words.txt", 3)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if d.State() != StateFailed {
		t.Errorf("expected Failed, got %v", d.State())
	}
}

func TestLoadAsyncPublishesLater(t *testing.T) {
	release := make(chan struct{})
	fsys := blockingFS{
		inner:   fstest.MapFS{"1.txt": {Data: []byte("ab,abc")}},
		release: release,
	}
	l := NewLoader(fsys, quietLogger())

	done := make(chan *Dictionary, 1)
	d := l.LoadAsync(context.Background(), "1.txt", 1, func(d *Dictionary) { done <- d })

	if d.State() != StateLoading {
		t.Fatalf("expected Loading before release, got %v", d.State())
	}
	if d.Contains("AB") {
		t.Fatal("loading dictionary must not answer membership yet")
	}

	close(release)

	select {
	case got := <-done:
		if got != d {
			t.Error("done callback received a different dictionary")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("async load did not complete")
	}

	if !d.Ready() || !d.Contains("AB") || !d.Contains("ABC") {
		t.Errorf("expected loaded words, state=%v len=%d", d.State(), d.Len())
	}
}

func TestOverlay(t *testing.T) {
	primary := fstest.MapFS{"words.txt": {Data: []byte("zebra")}}
	fallback := fstest.MapFS{
		"words.txt": {Data: []byte("apple")},
		"2.txt":     {Data: []byte("queue")},
	}
	l := NewLoader(Overlay{Primary: primary, Fallback: fallback}, quietLogger())

	d, err := l.Load(context.Background(), "words.txt", 3)
	if err != nil || !d.Contains("ZEBRA") || d.Contains("APPLE") {
		t.Errorf("primary should win: err=%v words=%v", err, d.Words())
	}

	d, err = l.Load(context.Background(), "2.txt", 1)
	if err != nil || !d.Contains("QUEUE") {
		t.Errorf("fallback should serve missing files: err=%v words=%v", err, d.Words())
	}
}

func TestEmbeddedLists(t *testing.T) {
	l := NewLoader(nil, quietLogger())

	names := []string{ClassicList}
	for level := 1; level <= 18; level++ {
		names = append(names, MissionList(level))
	}

	for _, name := range names {
		d, err := l.Load(context.Background(), name, 1)
		if err != nil {
			t.Errorf("embedded %s: %v", name, err)
			continue
		}
		if d.Len() == 0 {
			t.Errorf("embedded %s is empty", name)
		}
	}
}

func TestEmbeddedGroupedListsStripLabels(t *testing.T) {
	l := NewLoader(nil, quietLogger())

	d, err := l.Load(context.Background(), MissionList(12), 1)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	for _, w := range d.Words() {
		for _, r := range w {
			if r < 'A' || r > 'Z' {
				t.Fatalf("word %q carries a non-letter", w)
			}
		}
	}
}
