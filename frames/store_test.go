package frames

import (
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/soocke/gas-label-go/config"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// newTestStore builds a store over a frames dir populated with the given
// PNG names and returns (store, parent dir).
func newTestStore(t *testing.T, cfg *config.Config, names ...string) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	framesDir := filepath.Join(dir, "frames")
	if err := os.MkdirAll(framesDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, n := range names {
		writePNG(t, filepath.Join(framesDir, n), 16, 16)
	}
	s, err := NewStore(framesDir, cfg, discardLogger)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	return s, dir
}

func TestStoreCreatesOutputDirs(t *testing.T) {
	_, dir := newTestStore(t, nil, "a.png")
	for _, sub := range []string{"masks", "overlays"} {
		if fi, err := os.Stat(filepath.Join(dir, sub)); err != nil || !fi.IsDir() {
			t.Fatalf("expected output dir %s", sub)
		}
	}
}

func TestPendingNaturalOrderAndUnsupportedFiles(t *testing.T) {
	s, dir := newTestStore(t, nil, "f_10.png", "f_2.png", "f_1.png")
	// Unsupported files must be ignored entirely.
	if err := os.WriteFile(filepath.Join(dir, "frames", "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	pending, err := s.Pending()
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	want := []string{"f_1.png", "f_2.png", "f_10.png"}
	if !reflect.DeepEqual(pending, want) {
		t.Fatalf("unexpected pending %v", pending)
	}
	if s.Total() != 3 {
		t.Fatalf("expected total 3, got %d", s.Total())
	}
}

func TestPendingExcludesAlreadyLabeled(t *testing.T) {
	s, dir := newTestStore(t, nil, "a.png", "b.jpg", "c.png")
	// Simulate a previous session's mask for b (masks are always .png).
	writePNG(t, filepath.Join(dir, "masks", "b.png"), 16, 16)
	pending, err := s.Pending()
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	want := []string{"a.png", "c.png"}
	if !reflect.DeepEqual(pending, want) {
		t.Fatalf("unexpected pending %v", pending)
	}
}

func TestSkipLedgerExclusionOnlyWhenEnabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RememberSkips = true
	s, _ := newTestStore(t, cfg, "a.png", "b.png")
	if err := s.MarkSkipped("a.png"); err != nil {
		t.Fatalf("mark skipped: %v", err)
	}
	pending, err := s.Pending()
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if !reflect.DeepEqual(pending, []string{"b.png"}) {
		t.Fatalf("skip ledger not applied: %v", pending)
	}

	// Default policy ignores the ledger even if present.
	s2, dir := newTestStore(t, nil, "a.png", "b.png")
	if err := os.WriteFile(filepath.Join(dir, "skipped.txt"), []byte("a.png\n"), 0o644); err != nil {
		t.Fatalf("write ledger: %v", err)
	}
	pending, err = s2.Pending()
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("default policy must re-offer skipped frames: %v", pending)
	}
}

func TestLoadDecodesAndCaches(t *testing.T) {
	s, _ := newTestStore(t, nil, "a.png")
	img1, err := s.Load("a.png")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img1.Bounds().Dx() != 16 || img1.Bounds().Dy() != 16 {
		t.Fatalf("unexpected dimensions %v", img1.Bounds())
	}
	img2, err := s.Load("a.png")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if img1 != img2 {
		t.Fatalf("expected cached frame on second load")
	}
}

func TestLoadMissingFrameFails(t *testing.T) {
	s, _ := newTestStore(t, nil, "a.png")
	if _, err := s.Load("nope.png"); err == nil {
		t.Fatalf("expected error for missing frame")
	}
}

func TestSaveMaskAlwaysPNGStem(t *testing.T) {
	s, dir := newTestStore(t, nil, "a.jpg")
	mask := image.NewGray(image.Rect(0, 0, 16, 16))
	mask.Pix[5] = 0xff
	if err := s.SaveMask("a.jpg", mask); err != nil {
		t.Fatalf("save mask: %v", err)
	}
	path := filepath.Join(dir, "masks", "a.png")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected mask at %s: %v", path, err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode mask: %v", err)
	}
	g, ok := decoded.(*image.Gray)
	if !ok {
		t.Fatalf("expected grayscale mask, got %T", decoded)
	}
	if g.Pix[5] != 0xff {
		t.Fatalf("mask pixel lost on round trip")
	}
	// Overwriting is legal (idempotent save).
	if err := s.SaveMask("a.jpg", mask); err != nil {
		t.Fatalf("overwrite mask: %v", err)
	}
}

func TestSaveOverlayKeepsExtension(t *testing.T) {
	s, dir := newTestStore(t, nil, "a.jpg")
	ov := image.NewRGBA(image.Rect(0, 0, 16, 16))
	if err := s.SaveOverlay("a.jpg", ov); err != nil {
		t.Fatalf("save overlay: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "overlays", "a.jpg")); err != nil {
		t.Fatalf("expected jpg overlay: %v", err)
	}
}

func TestSaveOverlayWebpFallsBackToPNG(t *testing.T) {
	s, dir := newTestStore(t, nil, "a.png")
	ov := image.NewRGBA(image.Rect(0, 0, 16, 16))
	if err := s.SaveOverlay("clip.webp", ov); err != nil {
		t.Fatalf("save overlay: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "overlays", "clip.png")); err != nil {
		t.Fatalf("expected png fallback for webp overlay: %v", err)
	}
}
