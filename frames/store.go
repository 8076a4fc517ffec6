// Package frames implements the filesystem side of a labeling session:
// frame enumeration with already-labeled skip logic, image decoding with a
// small LRU cache, and persistence of mask and overlay artifacts to masks/
// and overlays/ directories created next to the selected frames folder.
package frames

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"

	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/soocke/gas-label-go/config"
)

var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".webp": true,
}

const (
	masksDirName    = "masks"
	overlaysDirName = "overlays"
	skipLedgerName  = "skipped.txt"
	frameCacheSize  = 8
)

// Store provides frame enumeration, decoding and artifact persistence for
// one frames folder. Output directories are created on construction,
// sibling to the folder.
type Store struct {
	framesDir   string
	masksDir    string
	overlaysDir string
	skipPath    string

	jpegQuality   int
	rememberSkips bool
	logger        *slog.Logger
	cache         *lru.Cache[string, *image.RGBA]
	total         int
}

// NewStore prepares output directories next to framesDir and counts the
// supported frames it holds.
func NewStore(framesDir string, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	parent := filepath.Dir(filepath.Clean(framesDir))
	s := &Store{
		framesDir:     framesDir,
		masksDir:      filepath.Join(parent, masksDirName),
		overlaysDir:   filepath.Join(parent, overlaysDirName),
		skipPath:      filepath.Join(parent, skipLedgerName),
		jpegQuality:   cfg.JPEGQuality,
		rememberSkips: cfg.RememberSkips,
		logger:        logger,
	}
	for _, dir := range []string{s.masksDir, s.overlaysDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	cache, err := lru.New[string, *image.RGBA](frameCacheSize)
	if err != nil {
		return nil, err
	}
	s.cache = cache

	all, err := s.listSupported()
	if err != nil {
		return nil, err
	}
	s.total = len(all)
	return s, nil
}

// MasksDir returns the mask output directory.
func (s *Store) MasksDir() string { return s.masksDir }

// OverlaysDir returns the overlay output directory.
func (s *Store) OverlaysDir() string { return s.overlaysDir }

// Total returns the number of supported frames found at construction.
func (s *Store) Total() int { return s.total }

func (s *Store) listSupported() ([]string, error) {
	entries, err := os.ReadDir(s.framesDir)
	if err != nil {
		return nil, fmt.Errorf("read frames dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if supportedExts[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sortNatural(names)
	return names, nil
}

// Pending returns the naturally ordered frame names that still need a
// label: supported files minus those with an existing mask, minus the skip
// ledger when the remember-skips policy is enabled.
func (s *Store) Pending() ([]string, error) {
	all, err := s.listSupported()
	if err != nil {
		return nil, err
	}
	labeled, err := s.Progress()
	if err != nil {
		return nil, err
	}
	skipped := map[string]bool{}
	if s.rememberSkips {
		skipped, err = s.readSkipLedger()
		if err != nil {
			return nil, err
		}
	}
	pending := make([]string, 0, len(all))
	for _, name := range all {
		if labeled[stem(name)] || skipped[name] {
			continue
		}
		pending = append(pending, name)
	}
	return pending, nil
}

// Progress returns the set of frame stems that already have a mask file.
func (s *Store) Progress() (map[string]bool, error) {
	matches, err := filepath.Glob(filepath.Join(s.masksDir, "*.png"))
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(matches))
	for _, m := range matches {
		done[stem(filepath.Base(m))] = true
	}
	return done, nil
}

// Load decodes the named frame into RGBA. Decoded frames are kept in a
// small LRU so a redisplay after a failed save does not re-decode.
func (s *Store) Load(name string) (*image.RGBA, error) {
	if img, ok := s.cache.Get(name); ok {
		return img, nil
	}
	f, err := os.Open(filepath.Join(s.framesDir, name))
	if err != nil {
		return nil, fmt.Errorf("open frame %s: %w", name, err)
	}
	defer f.Close()
	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode frame %s: %w", name, err)
	}
	rgba, ok := src.(*image.RGBA)
	if !ok || !rgba.Bounds().Min.Eq(image.Point{}) {
		b := src.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	}
	if s.logger != nil {
		s.logger.Debug("frame decoded", "frame", name, "format", format,
			"w", rgba.Bounds().Dx(), "h", rgba.Bounds().Dy())
	}
	s.cache.Add(name, rgba)
	return rgba, nil
}

// SaveMask writes the binary mask losslessly as masks/<stem>.png,
// overwriting any previous mask for the frame.
func (s *Store) SaveMask(name string, mask *image.Gray) error {
	path := filepath.Join(s.masksDir, stem(name)+".png")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mask %s: %w", path, err)
	}
	if err := png.Encode(f, mask); err != nil {
		f.Close()
		return fmt.Errorf("encode mask %s: %w", path, err)
	}
	return f.Close()
}

// SaveOverlay writes the overlay artifact under overlays/, keeping the
// source extension so the encoder matches the frame format. Formats the
// encoder cannot write (webp) fall back to PNG.
func (s *Store) SaveOverlay(name string, overlay image.Image) error {
	out := name
	if strings.EqualFold(filepath.Ext(name), ".webp") {
		out = stem(name) + ".png"
	}
	path := filepath.Join(s.overlaysDir, out)
	if err := imaging.Save(overlay, path, imaging.JPEGQuality(s.jpegQuality)); err != nil {
		return fmt.Errorf("save overlay %s: %w", path, err)
	}
	return nil
}

// MarkSkipped appends the frame name to the skip ledger.
func (s *Store) MarkSkipped(name string) error {
	f, err := os.OpenFile(s.skipPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open skip ledger: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, name); err != nil {
		return fmt.Errorf("append skip ledger: %w", err)
	}
	return nil
}

func (s *Store) readSkipLedger() (map[string]bool, error) {
	skipped := map[string]bool{}
	f, err := os.Open(s.skipPath)
	if err != nil {
		if os.IsNotExist(err) {
			return skipped, nil
		}
		return nil, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			skipped[line] = true
		}
	}
	return skipped, sc.Err()
}

// stem strips the extension from a frame name.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
