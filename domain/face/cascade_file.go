package face

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrCascadeNotFound is returned when no cascade XML matches the configured path.
var ErrCascadeNotFound = errors.New("face: cascade file not found")

// CascadeDirs lists the directories OpenCV installs its Haar cascades into,
// most specific first. OPENCV_DIR (set by the Windows installer) is honoured.
func CascadeDirs() []string {
	var dirs []string
	if d := os.Getenv("OPENCV_DIR"); d != "" {
		dirs = append(dirs,
			filepath.Join(d, "etc", "haarcascades"),
			filepath.Join(d, "..", "..", "etc", "haarcascades"),
		)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), "data"))
	}
	dirs = append(dirs, "data")
	if runtime.GOOS == "windows" {
		return append(dirs, `C:\opencv\build\etc\haarcascades`)
	}
	return append(dirs,
		"/usr/local/share/opencv4/haarcascades",
		"/usr/share/opencv4/haarcascades",
		"/opt/homebrew/share/opencv4/haarcascades",
		"/usr/local/share/opencv/haarcascades",
		"/usr/share/opencv/haarcascades",
	)
}

// FindCascade returns path when it names an existing file. Otherwise it looks
// for the file's base name in dirs, in order.
func FindCascade(path string, dirs []string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrCascadeNotFound)
	}
	if isFile(path) {
		return path, nil
	}
	base := filepath.Base(path)
	for _, d := range dirs {
		if p := filepath.Join(d, base); isFile(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s (searched %d OpenCV data dirs)", ErrCascadeNotFound, path, len(dirs))
}

func isFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && !fi.IsDir()
}
