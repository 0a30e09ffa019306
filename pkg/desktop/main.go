package desktop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode/utf8"

	"golang.org/x/xerrors"
)

var (
	ErrPathNotFound  = errors.New("path does not exist")
	ErrInvalidPath   = errors.New("path cannot be passed to the operating system")
	ErrUnsupportedOS = fmt.Errorf("OS %s not supported. Please create a ticket on GitHub if you would like support", runtime.GOOS)
)

// OSError is returned when the desktop itself refuses the new background.
type OSError struct {
	Code int
	Err  error
}

func (e *OSError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to set wallpaper, error code %d: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("failed to set wallpaper, error code %d", e.Code)
}

func (e *OSError) Unwrap() error {
	return e.Err
}

type Applier interface {
	SetBackground(filePath string) error
}

// System applies wallpapers to the running desktop session.
type System struct{}

func (System) SetBackground(filePath string) error {
	return SetBackground(filePath)
}

// Resolve turns filePath into the absolute, symlink free path handed to the
// desktop.
func Resolve(filePath string) (string, error) {
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return "", xerrors.Errorf("%s: %w", filePath, ErrPathNotFound)
		}
		return "", xerrors.Errorf("stat %s: %w", filePath, err)
	}

	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", xerrors.Errorf("resolve %s: %w", filePath, err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", xerrors.Errorf("resolve %s: %w", filePath, err)
	}

	if strings.ContainsRune(abs, 0) || !utf8.ValidString(abs) {
		return "", xerrors.Errorf("%q: %w", abs, ErrInvalidPath)
	}
	return abs, nil
}

func SetBackground(filePath string) error {
	abs, err := Resolve(filePath)
	if err != nil {
		return err
	}
	return setBackground(abs)
}

// CurrentBackground returns the image the desktop is currently showing.
func CurrentBackground() (string, error) {
	return currentBackground()
}
