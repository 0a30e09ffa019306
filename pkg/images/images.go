package images

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

var Extensions = []string{"jpg", "jpeg", "png", "bmp"}

var (
	ErrPathDoesNotExist = errors.New("path does not exist")
	ErrNotADirectory    = errors.New("path is not a directory")
	ErrNoImagesFound    = errors.New("no images found in directory")
)

// notExist matches both ErrPathDoesNotExist and os.ErrNotExist
type notExist struct {
	path string
	err  error
}

func (e *notExist) Error() string {
	return e.path + ": " + ErrPathDoesNotExist.Error()
}

func (e *notExist) Is(target error) bool {
	return target == ErrPathDoesNotExist || target == os.ErrNotExist
}

func (e *notExist) Unwrap() error {
	return e.err
}

// Supported reports whether the file name ends in one of Extensions,
// ignoring case.
func Supported(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return false
	}
	ext = strings.ToLower(ext)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// List returns the paths of all supported images directly inside dir.
// The order is whatever the filesystem enumerates; subdirectories are not
// descended into.
func List(fs afero.Fs, dir string) (images []string, err error) {
	info, err := fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &notExist{path: dir, err: err}
		}
		return nil, xerrors.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, xerrors.Errorf("%s: %w", dir, ErrNotADirectory)
	}

	files, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, xerrors.Errorf("read %s: %w", dir, err)
	}

	for _, file := range files {
		if !file.Mode().IsRegular() || !Supported(file.Name()) {
			continue
		}
		images = append(images, filepath.Join(dir, file.Name()))
	}

	if len(images) == 0 {
		return nil, xerrors.Errorf("%s: %w", dir, ErrNoImagesFound)
	}
	return
}
