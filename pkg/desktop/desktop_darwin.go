package desktop

import (
	"github.com/reujab/wallpaper"
)

func setBackground(filePath string) error {
	if err := wallpaper.SetFromFile(filePath); err != nil {
		return &OSError{Code: -1, Err: err}
	}
	return nil
}

func currentBackground() (string, error) {
	return wallpaper.Get()
}
