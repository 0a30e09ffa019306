package desktop

import (
	"os/exec"

	"github.com/reujab/wallpaper"
)

func setBackground(filePath string) error {
	err := wallpaper.SetFromFile(filePath)
	if err == nil {
		return nil
	}

	// Not every session is detected, gsettings covers plain GNOME setups
	if gerr := setBackgroundGnome(filePath); gerr != nil {
		return &OSError{Code: exitCode(gerr), Err: err}
	}
	return nil
}

func setBackgroundGnome(filePath string) error {
	cmd := "gsettings"
	return exec.Command(cmd, "set", "org.gnome.desktop.background", "picture-uri", "file://"+filePath).Run()
}

func exitCode(err error) int {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}

func currentBackground() (string, error) {
	return wallpaper.Get()
}
