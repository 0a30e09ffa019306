//go:build !linux && !darwin && !windows

package desktop

func setBackground(filePath string) error {
	return ErrUnsupportedOS
}

func currentBackground() (string, error) {
	return "", ErrUnsupportedOS
}
