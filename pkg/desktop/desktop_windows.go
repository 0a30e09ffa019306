package desktop

import (
	"errors"
	"syscall"
	"unsafe"

	"github.com/reujab/wallpaper"
	"golang.org/x/sys/windows"
	"golang.org/x/xerrors"
)

const (
	spiSetDeskWallpaper  = 0x0014
	spifUpdateIniFile    = 0x01
	spifSendWinIniChange = 0x02
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
)

func setBackground(filePath string) error {
	wide, err := windows.UTF16PtrFromString(filePath)
	if err != nil {
		return xerrors.Errorf("%q: %w", filePath, ErrInvalidPath)
	}

	r, _, callErr := procSystemParametersInfoW.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(wide)),
		spifUpdateIniFile|spifSendWinIniChange,
	)
	if r == 0 {
		var errno syscall.Errno
		if errors.As(callErr, &errno) {
			return &OSError{Code: int(errno), Err: callErr}
		}
		return &OSError{Code: -1, Err: callErr}
	}
	return nil
}

func currentBackground() (string, error) {
	return wallpaper.Get()
}
