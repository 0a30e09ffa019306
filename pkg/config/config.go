// Package config holds the defaults used when flags are not given on the
// command line. They live in config.ini inside the user's config directory.
package config

import (
	"path/filepath"
	"strconv"

	"github.com/kirsle/configdir"
	"github.com/m1cr0man/bgrot/pkg/rotate"
	"golang.org/x/xerrors"
	"gopkg.in/ini.v1"
)

const (
	AppName         = "bgrot"
	FileName        = "config.ini"
	SectionRotate   = "rotate"
	DefaultInterval = 15
	// One week
	MaxInterval = 60 * 24 * 7
)

type Config struct {
	// Minutes between wallpaper changes
	Interval int
	Mode     rotate.Policy
}

func Default() Config {
	return Config{
		Interval: DefaultInterval,
		Mode:     rotate.Sequential,
	}
}

func Dir() string {
	return configdir.LocalConfig(AppName)
}

func Path() string {
	return filepath.Join(Dir(), FileName)
}

// Load reads the config file at filePath. A missing file gives the defaults.
// Values out of range fall back to their default instead of failing.
func Load(filePath string) (conf Config, err error) {
	conf = Default()

	cfg, err := ini.LooseLoad(filePath)
	if err != nil {
		return conf, xerrors.Errorf("load %s: %w", filePath, err)
	}

	section := cfg.Section(SectionRotate)
	conf.Interval = section.Key("interval").RangeInt(DefaultInterval, 1, MaxInterval)

	mode := section.Key("mode").In(rotate.Sequential.String(), rotate.PolicyNames())
	// In only returns known names
	conf.Mode, _ = rotate.ParsePolicy(mode)
	return
}

// Save writes conf to filePath, creating its directory if needed.
func Save(filePath string, conf Config) error {
	if err := configdir.MakePath(filepath.Dir(filePath)); err != nil {
		return xerrors.Errorf("create config dir: %w", err)
	}

	cfg := ini.Empty()
	section := cfg.Section(SectionRotate)
	section.Key("interval").SetValue(strconv.Itoa(conf.Interval))
	section.Key("mode").SetValue(conf.Mode.String())

	if err := cfg.SaveTo(filePath); err != nil {
		return xerrors.Errorf("save %s: %w", filePath, err)
	}
	return nil
}
