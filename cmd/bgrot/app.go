package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m1cr0man/bgrot/pkg/config"
	"github.com/m1cr0man/bgrot/pkg/desktop"
	"github.com/m1cr0man/bgrot/pkg/images"
	"github.com/m1cr0man/bgrot/pkg/logger"
	"github.com/m1cr0man/bgrot/pkg/rotate"
	"github.com/pkg/browser"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

var (
	errMissingPath    = errors.New("missing PATH argument")
	errTooManyArgs    = errors.New("expected a single PATH argument")
	errRequiresRotate = errors.New("--interval and --mode can only be used with --rotate")
)

// env is everything the commands touch outside the process
type env struct {
	applier    desktop.Applier
	log        logger.Logger
	fs         afero.Fs
	sleep      func(time.Duration)
	configPath string
	current    func() (string, error)
	open       func(string) error
	stdout     io.Writer
	stderr     io.Writer
}

func defaultEnv() *env {
	return &env{
		applier:    desktop.System{},
		log:        logger.NewConsole(),
		fs:         afero.NewOsFs(),
		sleep:      time.Sleep,
		configPath: config.Path(),
		current:    desktop.CurrentBackground,
		open:       browser.OpenFile,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

func newApp(e *env) *cli.App {
	app := cli.NewApp()
	app.Name = config.AppName
	app.HelpName = config.AppName
	app.Usage = "set the desktop background, or rotate through a folder of images"
	app.UsageText = "bgrot [options] PATH"
	app.Version = "1.0.0"
	app.Writer = e.stdout
	app.ErrWriter = e.stderr
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "rotate, r",
			Usage: "rotate through the images in the PATH folder",
		},
		cli.IntFlag{
			Name:  "interval, i",
			Value: config.DefaultInterval,
			Usage: "minutes between wallpaper changes (with --rotate)",
		},
		cli.StringFlag{
			Name:  "mode, m",
			Value: rotate.Sequential.String(),
			Usage: "rotation order, sequential or random (with --rotate)",
		},
	}
	app.Action = e.setWallpaper
	app.Commands = []cli.Command{
		{
			Name:      "list",
			Aliases:   []string{"l"},
			Usage:     "list the images a folder rotation would use",
			ArgsUsage: "DIR",
			Action:    e.list,
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "json", Usage: "print a JSON array"},
			},
		},
		{
			Name:   "current",
			Usage:  "print the current desktop background",
			Action: e.showCurrent,
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "open, o", Usage: "open the image in the default viewer"},
			},
		},
		{
			Name:   "config",
			Usage:  "show the config file and the defaults it provides",
			Action: e.showConfig,
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "init", Usage: "write the config file if it does not exist"},
			},
		},
	}
	return app
}

func singlePath(c *cli.Context) (string, error) {
	switch {
	case c.NArg() == 0:
		return "", errMissingPath
	case c.NArg() > 1:
		return "", errTooManyArgs
	}
	return c.Args().First(), nil
}

func (e *env) setWallpaper(c *cli.Context) error {
	path, err := singlePath(c)
	if err != nil {
		return err
	}

	if c.Bool("rotate") {
		return e.rotate(c, path)
	}

	if c.IsSet("interval") || c.IsSet("mode") {
		return errRequiresRotate
	}
	if info, err := e.fs.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%s is a directory, use --rotate to cycle through it", path)
	}

	if err = e.applier.SetBackground(path); err != nil {
		return err
	}
	e.log.Info("Wallpaper set to: %s", path)
	return nil
}

func (e *env) rotate(c *cli.Context, dir string) error {
	conf, err := config.Load(e.configPath)
	if err != nil {
		return err
	}

	if c.IsSet("interval") {
		conf.Interval = c.Int("interval")
	}
	if c.IsSet("mode") {
		if conf.Mode, err = rotate.ParsePolicy(c.String("mode")); err != nil {
			return err
		}
	}

	r := rotate.New(e.applier, e.log, rotate.WithFs(e.fs), rotate.WithSleep(e.sleep))
	return r.Run(dir, time.Duration(conf.Interval)*time.Minute, conf.Mode)
}

func (e *env) list(c *cli.Context) error {
	dir, err := singlePath(c)
	if err != nil {
		return err
	}

	found, err := images.List(e.fs, dir)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(found, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(e.stdout, string(data))
		return err
	}

	for _, image := range found {
		fmt.Fprintln(e.stdout, image)
	}
	return nil
}

func (e *env) showCurrent(c *cli.Context) error {
	current, err := e.current()
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, current)

	if c.Bool("open") {
		return e.open(current)
	}
	return nil
}

func (e *env) showConfig(c *cli.Context) error {
	conf, err := config.Load(e.configPath)
	if err != nil {
		return err
	}

	if c.Bool("init") {
		if _, err = os.Stat(e.configPath); os.IsNotExist(err) {
			if err = config.Save(e.configPath, conf); err != nil {
				return err
			}
			fmt.Fprintln(e.stdout, "Created", e.configPath)
		}
	}

	fmt.Fprintln(e.stdout, "Config file:", e.configPath)
	fmt.Fprintln(e.stdout, "Interval:", conf.Interval, "minutes")
	fmt.Fprintln(e.stdout, "Mode:", conf.Mode)
	return nil
}
