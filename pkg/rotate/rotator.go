package rotate

import (
	"errors"
	"time"

	"github.com/m1cr0man/bgrot/pkg/desktop"
	"github.com/m1cr0man/bgrot/pkg/images"
	"github.com/m1cr0man/bgrot/pkg/logger"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

const DefaultInterval = time.Minute * 15

var ErrInvalidInterval = errors.New("interval must be at least one minute")

type Rotator struct {
	applier desktop.Applier
	log     logger.Logger
	fs      afero.Fs
	sleep   func(time.Duration)
	shuffle func([]string)
}

type Option func(*Rotator)

// WithSleep replaces the blocking wait between iterations.
func WithSleep(sleep func(time.Duration)) Option {
	return func(r *Rotator) { r.sleep = sleep }
}

func WithShuffle(shuffle func([]string)) Option {
	return func(r *Rotator) { r.shuffle = shuffle }
}

// WithFs sets the filesystem the image directory is read from.
func WithFs(fs afero.Fs) Option {
	return func(r *Rotator) { r.fs = fs }
}

func New(applier desktop.Applier, log logger.Logger, opts ...Option) *Rotator {
	r := &Rotator{
		applier: applier,
		log:     log,
		fs:      afero.NewOsFs(),
		sleep:   time.Sleep,
		shuffle: Randomise,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start lists the directory once and builds the initial state. The image
// set is fixed from here on.
func (r *Rotator) Start(dir string, interval time.Duration, policy Policy) (*State, error) {
	if interval < time.Minute {
		return nil, xerrors.Errorf("%v: %w", interval, ErrInvalidInterval)
	}

	found, err := images.List(r.fs, dir)
	if err != nil {
		return nil, err
	}

	state := Prepare(found, interval, policy, r.shuffle)
	return &state, nil
}

// Apply sets the current image and reports the outcome.
func (r *Rotator) Apply(state *State) error {
	current := state.Current()
	if err := r.applier.SetBackground(current); err != nil {
		r.log.Error("Error setting wallpaper: %v", err)
		return err
	}
	r.log.Info("Wallpaper set to: %s", current)
	return nil
}

// Step runs one full iteration: apply, wait, advance. A failed apply is
// reported and otherwise ignored.
func (r *Rotator) Step(state *State) {
	_ = r.Apply(state)
	r.sleep(state.Interval)
	*state = Advance(*state, r.shuffle)
}

// Run rotates the wallpaper until the process is killed. It only returns
// when the directory cannot be used.
func (r *Rotator) Run(dir string, interval time.Duration, policy Policy) error {
	state, err := r.Start(dir, interval, policy)
	if err != nil {
		return err
	}

	for {
		r.Step(state)
	}
}
