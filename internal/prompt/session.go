// Package prompt drives the form controller through sequential terminal
// prompts, for terminals where the full-screen UI is unwanted.
package prompt

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/zap"

	"github.com/jask/inputform/internal/form"
)

const (
	quitLabel = "QUIT"
	// noneLabel leads a dropdown prompt while the field is empty; picking
	// it keeps the value empty.
	noneLabel = "(none)"
)

// Session runs one form through a Driver until the user quits.
type Session struct {
	ctrl   *form.Controller
	driver Driver
	out    io.Writer
	format OutputFormat
	logger *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithOutput sets where the result view is written.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithFormat selects the result view encoding.
func WithFormat(f OutputFormat) Option {
	return func(s *Session) {
		if f != "" {
			s.format = f
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession wires a controller to a prompt driver.
func NewSession(ctrl *form.Controller, driver Driver, opts ...Option) *Session {
	s := &Session{
		ctrl:   ctrl,
		driver: driver,
		out:    os.Stdout,
		format: OutputFormatPretty,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Run prompts until the user picks QUIT. It returns ErrAborted on Ctrl+C.
func (s *Session) Run(ctx context.Context) error {
	if s.ctrl == nil || s.driver == nil {
		return fmt.Errorf("prompt: session needs a controller and a driver")
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.ctrl.Mode() == form.ModeEditing {
			if err := s.promptFields(ctx); err != nil {
				return err
			}
		} else if err := Encode(s.out, s.format, s.ctrl.Fields(), s.ctrl.Values()); err != nil {
			return fmt.Errorf("prompt: write result: %w", err)
		}

		if err := s.driver.Info(ctx, s.ctrl.Hint()); err != nil {
			return err
		}
		action, quit, err := s.promptAction(ctx)
		if err != nil {
			return err
		}
		if quit {
			s.logger.Debug("prompt session quit", zap.String("session", s.ctrl.ID()))
			return nil
		}
		s.ctrl.Trigger(action)
	}
}

func (s *Session) promptFields(ctx context.Context) error {
	for _, f := range s.ctrl.Fields() {
		var err error
		switch f.Kind {
		case form.KindText:
			err = s.promptText(ctx, f)
		case form.KindRadio, form.KindDropdown:
			err = s.promptChoice(ctx, f)
		default:
			err = fmt.Errorf("prompt: unhandled field kind %q", f.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) promptText(ctx context.Context, f form.Field) error {
	s.ctrl.Focus(f.Name)
	v, err := s.driver.Input(ctx, InputConfig{
		Message: f.Label,
		Default: s.ctrl.Value(f.Name),
	})
	if err != nil {
		return err
	}
	s.ctrl.Edit(f.Name, v)
	return nil
}

func (s *Session) promptChoice(ctx context.Context, f form.Field) error {
	current := s.ctrl.Value(f.Name)
	options := f.Options
	def := slices.Index(f.Options, current)
	offset := 0
	if f.Kind == form.KindDropdown && current == "" {
		options = append([]string{noneLabel}, f.Options...)
		def = 0
		offset = 1
	}

	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      f.Label,
		Options:      options,
		DefaultIndex: def,
	})
	if err != nil {
		return err
	}
	idx -= offset
	if idx < 0 || idx >= len(f.Options) {
		return nil
	}
	if f.Kind == form.KindRadio {
		s.ctrl.SelectRadio(f.Options[idx])
	} else {
		s.ctrl.SelectDropdown(f.Options[idx])
	}
	return nil
}

func (s *Session) promptAction(ctx context.Context) (form.Action, bool, error) {
	actions := form.Actions()
	labels := make([]string, 0, len(actions)+1)
	for _, a := range actions {
		labels = append(labels, a.Label())
	}
	labels = append(labels, quitLabel)

	idx, err := s.driver.Select(ctx, SelectConfig{Message: "Action", Options: labels})
	if err != nil {
		return "", false, err
	}
	if idx < 0 || idx >= len(actions) {
		return "", true, nil
	}
	return actions[idx], false, nil
}
