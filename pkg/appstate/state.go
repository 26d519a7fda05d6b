// Package appstate tracks the execution area (admin, storefront, cron...)
// that catalog writes run under.
//
// Patches never set the area globally. They wrap their work in
// EmulateAreaCode, which enters the area for the duration of the callback
// and restores the previous one on every exit path:
//
//	err := state.EmulateAreaCode(ctx, appstate.AreaAdminhtml, func(ctx context.Context) error {
//	    return save(ctx)
//	})
package appstate

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/shashiranjanraj/catalogpatch/pkg/logger"
)

const (
	AreaGlobal    = "global"
	AreaAdminhtml = "adminhtml"
	AreaFrontend  = "frontend"
	AreaCrontab   = "crontab"
)

var knownAreas = []string{AreaGlobal, AreaAdminhtml, AreaFrontend, AreaCrontab}

var (
	// ErrAreaNotSet is returned by AreaCode outside any area.
	ErrAreaNotSet = errors.New("area code is not set")
	// ErrAreaAlreadySet is returned by SetAreaCode when an area is active.
	ErrAreaAlreadySet = errors.New("area code is already set")
	// ErrUnknownArea is returned for area codes outside knownAreas.
	ErrUnknownArea = errors.New("unknown area code")
)

// StateError reports that the execution area could not be read or entered.
type StateError struct {
	Op   string
	Area string
	Err  error
}

func (e *StateError) Error() string {
	if e.Area == "" {
		return fmt.Sprintf("appstate: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("appstate: %s %q: %v", e.Op, e.Area, e.Err)
}

func (e *StateError) Unwrap() error { return e.Err }

// State holds the current area. The zero value has no area set.
type State struct {
	mu       sync.Mutex
	areaCode string
}

func New() *State {
	return &State{}
}

// AreaCode returns the active area or a *StateError when none is set.
func (s *State) AreaCode() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.areaCode == "" {
		return "", &StateError{Op: "get area", Err: ErrAreaNotSet}
	}
	return s.areaCode, nil
}

// SetAreaCode sets the area once for the lifetime of the process.
func (s *State) SetAreaCode(area string) error {
	if !slices.Contains(knownAreas, area) {
		return &StateError{Op: "set area", Area: area, Err: ErrUnknownArea}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.areaCode != "" {
		return &StateError{Op: "set area", Area: area, Err: ErrAreaAlreadySet}
	}
	s.areaCode = area
	return nil
}

// EmulateAreaCode runs fn with area active and restores the previous area
// afterwards, including when fn panics. fn receives a context that carries
// the area (see FromContext). Errors from fn are returned unchanged.
func (s *State) EmulateAreaCode(ctx context.Context, area string, fn func(context.Context) error) error {
	if !slices.Contains(knownAreas, area) {
		return &StateError{Op: "emulate area", Area: area, Err: ErrUnknownArea}
	}

	s.mu.Lock()
	previous := s.areaCode
	s.areaCode = area
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.areaCode = previous
		s.mu.Unlock()
	}()

	logger.WithCtx(ctx).Debug("appstate: emulating area", "area", area, "previous", previous)

	return fn(context.WithValue(ctx, areaKey{}, area))
}

type areaKey struct{}

// FromContext returns the area entered by EmulateAreaCode, if any.
func FromContext(ctx context.Context) (string, bool) {
	area, ok := ctx.Value(areaKey{}).(string)
	return area, ok
}
