// ============================================================================
// strcore - bounded ASCII string core
// ============================================================================
//
// Package:     allocation
// Description: Builds the process allocator from the [alloc] section
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package allocation

import (
	"github.com/msto63/strcore/foundation/core/config"
	scerror "github.com/msto63/strcore/foundation/core/error"
	sclog "github.com/msto63/strcore/foundation/core/log"
	"github.com/msto63/strcore/foundation/utils/allocx"
)

// NewAllocator returns the allocator described by cfg. With Trace set the
// result is wrapped in an allocx.Tracker logging through logger.
func NewAllocator(cfg config.AllocConfig, logger *sclog.Logger) (allocx.Allocator, error) {
	var a allocx.Allocator
	switch cfg.Kind {
	case config.AllocHeap, "":
		a = allocx.Heap{}
	case config.AllocPool:
		a = allocx.NewPool()
	case config.AllocLimited:
		a = allocx.NewLimited(allocx.NewPool(), cfg.Limit.Int())
	default:
		return nil, scerror.New("unknown allocator kind: " + cfg.Kind).
			WithCode(scerror.CodeInvalidConfig).
			WithOperation("allocation.NewAllocator").
			WithDetail("kind", cfg.Kind)
	}

	if cfg.Trace {
		a = allocx.NewTracker(a, logger)
	}
	return a, nil
}

// Install builds the allocator and makes it the process default. It
// returns the installed allocator.
func Install(cfg config.AllocConfig, logger *sclog.Logger) (allocx.Allocator, error) {
	a, err := NewAllocator(cfg, logger)
	if err != nil {
		return nil, err
	}
	allocx.SetDefault(a)
	if logger != nil {
		logger.Debug("allocator installed", sclog.Fields{
			"kind":  cfg.Kind,
			"limit": cfg.Limit.String(),
			"trace": cfg.Trace,
		})
	}
	return a, nil
}
