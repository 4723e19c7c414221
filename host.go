package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/system"
	"github.com/milk9111/gravitywell/input"
	"github.com/milk9111/gravitywell/mode"
	"github.com/milk9111/gravitywell/prefabs"
	"github.com/milk9111/gravitywell/scene"
	"go.uber.org/zap"
)

// host owns the world and the mode controller and is shared by the windowed
// and headless loops.
type host struct {
	world      *ecs.World
	scenes     *scene.Scenes
	controller *mode.Controller
	catalog    *prefabs.Catalog
	summary    *swapSummary
	watcher    *prefabs.Watcher
	log        *zap.Logger
}

func newHost(env scene.Env, summary *swapSummary) (*host, error) {
	scenes := scene.New(env)
	controller, err := mode.NewController(scenes.ByMode(), env.Log)
	if err != nil {
		return nil, err
	}
	return &host{
		world:      env.World,
		scenes:     scenes,
		controller: controller,
		catalog:    env.Catalog,
		summary:    summary,
		log:        env.Log,
	}, nil
}

// step advances one tick: the active scene runs, the world is flushed and
// any edited prefab files are reloaded.
func (h *host) step(frame input.Frame, elapsed time.Duration) {
	h.controller.Tick(frame, elapsed)
	h.world.Flush()
	h.applyReloads()
}

func (h *host) done() bool {
	return h.controller.Done()
}

// watch starts hot reload of the prefab directory on disk. A missing
// directory only logs, since the embedded copies are used instead.
func (h *host) watch() {
	dirs := []string{prefabs.DiskDir}
	if _, err := os.Stat(prefabs.DiskDir); err != nil {
		h.log.Warn("hot reload disabled, no prefab directory", zap.String("dir", prefabs.DiskDir))
		return
	}
	scripts := filepath.Join(prefabs.DiskDir, "scripts")
	if _, err := os.Stat(scripts); err == nil {
		dirs = append(dirs, scripts)
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		h.log.Warn("hot reload disabled", zap.Error(err))
		return
	}
	h.watcher = w
	h.log.Info("watching prefabs", zap.Strings("dirs", dirs))
}

func (h *host) applyReloads() {
	if h.watcher == nil {
		return
	}
	names, errs := h.watcher.Pending()
	for _, err := range errs {
		h.log.Warn("prefab watcher error", zap.Error(err))
	}
	for _, name := range names {
		if prefabs.IsScript(name) {
			if filepath.Base(name) != prefabs.SummaryScript {
				continue
			}
			if err := h.summary.reload(); err != nil {
				h.log.Warn("summary script reload failed", zap.String("file", name), zap.Error(err))
				continue
			}
			h.log.Info("summary script reloaded", zap.String("file", name))
			continue
		}
		owned, err := h.catalog.Reload(name)
		switch {
		case !owned:
		case err != nil:
			h.log.Warn("prefab reload failed, keeping previous spec", zap.String("file", name), zap.Error(err))
		default:
			h.log.Info("prefab reloaded", zap.String("file", name))
		}
	}
}

func (h *host) close() {
	if h.watcher != nil {
		_ = h.watcher.Close()
	}
}

// swapSummary is the summarizer handed to the scenes. Reloading replaces the
// script behind it; without a script the Go formatter is used.
type swapSummary struct {
	current system.Summarizer
	log     *zap.Logger
}

func newSwapSummary(log *zap.Logger) *swapSummary {
	s := &swapSummary{current: system.SummaryFunc(system.FormatSummary), log: log}
	if err := s.reload(); err != nil {
		log.Warn("summary script unavailable, using built-in format", zap.Error(err))
	}
	return s
}

func (s *swapSummary) reload() error {
	script, err := system.LoadScriptSummarizer(prefabs.SummaryScript)
	if err != nil {
		return err
	}
	script.OnError = func(err error) {
		s.log.Warn("summary script failed, using built-in format", zap.Error(err))
	}
	s.current = script
	return nil
}

func (s *swapSummary) Summarize(scores system.Scores) string {
	return s.current.Summarize(scores)
}
