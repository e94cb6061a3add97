package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"i18nlint/internal/scan"
)

func newWatchCmd() *cobra.Command {
	var flags ruleFlags
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Re-lint on file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) == 1 {
				target = args[0]
			}

			scanner, err := flags.newScanner(target)
			if err != nil {
				return err
			}

			rescan := func() {
				report, runErr := scanner.Run(cmd.Context(), target)
				if runErr != nil {
					fmt.Fprintln(os.Stderr, "watch: scan failed:", runErr)
					return
				}
				if flags.jsonOutput {
					_ = emitJSON(report)
					return
				}
				printReport(report, !flags.noColor)
			}

			rescan()
			return watchLoop(cmd.Context(), target, debounce, scanner, rescan)
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", 250*time.Millisecond, "delay before rescanning after a change")
	return cmd
}

// watchLoop blocks on filesystem events, coalescing bursts with a debounce
// timer and rescanning once per quiet period. Newly created directories are
// added to the watch set as they appear.
func watchLoop(ctx context.Context, target string, debounce time.Duration, scanner *scan.Scanner, onChange func()) error {
	root, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	root = filepath.Clean(root)
	if info, statErr := os.Stat(root); statErr != nil {
		return statErr
	} else if !info.IsDir() {
		root = filepath.Dir(root)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addWatchRecursive(watcher, root); err != nil {
		return err
	}

	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	pending := false

	resetDebounce := func() {
		if pending {
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		}
		timer.Reset(debounce)
		pending = true
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			eventPath := filepath.Clean(event.Name)
			if skipWatchEvent(eventPath, scanner) {
				continue
			}

			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(eventPath); statErr == nil && info.IsDir() {
					_ = addWatchRecursive(watcher, eventPath)
				}
			}

			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			resetDebounce()
		case <-timer.C:
			if pending {
				pending = false
				onChange()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return watchErr
		}
	}
}

func addWatchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && skipWatchDir(entry.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func skipWatchDir(name string) bool {
	if name == "node_modules" || name == "vendor" || name == "dist" || name == "build" {
		return true
	}
	return strings.HasPrefix(name, ".")
}

// skipWatchEvent drops editor droppings and files the scanner would never
// lint anyway, so saves of unrelated files do not trigger rescans.
func skipWatchEvent(path string, scanner *scan.Scanner) bool {
	base := filepath.Base(path)
	if base == ".DS_Store" || strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swx") || strings.HasPrefix(base, ".#") {
		return true
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return false
	}
	return !scanner.Supported(path)
}
