package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/treap"
)

type vizOptions struct {
	seed      uint64
	fixedSeed bool
	format    string
	remove    []string
	noColor   bool
	verbose   bool
}

func parseKeys(args []string) ([]int64, error) {
	keys := make([]int64, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			k, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("illegal key %q: %w", field, err)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func build(opts *vizOptions, args []string) (*treap.Treap[int64, string], error) {
	cfg := treap.OrderedConfig[int64, string]()
	cfg.Seed, cfg.FixedSeed = opts.seed, opts.fixedSeed
	t, err := treap.New(cfg)
	if err != nil {
		return nil, err
	}
	keys, err := parseKeys(args)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		t.Upsert(k, strconv.FormatInt(k, 10))
	}
	removals, err := parseKeys(opts.remove)
	if err != nil {
		return nil, err
	}
	for _, k := range removals {
		t.Remove(k)
	}
	if err := t.Check(); err != nil {
		return nil, err
	}
	return t, nil
}

func run(w io.Writer, opts *vizOptions, args []string) error {
	t, err := build(opts, args)
	if err != nil {
		return err
	}
	switch opts.format {
	case "dot":
		return t.Dot(w)
	case "tree":
		if err := t.Dump(w, !color.NoColor); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%d entries, height %d\n", t.Len(), t.Height())
		return err
	}
	return fmt.Errorf("unknown output format %q", opts.format)
}
