// SPDX-License-Identifier: MIT
// Package: charlton/builder
//
// args.go — keyword-style entry points.
//
// Both parsers accept "key=count" tokens as typed on a command line. Counts
// must be positive base-10 integers. Unknown DemoData keywords are reported
// together, sorted, in one *UnexpectedOptionError.

package builder

import (
	"sort"
	"strconv"
	"strings"
)

// ParseFactorArgs turns tokens like "a=2", "b=3", "repeat=2" into Factors and
// a replicate count (DefaultRepeat when absent). "repeat" is reserved and can
// not be used as a factor name.
//
// Errors: ErrMalformedArg (no '=', empty key, duplicate key), ErrBadSize
// (count not a positive integer).
func ParseFactorArgs(args []string) (Factors, int, error) {
	factors := make(Factors, len(args))
	repeat := DefaultRepeat
	seenRepeat := false
	for _, arg := range args {
		key, n, err := splitKeyCount(MethodParseFactorArgs, arg)
		if err != nil {
			return nil, 0, err
		}
		if key == KeyRepeat {
			if seenRepeat {
				return nil, 0, builderErrorf(MethodParseFactorArgs, ErrMalformedArg, "duplicate %q", key)
			}
			repeat, seenRepeat = n, true
			continue
		}
		if _, dup := factors[key]; dup {
			return nil, 0, builderErrorf(MethodParseFactorArgs, ErrMalformedArg, "duplicate %q", key)
		}
		factors[key] = n
	}

	return factors, repeat, nil
}

// ParseDemoArgs splits tokens into variable names (bare words) and DemoData
// options ("nlevels=N", "min_rows=N"). Any other keyword yields
// *UnexpectedOptionError; names are not classified here.
func ParseDemoArgs(args []string) ([]string, []DemoOption, error) {
	var (
		names      []string
		opts       []DemoOption
		unexpected []string
	)
	for _, arg := range args {
		if !strings.Contains(arg, kvSep) {
			names = append(names, arg)
			continue
		}
		key, _, _ := strings.Cut(arg, kvSep)
		if key == "" {
			return nil, nil, builderErrorf(MethodParseDemoArgs, ErrMalformedArg, "want key=count, got %q", arg)
		}
		if key != KeyLevels && key != KeyMinRows {
			unexpected = append(unexpected, key)
			continue
		}
		key, n, err := splitKeyCount(MethodParseDemoArgs, arg)
		if err != nil {
			return nil, nil, err
		}
		if key == KeyLevels {
			opts = append(opts, WithLevels(n))
		} else {
			opts = append(opts, WithMinRows(n))
		}
	}
	if len(unexpected) > 0 {
		sort.Strings(unexpected)
		return nil, nil, builderErrorf(MethodParseDemoArgs, &UnexpectedOptionError{Options: unexpected}, "keywords")
	}

	return names, opts, nil
}

// splitKeyCount parses "key=count" with count ≥ 1.
func splitKeyCount(method, arg string) (string, int, error) {
	key, val, ok := strings.Cut(arg, kvSep)
	if !ok || key == "" {
		return "", 0, builderErrorf(method, ErrMalformedArg, "want key=count, got %q", arg)
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 1 {
		return "", 0, builderErrorf(method, ErrBadSize, "%s: want a positive integer, got %q", key, val)
	}

	return key, n, nil
}
