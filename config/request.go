// SPDX-License-Identifier: MIT
// Package: charlton/config
//
// request.go — YAML request documents describing one dataset job.
//
// A request is decoded strictly: keys other than the struct fields are
// rejected with *builder.UnexpectedOptionError, the same error a keyword
// caller gets from builder.ParseDemoArgs.

package config

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/charlton/builder"
	"github.com/katalvlaran/charlton/dataset"
	"github.com/katalvlaran/charlton/export"
	"gopkg.in/yaml.v3"
)

// Request kinds.
const (
	KindBalanced = "balanced"
	KindDemo     = "demo"
)

// DefaultFormat is used when a request names no output format.
const DefaultFormat = export.FormatJSON

var (
	// ErrEmptyRequest is returned when the input holds no YAML document.
	ErrEmptyRequest = errors.New("config: empty request")
	// ErrInvalidRequest wraps struct validation failures.
	ErrInvalidRequest = errors.New("config: invalid request")
)

// Package-level validator instance for request validation.
var validate = validator.New()

var unknownFieldRe = regexp.MustCompile(`field (\S+) not found in type`)

// Request describes a Balanced or DemoData job and where to write it.
type Request struct {
	// Kind selects the builder: "balanced" or "demo".
	Kind string `yaml:"kind" validate:"required,oneof=balanced demo"`

	// Factors and Repeat apply to kind "balanced".
	Factors map[string]int `yaml:"factors,omitempty" validate:"omitempty,dive,keys,required,endkeys,min=1"`
	Repeat  int            `yaml:"repeat,omitempty" validate:"omitempty,min=1"`

	// Names, NLevels, MinRows and Seed apply to kind "demo".
	Names   []string `yaml:"names,omitempty" validate:"omitempty,dive,required"`
	NLevels int      `yaml:"nlevels,omitempty" validate:"omitempty,min=1"`
	MinRows int      `yaml:"min_rows,omitempty" validate:"omitempty,min=1"`
	Seed    *int64   `yaml:"seed,omitempty"`

	// Format is one of export.Formats (plus "yml"); empty means DefaultFormat.
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=csv json yaml yml xlsx arrow"`
	// Output is a file path; empty means standard output.
	Output string `yaml:"output,omitempty"`
}

// Load decodes and validates one request document from r.
func Load(r io.Reader) (*Request, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var req Request
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRequest
		}
		if keys := unknownFields(err); len(keys) > 0 {
			return nil, fmt.Errorf("config: %w", &builder.UnexpectedOptionError{Options: keys})
		}
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return &req, nil
}

// Validate checks field constraints and that only the fields of the chosen
// kind are set.
func (r *Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var foreign []string
	switch r.Kind {
	case KindBalanced:
		foreign = setFields(map[string]bool{
			"names": len(r.Names) > 0, "nlevels": r.NLevels != 0,
			"min_rows": r.MinRows != 0, "seed": r.Seed != nil,
		})
	case KindDemo:
		foreign = setFields(map[string]bool{
			"factors": len(r.Factors) > 0, "repeat": r.Repeat != 0,
		})
	}
	if len(foreign) > 0 {
		return fmt.Errorf("config: kind %s: %w", r.Kind, &builder.UnexpectedOptionError{Options: foreign})
	}

	return nil
}

// OutputFormat resolves Format, falling back to DefaultFormat.
func (r *Request) OutputFormat() (export.Format, error) {
	if r.Format == "" {
		return DefaultFormat, nil
	}

	return export.ParseFormat(r.Format)
}

// Build runs the requested builder.
func (r *Request) Build() (*dataset.Frame, error) {
	switch r.Kind {
	case KindBalanced:
		repeat := r.Repeat
		if repeat == 0 {
			repeat = builder.DefaultRepeat
		}
		return builder.Balanced(builder.Factors(r.Factors), repeat)
	case KindDemo:
		return builder.DemoData(r.Names, r.DemoOptions()...)
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidRequest, r.Kind)
	}
}

// DemoOptions translates the set demo fields into builder options.
func (r *Request) DemoOptions() []builder.DemoOption {
	var opts []builder.DemoOption
	if r.NLevels > 0 {
		opts = append(opts, builder.WithLevels(r.NLevels))
	}
	if r.MinRows > 0 {
		opts = append(opts, builder.WithMinRows(r.MinRows))
	}
	if r.Seed != nil {
		opts = append(opts, builder.WithSeed(*r.Seed))
	}

	return opts
}

// unknownFields extracts the offending keys of a strict-decoding failure.
func unknownFields(err error) []string {
	var te *yaml.TypeError
	if !errors.As(err, &te) {
		return nil
	}
	var keys []string
	for _, msg := range te.Errors {
		if m := unknownFieldRe.FindStringSubmatch(msg); m != nil {
			keys = append(keys, m[1])
		}
	}
	sort.Strings(keys)

	return keys
}

func setFields(fields map[string]bool) []string {
	var out []string
	for name, set := range fields {
		if set {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}
