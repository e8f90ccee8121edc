package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Nahuel-M/mathematics"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// bindings creates the evaluation context for a command. Variables from the
// YAML file are set first, in file order, then the name=value definitions.
// Each value is an expression which may use the variables defined before it.
func bindings(varsFile string, given []string) (*mathematics.Context, error) {
	ctx := mathematics.NewContext()
	if varsFile != "" {
		f, err := os.Open(varsFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := loadVars(ctx, f); err != nil {
			return nil, fmt.Errorf("%s: %w", varsFile, err)
		}
	}
	for _, g := range given {
		name, val, err := parseGiven(g)
		if err != nil {
			return nil, err
		}
		if err := define(ctx, name, val); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

// loadVars sets variables from a YAML mapping of names to values.
func loadVars(ctx *mathematics.Context, r io.Reader) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if len(doc.Content) == 0 {
		return nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return fmt.Errorf("%d: variables must be a mapping of names to values", m.Line)
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("%d: value of %s is not a number or expression", v.Line, k.Value)
		}
		if err := define(ctx, k.Value, v.Value); err != nil {
			return fmt.Errorf("%d: %w", k.Line, err)
		}
	}
	return nil
}

// parseGiven splits a name=value definition.
func parseGiven(s string) (name, val string, err error) {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 {
		return "", "", fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
	}
	return strings.TrimSpace(d[0]), strings.TrimSpace(d[1]), nil
}

// define evaluates src and sets name to the result.
func define(ctx *mathematics.Context, name, src string) error {
	v, err := mathematics.ParseString(name, mathematics.DisableDefaultFuncs())
	if err != nil || v.Kind() != mathematics.KindVariable {
		return fmt.Errorf("invalid variable name %q", name)
	}
	if mathematics.Reserved(name) {
		return fmt.Errorf("cannot set %q: it names a function or constant", name)
	}
	a, err := mathematics.ParseString(src)
	if err != nil {
		return fmt.Errorf("setting %s: %w", name, err)
	}
	r := ctx.Eval(a)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("setting %s: %w", name, err)
	}
	log.Debugf("%s = %g", name, r)
	ctx.Set(name, r)
	return nil
}
