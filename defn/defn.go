// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

// Package defn parses the operator definition DSL: a "|"-separated list of
// steps, each an optional modifier, a method id, and zero or more
// key=value or bare-flag arguments.
package defn

import (
	"strings"
)

// modifiers is the fixed set of step-level flags that are stripped from the
// token stream before the method id is identified.
var modifiers = map[string]bool{
	"inv":      true,
	"omit_fwd": true,
	"omit_inv": true,
}

// delimiters is whitespace-insignificant around these five characters.
const delimiters = "|=,.:"

// Step is a single parsed step: a method id (recorded in Parameters under
// "_name") bound to its raw, string-valued parameters.
type Step struct {
	// Text is the normalized text of just this step.
	Text string
	// Parameters holds every recognized token: "_name" for the method id,
	// "inv"/"omit_fwd"/"omit_inv" for modifiers, and key=value or bare
	// flags for the rest, all as raw strings.
	Parameters map[string]string
}

// Definition is the result of parsing a textual operator definition.
type Definition struct {
	// Text is the original, unparsed input.
	Text string
	// Normalized is the canonical " | ".join(steps) form.
	Normalized string
	// Steps is the ordered list of parsed steps. A Definition with a
	// Steps length other than 1 (including 0) denotes a pipeline.
	Steps []Step
}

// IsPipeline reports whether d must be interpreted as a pipeline (including
// the zero-step no-op), rather than as a single operator step.
func (d Definition) IsPipeline() bool { return len(d.Steps) != 1 }

// Parse normalizes and splits definition into its constituent steps.
func Parse(definition string) Definition {
	normalized := normalize(definition)
	stepTexts := splitSteps(normalized)

	steps := make([]Step, len(stepTexts))
	for i, text := range stepTexts {
		steps[i] = parseStep(text)
	}

	return Definition{
		Text:       definition,
		Normalized: strings.Join(stepTexts, " | "),
		Steps:      steps,
	}
}

// normalize strips comments and collapses insignificant whitespace.
func normalize(definition string) string {
	definition = strings.ReplaceAll(definition, "\r", "\n")
	lines := strings.Split(definition, "\n")
	for i, line := range lines {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		lines[i] = line
	}
	joined := strings.Join(lines, " ")

	joined = strings.Join(strings.Fields(joined), " ")

	for _, d := range delimiters {
		joined = stripAroundDelimiter(joined, d)
	}
	return joined
}

// stripAroundDelimiter removes whitespace immediately before and after every
// occurrence of delim in s.
func stripAroundDelimiter(s string, delim rune) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == ' ' {
			// Skip a space if it is adjacent to delim on either side.
			prevIsDelim := i > 0 && runes[i-1] == delim
			nextIsDelim := i+1 < len(runes) && runes[i+1] == delim
			if prevIsDelim || nextIsDelim {
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitSteps splits a normalized definition on "|" and discards empty
// segments.
func splitSteps(normalized string) []string {
	var out []string
	for _, part := range strings.Split(normalized, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// parseStep tokenizes a single step's text into its method id, modifier
// flags, and keyed/bare parameters.
func parseStep(text string) Step {
	tokens := strings.Fields(text)
	params := map[string]string{}

	remaining := tokens[:0:0]
	for _, tok := range tokens {
		if modifiers[tok] {
			params[tok] = ""
			continue
		}
		remaining = append(remaining, tok)
	}

	if len(remaining) > 0 {
		params["_name"] = remaining[0]
		remaining = remaining[1:]
	}

	for _, tok := range remaining {
		if key, value, ok := strings.Cut(tok, "="); ok {
			params[key] = value
		} else {
			params[tok] = ""
		}
	}

	return Step{Text: text, Parameters: params}
}
