// Package analyzer implements the book text analysis pipeline: it extracts
// ranked candidate entities (characters, places, things), scores passages
// against an impact lexicon to build a synopsis, and selects a random
// "easter egg" passage. The heuristics are purely lexical (capitalization,
// dictionary exclusion, keyword matching); there is no language model or
// grammar-aware parsing involved.
package analyzer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Defaults for tunable options. Zero-valued options fall back to these.
const (
	DefaultMaxEntities      = 10
	DefaultMaxSynopsis      = 5
	DefaultMaxPassageLength = 400
)

var (
	// ErrInvalidText is returned when the input is not valid UTF-8.
	ErrInvalidText = errors.New("text is not valid UTF-8")

	// ErrInvalidOptions is returned for out-of-range options when Strict
	// is set. Without Strict, invalid options fall back to defaults.
	ErrInvalidOptions = errors.New("invalid options")
)

// MatchMode selects how a needle is matched against passage text.
type MatchMode int

const (
	// MatchDefault lets each component pick its own default: substring for
	// entity mentions, whole-word for lexicon keywords.
	MatchDefault MatchMode = iota
	MatchSubstring
	MatchWholeWord
)

// ParseMatchMode converts a configuration string to a MatchMode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return MatchDefault, nil
	case "substring":
		return MatchSubstring, nil
	case "word", "whole-word", "wholeword":
		return MatchWholeWord, nil
	}
	return MatchDefault, fmt.Errorf("unknown match mode %q", s)
}

// Options holds the tunable analysis parameters. The zero value selects
// all defaults.
type Options struct {
	// MaxEntities bounds the ranked entity list (default 10).
	MaxEntities int

	// MaxSynopsis bounds the synopsis passage list (default 5).
	MaxSynopsis int

	// MaxPassageLength caps passage length in characters before paragraphs
	// are split at sentence boundaries (default 400).
	MaxPassageLength int

	// CommonWords replaces the built-in common word list when non-nil.
	CommonWords []string

	// ImpactLexicon replaces the built-in impact lexicon when non-nil.
	ImpactLexicon []string

	// EntityMatch controls entity mention matching in the easter egg
	// predicate (default substring).
	EntityMatch MatchMode

	// LexiconMatch controls keyword matching in passage scoring
	// (default whole-word).
	LexiconMatch MatchMode

	// Rand is the randomness source for easter egg selection. Nil selects
	// the shared math/rand source.
	Rand Rand

	// Strict makes out-of-range options an error instead of silently
	// falling back to defaults.
	Strict bool
}

// normalize applies defaults. With Strict set, out-of-range values return
// ErrInvalidOptions instead.
func (o Options) normalize() (Options, error) {
	var bad []string

	if o.MaxEntities < 0 {
		bad = append(bad, "MaxEntities")
		o.MaxEntities = 0
	}
	if o.MaxEntities == 0 {
		o.MaxEntities = DefaultMaxEntities
	}

	if o.MaxSynopsis < 0 {
		bad = append(bad, "MaxSynopsis")
		o.MaxSynopsis = 0
	}
	if o.MaxSynopsis == 0 {
		o.MaxSynopsis = DefaultMaxSynopsis
	}

	if o.MaxPassageLength < 0 {
		bad = append(bad, "MaxPassageLength")
		o.MaxPassageLength = 0
	}
	if o.MaxPassageLength == 0 {
		o.MaxPassageLength = DefaultMaxPassageLength
	}

	if o.EntityMatch < MatchDefault || o.EntityMatch > MatchWholeWord {
		bad = append(bad, "EntityMatch")
		o.EntityMatch = MatchDefault
	}
	if o.EntityMatch == MatchDefault {
		o.EntityMatch = MatchSubstring
	}

	if o.LexiconMatch < MatchDefault || o.LexiconMatch > MatchWholeWord {
		bad = append(bad, "LexiconMatch")
		o.LexiconMatch = MatchDefault
	}
	if o.LexiconMatch == MatchDefault {
		o.LexiconMatch = MatchWholeWord
	}

	if o.Rand == nil {
		o.Rand = systemRand{}
	}

	if len(bad) > 0 && o.Strict {
		return o, fmt.Errorf("%w: %s", ErrInvalidOptions, strings.Join(bad, ", "))
	}
	return o, nil
}

// EntityDetail describes one ranked entity: its surface name, occurrence
// count, distinct passage spread and the earliest passage mentioning it.
type EntityDetail struct {
	Name        string `json:"name"`
	Occurrences int    `json:"occurrences"`
	Passages    int    `json:"passages"`
	Sample      string `json:"sample,omitempty"`
}

// Result is the output of one analysis. EasterEgg is empty when no passage
// qualifies, which is a normal outcome, not an error.
type Result struct {
	Entities     []string       `json:"entities"`
	Details      []EntityDetail `json:"entity_details"`
	Synopsis     []string       `json:"synopsis"`
	EasterEgg    string         `json:"easter_egg,omitempty"`
	CharCount    int            `json:"char_count"`
	PassageCount int            `json:"passage_count"`
}

// Analyzer runs the analysis pipeline with a fixed set of options. It holds
// no per-call state and is safe for concurrent use across documents.
type Analyzer struct {
	opts    Options
	filter  *CommonWordFilter
	lexicon []string
}

// New creates an Analyzer. It fails only when Strict is set and an option
// is out of range.
func New(opts Options) (*Analyzer, error) {
	normalized, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	lexicon := normalized.ImpactLexicon
	if lexicon == nil {
		lexicon = defaultImpactLexicon
	}
	return &Analyzer{
		opts:    normalized,
		filter:  NewCommonWordFilter(normalized.CommonWords),
		lexicon: lexicon,
	}, nil
}

// Analyze is a convenience wrapper for one-shot use.
func Analyze(text string, opts Options) (Result, error) {
	a, err := New(opts)
	if err != nil {
		return Result{}, err
	}
	return a.Analyze(text)
}

// Analyze runs the full pipeline over text. A sparse or empty document
// produces a smaller (possibly empty) result rather than an error; the only
// input failure is text that is not valid UTF-8.
func (a *Analyzer) Analyze(text string) (Result, error) {
	if !utf8.ValidString(text) {
		return Result{}, ErrInvalidText
	}

	result := Result{
		Entities: []string{},
		Details:  []EntityDetail{},
		Synopsis: []string{},
	}
	if strings.TrimSpace(text) == "" {
		return result, nil
	}

	passages, tokens := Segment(text, a.opts.MaxPassageLength)
	result.CharCount = utf8.RuneCountInString(text)
	result.PassageCount = len(passages)

	entities := ExtractEntities(tokens, a.filter, a.opts.MaxEntities)
	for _, e := range entities {
		result.Entities = append(result.Entities, e.Name)
		result.Details = append(result.Details, entityDetail(e, passages))
	}

	for _, p := range ScorePassages(passages, a.lexicon, a.opts.LexiconMatch, a.opts.MaxSynopsis) {
		result.Synopsis = append(result.Synopsis, p.Text)
	}

	if egg, ok := SelectEasterEgg(passages, entities, a.opts.EntityMatch, a.opts.Rand); ok {
		result.EasterEgg = egg.Text
	}

	return result, nil
}

func entityDetail(e Entity, passages []Passage) EntityDetail {
	earliest := -1
	for idx := range e.Passages {
		if earliest < 0 || idx < earliest {
			earliest = idx
		}
	}
	sample := ""
	if earliest >= 0 && earliest < len(passages) {
		sample = passages[earliest].Text
	}
	return EntityDetail{
		Name:        e.Name,
		Occurrences: e.Count,
		Passages:    len(e.Passages),
		Sample:      sample,
	}
}
