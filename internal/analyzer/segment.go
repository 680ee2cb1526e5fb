package analyzer

import (
	"strings"
	"unicode"
)

// Passage is a contiguous span of document text used as the unit of
// scoring and display. Index is stable for the lifetime of one analysis.
type Passage struct {
	Index int
	Text  string
	Score float64
}

// Token is a single word with its raw surface form (for display) and a
// normalized lowercase form (for matching).
type Token struct {
	Raw           string
	Norm          string
	Passage       int
	SentenceStart bool
}

// Segment splits text into passages and tokens. Passages are blank-line
// delimited paragraphs; paragraphs longer than maxLen are further split at
// sentence boundaries. A single sentence longer than maxLen stays whole.
// Empty text yields empty slices.
func Segment(text string, maxLen int) ([]Passage, []Token) {
	if maxLen <= 0 {
		maxLen = DefaultMaxPassageLength
	}

	var passages []Passage
	var tokens []Token

	for _, block := range splitParagraphs(text) {
		for _, span := range splitOversized(block, maxLen) {
			idx := len(passages)
			passages = append(passages, Passage{Index: idx, Text: span})
			tokens = append(tokens, tokenize(span, idx)...)
		}
	}

	return passages, tokens
}

// splitParagraphs splits text into blank-line delimited blocks with
// whitespace collapsed to single spaces.
func splitParagraphs(text string) []string {
	var blocks []string
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		block := strings.Join(current, " ")
		current = current[:0]
		if fields := strings.Fields(block); len(fields) > 0 {
			blocks = append(blocks, strings.Join(fields, " "))
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

// splitOversized breaks a paragraph into sentence-packed spans of at most
// maxLen characters each.
func splitOversized(block string, maxLen int) []string {
	if len(block) <= maxLen {
		return []string{block}
	}

	var spans []string
	var current strings.Builder

	for _, sentence := range splitSentences(block) {
		if current.Len() > 0 && current.Len()+1+len(sentence) > maxLen {
			spans = append(spans, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(sentence)
	}
	if current.Len() > 0 {
		spans = append(spans, current.String())
	}

	return spans
}

// splitSentences splits at '.', '!' or '?' followed by whitespace and a
// capital letter. Abbreviations mid-sentence survive because the next
// character is rarely an uppercase letter after whitespace.
func splitSentences(s string) []string {
	var out []string
	runes := []rune(s)
	start := 0

	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 || j >= len(runes) {
			continue
		}
		if !unicode.IsUpper(runes[j]) {
			continue
		}
		if sentence := strings.TrimSpace(string(runes[start : i+1])); sentence != "" {
			out = append(out, sentence)
		}
		start = j
		i = j - 1
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		out = append(out, tail)
	}

	return out
}

// tokenize splits a passage into tokens, stripping surrounding punctuation
// and marking sentence starts.
func tokenize(span string, passage int) []Token {
	var tokens []Token
	sentenceStart := true

	for _, field := range strings.Fields(span) {
		raw := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if raw != "" {
			tokens = append(tokens, Token{
				Raw:           raw,
				Norm:          strings.ToLower(raw),
				Passage:       passage,
				SentenceStart: sentenceStart,
			})
			sentenceStart = false
		}
		if endsSentence(field) {
			sentenceStart = true
		}
	}

	return tokens
}

// endsSentence reports whether a whitespace-split field terminates a
// sentence, ignoring trailing closing quotes and brackets.
func endsSentence(field string) bool {
	trimmed := strings.TrimRight(field, "\"')]}”’»")
	if trimmed == "" {
		return false
	}
	switch trimmed[len(trimmed)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

// StripGutenberg removes the Project Gutenberg header and footer from an
// e-text, returning the text unchanged if no markers are found.
func StripGutenberg(text string) string {
	lines := strings.Split(text, "\n")
	start := 0
	end := len(lines)

	for i, line := range lines {
		if strings.Contains(line, "*** START OF") ||
			strings.Contains(line, "***START OF") ||
			strings.Contains(line, "*END*THE SMALL PRINT") {
			start = i + 1
			break
		}
	}

	for i := len(lines) - 1; i >= start; i-- {
		if strings.Contains(lines[i], "*** END OF") ||
			strings.Contains(lines[i], "***END OF") ||
			strings.Contains(lines[i], "End of Project Gutenberg") ||
			strings.Contains(lines[i], "End of the Project Gutenberg") {
			end = i
			break
		}
	}

	if start >= end {
		return text
	}

	return strings.Join(lines[start:end], "\n")
}
