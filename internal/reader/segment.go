package reader

import (
	"regexp"
	"strings"
)

var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]+(\s|$)`)

// Segments splits text into paragraphs on newlines, dropping blank ones.
// With split set, each paragraph is further cut into sentences. A
// paragraph with no sentence terminator stays whole.
func Segments(text string, split bool) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if !split {
			out = append(out, para)
			continue
		}
		out = append(out, Sentences(para)...)
	}
	return out
}

// Sentences returns the sentences of one paragraph, trimmed. Text the
// pattern skips, such as "2." in "2.5 kr.", is joined to the following
// sentence; text after the last terminator becomes a final sentence.
func Sentences(para string) []string {
	locs := sentenceRe.FindAllStringIndex(para, -1)
	if len(locs) == 0 {
		return []string{strings.TrimSpace(para)}
	}
	sentences := make([]string, 0, len(locs)+1)
	prev := 0
	for _, loc := range locs {
		if m := strings.TrimSpace(para[prev:loc[1]]); m != "" {
			sentences = append(sentences, m)
		}
		prev = loc[1]
	}
	if tail := strings.TrimSpace(para[prev:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}
