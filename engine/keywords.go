// Package engine implements the deterministic scan pipeline: parsing,
// analysis, matching, skill-gap classification and rewrite suggestions.
// Every stage is a pure function over its inputs.
package engine

import (
	"sort"
	"strings"
	"unicode"
)

// stopWords filters common English words that add noise to keyword matching.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "high": true,
	"good": true, "able": true, "get": true, "set": true, "such": true,
	"years": true, "experience": true, "strong": true, "skills": true,
}

// synonymGroups lists terms treated as semantically equivalent. The first
// entry of each group is the canonical form.
var synonymGroups = [][]string{
	{"go", "golang"},
	{"javascript", "js", "ecmascript"},
	{"typescript", "ts"},
	{"kubernetes", "k8s"},
	{"postgresql", "postgres"},
	{"aws", "amazon web services"},
	{"gcp", "google cloud", "google cloud platform"},
	{"azure", "microsoft azure"},
	{"node.js", "nodejs", "node"},
	{"react", "reactjs", "react.js"},
	{"vue", "vuejs", "vue.js"},
	{"angular", "angularjs"},
	{"machine learning", "ml"},
	{"artificial intelligence", "ai"},
	{"ci/cd", "cicd", "continuous integration", "continuous delivery"},
	{"rest", "restful", "rest api", "rest apis"},
	{"sql server", "mssql"},
	{"mongodb", "mongo"},
	{"elasticsearch", "elastic"},
	{"terraform", "iac"},
	{"c#", "csharp"},
	{"c++", "cpp"},
	{"python", "python3"},
	{"communication", "communication skills"},
	{"leadership", "team leadership"},
}

// canonical maps every variant (lowercased) to its group's canonical form.
var canonical = func() map[string]string {
	m := make(map[string]string)
	for _, group := range synonymGroups {
		for _, v := range group {
			m[v] = group[0]
		}
	}
	return m
}()

// Canonicalize lowercases a term and collapses known synonyms to one form
func Canonicalize(term string) string {
	t := strings.ToLower(strings.TrimSpace(term))
	if c, ok := canonical[t]; ok {
		return c
	}
	return t
}

// synonymsOf returns all variants sharing the term's canonical form,
// excluding the term itself.
func synonymsOf(term string) []string {
	c := Canonicalize(term)
	for _, group := range synonymGroups {
		if group[0] != c {
			continue
		}
		variants := make([]string, 0, len(group))
		for _, v := range group {
			if v != strings.ToLower(term) {
				variants = append(variants, v)
			}
		}
		return variants
	}
	return nil
}

// shortTechTokens are sub-3-rune tokens that still carry signal
var shortTechTokens = map[string]bool{
	"go": true, "c#": true, "js": true, "ts": true, "ai": true,
	"ml": true, "qa": true, "c++": true,
}

// Tokenize splits text into lowercase keyword tokens (>= 3 runes, stop words
// removed). Tech suffixes like "c++", "c#" and "node.js" survive because
// + # . count as word characters.
func Tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if (len([]rune(w)) >= 3 || shortTechTokens[w]) && !stopWords[w] {
			tokens[w] = true
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// TermMatch reports whether a term is evidenced in the resume corpus.
// Exact means the full term (or its tokens) appears verbatim; semantic means
// a known synonym of the term appears. Returns the matched surface form.
func TermMatch(term string, corpusTokens map[string]bool, corpusLower string) (matched string, semantic bool, ok bool) {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return "", false, false
	}

	// Substring matching is only safe for multiword terms; single tokens
	// must match on word boundaries ("go" never matches "good").
	evidenced := func(s string) bool {
		if corpusTokens[s] {
			return true
		}
		return strings.ContainsAny(s, " /") && strings.Contains(corpusLower, s)
	}

	if evidenced(t) {
		return t, false, true
	}

	for _, v := range synonymsOf(t) {
		if evidenced(v) {
			return v, true, true
		}
	}

	return "", false, false
}

// TopKeywords returns the most frequent non-stop-word tokens of a text,
// longest-streak-of-occurrences first, capped at limit.
func TopKeywords(text string, limit int) []string {
	counts := make(map[string]int)
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) >= 3 && !stopWords[w] {
			counts[w]++
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	keywords := make([]string, 0, len(counts))
	for k := range counts {
		keywords = append(keywords, k)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})
	if len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}
