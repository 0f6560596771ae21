package entity

import (
	"strings"
	"sync"
)

// Domain matchers plug domain-aware identity comparison into resolution. A
// task's domain_hint ("education.private_schools") selects the matcher
// registered under its longest dot-separated prefix; with no match,
// resolution falls back to normalized-name comparison.
var (
	matcherMu sync.RWMutex
	matchers  = map[string]NameMatcher{}
)

// RegisterMatcher registers a matcher for a domain-hint prefix. A later
// registration under the same prefix replaces the earlier one.
func RegisterMatcher(hintPrefix string, m NameMatcher) {
	matcherMu.Lock()
	defer matcherMu.Unlock()
	matchers[hintPrefix] = m
}

// MatcherFor returns the matcher registered under the longest dot-separated
// prefix of hint, or nil when no prefix matches.
func MatcherFor(hint string) NameMatcher {
	if hint == "" {
		return nil
	}
	matcherMu.RLock()
	defer matcherMu.RUnlock()
	for h := hint; h != ""; {
		if m, ok := matchers[h]; ok {
			return m
		}
		i := strings.LastIndex(h, ".")
		if i < 0 {
			break
		}
		h = h[:i]
	}
	return nil
}
