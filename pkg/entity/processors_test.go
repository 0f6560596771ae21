package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cdsMatcher treats candidates sharing a cds_code attribute as one school.
type cdsMatcher struct{}

func (cdsMatcher) SameEntity(a, b Candidate) bool {
	code := a.Attributes["cds_code"]
	return code != "" && code == b.Attributes["cds_code"]
}

func TestMatcherFor_PrefixSelection(t *testing.T) {
	m := cdsMatcher{}
	RegisterMatcher("education", m)
	t.Cleanup(func() {
		matcherMu.Lock()
		delete(matchers, "education")
		matcherMu.Unlock()
	})

	assert.Equal(t, m, MatcherFor("education"))
	assert.Equal(t, m, MatcherFor("education.private_schools"))
	assert.Nil(t, MatcherFor("healthcare.clinics"))
	assert.Nil(t, MatcherFor(""))
}

func TestResolve_DomainMatcher(t *testing.T) {
	now := time.Now()
	// Different display names, same state registry code, no unique
	// identifier: the domain matcher merges them where name comparison
	// would not.
	cands := []Candidate{
		{Name: "St. Mary Academy", Attributes: map[string]string{"cds_code": "123"}, Confidence: 0.9, TaskID: "t1", ObservedAt: now},
		{Name: "Saint Mary's", Attributes: map[string]string{"cds_code": "123"}, Confidence: 0.8, TaskID: "t1", ObservedAt: now},
	}

	byName := Resolve(cands, nil, now)
	require.Len(t, byName, 2)

	byCode := Resolve(cands, cdsMatcher{}, now)
	require.Len(t, byCode, 1)
	assert.True(t, strings.Contains(byCode[0].Name, "Mary"))
	assert.Equal(t, []string{"t1"}, byCode[0].SourceTasks)
}
