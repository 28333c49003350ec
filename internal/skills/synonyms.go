package skills

import (
	"sort"
	"strings"
)

// canonicalNames rewrites extracted spellings to one canonical token.
var canonicalNames = map[string]string{
	"js":         "javascript",
	"ts":         "typescript",
	"golang":     "go",
	"reactjs":    "react",
	"vuejs":      "vue",
	"nodejs":     "node.js",
	"expressjs":  "express.js",
	"mssql":      "sql server",
	"postgres":   "postgresql",
	"aws":        "amazon web services",
	"gcp":        "google cloud platform",
	"k8s":        "kubernetes",
	"repo":       "git",
}

// equivalenceGroups are spellings treated as interchangeable when matching.
var equivalenceGroups = [][]string{
	{"spring", "spring boot", "spring mvc", "spring security", "spring framework"},
	{"node.js", "nodejs", "node"},
	{"mysql", "mariadb"},
	{"postgresql", "postgres"},
	{"sql server", "mssql", "microsoft sql server"},
	{"mongodb", "mongo"},
	{".net", "dotnet", "asp.net", "aspnet"},
	{"react", "reactjs", "react.js"},
	{"angular", "angularjs", "angular.js"},
	{"vue", "vuejs", "vue.js"},
	{"junit", "junit5", "junit 5"},
	{"testng", "test ng"},
	{"aws", "amazon web services"},
	{"gcp", "google cloud platform", "google cloud"},
	{"git", "gitlab", "github"},
	{"maven", "mvn"},
	{"gradle", "gradle build"},
	{"rest api", "rest", "restful api", "restful"},
	{"graphql", "graph ql"},
	{"microservices", "microservice", "micro services"},
	{"rabbitmq", "rabbit mq"},
	{"apache kafka", "kafka"},
}

// SynonymTable resolves skill spellings to canonical names and equivalence classes.
// It is built once and only read afterwards.
type SynonymTable struct {
	canonical map[string]string
	class     map[string]int
}

var defaultSynonyms = newSynonymTable(canonicalNames, equivalenceGroups)

// DefaultSynonyms returns the built-in synonym table.
func DefaultSynonyms() *SynonymTable {
	return defaultSynonyms
}

// newSynonymTable merges the equivalence groups with the canonical-name pairs.
// Groups that share a spelling collapse into one class.
func newSynonymTable(canonical map[string]string, groups [][]string) *SynonymTable {
	parent := map[string]string{}
	var find func(string) string
	find = func(s string) string {
		p, ok := parent[s]
		if !ok {
			parent[s] = s
			return s
		}
		if p == s {
			return s
		}
		root := find(p)
		parent[s] = root
		return root
	}
	union := func(a, b string) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		// Lexical order keeps the root choice deterministic.
		if ra < rb {
			parent[rb] = ra
		} else {
			parent[ra] = rb
		}
	}

	t := &SynonymTable{
		canonical: make(map[string]string, len(canonical)),
		class:     map[string]int{},
	}
	for from, to := range canonical {
		from, to = NormalizeSkill(from), NormalizeSkill(to)
		t.canonical[from] = to
		union(from, to)
	}
	for _, group := range groups {
		first := NormalizeSkill(group[0])
		find(first)
		for _, s := range group[1:] {
			union(first, NormalizeSkill(s))
		}
	}

	roots := map[string]int{}
	members := make([]string, 0, len(parent))
	for s := range parent {
		members = append(members, s)
	}
	sort.Strings(members)
	for _, s := range members {
		root := find(s)
		id, ok := roots[root]
		if !ok {
			id = len(roots) + 1
			roots[root] = id
		}
		t.class[s] = id
	}
	return t
}

// Canonical returns the canonical spelling of skill, or the normalized skill itself.
func (t *SynonymTable) Canonical(skill string) string {
	skill = NormalizeSkill(skill)
	if c, ok := t.canonical[skill]; ok {
		return c
	}
	return skill
}

// Equivalent reports whether a and b belong to the same equivalence class.
func (t *SynonymTable) Equivalent(a, b string) bool {
	ca, ok := t.class[NormalizeSkill(a)]
	if !ok {
		return false
	}
	cb, ok := t.class[NormalizeSkill(b)]
	return ok && ca == cb
}

// NormalizeSkill lowercases a skill and collapses inner whitespace.
func NormalizeSkill(skill string) string {
	return strings.Join(strings.Fields(strings.ToLower(skill)), " ")
}
