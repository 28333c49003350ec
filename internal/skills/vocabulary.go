// Package skills holds the technical skill vocabulary and synonym tables, and
// provides the skill extractor and the skill matcher built on them.
package skills

import "sort"

// vocabulary lists every recognized skill token, lowercase.
var vocabulary = []string{
	// languages
	"java", "python", "javascript", "typescript", "c++", "c#", "go", "golang", "rust", "kotlin", "scala",
	"php", "ruby", "swift", "dart", "r", "matlab", "perl", "bash", "shell scripting", "powershell",
	"html", "html5", "css", "css3", "sass", "less", "sql", "nosql", "pl/sql", "assembly",

	// frameworks and libraries
	"spring boot", "spring framework", "spring mvc", "spring security", "hibernate", "jpa", "jakarta ee",
	"react", "react.js", "angular", "angularjs", "vue", "vue.js", "next.js", "nuxt.js", "svelte",
	"node.js", "express.js", "nestjs", "django", "flask", "fastapi", "ruby on rails", "laravel", "symfony",
	"asp.net", "asp.net core", "entity framework", "jquery", "bootstrap", "tailwind css", "material ui",
	"flutter", "react native", "ionic", "xamarin", "swing", "javafx",

	// databases and storage
	"mysql", "postgresql", "postgres", "mongodb", "redis", "oracle db", "microsoft sql server", "mssql",
	"sqlite", "mariadb", "cassandra", "elasticsearch", "dynamodb", "neo4j", "couchbase", "firebase",
	"cloud firestore", "realm", "h2",

	// cloud, devops and infrastructure
	"aws", "amazon web services", "azure", "google cloud platform", "gcp", "heroku", "digitalocean",
	"docker", "kubernetes", "k8s", "openshift", "jenkins", "gitlab ci", "github actions", "circleci",
	"travis ci", "terraform", "ansible", "chef", "puppet", "vagrant", "prometheus", "grafana", "elk stack",
	"nginx", "apache tomcat", "linux", "unix", "ubuntu", "centos",

	// tools, testing and methodologies
	"git", "github", "gitlab", "bitbucket", "jira", "confluence", "trello", "asana", "slack",
	"maven", "gradle", "ant", "npm", "yarn", "webpack", "babel",
	"junit", "testng", "mockito", "selenium", "cypress", "jest", "mocha", "cucumber", "postman", "swagger",
	"rest api", "restful api", "graphql", "soap", "json", "xml", "microservices", "agile", "scrum", "kanban",
	"tdd", "bdd", "ci/cd", "oop", "design patterns", "clean code", "solid principles",

	// data, ai and ml
	"machine learning", "deep learning", "artificial intelligence", "data science", "nlp", "computer vision",
	"tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy", "matplotlib", "opencv",
	"apache spark", "hadoop", "apache kafka", "airflow", "tableau", "power bi",
}

// Vocabulary is the read-only set of recognized skill tokens.
type Vocabulary struct {
	terms map[string]bool
	// ordered is sorted so scans produce deterministic output.
	ordered []string
}

var defaultVocabulary = newVocabulary(vocabulary)

func newVocabulary(terms []string) *Vocabulary {
	v := &Vocabulary{terms: make(map[string]bool, len(terms))}
	for _, t := range terms {
		t = NormalizeSkill(t)
		if t == "" || v.terms[t] {
			continue
		}
		v.terms[t] = true
		v.ordered = append(v.ordered, t)
	}
	sort.Strings(v.ordered)
	return v
}

// DefaultVocabulary returns the built-in vocabulary.
func DefaultVocabulary() *Vocabulary {
	return defaultVocabulary
}

// Contains reports whether token is a recognized skill.
func (v *Vocabulary) Contains(token string) bool {
	return v.terms[NormalizeSkill(token)]
}

// Terms returns the vocabulary in sorted order. The slice must not be modified.
func (v *Vocabulary) Terms() []string {
	return v.ordered
}

// Len returns the number of recognized skills.
func (v *Vocabulary) Len() int {
	return len(v.ordered)
}
