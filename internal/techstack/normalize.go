// Package techstack maps free-text technology labels onto a canonical vocabulary
// and groups canonical labels into display buckets.
package techstack

import (
	"strings"
	"unicode"
)

// canonicalEntry maps one canonical label to the lowercase variants that select it.
type canonicalEntry struct {
	Canonical string
	Variants  []string
}

// canonicalTable is matched in order and the first hit wins. Variants match when the
// lowercased input equals them or contains them, so more specific entries must come
// before the entries whose variants they contain (React Native before React,
// JavaScript before Java, Ruby on Rails before Ruby).
var canonicalTable = []canonicalEntry{
	{"React Native", []string{"react native", "react-native", "reactnative"}},
	{"React", []string{"react.js", "reactjs", "react"}},
	{"Next.js", []string{"next.js", "nextjs"}},
	{"Vue.js", []string{"vue.js", "vuejs", "vue"}},
	{"Angular", []string{"angularjs", "angular"}},
	{"Svelte", []string{"sveltekit", "svelte"}},
	{"TypeScript", []string{"typescript"}},
	{"JavaScript", []string{"javascript", "ecmascript"}},
	{"Tailwind CSS", []string{"tailwind"}},
	{"Node.js", []string{"node.js", "nodejs", "node"}},
	{"Django", []string{"django"}},
	{"FastAPI", []string{"fastapi"}},
	{"Flask", []string{"flask"}},
	{"Python", []string{"python"}},
	{"Spring", []string{"spring boot", "springboot", "spring"}},
	{"Kotlin", []string{"kotlin"}},
	{"Java", []string{"java"}},
	{"Go", []string{"golang"}},
	{"Ruby on Rails", []string{"ruby on rails", "rails"}},
	{"Ruby", []string{"ruby"}},
	{"Laravel", []string{"laravel"}},
	{"PHP", []string{"php"}},
	{".NET", []string{".net", "dotnet"}},
	{"C#", []string{"c#", "csharp"}},
	{"Rust", []string{"rust"}},
	{"Scala", []string{"scala"}},
	{"GraphQL", []string{"graphql"}},
	{"AWS", []string{"amazon web services", "aws"}},
	{"GCP", []string{"google cloud", "gcp"}},
	{"Azure", []string{"azure"}},
	{"Docker", []string{"docker"}},
	{"Kubernetes", []string{"kubernetes", "k8s"}},
	{"Terraform", []string{"terraform"}},
	{"Jenkins", []string{"jenkins"}},
	{"GitHub Actions", []string{"github actions"}},
	{"GitLab CI", []string{"gitlab ci", "gitlab-ci"}},
	{"PostgreSQL", []string{"postgresql", "postgres"}},
	{"MySQL", []string{"mysql"}},
	{"MongoDB", []string{"mongodb", "mongo"}},
	{"Redis", []string{"redis"}},
	{"Kafka", []string{"kafka"}},
	{"Elasticsearch", []string{"elasticsearch", "elastic search"}},
	{"Snowflake", []string{"snowflake"}},
	{"Apache Spark", []string{"apache spark", "spark"}},
	{"Airflow", []string{"airflow"}},
	{"Swift", []string{"swiftui", "swift"}},
	{"Flutter", []string{"flutter"}},
	{"Android", []string{"android"}},
	{"TensorFlow", []string{"tensorflow"}},
	{"PyTorch", []string{"pytorch"}},
	{"Pandas", []string{"pandas"}},
	{"scikit-learn", []string{"scikit-learn", "scikit", "sklearn"}},
	{"LangChain", []string{"langchain"}},
}

// Normalize returns the canonical label for a raw technology name. Unknown labels are
// returned with the first letter upper-cased and the rest lower-cased.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	for _, entry := range canonicalTable {
		for _, variant := range entry.Variants {
			if lower == variant || strings.Contains(lower, variant) {
				return entry.Canonical
			}
		}
	}

	return capitalize(lower)
}

// NormalizeAll normalizes every label, drops empty ones and removes duplicates.
// The result keeps first-occurrence order but callers should treat it as a set.
func NormalizeAll(raw []string) []string {
	normalized := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, label := range raw {
		canonical := Normalize(label)
		if canonical == "" || seen[canonical] {
			continue
		}
		seen[canonical] = true
		normalized = append(normalized, canonical)
	}

	return normalized
}

func capitalize(lower string) string {
	runes := []rune(lower)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
