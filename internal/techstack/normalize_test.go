package techstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"reactjs to React", "reactjs", "React"},
		{"react.js to React", "React.js", "React"},
		{"Vue3 to Vue.js", "Vue3", "Vue.js"},
		{"vuejs to Vue.js", "vuejs", "Vue.js"},
		{"nodejs to Node.js", "NodeJS", "Node.js"},
		{"golang to Go", "golang", "Go"},
		{"k8s to Kubernetes", "K8s", "Kubernetes"},
		{"postgres to PostgreSQL", "postgres", "PostgreSQL"},
		{"javascript is not Java", "JavaScript", "JavaScript"},
		{"java stays Java", "java", "Java"},
		{"react native before react", "React Native", "React Native"},
		{"rails before ruby", "Ruby on Rails", "Ruby on Rails"},
		{"substring match", "AWS Lambda", "AWS"},
		{"unknown is capitalized", "unknownTool", "Unknowntool"},
		{"unknown all caps", "COBOL", "Cobol"},
		{"whitespace trimmed", "  docker  ", "Docker"},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeAll(t *testing.T) {
	result := NormalizeAll([]string{"reactjs", "Vue3", "unknownTool"})
	assert.ElementsMatch(t, []string{"React", "Vue.js", "Unknowntool"}, result)
}

func TestNormalizeAll_DeduplicatesAndSkipsEmpty(t *testing.T) {
	result := NormalizeAll([]string{"react", "", "ReactJS", "react.js", "  ", "Go", "golang"})
	assert.Equal(t, []string{"React", "Go"}, result)
}

func TestNormalizeAll_Empty(t *testing.T) {
	assert.Empty(t, NormalizeAll(nil))
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, entry := range canonicalTable {
		for _, variant := range entry.Variants {
			first := Normalize(variant)
			assert.Equal(t, first, Normalize(variant), "variant %q", variant)
		}
	}
}

func TestCanonicalTable_VariantsAreLowercase(t *testing.T) {
	for _, entry := range canonicalTable {
		for _, variant := range entry.Variants {
			assert.Equal(t, variant, toLowerASCII(variant), "variant %q of %s", variant, entry.Canonical)
		}
	}
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}
