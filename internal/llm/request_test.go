package llm

import (
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() Request {
	return Request{
		Instruction: "Fasse den Lebenslauf zusammen.",
		Fields: []Field{
			{Name: "summary", Kind: KindString, Description: "zwei Sätze"},
			{Name: "bullets", Kind: KindStringList, Description: "Highlights"},
		},
		Rules: []string{"Schreibe auf Deutsch.", "  "},
		Input: "CV TEXT",
	}
}

func TestRequest_Prompt(t *testing.T) {
	prompt := testRequest().Prompt()

	assert.True(t, strings.HasPrefix(prompt, "Fasse den Lebenslauf zusammen.\n\n"))
	assert.Contains(t, prompt, `- "summary" (String): zwei Sätze`)
	assert.Contains(t, prompt, `- "bullets" (Liste von Strings): Highlights`)
	assert.Contains(t, prompt, "- Schreibe auf Deutsch.\n")
	assert.NotContains(t, prompt, "-   \n")
	assert.True(t, strings.HasSuffix(prompt, "<<<\nCV TEXT\n>>>\n"))
}

func TestRequest_ResponseSchema(t *testing.T) {
	schema := testRequest().responseSchema()

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Equal(t, []string{"summary", "bullets"}, schema.Required)

	require.Contains(t, schema.Properties, "summary")
	assert.Equal(t, genai.TypeString, schema.Properties["summary"].Type)

	require.Contains(t, schema.Properties, "bullets")
	bullets := schema.Properties["bullets"]
	assert.Equal(t, genai.TypeArray, bullets.Type)
	require.NotNil(t, bullets.Items)
	assert.Equal(t, genai.TypeString, bullets.Items.Type)
}
