package llm

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// FieldKind is the JSON type of an output field.
type FieldKind int

const (
	KindString     FieldKind = iota // JSON string
	KindStringList                  // JSON array of strings
)

// Field is one required property of the JSON object the model must return.
type Field struct {
	Name        string
	Kind        FieldKind
	Description string
}

// Request is a structured-output call: an instruction, the fields of the expected JSON
// object, extra rules and the input text.
type Request struct {
	Instruction string
	Fields      []Field
	Rules       []string
	Input       string
}

// Prompt renders the request as a single German prompt. The input is fenced so that
// instructions inside a CV are read as data.
func (r Request) Prompt() string {
	var sb strings.Builder

	sb.WriteString(strings.TrimSpace(r.Instruction))
	sb.WriteString("\n\nAntworte ausschließlich mit einem JSON-Objekt mit genau diesen Feldern:\n")
	for _, f := range r.Fields {
		fmt.Fprintf(&sb, "- %q (%s): %s\n", f.Name, f.Kind.label(), f.Description)
	}

	sb.WriteString("\nRegeln:\n")
	sb.WriteString("- Verwende nur Informationen aus dem Text und erfinde nichts.\n")
	for _, rule := range r.Rules {
		if rule = strings.TrimSpace(rule); rule != "" {
			fmt.Fprintf(&sb, "- %s\n", rule)
		}
	}
	sb.WriteString("- Kein Markdown, keine Erklärungen, nur das JSON-Objekt.\n")

	sb.WriteString("\nText:\n<<<\n")
	sb.WriteString(r.Input)
	sb.WriteString("\n>>>\n")

	return sb.String()
}

// responseSchema mirrors the fields as a Gemini response schema so the API enforces
// the object shape.
func (r Request) responseSchema() *genai.Schema {
	schema := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(r.Fields)),
		Required:   make([]string, 0, len(r.Fields)),
	}
	for _, f := range r.Fields {
		prop := &genai.Schema{Type: genai.TypeString, Description: f.Description}
		if f.Kind == KindStringList {
			prop = &genai.Schema{
				Type:        genai.TypeArray,
				Description: f.Description,
				Items:       &genai.Schema{Type: genai.TypeString},
			}
		}
		schema.Properties[f.Name] = prop
		schema.Required = append(schema.Required, f.Name)
	}
	return schema
}

func (k FieldKind) label() string {
	if k == KindStringList {
		return "Liste von Strings"
	}
	return "String"
}
