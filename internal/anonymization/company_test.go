package anonymization

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/jonathan/talentbridge/internal/types"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCompanyDescriptor(t *testing.T) {
	tests := []struct {
		name     string
		attrs    types.CompanyAttributes
		revealed bool
		expected string
	}{
		{
			name: "all attributes",
			attrs: types.CompanyAttributes{
				Name:         "Acme Payments GmbH",
				Industry:     strPtr("FinTech"),
				SizeBand:     types.Size51To200,
				FundingStage: types.FundingSeriesA,
				TechStack:    []string{"React", "Node.js", "AWS", "Kafka"},
				City:         strPtr("Berlin"),
				RemoteType:   types.RemoteHybrid,
				Urgency:      types.UrgencyUrgent,
			},
			expected: "[FinTech | 51-200 MA | Series A | React/Node.js/AWS | Hybrid, Berlin | Dringend]",
		},
		{
			name:     "nothing but a name",
			attrs:    types.CompanyAttributes{Name: "Acme"},
			expected: "[Unternehmen]",
		},
		{
			name: "standard urgency omitted",
			attrs: types.CompanyAttributes{
				Industry: strPtr("E-Commerce"),
				Urgency:  types.UrgencyStandard,
			},
			expected: "[E-Commerce]",
		},
		{
			name: "city without work model",
			attrs: types.CompanyAttributes{
				City: strPtr("München"),
			},
			expected: "[Unternehmen | München]",
		},
		{
			name: "work model without city",
			attrs: types.CompanyAttributes{
				RemoteType: types.RemoteFull,
			},
			expected: "[Unternehmen | Remote]",
		},
		{
			name: "unknown categorical values pass through",
			attrs: types.CompanyAttributes{
				SizeBand:     "2-3",
				FundingStage: "grant",
			},
			expected: "[Unternehmen | 2-3 | grant]",
		},
		{
			name: "blank tech entries skipped",
			attrs: types.CompanyAttributes{
				TechStack: []string{"", "Go", " ", "Rust"},
			},
			expected: "[Unternehmen | Go/Rust]",
		},
		{
			name: "revealed returns name",
			attrs: types.CompanyAttributes{
				Name:     "Acme",
				Industry: strPtr("FinTech"),
			},
			revealed: true,
			expected: "Acme",
		},
		{
			name: "revealed without name falls back to descriptor",
			attrs: types.CompanyAttributes{
				Industry: strPtr("FinTech"),
			},
			revealed: true,
			expected: "[FinTech]",
		},
		{
			name: "industry containing the name is replaced",
			attrs: types.CompanyAttributes{
				Name:     "Zalando",
				Industry: strPtr("Zalando Retail"),
				City:     strPtr("Berlin"),
			},
			expected: "[Unternehmen | Berlin]",
		},
		{
			name: "tech entry containing the name is dropped",
			attrs: types.CompanyAttributes{
				Name:      "Stripe",
				TechStack: []string{"Stripe API", "Go"},
			},
			expected: "[Unternehmen]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompanyDescriptor(tt.attrs, tt.revealed))
		})
	}
}

func TestCompanyDescriptor_NeverLeaksName(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	randomWord := func(n int) string {
		out := make([]rune, n)
		for i := range out {
			out[i] = letters[rng.Intn(len(letters))]
		}
		return string(out)
	}

	for i := 0; i < 500; i++ {
		name := randomWord(3 + rng.Intn(8))
		attrs := types.CompanyAttributes{
			Name:         name,
			Industry:     strPtr(randomWord(2) + name + randomWord(2)),
			SizeBand:     types.SizeBand(randomWord(4)),
			FundingStage: types.FundingStage(name),
			TechStack:    []string{name, randomWord(5), strings.ToUpper(name)},
			City:         strPtr(strings.ToLower(name) + " City"),
			RemoteType:   types.RemoteHybrid,
			Urgency:      types.Urgency(randomWord(3)),
		}

		descriptor := CompanyDescriptor(attrs, false)
		assert.NotContains(t, strings.ToLower(descriptor), strings.ToLower(name), fmt.Sprintf("case %d", i))
		label := CompanyIndustryLabel(attrs, false)
		assert.NotContains(t, strings.ToLower(label), strings.ToLower(name), fmt.Sprintf("label case %d", i))
	}
}

func TestCompanyDescriptor_Idempotent(t *testing.T) {
	attrs := types.CompanyAttributes{
		Name:      "Acme",
		Industry:  strPtr("HealthTech"),
		TechStack: []string{"Python", "GCP"},
	}
	assert.Equal(t, CompanyDescriptor(attrs, false), CompanyDescriptor(attrs, false))
}

func TestIndustryLabel(t *testing.T) {
	assert.Equal(t, "[FinTech] Unternehmen", IndustryLabel(strPtr("FinTech")))
	assert.Equal(t, "[Unternehmen]", IndustryLabel(nil))
	assert.Equal(t, "[Unternehmen]", IndustryLabel(strPtr("  ")))
}

func TestCompanyDescriptor_BracketNames(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"[", ""},
		{"]", ""},
		{"Unternehmen", "[]"},
		{"|", "[" + FallbackCompany + "]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descriptor := CompanyDescriptor(types.CompanyAttributes{Name: tt.name}, false)
			assert.Equal(t, tt.expected, descriptor)
			if descriptor != "" {
				assert.NotContains(t, descriptor, tt.name)
			}
		})
	}
}

func TestCompanyIndustryLabel(t *testing.T) {
	tests := []struct {
		name     string
		attrs    types.CompanyAttributes
		revealed bool
		expected string
	}{
		{"plain industry", types.CompanyAttributes{Name: "Acme", Industry: strPtr("FinTech")}, false, "[FinTech] Unternehmen"},
		{"industry names company", types.CompanyAttributes{Name: "Acme", Industry: strPtr("Acme Payments")}, false, "[Unternehmen]"},
		{"case-insensitive", types.CompanyAttributes{Name: "ACME", Industry: strPtr("acme payments")}, false, "[Unternehmen]"},
		{"revealed keeps industry", types.CompanyAttributes{Name: "Acme", Industry: strPtr("Acme Payments")}, true, "[Acme Payments] Unternehmen"},
		{"no industry", types.CompanyAttributes{Name: "Acme"}, false, "[Unternehmen]"},
		{"name inside fallback", types.CompanyAttributes{Name: "nehmen", Industry: strPtr("FinTech")}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompanyIndustryLabel(tt.attrs, tt.revealed))
		})
	}
}
