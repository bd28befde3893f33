// Package anonymization derives identity-concealing descriptions of companies and
// candidates for the triple-blind disclosure model. Every function is total: missing
// attributes fall back to a label instead of failing.
package anonymization

import (
	"strings"

	"github.com/jonathan/talentbridge/internal/types"
)

const (
	// FallbackCompany replaces a missing industry.
	FallbackCompany = "Unternehmen"
	// redactedDescriptor is returned when every other rendering would still leak the name.
	redactedDescriptor = "[" + FallbackCompany + "]"

	maxTechEntries = 3
	partSeparator  = " | "
)

var sizeLabels = map[types.SizeBand]string{
	types.Size1To10:     "1-10 MA",
	types.Size11To50:    "11-50 MA",
	types.Size51To200:   "51-200 MA",
	types.Size201To500:  "201-500 MA",
	types.Size501To1000: "501-1.000 MA",
	types.Size1001To5K:  "1.001-5.000 MA",
	types.Size5KPlus:    "5.000+ MA",
}

var fundingLabels = map[types.FundingStage]string{
	types.FundingBootstrapped:  "Bootstrapped",
	types.FundingSeed:          "Seed",
	types.FundingSeriesA:       "Series A",
	types.FundingSeriesB:       "Series B",
	types.FundingSeriesC:       "Series C+",
	types.FundingPrivateEquity: "PE-finanziert",
	types.FundingPublic:        "Börsennotiert",
}

var remoteLabels = map[types.RemoteType]string{
	types.RemoteFull:   "Remote",
	types.RemoteHybrid: "Hybrid",
	types.RemoteOnsite: "Vor Ort",
}

var urgencyLabels = map[types.Urgency]string{
	types.UrgencyHigh:   "Hohe Priorität",
	types.UrgencyUrgent: "Dringend",
}

// CompanyDescriptor returns the real company name when revealed is set and a name is
// known. Otherwise it returns a bracketed descriptor such as
// "[FinTech | 51-200 MA | Series A | React/Node.js/AWS | Hybrid, Berlin | Dringend]".
// Absent attributes are omitted; parts that would contain the real name are dropped.
func CompanyDescriptor(attrs types.CompanyAttributes, revealed bool) string {
	name := strings.TrimSpace(attrs.Name)
	if revealed && name != "" {
		return name
	}

	leaks := func(s string) bool { return containsName(s, name) }

	parts := make([]string, 0, 6)

	industry := deref(attrs.Industry)
	if industry == "" || leaks(industry) {
		industry = FallbackCompany
	}
	parts = append(parts, industry)

	if attrs.SizeBand != "" {
		parts = append(parts, labelOr(sizeLabels, attrs.SizeBand))
	}
	if attrs.FundingStage != "" {
		parts = append(parts, labelOr(fundingLabels, attrs.FundingStage))
	}
	if tech := techSummary(attrs.TechStack); tech != "" {
		parts = append(parts, tech)
	}
	if workModel := workModelSummary(attrs.RemoteType, deref(attrs.City)); workModel != "" {
		parts = append(parts, workModel)
	}
	if attrs.Urgency != "" && attrs.Urgency != types.UrgencyStandard {
		parts = append(parts, labelOr(urgencyLabels, attrs.Urgency))
	}

	kept := parts[:0]
	for _, part := range parts {
		if !leaks(part) {
			kept = append(kept, part)
		}
	}

	descriptor := "[" + strings.Join(kept, partSeparator) + "]"
	if leaks(descriptor) {
		if leaks(redactedDescriptor) {
			return ""
		}
		return redactedDescriptor
	}
	return descriptor
}

// CompanyIndustryLabel is IndustryLabel for a known company. Unless revealed, an
// industry naming the company is replaced and a label that still contains the name
// collapses to the empty string.
func CompanyIndustryLabel(attrs types.CompanyAttributes, revealed bool) string {
	name := strings.TrimSpace(attrs.Name)
	if revealed {
		return IndustryLabel(attrs.Industry)
	}

	label := IndustryLabel(attrs.Industry)
	if containsName(deref(attrs.Industry), name) {
		label = "[" + FallbackCompany + "]"
	}
	if containsName(label, name) {
		return ""
	}
	return label
}

// IndustryLabel is the single-field variant: "[FinTech] Unternehmen" or "[Unternehmen]".
func IndustryLabel(industry *string) string {
	value := deref(industry)
	if value == "" {
		return "[" + FallbackCompany + "]"
	}
	return "[" + value + "] " + FallbackCompany
}

func techSummary(stack []string) string {
	entries := make([]string, 0, maxTechEntries)
	for _, tech := range stack {
		if len(entries) == maxTechEntries {
			break
		}
		if tech = strings.TrimSpace(tech); tech != "" {
			entries = append(entries, tech)
		}
	}
	return strings.Join(entries, "/")
}

func workModelSummary(remote types.RemoteType, city string) string {
	model := ""
	if remote != "" {
		model = labelOr(remoteLabels, remote)
	}

	switch {
	case model != "" && city != "":
		return model + ", " + city
	case model != "":
		return model
	default:
		return city
	}
}

func labelOr[K ~string](labels map[K]string, key K) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return string(key)
}

func containsName(s, name string) bool {
	return name != "" && strings.Contains(strings.ToLower(s), strings.ToLower(name))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
