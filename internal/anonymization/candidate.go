package anonymization

import (
	"encoding/hex"
	"math"
	"strings"

	"github.com/jonathan/talentbridge/internal/techstack"
	"github.com/jonathan/talentbridge/internal/types"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// NotSpecified is shown for any attribute the candidate has not provided.
	NotSpecified = "Nicht angegeben"

	// DisplayIDPrefix prefixes every anonymous candidate token.
	DisplayIDPrefix = "Kandidat #"

	displayIDLength = 8
	salaryBucket    = 10000
	regionSuffix    = " Area"
)

var salaryPrinter = message.NewPrinter(language.English)

// Experience buckets years of experience into a disclosure-safe range.
func Experience(years *float64) string {
	if years == nil {
		return NotSpecified
	}

	switch y := *years; {
	case y < 2:
		return "0-2 Jahre"
	case y < 5:
		return "3-5 Jahre"
	case y < 10:
		return "5-10 Jahre"
	default:
		return "10+ Jahre"
	}
}

// Salary floors the expected salary to its 10,000 bucket and reports the bucket,
// e.g. 55000 -> "€50,000 - €60,000".
func Salary(amount *float64) string {
	if amount == nil {
		return NotSpecified
	}

	floor := int64(math.Floor(*amount/salaryBucket)) * salaryBucket
	return salaryPrinter.Sprintf("€%d - €%d", floor, floor+salaryBucket)
}

// Region keeps only the city part of a location and widens it to an area.
func Region(city *string) string {
	location := deref(city)
	if location == "" {
		return NotSpecified
	}

	token, _, _ := strings.Cut(location, ",")
	token = strings.TrimSpace(token)
	if token == "" {
		return NotSpecified
	}
	return token + regionSuffix
}

// DisplayID derives the anonymous display token from the first eight characters of a
// submission or candidate identifier. The token is reproducible from the identifier
// and is not a secret.
func DisplayID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return strings.TrimSuffix(DisplayIDPrefix, " #")
	}

	runes := []rune(id)
	if len(runes) > displayIDLength {
		runes = runes[:displayIDLength]
	}
	return DisplayIDPrefix + strings.ToUpper(string(runes))
}

// KeyedDisplayID derives the token from a keyed BLAKE2b hash of the identifier so it
// cannot be recomputed without the key. An empty or oversized key falls back to DisplayID.
func KeyedDisplayID(id string, key []byte) string {
	id = strings.TrimSpace(id)
	if id == "" || len(key) == 0 {
		return DisplayID(id)
	}

	h, err := blake2b.New256(key)
	if err != nil {
		return DisplayID(id)
	}
	_, _ = h.Write([]byte(id))
	sum := h.Sum(nil)

	return DisplayIDPrefix + strings.ToUpper(hex.EncodeToString(sum[:displayIDLength/2]))
}

// Candidate builds the disclosure-safe view of a candidate. The real name is used only
// when revealed is set and a name is known.
func Candidate(c types.Candidate, name string, revealed bool) types.AnonymizedCandidate {
	name = strings.TrimSpace(name)
	display := DisplayID(c.ID)
	if revealed && name != "" {
		display = name
	}

	return types.AnonymizedCandidate{
		DisplayName: display,
		Experience:  Experience(c.ExperienceYears),
		SalaryRange: Salary(c.ExpectedSalary),
		Region:      Region(c.City),
		Skills:      techstack.NormalizeAll(c.Skills),
		Revealed:    revealed && name != "",
	}
}
