package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluationCommands(t *testing.T) {
	tests := []struct {
		name    string
		command string
		input   string
		extra   []string
		check   func(t *testing.T, out map[string]any)
	}{
		{
			name:    "normalize",
			command: "normalize",
			input:   `{"skills":["reactjs","golang","ReactJS","k8s"]}`,
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, []any{"React", "Go", "Kubernetes"}, out["normalized"])
			},
		},
		{
			name:    "match",
			command: "match",
			input:   `{"candidate_skills":["golang","postgres"],"required":["Go","PostgreSQL","Kafka","AWS"]}`,
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, float64(50), out["score"])
			},
		},
		{
			name:    "anonymize company",
			command: "anonymize-company",
			input:   `{"name":"Acme Payments GmbH","industry":"FinTech","company_size":"51-200","funding_stage":"series_a","tech_stack":["React","Node.js","AWS","Kafka"],"city":"Berlin","remote_type":"hybrid","urgency":"urgent"}`,
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "[FinTech | 51-200 MA | Series A | React/Node.js/AWS | Hybrid, Berlin | Dringend]", out["descriptor"])
			},
		},
		{
			name:    "anonymize company with named industry",
			command: "anonymize-company",
			input:   `{"name":"Acme","industry":"Acme Payments"}`,
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "[Unternehmen]", out["descriptor"])
				assert.Equal(t, "[Unternehmen]", out["industry_label"])
			},
		},
		{
			name:    "anonymize company revealed",
			command: "anonymize-company",
			input:   `{"name":"Acme"}`,
			extra:   []string{"--revealed"},
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "Acme", out["descriptor"])
			},
		},
		{
			name:    "anonymize candidate hides the name",
			command: "anonymize-candidate",
			input:   `{"id":"abcdef123456","skills":["golang"]}`,
			extra:   []string{"--name", "Erika Muster"},
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "Kandidat #ABCDEF12", out["display_name"])
				assert.Equal(t, false, out["revealed"])
			},
		},
		{
			name:    "anonymize candidate revealed",
			command: "anonymize-candidate",
			input:   `{"id":"abcdef123456"}`,
			extra:   []string{"--name", "Erika Muster", "--revealed"},
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "Erika Muster", out["display_name"])
				assert.Equal(t, true, out["revealed"])
			},
		},
		{
			name:    "readiness",
			command: "readiness",
			input:   `{}`,
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, float64(0), out["score"])
				assert.Equal(t, "incomplete", out["level"])
			},
		},
		{
			name:    "company completeness",
			command: "company-completeness",
			input:   `{"name":"Acme","website":"https://acme.example"}`,
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, float64(29), out["score"])
				assert.Equal(t, false, out["complete"])
			},
		},
		{
			name:    "job health",
			command: "job-health",
			input:   `{"candidates":6,"interviews":3,"recruiters":4,"days_open":5}`,
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, float64(100), out["score"])
				assert.Equal(t, "excellent", out["level"])
			},
		},
		{
			name:    "recruiting health without jobs",
			command: "recruiting-health",
			input:   `{"active_jobs":0,"total_candidates":0,"interviews":0,"recruiters":0,"new_candidates_7d":0,"days_active":0}`,
			check: func(t *testing.T, out map[string]any) {
				assert.Nil(t, out["candidates_per_job"])
			},
		},
		{
			name:    "bottlenecks",
			command: "bottlenecks",
			input:   `[{"stage":"screening","hours_in_stage":100},{"stage":"screening","hours_in_stage":80},{"stage":"offer","hours_in_stage":1}]`,
			check: func(t *testing.T, out map[string]any) {
				bottlenecks := out["bottlenecks"].([]any)
				require.NotEmpty(t, bottlenecks)
				assert.Equal(t, "screening", bottlenecks[0].(map[string]any)["stage"])
			},
		},
		{
			name:    "classify",
			command: "classify",
			input:   `{"total":10,"offers_out":1}`,
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "offering", out["stage"])
				assert.Equal(t, "on_track", out["health"])
			},
		},
		{
			name:    "funnel",
			command: "funnel",
			input:   `{"submitted":4,"screening":3,"interview":2,"offer":1}`,
			check: func(t *testing.T, out map[string]any) {
				steps := out["steps"].([]any)
				require.NotEmpty(t, steps)
				assert.Equal(t, float64(10), steps[0].(map[string]any)["reached"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writeFixture(t, "input.json", tt.input)
			outPath := filepath.Join(t.TempDir(), "out.json")

			args := append([]string{tt.command, "--in", in, "--out", outPath}, tt.extra...)
			output, err := run(t, args...)
			require.NoError(t, err, output)

			data, err := os.ReadFile(outPath)
			require.NoError(t, err)

			var out map[string]any
			require.NoError(t, json.Unmarshal(data, &out))
			tt.check(t, out)
		})
	}
}

func TestCommands_InputValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		input       string
		errorString string
	}{
		{
			name:        "missing --in flag",
			args:        []string{"readiness"},
			errorString: "required",
		},
		{
			name:        "negative count",
			args:        []string{"classify"},
			input:       `{"total":-3}`,
			errorString: "invalid input",
		},
		{
			name:        "job input missing field",
			args:        []string{"job-health"},
			input:       `{"candidates":1}`,
			errorString: "days_open",
		},
		{
			name:        "dwell without stage",
			args:        []string{"bottlenecks"},
			input:       `[{"hours_in_stage":3}]`,
			errorString: "stage",
		},
		{
			name:        "unknown company size",
			args:        []string{"anonymize-company"},
			input:       `{"company_size":"huge"}`,
			errorString: "company_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.input != "" {
				args = append(args, "--in", writeFixture(t, "input.json", tt.input))
			}

			output, err := run(t, args...)
			assert.Error(t, err)
			assert.Contains(t, output, tt.errorString)
		})
	}
}

func TestStdoutIsJSON(t *testing.T) {
	in := writeFixture(t, "counts.json", `{"total":0,"paused":true}`)

	cmd := exec.Command(getBinaryPath(t), "classify", "--in", in, "--verbose")
	cmd.Env = []string{"PATH=" + os.Getenv("PATH")}
	stdout, err := cmd.Output()
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(stdout, &out), string(stdout))
	assert.Equal(t, "paused", out["health"])
}

func TestSummarizeCV_RequiresAPIKey(t *testing.T) {
	cv := writeFixture(t, "cv.txt", "Senior Go engineer, 8 years of experience.")

	output, err := run(t, "summarize-cv", "--in", cv)
	assert.Error(t, err)
	assert.Contains(t, output, "API key is required")
}

func TestEnrichCompany_FlagsValidation(t *testing.T) {
	profile := writeFixture(t, "company.json", `{"name":"Acme"}`)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "neither --in nor --company-id",
			args:        []string{"enrich-company"},
			errorString: "at least one of the flags",
		},
		{
			name:        "both --in and --company-id",
			args:        []string{"enrich-company", "--in", profile, "--company-id", "00000000-0000-0000-0000-000000000001"},
			errorString: "were all set",
		},
		{
			name:        "--apply without --company-id",
			args:        []string{"enrich-company", "--in", profile, "--apply"},
			errorString: "--apply requires --company-id",
		},
		{
			name:        "--company-id without database",
			args:        []string{"enrich-company", "--company-id", "00000000-0000-0000-0000-000000000001"},
			errorString: "database.url",
		},
		{
			name:        "profile without website",
			args:        []string{"enrich-company", "--in", profile},
			errorString: "no website",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := run(t, tt.args...)
			assert.Error(t, err)
			assert.Contains(t, output, tt.errorString)
		})
	}
}

func TestTokenCommand(t *testing.T) {
	tests := []struct {
		name        string
		env         []string
		args        []string
		wantError   bool
		errorString string
	}{
		{
			name:        "missing secret",
			args:        []string{"token"},
			wantError:   true,
			errorString: "jwt_secret",
		},
		{
			name:        "client role without client id",
			env:         []string{"JWT_SECRET=0123456789abcdef0123"},
			args:        []string{"token", "--role", "client"},
			wantError:   true,
			errorString: "--client-id is required",
		},
		{
			name:        "unknown role",
			env:         []string{"JWT_SECRET=0123456789abcdef0123"},
			args:        []string{"token", "--role", "owner"},
			wantError:   true,
			errorString: "unknown role",
		},
		{
			name: "recruiter token",
			env:  []string{"JWT_SECRET=0123456789abcdef0123"},
			args: []string{"token"},
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			cmd.Dir = t.TempDir()
			cmd.Env = append([]string{"PATH=" + os.Getenv("PATH")}, tt.env...)
			output, err := cmd.CombinedOutput()

			if tt.wantError {
				assert.Error(t, err)
				assert.Contains(t, string(output), tt.errorString)
				return
			}
			require.NoError(t, err, string(output))
			assert.Len(t, strings.Split(strings.TrimSpace(string(output)), "."), 3)
		})
	}
}
