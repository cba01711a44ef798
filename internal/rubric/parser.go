package rubric

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/pitchlab/callgrader/internal/models"
)

// ParseError reports why a rubric reply could not be decoded. Callers treat
// it as a data-quality signal, not a pipeline failure: the fallback is an
// all-zero rubric.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rubric parse failed: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var trailingObject = regexp.MustCompile(`(?s)\{.*\}`)

// Parse decodes an LLM reply into a normalized RubricOutput. It tries strict
// JSON first, then salvages the trailing {...} block, then gives up and
// returns a zeroed rubric along with a ParseError. The returned output is
// always fully normalized and safe to read.
func Parse(raw string) (models.RubricOutput, error) {
	content := stripMarkdownCodeBlock(raw)

	var out models.RubricOutput
	if err := json.Unmarshal([]byte(content), &out); err == nil {
		Normalize(&out)
		return out, nil
	}

	if block := trailingObject.FindString(content); block != "" {
		if err := json.Unmarshal([]byte(block), &out); err == nil {
			Normalize(&out)
			return out, nil
		}
	}

	out = models.RubricOutput{}
	Normalize(&out)
	return out, &ParseError{Raw: raw, Err: fmt.Errorf("no JSON object found")}
}

// Normalize clamps every sub-score to its documented bounds and replaces nil
// slices with empty ones, so downstream reads never need default-coalescing.
func Normalize(out *models.RubricOutput) {
	out.Discovery = clampInt(out.Discovery, 0, 20)
	out.ObjectionHandling.Overall = clampInt(out.ObjectionHandling.Overall, 0, 20)
	out.ClarityEmpathy = clampInt(out.ClarityEmpathy, 0, 10)
	out.SolutionFraming = clampInt(out.SolutionFraming, 0, 10)
	out.PricingNextStep = clampInt(out.PricingNextStep, 0, 10)
	out.Compliance.Score = clampInt(out.Compliance.Score, 0, 10)

	for i := range out.ObjectionHandling.Cases {
		out.ObjectionHandling.Cases[i].Score = clampInt(out.ObjectionHandling.Cases[i].Score, 0, 20)
	}

	if out.ObjectionHandling.Cases == nil {
		out.ObjectionHandling.Cases = []models.RubricCase{}
	}
	if out.Compliance.Violations == nil {
		out.Compliance.Violations = []string{}
	}
	if out.TopWins == nil {
		out.TopWins = []string{}
	}
	if out.TopFixes == nil {
		out.TopFixes = []string{}
	}
	if out.Drills == nil {
		out.Drills = []string{}
	}
}

// Scale40 maps the six normalized sub-scores (theoretical max 80) onto the
// 0-40 LLM component.
func Scale40(out *models.RubricOutput) float64 {
	if out == nil {
		return 0
	}
	sum := out.Discovery +
		out.ObjectionHandling.Overall +
		out.ClarityEmpathy +
		out.SolutionFraming +
		out.PricingNextStep +
		out.Compliance.Score
	sum = clampInt(sum, 0, 80)
	return float64(sum) * 40.0 / 80.0
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// stripMarkdownCodeBlock removes ```json fences some models wrap replies in.
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		content = content[firstNewline+1 : closingBackticks]
		content = strings.TrimSpace(content)
	}

	return content
}
