package analysis

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	openingFence = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	closingFence = regexp.MustCompile("\\s*```\\s*$")
)

// StripCodeFences removes a markdown code fence wrapped around text.
// The opening fence may carry a "json" language tag in any case. Text
// without fences is returned trimmed.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = openingFence.ReplaceAllString(s, "")
	s = closingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ClampScore rounds half up and clips the result into [0,100].
func ClampScore(score float64) int {
	if math.IsNaN(score) {
		return 0
	}
	rounded := math.Floor(score + 0.5)
	switch {
	case rounded < 0:
		return 0
	case rounded > 100:
		return 100
	}
	return int(rounded)
}

// Normalize turns raw model output into a FitAnalysis. The overall score is
// rounded and clamped into [0,100] and skill levels are rounded to whole
// numbers; every other field is taken as the model returned it.
func Normalize(raw string) (FitAnalysis, error) {
	body := StripCodeFences(raw)

	var wire wireAnalysis
	if err := json.Unmarshal([]byte(body), &wire); err != nil {
		return FitAnalysis{}, newParseError(raw, err)
	}
	if !gjson.Parse(body).IsObject() {
		return FitAnalysis{}, newParseError(raw, errors.New("response is not a JSON object"))
	}

	out := FitAnalysis{
		OverallScore:   ClampScore(float64(wire.OverallScore)),
		FitLevel:       wire.FitLevel,
		Summary:        wire.Summary,
		Recommendation: wire.Recommendation,
		Strengths:      wire.Strengths,
		Gaps:           wire.Gaps,
	}
	if wire.Skills != nil {
		out.Skills = make([]Skill, len(wire.Skills))
		for i, s := range wire.Skills {
			out.Skills[i] = Skill{
				Name:      s.Name,
				Required:  roundHalfUp(float64(s.Required)),
				Candidate: roundHalfUp(float64(s.Candidate)),
				Category:  s.Category,
			}
		}
	}
	fillForDisplay(&out)
	return out, nil
}

// wireAnalysis mirrors FitAnalysis with lenient numeric fields. It shares
// the json tags, so duplicate and differently-cased keys resolve the same
// way they would for FitAnalysis: the last match wins.
type wireAnalysis struct {
	OverallScore   number      `json:"overallScore"`
	FitLevel       FitLevel    `json:"fitLevel"`
	Summary        string      `json:"summary"`
	Recommendation string      `json:"recommendation"`
	Skills         []wireSkill `json:"skills"`
	Strengths      []Strength  `json:"strengths"`
	Gaps           []Gap       `json:"gaps"`
}

type wireSkill struct {
	Name      string        `json:"name"`
	Required  number        `json:"required"`
	Candidate number        `json:"candidate"`
	Category  SkillCategory `json:"category"`
}

// number accepts a JSON number or a numeric string. Models occasionally
// emit "85" or 7.5 where an integer is asked for; anything else reads as 0.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	*n = number(gjson.ParseBytes(b).Float())
	return nil
}

func roundHalfUp(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return int(math.Floor(x + 0.5))
}

// fillForDisplay replaces absent values the dashboard cannot render.
func fillForDisplay(a *FitAnalysis) {
	if a.FitLevel == "" {
		a.FitLevel = FitLevelForScore(a.OverallScore)
	}
	if a.Skills == nil {
		a.Skills = []Skill{}
	}
	if a.Strengths == nil {
		a.Strengths = []Strength{}
	}
	if a.Gaps == nil {
		a.Gaps = []Gap{}
	}
}
