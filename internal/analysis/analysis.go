package analysis

// FitLevel buckets the overall score for display.
type FitLevel string

const (
	FitExcellent FitLevel = "Excellent"
	FitGood      FitLevel = "Good"
	FitFair      FitLevel = "Fair"
	FitPoor      FitLevel = "Poor"
)

// SkillCategory groups skills on the radar chart.
type SkillCategory string

const (
	CategoryTechnical SkillCategory = "technical"
	CategorySoft      SkillCategory = "soft"
	CategoryDomain    SkillCategory = "domain"
)

// GapImportance ranks how much a missing skill matters for the role.
type GapImportance string

const (
	ImportanceCritical   GapImportance = "critical"
	ImportanceImportant  GapImportance = "important"
	ImportanceNiceToHave GapImportance = "nice-to-have"
)

// FitAnalysis is the typed result returned to callers.
type FitAnalysis struct {
	OverallScore   int        `json:"overallScore" validate:"min=0,max=100"`
	FitLevel       FitLevel   `json:"fitLevel" validate:"oneof=Excellent Good Fair Poor"`
	Summary        string     `json:"summary" validate:"notblank"`
	Recommendation string     `json:"recommendation" validate:"notblank"`
	Skills         []Skill    `json:"skills" validate:"dive"`
	Strengths      []Strength `json:"strengths" validate:"dive"`
	Gaps           []Gap      `json:"gaps" validate:"dive"`
}

// Skill maps one job requirement to the candidate's demonstrated level.
// Both levels are on a 0-10 scale.
type Skill struct {
	Name      string        `json:"name" validate:"notblank"`
	Required  int           `json:"required" validate:"min=0,max=10"`
	Candidate int           `json:"candidate" validate:"min=0,max=10"`
	Category  SkillCategory `json:"category" validate:"oneof=technical soft domain"`
}

// Strength is a resume highlight that matches the job, backed by evidence
// quoted from the resume.
type Strength struct {
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description"`
	Evidence    string `json:"evidence"`
}

// Gap is a required skill the resume does not evidence well enough.
// DefenseScript is written in the first person for use in an interview.
type Gap struct {
	Skill         string        `json:"skill" validate:"notblank"`
	Importance    GapImportance `json:"importance" validate:"oneof=critical important nice-to-have"`
	DefenseScript string        `json:"defenseScript"`
	LearningPath  string        `json:"learningPath"`
}

// FitLevelForScore applies the same score bands the prompt asks the model to use.
func FitLevelForScore(score int) FitLevel {
	switch {
	case score >= 80:
		return FitExcellent
	case score >= 60:
		return FitGood
	case score >= 40:
		return FitFair
	default:
		return FitPoor
	}
}
