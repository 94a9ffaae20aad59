package analysis

import "strings"

const instructions = `You are an expert resume analyst and senior career coach. Analyze the candidate's resume against the provided job description with surgical precision.

Return ONLY a valid JSON object, with no markdown fences, no explanation and no preamble. The JSON must have exactly this shape:

{
  "overallScore": <integer 0-100>,
  "fitLevel": <"Excellent" | "Good" | "Fair" | "Poor">,
  "summary": <string: 2-3 sentence analysis of overall match>,
  "recommendation": <string: one clear actionable recommendation for the candidate>,
  "skills": [
    {
      "name": <string: skill name>,
      "required": <integer 0-10: how critical the JD requires this skill>,
      "candidate": <integer 0-10: candidate's demonstrated proficiency from resume>,
      "category": <"technical" | "soft" | "domain">
    }
  ],
  "strengths": [
    {
      "title": <string: short strength title>,
      "description": <string: 1-2 sentences explaining why this is a strength>,
      "evidence": <string: direct quote or specific reference from the resume>
    }
  ],
  "gaps": [
    {
      "skill": <string: skill or quality that is missing or weak>,
      "importance": <"critical" | "important" | "nice-to-have">,
      "defenseScript": <string: 2-3 sentences written in FIRST PERSON that the candidate can say in an interview to address this gap confidently and honestly>,
      "learningPath": <string: specific resources, courses, or concrete steps to close this gap>
    }
  ]
}

RULES:
- skills array: include 7-10 skills. Mix technical, soft, and domain knowledge skills from the JD.
- strengths array: include exactly 3-5 strengths supported by evidence from the resume.
- gaps array: include every skill where (required - candidate) >= 2, ordered by importance.
- defenseScript must be written as if the candidate is speaking (first person "I...").
- Be specific and evidence-based. Avoid generic statements.
- fitLevel mapping: 80-100 = Excellent, 60-79 = Good, 40-59 = Fair, 0-39 = Poor.`

// BuildPrompt joins the fixed instructions with both trimmed inputs.
func BuildPrompt(resume, jobDescription string) string {
	var b strings.Builder
	b.Grow(len(instructions) + len(resume) + len(jobDescription) + 64)
	b.WriteString(instructions)
	b.WriteString("\n\n--- RESUME ---\n")
	b.WriteString(strings.TrimSpace(resume))
	b.WriteString("\n\n--- JOB DESCRIPTION ---\n")
	b.WriteString(strings.TrimSpace(jobDescription))
	return b.String()
}
