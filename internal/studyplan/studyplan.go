// Package studyplan builds the prompt used to request a personalized study
// plan from a language model.
package studyplan

import (
	"fmt"
	"os"
	"strings"

	"github.com/tmc/langchaingo/prompts"
	"gopkg.in/yaml.v3"
)

// Profile is the student record the prompt is filled from.
type Profile struct {
	StudentName               string   `yaml:"student_name" json:"student_name"`
	Subjects                  []string `yaml:"subjects" json:"subjects"`                                     // Subject names, optionally with grades and notes.
	LearningStyle             string   `yaml:"learning_style" json:"learning_style"`                         // e.g. visual, auditory, kinesthetic.
	ExtracurricularActivities string   `yaml:"extracurricular_activities" json:"extracurricular_activities"` // Activities or hobbies and their time commitments.
	PersonalObjectives        string   `yaml:"personal_objectives" json:"personal_objectives"`               // Short- and long-term goals.
	Challenges                string   `yaml:"challenges" json:"challenges"`                                 // Obstacles that affect daily work.
}

// InputVariables are the template's placeholders, in Profile field order.
var InputVariables = []string{
	"student_name",
	"subjects",
	"learning_style",
	"extracurricular_activities",
	"personal_objectives",
	"challenges",
}

const Template = `You are an educational consultant and expert in creating highly personalized and effective study plans for students.
Your task is to design a detailed, individualized study plan for a student based on the following information:

Student Name: {{.student_name}}
Subjects and Current Academic Performance: {{.subjects}} (include grades, strengths, and areas for improvement for each subject)
Preferred Learning Style: {{.learning_style}} (e.g., visual, auditory, kinesthetic, or a combination)
Extracurricular Activities: {{.extracurricular_activities}} (include activities, time commitments, and skills learned)
Personal Objectives: {{.personal_objectives}} (e.g., preparing for a specific exam, mastering a subject, or achieving a long-term academic/career goal)
Challenges: {{.challenges}} (e.g., learning difficulties, time management issues, or any specific obstacles faced by the student)

Using this information, create a comprehensive study plan that:
1. Addresses each subject, focusing on improving weaker areas while enhancing strengths.
2. Incorporates the student's preferred learning style to optimize retention and engagement.
3. Balances academic priorities with extracurricular commitments, ensuring overall well-being.
4. Provides specific strategies and resources tailored to the student's challenges and objectives.
5. Includes actionable, time-bound goals and a weekly schedule for effective time management.

Format the response as follows:
1. Overview:
- A brief summary of the student's profile, goals, and challenges.

2. Subject-Specific Strategies:
- Detailed strategies for improving performance in each subject, highlighting specific techniques aligned with the learning style.
- Suggested resources (e.g., online tools, books, or activities) for each subject.

3. Extracurricular Integration:
- Guidance on managing extracurricular activities alongside academics, emphasizing skill transfer where relevant.

4. Overcoming Challenges:
- Personalized advice and tools to address the specific challenges faced by the student.

5. Study Schedule:
- A detailed weekly schedule, broken into daily activities, with time allocated for each subject, breaks, and extracurricular activities.

Make the plan motivational, practical, and easy to follow while inspiring the student to achieve their full potential.
`

var promptTemplate = prompts.NewPromptTemplate(Template, InputVariables)

// Build fills the template with p.
func Build(p Profile) (string, error) {
	out, err := promptTemplate.Format(p.values())
	if err != nil {
		return "", fmt.Errorf("format study plan prompt: %w", err)
	}
	return out, nil
}

func (p Profile) values() map[string]any {
	return map[string]any{
		"student_name":               p.StudentName,
		"subjects":                   strings.Join(p.Subjects, ", "),
		"learning_style":             p.LearningStyle,
		"extracurricular_activities": p.ExtracurricularActivities,
		"personal_objectives":        p.PersonalObjectives,
		"challenges":                 p.Challenges,
	}
}

// LoadProfile reads a Profile from a YAML or JSON file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}
