// Package validation checks submitted applicant fields against the intake
// rules before any record is created.
package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
)

// FieldError reports the first intake rule violated by a submission.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SkillList accepts either a JSON array of strings or a single
// comma-delimited string, preserving order.
type SkillList []string

// UnmarshalJSON implements the string-or-array coercion for skills.
func (s *SkillList) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*s = strings.Split(asString, ",")
		return nil
	}
	var asList []string
	if err := json.Unmarshal(data, &asList); err != nil {
		return fmt.Errorf("skills must be a string or an array of strings")
	}
	*s = asList
	return nil
}

// Years accepts a JSON number or a quoted numeric string.
type Years float64

// UnmarshalJSON implements numeric coercion for the experience field.
func (y *Years) UnmarshalJSON(data []byte) error {
	var asNumber float64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		*y = Years(asNumber)
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return fmt.Errorf("experience must be a number")
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(asString), 64)
	if err != nil {
		return fmt.Errorf("experience must be a number")
	}
	*y = Years(parsed)
	return nil
}

// SubmissionInput is the raw request body of a submission. Pointer fields
// distinguish absent from zero-valued input.
type SubmissionInput struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Position   string    `json:"position"`
	Experience *Years    `json:"experience"`
	Skills     SkillList `json:"skills"`
	Education  string    `json:"education"`
}

// Submission is a validated, normalized applicant submission.
type Submission struct {
	Name       string
	Email      string
	Phone      string
	Position   string
	Experience float64
	Skills     []string
	Education  string
}

// Validate checks every intake rule and returns the normalized submission,
// or the first violation found.
func Validate(in SubmissionInput) (*Submission, *FieldError) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, missing("name")
	}
	if len(name) < 2 || len(name) > 100 {
		return nil, &FieldError{Field: "name", Message: "name must be between 2 and 100 characters"}
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, missing("email")
	}
	if len(email) > 255 || !emailPattern.MatchString(email) {
		return nil, &FieldError{Field: "email", Message: "email must be a valid address"}
	}

	rawPhone := strings.TrimSpace(in.Phone)
	if rawPhone == "" {
		return nil, missing("phone")
	}
	phone := normalizePhone(rawPhone)
	if !phonePattern.MatchString(phone) {
		return nil, &FieldError{Field: "phone", Message: "phone must be a valid phone number"}
	}

	position := strings.TrimSpace(in.Position)
	if position == "" {
		return nil, missing("position")
	}
	if len(position) < 2 || len(position) > 100 {
		return nil, &FieldError{Field: "position", Message: "position must be between 2 and 100 characters"}
	}

	if in.Experience == nil {
		return nil, missing("experience")
	}
	experience := float64(*in.Experience)
	if experience < 0 || experience > 50 {
		return nil, &FieldError{Field: "experience", Message: "experience must be between 0 and 50 years"}
	}

	if in.Skills == nil {
		return nil, missing("skills")
	}
	skills := make([]string, 0, len(in.Skills))
	for _, s := range in.Skills {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	if len(skills) == 0 {
		return nil, &FieldError{Field: "skills", Message: "at least one skill is required"}
	}

	education := strings.TrimSpace(in.Education)
	if education == "" {
		return nil, missing("education")
	}
	if len(education) < 2 || len(education) > 200 {
		return nil, &FieldError{Field: "education", Message: "education must be between 2 and 200 characters"}
	}

	return &Submission{
		Name:       name,
		Email:      email,
		Phone:      phone,
		Position:   position,
		Experience: experience,
		Skills:     skills,
		Education:  education,
	}, nil
}

func missing(field string) *FieldError {
	return &FieldError{Field: field, Message: field + " is required"}
}

// normalizePhone strips the separators people type into phone numbers.
func normalizePhone(p string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(p)
}
