package domain

import "context"

// UploadedExperience is a work-history entry in the profile upload file.
type UploadedExperience struct {
	Company    string `json:"company"`
	Title      string `json:"title"`
	CurrentJob bool   `json:"currentJob"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Scope      string `json:"scope"`
}

// UploadedQuestion is a question entry in the profile upload file.
// Its identifier arrives as either questionId or _id.
type UploadedQuestion struct {
	QuestionID   string   `json:"questionId"`
	LegacyID     string   `json:"_id"`
	Name         string   `json:"name"`
	Answer       string   `json:"answer"`
	Intent       string   `json:"intent"`
	Answered     bool     `json:"answered"`
	QuestionType string   `json:"questionType"`
	Options      []string `json:"options,omitempty"`
}

// UploadedProfile is the profile upload file. A nil slice means the key was
// absent and the stored set is left alone; an empty slice clears it.
// Age accepts any JSON number and is truncated to whole years.
type UploadedProfile struct {
	Email             string               `json:"email" validate:"required,email"`
	Password          string               `json:"password" validate:"required"`
	ProfileType       string               `json:"profileType"`
	CVUploaded        bool                 `json:"cvUploaded"`
	FirstName         string               `json:"firstName"`
	LastName          string               `json:"lastName"`
	EligibilityToWork bool                 `json:"eligibilityToWork"`
	Age               float64              `json:"age" validate:"gte=0"`
	PostCode          string               `json:"postCode"`
	Birthdate         string               `json:"birthdate"`
	Phone             string               `json:"phone"`
	Country           string               `json:"country"`
	County            string               `json:"county"`
	Salary            string               `json:"salary"`
	ProfileSummary    string               `json:"profileSummary"`
	CurrentJobTitle   string               `json:"currentJobTitle"`
	CurrentCompany    string               `json:"currentCompany"`
	Experience        float64              `json:"experience" validate:"gte=0"`
	JobExperiences    []UploadedExperience `json:"jobExperiences"`
	Questions         []UploadedQuestion   `json:"questions"`
}

// CandidateInput extracts the top-level candidate fields.
func (p *UploadedProfile) CandidateInput() CandidateInput {
	return CandidateInput{
		Email:             p.Email,
		Password:          p.Password,
		ProfileType:       p.ProfileType,
		CVUploaded:        p.CVUploaded,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		EligibilityToWork: p.EligibilityToWork,
		Age:               int(p.Age),
		PostCode:          p.PostCode,
		Birthdate:         p.Birthdate,
		Phone:             p.Phone,
		Country:           p.Country,
		County:            p.County,
		Salary:            p.Salary,
		ProfileSummary:    p.ProfileSummary,
		CurrentJobTitle:   p.CurrentJobTitle,
		CurrentCompany:    p.CurrentCompany,
		Experience:        p.Experience,
	}
}

// Experiences converts the uploaded entries, preserving nil for an absent key.
func (p *UploadedProfile) Experiences() []JobExperience {
	if p.JobExperiences == nil {
		return nil
	}
	out := make([]JobExperience, 0, len(p.JobExperiences))
	for _, e := range p.JobExperiences {
		out = append(out, JobExperience{
			Company:    e.Company,
			Title:      e.Title,
			CurrentJob: e.CurrentJob,
			StartDate:  e.StartDate,
			EndDate:    e.EndDate,
			Scope:      e.Scope,
		})
	}
	return out
}

// QuestionList converts the uploaded questions, normalising the identifier.
func (p *UploadedProfile) QuestionList() []Question {
	if p.Questions == nil {
		return nil
	}
	out := make([]Question, 0, len(p.Questions))
	for _, q := range p.Questions {
		id := q.QuestionID
		if id == "" {
			id = q.LegacyID
		}
		out = append(out, Question{
			QuestionID:   id,
			Name:         q.Name,
			Answer:       q.Answer,
			Intent:       q.Intent,
			Answered:     q.Answered,
			QuestionType: q.QuestionType,
			Options:      q.Options,
		})
	}
	return out
}

// IngestionResult is returned after a profile upload is persisted.
type IngestionResult struct {
	CandidateID     string     `json:"candidate_id"`
	Candidate       *Candidate `json:"candidate"`
	ExperienceCount int        `json:"experience_count"`
	QuestionCount   int        `json:"question_count"`
	ExperiencesSet  bool       `json:"experiences_replaced"`
	QuestionsSet    bool       `json:"questions_replaced"`
}

type ProfileUsecase interface {
	// ParseProfile validates raw upload bytes without touching storage.
	ParseProfile(raw []byte) (*UploadedProfile, error)
	IngestProfile(ctx context.Context, raw []byte) (*IngestionResult, error)
}
