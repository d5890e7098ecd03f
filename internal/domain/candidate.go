package domain

import (
	"context"
	"time"
)

// Candidate is an applicant profile. Email is its natural identity.
type Candidate struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	ProfileType       string    `json:"profile_type"`
	CVUploaded        bool      `json:"cv_uploaded"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	EligibilityToWork bool      `json:"eligibility_to_work"`
	Age               int       `json:"age"`
	PostCode          string    `json:"post_code"`
	Birthdate         string    `json:"birthdate"`
	Phone             string    `json:"phone"`
	Country           string    `json:"country"`
	County            string    `json:"county"`
	Salary            string    `json:"salary"`
	ProfileSummary    string    `json:"profile_summary"`
	CurrentJobTitle   string    `json:"current_job_title"`
	CurrentCompany    string    `json:"current_company"`
	Experience        float64   `json:"experience"`
	CreatedAt         time.Time `json:"created_at"`
}

// FullName joins first and last name.
func (c *Candidate) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// CandidateInput carries every profile field for create and upsert. The name
// and phone rules are binding-only: uploaded profiles keep whatever text they carry.
type CandidateInput struct {
	Email             string  `json:"email" binding:"required,email" validate:"required,email"`
	Password          string  `json:"password" binding:"required" validate:"required"`
	ProfileType       string  `json:"profile_type"`
	CVUploaded        bool    `json:"cv_uploaded"`
	FirstName         string  `json:"first_name" binding:"valid_name"`
	LastName          string  `json:"last_name" binding:"valid_name"`
	EligibilityToWork bool    `json:"eligibility_to_work"`
	Age               int     `json:"age" binding:"gte=0" validate:"gte=0"`
	PostCode          string  `json:"post_code"`
	Birthdate         string  `json:"birthdate"`
	Phone             string  `json:"phone" binding:"valid_phone"`
	Country           string  `json:"country"`
	County            string  `json:"county"`
	Salary            string  `json:"salary"`
	ProfileSummary    string  `json:"profile_summary"`
	CurrentJobTitle   string  `json:"current_job_title"`
	CurrentCompany    string  `json:"current_company"`
	Experience        float64 `json:"experience" binding:"gte=0" validate:"gte=0"`
}

// CandidatePatch is a partial update; nil fields are left untouched.
// Password is deliberately absent.
type CandidatePatch struct {
	Email             *string  `json:"email,omitempty" binding:"omitempty,email"`
	ProfileType       *string  `json:"profile_type,omitempty"`
	CVUploaded        *bool    `json:"cv_uploaded,omitempty"`
	FirstName         *string  `json:"first_name,omitempty" binding:"omitempty,valid_name"`
	LastName          *string  `json:"last_name,omitempty" binding:"omitempty,valid_name"`
	EligibilityToWork *bool    `json:"eligibility_to_work,omitempty"`
	Age               *int     `json:"age,omitempty" binding:"omitempty,gte=0"`
	PostCode          *string  `json:"post_code,omitempty"`
	Birthdate         *string  `json:"birthdate,omitempty"`
	Phone             *string  `json:"phone,omitempty" binding:"omitempty,valid_phone"`
	Country           *string  `json:"country,omitempty"`
	County            *string  `json:"county,omitempty"`
	Salary            *string  `json:"salary,omitempty"`
	ProfileSummary    *string  `json:"profile_summary,omitempty"`
	CurrentJobTitle   *string  `json:"current_job_title,omitempty"`
	CurrentCompany    *string  `json:"current_company,omitempty"`
	Experience        *float64 `json:"experience,omitempty" binding:"omitempty,gte=0"`
}

// IsEmpty reports whether the patch sets no field.
func (p CandidatePatch) IsEmpty() bool {
	return p == CandidatePatch{}
}

// Apply copies the supplied fields onto c.
func (p CandidatePatch) Apply(c *Candidate) {
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.ProfileType != nil {
		c.ProfileType = *p.ProfileType
	}
	if p.CVUploaded != nil {
		c.CVUploaded = *p.CVUploaded
	}
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.EligibilityToWork != nil {
		c.EligibilityToWork = *p.EligibilityToWork
	}
	if p.Age != nil {
		c.Age = *p.Age
	}
	if p.PostCode != nil {
		c.PostCode = *p.PostCode
	}
	if p.Birthdate != nil {
		c.Birthdate = *p.Birthdate
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Country != nil {
		c.Country = *p.Country
	}
	if p.County != nil {
		c.County = *p.County
	}
	if p.Salary != nil {
		c.Salary = *p.Salary
	}
	if p.ProfileSummary != nil {
		c.ProfileSummary = *p.ProfileSummary
	}
	if p.CurrentJobTitle != nil {
		c.CurrentJobTitle = *p.CurrentJobTitle
	}
	if p.CurrentCompany != nil {
		c.CurrentCompany = *p.CurrentCompany
	}
	if p.Experience != nil {
		c.Experience = *p.Experience
	}
}

// CandidateProfile is a candidate with its owned collections.
type CandidateProfile struct {
	Candidate      *Candidate      `json:"candidate"`
	JobExperiences []JobExperience `json:"job_experiences"`
	Questions      []Question      `json:"questions"`
}

type CandidateRepository interface {
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	GetByEmail(ctx context.Context, email string) (*Candidate, error)
	Update(ctx context.Context, id string, patch CandidatePatch) error
	Upsert(ctx context.Context, c *Candidate) error
}

type CandidateUsecase interface {
	CreateCandidate(ctx context.Context, input CandidateInput) (*Candidate, error)
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	GetCandidateByEmail(ctx context.Context, email string) (*Candidate, error)
	UpdateCandidate(ctx context.Context, id string, patch CandidatePatch) error
	UpsertCandidate(ctx context.Context, input CandidateInput) (*Candidate, error)
	GetProfile(ctx context.Context, id string) (*CandidateProfile, error)
}
