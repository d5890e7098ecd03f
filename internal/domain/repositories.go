package domain

// Repositories bundles one store's repositories.
type Repositories struct {
	Candidates   CandidateRepository
	Jobs         JobRepository
	Experiences  JobExperienceRepository
	Questions    QuestionRepository
	Applications ApplicationRepository
}
