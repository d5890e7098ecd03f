package usecase

import (
	"context"
	"strings"
	"time"

	"job-use-backend/internal/domain"
	"job-use-backend/pkg/apperror"
	"job-use-backend/pkg/logger"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
	now     func() time.Time
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo: jobRepo,
		now:     time.Now,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	job.Title = strings.TrimSpace(job.Title)
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Status == "" {
		job.Status = domain.JobStatusActive
	}
	if !domain.ValidJobStatus(job.Status) {
		return apperror.BadRequest("Status must be active or closed")
	}
	if job.PostedDate == "" {
		job.PostedDate = u.now().UTC().Format(time.RFC3339)
	}

	return storeError(u.jobRepo.Create(ctx, job), "Job")
}

func (u *jobUsecase) ListJobs(ctx context.Context, status string) ([]domain.Job, error) {
	if status != "" && !domain.ValidJobStatus(status) {
		return nil, apperror.BadRequest("Status must be active or closed")
	}
	jobs, err := u.jobRepo.List(ctx, status)
	if err != nil {
		return nil, storeError(err, "Job")
	}
	return jobs, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Job")
	}
	return job, nil
}

func (u *jobUsecase) UpdateJobStatus(ctx context.Context, id string, status string) error {
	if !domain.ValidJobStatus(status) {
		return apperror.Invalid("Status must be active or closed", nil, domain.ErrInvalidStatus)
	}
	return storeError(u.jobRepo.UpdateStatus(ctx, id, status), "Job")
}

// SeedJobs inserts the sample postings unless jobs already exist.
func (u *jobUsecase) SeedJobs(ctx context.Context) ([]string, error) {
	ids, err := u.jobRepo.Seed(ctx, SampleJobs(u.now()))
	if err != nil {
		return nil, storeError(err, "Job")
	}
	logger.Log.Info("Jobs seeded", "count", len(ids))
	return ids, nil
}

// ClearAndReseedJobs wipes every job (and, through the foreign keys, their
// applications) before inserting the sample postings again.
func (u *jobUsecase) ClearAndReseedJobs(ctx context.Context) ([]string, error) {
	ids, err := u.jobRepo.ClearAndReseed(ctx, SampleJobs(u.now()))
	if err != nil {
		return nil, storeError(err, "Job")
	}
	logger.Log.Warn("Jobs cleared and reseeded", "count", len(ids))
	return ids, nil
}

// SampleJobs is the fixed demo posting set, stamped with now.
func SampleJobs(now time.Time) []domain.Job {
	posted := now.UTC().Format(time.RFC3339)
	return []domain.Job{
		{
			Title:    "LPN Staff I - Long Term Care",
			Company:  "Rochester Regional Health",
			Location: "Newark, NY 14513",
			Salary:   "Up to $15,000 Sign-On Bonus",
			Description: "Job Title: LPN Staff I – Long Term Care\nDepartment: Rehab\nLocation: DeMay Living Center\n" +
				"Hours Per Week: 24\nSchedule: Evenings, 2p-10p\n\n" +
				"Rochester Regional Health is seeking a dedicated LPN Staff I to join our Long Term Care facility. " +
				"This position offers evening shifts with a competitive sign-on bonus. You'll be part of a team " +
				"committed to providing exceptional care to our residents in a supportive environment.",
			Requirements: []string{
				"Current LPN license in New York State",
				"CPR/BLS certification required",
				"Experience in long-term care or rehabilitation preferred",
				"Ability to work evening shifts (2pm-10pm)",
				"Strong communication and interpersonal skills",
				"Commitment to providing compassionate patient care",
			},
			PostedDate: posted,
			Status:     domain.JobStatusActive,
		},
		{
			Title:    "Assistant Manager",
			Company:  "Hollister Co.",
			Location: "Santa Anita, Arcadia, CA",
			Salary:   "$25.00 per hour",
			Description: "The Assistant Manager is a multi-faceted role that merges business strategy, operations, " +
				"creativity, and people management. Strategically, assistant managers are responsible for driving " +
				"sales results by analyzing the business and providing best-in-class customer service. They are " +
				"responsible for overseeing daily store operations including opening and closing routines and " +
				"driving efficiency in all store processes.\n\n" +
				"Assistant managers leverage their creative expertise through floorset updates, styling " +
				"recommendations and product knowledge. They are also talent leaders, driving everything from " +
				"recruiting and training to engagement and development. With a promote from within philosophy, " +
				"our Assistant managers will build upon their initial foundation and have the opportunity to grow " +
				"into future leaders.",
			Requirements: []string{
				"Bachelor's degree OR one year of supervisory experience in a customer-facing role",
				"Strong problem-solving skills",
				"Ability to thrive in a fast-paced environment",
				"Team building and leadership skills",
				"Strong interpersonal and communication skills",
				"Fashion interest and knowledge",
				"Multi-tasking abilities",
				"Drive to achieve results",
			},
			PostedDate: posted,
			Status:     domain.JobStatusActive,
		},
	}
}
