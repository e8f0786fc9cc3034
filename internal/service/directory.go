package service

import (
	"context"

	apperrors "employee-directory/internal/errors"
	"employee-directory/internal/logger"
	"employee-directory/internal/models"
	"employee-directory/internal/render"
	"employee-directory/internal/repository"

	"golang.org/x/sync/errgroup"
)

// DirectoryService resolves the directory index into records
type DirectoryService struct {
	repo        repository.RecordRepositoryInterface
	index       models.DirectoryIndex
	site        models.Site
	concurrency int
}

// NewDirectoryService creates a new directory service. concurrency <= 0 means unbounded.
func NewDirectoryService(repo repository.RecordRepositoryInterface, index models.DirectoryIndex, site models.Site, concurrency int) *DirectoryService {
	return &DirectoryService{
		repo:        repo,
		index:       append(models.DirectoryIndex{}, index...),
		site:        site,
		concurrency: concurrency,
	}
}

// LookupFailure is the diagnostic kept for a slug that could not be resolved
type LookupFailure struct {
	Slug   string                 `json:"slug" yaml:"slug"`
	Reason apperrors.LookupReason `json:"reason" yaml:"reason"`
	Error  string                 `json:"error" yaml:"error"`
}

// Resolution is the outcome of one resolution pass
type Resolution struct {
	Records  []*models.EmployeeRecord
	Failures []LookupFailure
}

// DirectoryListResponse is returned by the directory listing
type DirectoryListResponse struct {
	Employees []render.ListingCard `json:"employees"`
	Total     int                  `json:"total"`
	Failures  []LookupFailure      `json:"failures"`
}

// ManagementListResponse is returned by the management listing
type ManagementListResponse struct {
	Employees []render.ManagementEntry `json:"employees" yaml:"employees"`
	Total     int                      `json:"total" yaml:"total"`
	Failures  []LookupFailure          `json:"failures" yaml:"failures"`
}

type lookupResult struct {
	record *models.EmployeeRecord
	err    error
}

// Resolve resolves the configured index
func (s *DirectoryService) Resolve(ctx context.Context) *Resolution {
	return s.ResolveSlugs(ctx, s.index)
}

// ResolveSlugs looks up every slug concurrently. Each lookup writes only its own
// slot, so successes come back in input order without sorting. A failed lookup
// never blocks or aborts the others.
func (s *DirectoryService) ResolveSlugs(ctx context.Context, slugs []string) *Resolution {
	res := &Resolution{
		Records:  []*models.EmployeeRecord{},
		Failures: []LookupFailure{},
	}
	if len(slugs) == 0 {
		return res
	}

	results := make([]lookupResult, len(slugs))

	var g errgroup.Group
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for i, slug := range slugs {
		g.Go(func() error {
			rec, err := s.repo.GetBySlug(ctx, slug)
			results[i] = lookupResult{record: rec, err: err}
			return nil
		})
	}
	_ = g.Wait()

	log := logger.WithContext(ctx)
	for i, r := range results {
		if r.err == nil && r.record != nil {
			res.Records = append(res.Records, r.record)
			continue
		}

		err := r.err
		if err == nil {
			err = apperrors.NewLookupError(slugs[i], apperrors.LookupNotFound, nil)
		}
		reason := apperrors.LookupReasonOf(err)
		if reason == "" {
			reason = apperrors.LookupTransport
		}
		log.WithFields(map[string]interface{}{
			"slug":   slugs[i],
			"reason": reason,
		}).WithError(err).Warn("Skipping employee that could not be resolved")

		res.Failures = append(res.Failures, LookupFailure{Slug: slugs[i], Reason: reason, Error: err.Error()})
	}

	log.Debugf("Resolved %d of %d employees", len(res.Records), len(slugs))
	return res
}

// ListCards returns the directory listing in index order
func (s *DirectoryService) ListCards(ctx context.Context) *DirectoryListResponse {
	res := s.Resolve(ctx)
	cards := render.Listings(s.site, res.Records)
	return &DirectoryListResponse{
		Employees: cards,
		Total:     len(cards),
		Failures:  res.Failures,
	}
}

// ListManagementEntries returns the management listing in index order
func (s *DirectoryService) ListManagementEntries(ctx context.Context) *ManagementListResponse {
	res := s.Resolve(ctx)
	entries := render.ManagementEntries(s.site, res.Records)
	return &ManagementListResponse{
		Employees: entries,
		Total:     len(entries),
		Failures:  res.Failures,
	}
}
