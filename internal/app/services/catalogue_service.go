package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/berkcan/schedbuilder/internal/app/models"
	"github.com/berkcan/schedbuilder/internal/app/repositories"
)

// CatalogueStatus describes the currently loaded snapshot.
type CatalogueStatus struct {
	Courses  int
	Sections int
	LoadedAt time.Time
}

// CatalogueService exposes the course catalogue to the HTTP layer
type CatalogueService interface {
	Courses() ([]models.Course, error)
	Course(code string) (models.Course, error)
	Status() (*CatalogueStatus, error)
	Refresh() error
}

type catalogueService struct {
	catalogueRepo *repositories.CatalogueRepository
	logger        zerolog.Logger
}

// NewCatalogueService creates a new CatalogueService
func NewCatalogueService(catalogueRepo *repositories.CatalogueRepository, logger zerolog.Logger) CatalogueService {
	return &catalogueService{
		catalogueRepo: catalogueRepo,
		logger:        logger,
	}
}

// Courses returns every course in the catalogue, sorted by code.
func (s *catalogueService) Courses() ([]models.Course, error) {
	catalogue, err := s.catalogueRepo.Current()
	if err != nil {
		return nil, err
	}

	codes := catalogue.Codes()
	courses := make([]models.Course, 0, len(codes))
	for _, code := range codes {
		course, _ := catalogue.Course(code)
		courses = append(courses, course)
	}
	return courses, nil
}

// Course returns a single course by code.
func (s *catalogueService) Course(code string) (models.Course, error) {
	courses, err := s.catalogueRepo.Lookup([]string{code})
	if err != nil {
		return models.Course{}, err
	}
	return courses[0], nil
}

// Status reports the size and load time of the active snapshot.
func (s *catalogueService) Status() (*CatalogueStatus, error) {
	catalogue, err := s.catalogueRepo.Current()
	if err != nil {
		return nil, err
	}
	loadedAt, err := s.catalogueRepo.LoadedAt()
	if err != nil {
		return nil, err
	}

	return &CatalogueStatus{
		Courses:  catalogue.Len(),
		Sections: catalogue.SectionCount(),
		LoadedAt: loadedAt,
	}, nil
}

// Refresh re-reads the catalogue file and swaps the snapshot in. In-flight
// solves keep the snapshot they started with.
func (s *catalogueService) Refresh() error {
	if err := s.catalogueRepo.Load(); err != nil {
		s.logger.Error().Err(err).Msg("Catalogue refresh failed")
		return err
	}

	if status, err := s.Status(); err == nil {
		s.logger.Info().
			Int("courses", status.Courses).
			Int("sections", status.Sections).
			Msg("Catalogue refreshed")
	}
	return nil
}
