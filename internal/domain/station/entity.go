package station

import (
	"strings"
	"time"

	"club-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxStationNameLength = 255
)

// Station is a bookable unit of a club. It references one Rate as its pricing policy.
type Station struct {
	id          uuid.UUID
	clubID      uuid.UUID
	stationType string
	name        string
	rateID      *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewStation(id, clubID uuid.UUID, stationType, name string, rateID *uuid.UUID) (*Station, error) {
	if clubID == uuid.Nil {
		return nil, errs.Validation("club id is required")
	}
	stationType = strings.TrimSpace(stationType)
	if stationType == "" {
		return nil, errs.Validation("station type cannot be empty")
	}
	if err := validateStationName(name); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Station{
		id:          id,
		clubID:      clubID,
		stationType: stationType,
		name:        strings.TrimSpace(name),
		rateID:      rateID,
	}, nil
}

func ReconstructStation(id, clubID uuid.UUID, stationType, name string, rateID *uuid.UUID, createdAt, updatedAt time.Time) *Station {
	return &Station{
		id:          id,
		clubID:      clubID,
		stationType: stationType,
		name:        name,
		rateID:      rateID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// HasRate reports whether the station is priced; unpriced stations book for free.
func (s *Station) HasRate() bool {
	return s.rateID != nil
}

func validateStationName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.Validation("station name cannot be empty")
	}
	if len(name) > MaxStationNameLength {
		return errs.Validation("station name is too long (max %d characters)", MaxStationNameLength)
	}
	return nil
}

func (s *Station) ID() uuid.UUID        { return s.id }
func (s *Station) ClubID() uuid.UUID    { return s.clubID }
func (s *Station) Type() string         { return s.stationType }
func (s *Station) Name() string         { return s.name }
func (s *Station) RateID() *uuid.UUID   { return s.rateID }
func (s *Station) CreatedAt() time.Time { return s.createdAt }
func (s *Station) UpdatedAt() time.Time { return s.updatedAt }
