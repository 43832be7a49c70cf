package request

import (
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/schedule"
	"club-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type StationPlayersRequest struct {
	StationID uuid.UUID `json:"stationId" binding:"required"`
	Players   int       `json:"players" binding:"required,min=1"`
}

type CreateIntentRequest struct {
	Stations  []StationPlayersRequest `json:"stations" binding:"required,min=1,dive"`
	StartTime time.Time               `json:"startTime" binding:"required"`
	EndTime   time.Time               `json:"endTime" binding:"required"`
}

func (r *CreateIntentRequest) ToCommand() commands.CreateIntentRequest {
	return commands.CreateIntentRequest{
		Stations:  toStationPlayers(r.Stations),
		StartTime: r.StartTime.UTC(),
		EndTime:   r.EndTime.UTC(),
	}
}

type QuoteRequest struct {
	Stations  []StationPlayersRequest `json:"stations" binding:"required,min=1,dive"`
	StartTime time.Time               `json:"startTime" binding:"required"`
	EndTime   time.Time               `json:"endTime" binding:"required"`
}

func (r *QuoteRequest) ToDomain() ([]booking.StationPlayers, schedule.TimeSlot, error) {
	slot, err := schedule.NewBookableSlot(r.StartTime.UTC(), r.EndTime.UTC())
	if err != nil {
		return nil, schedule.TimeSlot{}, err
	}
	return toStationPlayers(r.Stations), slot, nil
}

func toStationPlayers(in []StationPlayersRequest) []booking.StationPlayers {
	out := make([]booking.StationPlayers, len(in))
	for i, sp := range in {
		out[i] = booking.StationPlayers{StationID: sp.StationID, Players: sp.Players}
	}
	return out
}
