package response

import (
	"time"

	"club-booking/internal/usecase/queries"
)

type StationAvailabilityResponse struct {
	StationID string `json:"stationId"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

type AvailabilityByTimeResponse struct {
	Start    string                         `json:"start"`
	End      string                         `json:"end"`
	Stations []*StationAvailabilityResponse `json:"stations"`
}

func FromStationAvailability(start, end time.Time, views []queries.StationAvailabilityView) *AvailabilityByTimeResponse {
	res := &AvailabilityByTimeResponse{
		Start:    formatTime(start),
		End:      formatTime(end),
		Stations: make([]*StationAvailabilityResponse, len(views)),
	}
	for i := range views {
		item := &StationAvailabilityResponse{}
		copyInto(item, &views[i])
		res.Stations[i] = item
	}
	return res
}

type StartTimesResponse struct {
	StartTimes []string `json:"startTimes"`
}

func FromStartTimes(starts []time.Time) *StartTimesResponse {
	res := &StartTimesResponse{StartTimes: make([]string, len(starts))}
	for i, t := range starts {
		res.StartTimes[i] = formatTime(t)
	}
	return res
}
