package response

import (
	"time"

	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/queries"
)

type StationPlayersResponse struct {
	StationID string `json:"stationId"`
	Players   int    `json:"players"`
}

type AmountItemResponse struct {
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
	Quantity     string `json:"quantity"`
	QuantityUnit string `json:"quantityUnit"`
	RatePerUnit  string `json:"ratePerUnit"`
	RateUnit     string `json:"rateUnit"`
	Amount       string `json:"amount"`
}

type IntentResponse struct {
	ID        string                   `json:"id"`
	Stations  []StationPlayersResponse `json:"stations"`
	StartTime string                   `json:"startTime"`
	EndTime   string                   `json:"endTime"`
	ExpiresAt string                   `json:"expiresAt"`
}

func FromIntentResult(r *commands.IntentResult) *IntentResponse {
	return &IntentResponse{
		ID:        r.ID.String(),
		Stations:  fromStationPlayers(r.Stations),
		StartTime: formatTime(r.StartTime),
		EndTime:   formatTime(r.EndTime),
		ExpiresAt: formatTime(r.ExpiresAt),
	}
}

type BookingResponse struct {
	ID        string                   `json:"id"`
	IntentID  string                   `json:"intentId"`
	UserID    string                   `json:"userId"`
	Status    string                   `json:"status"`
	StartTime string                   `json:"startTime"`
	EndTime   string                   `json:"endTime"`
	Stations  []StationPlayersResponse `json:"stations"`
	Items     []AmountItemResponse     `json:"items"`
	Total     string                   `json:"total"`
	CreatedAt string                   `json:"createdAt"`
	UpdatedAt string                   `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:        v.ID.String(),
		IntentID:  v.IntentID.String(),
		UserID:    v.UserID.String(),
		Status:    v.Status,
		StartTime: formatTime(v.StartTime),
		EndTime:   formatTime(v.EndTime),
		Stations:  fromStationPlayers(v.Stations),
		Items:     fromAmountItems(v.Items),
		Total:     v.Total.String(),
		CreatedAt: formatTime(v.CreatedAt),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

type QuoteResponse struct {
	Items []AmountItemResponse `json:"items"`
	Total string               `json:"total"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		Items: fromAmountItems(v.Items),
		Total: v.Total.String(),
	}
}

func fromStationPlayers(views []queries.StationPlayersView) []StationPlayersResponse {
	res := make([]StationPlayersResponse, len(views))
	for i := range views {
		copyInto(&res[i], &views[i])
	}
	return res
}

func fromAmountItems(views []queries.AmountItemView) []AmountItemResponse {
	res := make([]AmountItemResponse, len(views))
	for i := range views {
		copyInto(&res[i], &views[i])
	}
	return res
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
