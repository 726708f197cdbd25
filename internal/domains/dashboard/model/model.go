package model

const EntityName = "dashboard"

type InquiryStats struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Read      int `json:"read"`
	Replied   int `json:"replied"`
	Archived  int `json:"archived"`
	Last7Days int `json:"last_7_days"`
}

type RoomStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Featured int `json:"featured"`
}

type Stats struct {
	Inquiries      InquiryStats `json:"inquiries"`
	EventInquiries InquiryStats `json:"event_inquiries"`
	Rooms          RoomStats    `json:"rooms"`
}

// ThisWeek counts inquiries of both kinds received in the last seven days.
func (s Stats) ThisWeek() int {
	return s.Inquiries.Last7Days + s.EventInquiries.Last7Days
}

// Response is the backend's answer to GET /admin/dashboard.
type Response struct {
	Stats Stats `json:"stats"`
}

type Summary struct {
	Stats    Stats `json:"stats"`
	ThisWeek int   `json:"this_week"`
}
