package listing

// FilterRequest changes the list filters. Empty fields keep their current value.
type FilterRequest struct {
	Status string `json:"status"`
	Type   string `json:"type"`
}

// FiltersResponse lists the filter values a list accepts, "all" excluded.
type FiltersResponse struct {
	Statuses []string `json:"statuses"`
	Types    []string `json:"types"`
}
