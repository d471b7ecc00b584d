package dto

type ListZonesResponse struct {
	Timezones []string `json:"timezones" example:"America/New_York,Asia/Kolkata"`
	Total     int      `json:"total"     example:"2"`
}

func (r *ListZonesResponse) FromNames(names []string) {
	if names == nil {
		names = []string{}
	}

	r.Timezones = names
	r.Total = len(names)
}

// PageResponse carries what the conversion page needs to render.
type PageResponse struct {
	Timezones      []string
	SourceTimezone string
	TargetTimezone string
	Datetime       string
}
