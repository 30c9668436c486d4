package domain

// Train is a single search result from the rail service. The JSON tags follow
// the service's wire names, including the trailing-underscore city fields.
type Train struct {
	ID             int    `json:"id"`
	TrainNo        string `json:"train_no"`
	TrainName      string `json:"train_name"`
	FromCity       string `json:"from_"`
	ToCity         string `json:"to_"`
	SeatsAvailable int    `json:"no_of_seats"`
	ACPrice        int    `json:"ac_price"`
	NonACPrice     int    `json:"non_ac_price"`
	DepartureTime  string `json:"departuretime"`
	ImageURL       string `json:"image_url"`
}

func (t Train) PriceFor(ticketType TicketType) int {
	if ticketType == TicketAC {
		return t.ACPrice
	}
	return t.NonACPrice
}
