package restaurants

type Restaurant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListResponse struct {
	Restaurants []Restaurant `json:"restaurants"`
}
