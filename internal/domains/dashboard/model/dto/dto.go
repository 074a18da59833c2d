package dto

type RepairSummaryResponse struct {
	Assigned  int `json:"assigned"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

type StaffSummaryResponse struct {
	Name      string `json:"name"`
	Assigned  int    `json:"assigned"`
	Completed int    `json:"completed"`
}

type RoomRequestsResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type StaffSummaryFilter struct {
	From string
	To   string
}

type TestMailRequest struct {
	To string `json:"to" validate:"required,email"`
}
