package complete_booking

// CompleteBookingRequest HTTP request model.
// Тело опционально: без него запись отмечается выполненной,
// done=false снимает отметку
type CompleteBookingRequest struct {
	Done *bool `json:"done,omitempty"`
}
