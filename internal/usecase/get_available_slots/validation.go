package get_available_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	serviceType := strings.TrimSpace(req.ServiceType)
	if serviceType == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}

	if len(serviceType) > domain.MaxServiceTypeLength {
		return fmt.Errorf("%w: serviceType is too long", ErrInvalidInput)
	}

	return nil
}
