package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	serviceType := strings.TrimSpace(req.ServiceType)
	if serviceType == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}

	if len(serviceType) > domain.MaxServiceTypeLength {
		return fmt.Errorf("%w: serviceType is too long", ErrInvalidInput)
	}

	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: startsAt is required", ErrInvalidInput)
	}

	if req.ContactInfo != nil && len(*req.ContactInfo) > domain.MaxContactInfoLength {
		return fmt.Errorf("%w: contactInfo is too long", ErrInvalidInput)
	}

	return nil
}
