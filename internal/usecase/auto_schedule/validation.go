package auto_schedule

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

	if req.HorizonDays != nil {
		if *req.HorizonDays < 0 {
			return fmt.Errorf("%w: horizonDays must not be negative", ErrInvalidInput)
		}
		if *req.HorizonDays > domain.MaxAutoHorizonDays {
			return fmt.Errorf("%w: horizonDays must not exceed %d", ErrInvalidInput, domain.MaxAutoHorizonDays)
		}
	}

	if req.ContactInfo != nil && len(*req.ContactInfo) > domain.MaxContactInfoLength {
		return fmt.Errorf("%w: contactInfo is too long", ErrInvalidInput)
	}

	return nil
}
