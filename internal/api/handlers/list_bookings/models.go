package list_bookings

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
	"github.com/m04kA/MC-AppointmentService/internal/service/bookings/models"
)

var (
	// errInvalidDate возвращается при некорректном формате даты
	errInvalidDate = errors.New("invalid date format")

	// errInvalidDone возвращается при некорректном значении параметра done
	errInvalidDone = errors.New("invalid done value")
)

// ToServiceRequest собирает модель сервиса из query параметров.
// Даты трактуются как календарные дни кабинета, обе границы включительны
func ToServiceRequest(fromStr, toStr, doneStr string, loc *time.Location) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if s := strings.TrimSpace(fromStr); s != "" {
		from, err := time.ParseInLocation(domain.DateFormat, s, loc)
		if err != nil {
			return nil, errInvalidDate
		}
		req.FromDate = &from
	}

	if s := strings.TrimSpace(toStr); s != "" {
		to, err := time.ParseInLocation(domain.DateFormat, s, loc)
		if err != nil {
			return nil, errInvalidDate
		}
		req.ToDate = &to
	}

	if s := strings.TrimSpace(doneStr); s != "" {
		done, err := strconv.ParseBool(s)
		if err != nil {
			return nil, errInvalidDone
		}
		req.Done = &done
	}

	return req, nil
}
