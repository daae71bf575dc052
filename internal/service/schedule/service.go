package schedule

import (
	"strings"

	"github.com/m04kA/MC-AppointmentService/internal/service/schedule/models"
)

// Service отдает клиентам расписание кабинета и каталог услуг.
// Расписание фиксируется конфигурацией при старте, поэтому сервис
// только читает календарь и ничего не меняет
type Service struct {
	calendar        WorkingCalendar
	catalog         ServiceCatalog
	autoHorizonDays int
	logger          Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	calendar WorkingCalendar,
	catalog ServiceCatalog,
	autoHorizonDays int,
	logger Logger,
) *Service {
	return &Service{
		calendar:        calendar,
		catalog:         catalog,
		autoHorizonDays: autoHorizonDays,
		logger:          logger,
	}
}

// GetScheduleConfig возвращает рабочие интервалы, выходные, шаг сетки,
// горизонт автоподбора и каталог услуг
func (s *Service) GetScheduleConfig() *models.ScheduleConfigResponse {
	s.logger.Info("GetScheduleConfig: fetching schedule config")

	blocks := s.calendar.Blocks()
	blockResponses := make([]models.BlockResponse, len(blocks))
	for i, b := range blocks {
		blockResponses[i] = models.BlockResponse{
			Start: b.Start.String(),
			End:   b.End.String(),
		}
	}

	weekend := s.calendar.Weekend()
	weekendNames := make([]string, len(weekend))
	for i, day := range weekend {
		weekendNames[i] = strings.ToLower(day.String())
	}

	services := s.catalog.Services()
	serviceResponses := make([]models.ServiceResponse, len(services))
	for i, svc := range services {
		serviceResponses[i] = models.ServiceResponse{
			Code:            string(svc.Code),
			Name:            svc.Name,
			Aliases:         svc.Aliases,
			DurationMinutes: svc.DurationMinutes,
			Infusion:        svc.Infusion,
			SameDayOnly:     svc.AutoSameDayOnly,
		}
	}

	return &models.ScheduleConfigResponse{
		Timezone:        s.calendar.Location().String(),
		SlotStepMinutes: s.calendar.StepMinutes(),
		AutoHorizonDays: s.autoHorizonDays,
		Weekend:         weekendNames,
		Blocks:          blockResponses,
		Services:        serviceResponses,
	}
}
