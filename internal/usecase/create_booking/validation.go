package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// validateRequest проверяет, что все обязательные поля заявки заполнены.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if strings.TrimSpace(req.Slot) == "" {
		return fmt.Errorf("%w: slot is required", ErrValidation)
	}
	if strings.TrimSpace(req.Room) == "" {
		return fmt.Errorf("%w: room is required", ErrValidation)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(req.StudentID) == "" {
		return fmt.Errorf("%w: student_id is required", ErrValidation)
	}
	if strings.TrimSpace(req.Class) == "" {
		return fmt.Errorf("%w: class is required", ErrValidation)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return fmt.Errorf("%w: reason is required", ErrValidation)
	}

	// Лимиты считаются в символах, не в байтах: кириллица в UTF-8 двухбайтовая
	if utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrValidation)
	}
	if utf8.RuneCountInString(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrValidation)
	}

	return nil
}

// validateDateInWindow проверяет, что дата попадает в скользящее окно
// бронирования.
func validateDateInWindow(dateStr string, window []string) error {
	for _, d := range window {
		if d == dateStr {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not within the next %d days", ErrDateOutOfWindow, dateStr, domain.WindowDays)
}
