package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date      string `json:"date"` // "2025-10-15"
	Slot      string `json:"slot"` // имя слота из каталога
	Room      string `json:"room"`
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
	Class     string `json:"class"`
	Phone     string `json:"phone"`
	Reason    string `json:"reason"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Key       string `json:"key"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Room      string `json:"room"`
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
	Class     string `json:"class"`
	Phone     string `json:"phone"`
	Reason    string `json:"reason"`
	BookedAt  string `json:"bookedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:      date,
		Slot:      r.Slot,
		Room:      r.Room,
		Name:      r.Name,
		StudentID: r.StudentID,
		Class:     r.Class,
		Phone:     r.Phone,
		Reason:    r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Key:       resp.Key,
		Date:      resp.Date,
		Slot:      resp.Slot,
		Room:      resp.Room,
		Name:      resp.Name,
		StudentID: resp.StudentID,
		Class:     resp.Class,
		Phone:     resp.Phone,
		Reason:    resp.Reason,
		BookedAt:  resp.BookedAt.Format(time.RFC3339),
	}
}
