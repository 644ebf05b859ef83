package converter

import (
	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:                 booking.ID,
		PatientID:          booking.PatientID,
		VendorID:           booking.VendorID,
		PatientName:        booking.PatientName,
		PatientContact:     booking.PatientContact,
		PatientEmail:       booking.PatientEmail,
		AppointmentDate:    booking.AppointmentDate.Format("2006-01-02"),
		AppointmentTime:    booking.AppointmentTime,
		Status:             string(booking.Status),
		PaymentStatus:      string(booking.PaymentStatus),
		HomeSample:         booking.HomeSample,
		CouponCode:         booking.CouponCode,
		OriginalAmount:     booking.OriginalAmount,
		DiscountAmount:     booking.DiscountAmount,
		FinalAmount:        booking.FinalAmount,
		DiscountType:       booking.DiscountType,
		DiscountValue:      booking.DiscountValue,
		CancellationReason: booking.CancellationReason,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}

	if booking.Vendor.LabName != "" {
		response.LabName = booking.Vendor.LabName
	}

	response.Items = make([]dto.BookingItemResponse, len(booking.Items))
	for i, item := range booking.Items {
		response.Items[i] = dto.BookingItemResponse{
			TestID:    item.TestID,
			TestName:  item.TestName,
			OrganName: item.OrganName,
			Price:     item.Price,
		}
	}

	for _, report := range booking.Reports {
		response.Reports = append(response.Reports, dto.ReportResponse{
			ID:          report.ID,
			FileName:    report.FileName,
			ContentType: report.ContentType,
			UploadedAt:  report.UploadedAt,
		})
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// GroupBookings folds bookings placed together into logical multi-test
// orders. Bookings sharing a coupon code form one group; a booking
// without a code is its own group keyed by its id. Group order follows
// first appearance in the input.
func GroupBookings(bookings []entity.Booking) []dto.BookingGroupResponse {
	var groups []dto.BookingGroupResponse
	index := make(map[string]int)

	for i := range bookings {
		booking := &bookings[i]
		key := booking.GroupKey()

		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, dto.BookingGroupResponse{
				GroupKey:            key,
				CouponCode:          booking.CouponCode,
				TotalOriginalAmount: decimal.Zero,
				TotalDiscountAmount: decimal.Zero,
				TotalFinalAmount:    decimal.Zero,
			})
		}

		group := &groups[pos]
		group.Bookings = append(group.Bookings, *BookingToResponse(booking))
		group.TotalOriginalAmount = group.TotalOriginalAmount.Add(booking.OriginalAmount)
		group.TotalDiscountAmount = group.TotalDiscountAmount.Add(booking.DiscountAmount)
		group.TotalFinalAmount = group.TotalFinalAmount.Add(booking.FinalAmount)
	}

	return groups
}
