package utils

import (
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/dto/responses"
)

func BuildUserProfileResponse(user *models.User) *responses.UserProfile {
	return &responses.UserProfile{
		UserID:    user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

func BuildUserSummaryResponse(user *models.User) *responses.UserSummary {
	return &responses.UserSummary{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role.String(),
	}
}

func BuildDoctorResponse(doctor *models.Doctor) responses.Doctor {
	workingHours := make([]responses.WorkingHour, 0, len(doctor.WorkingHours))
	for _, wh := range doctor.WorkingHours {
		workingHours = append(workingHours, responses.WorkingHour{
			Day:       wh.Day,
			StartTime: wh.StartTime,
			EndTime:   wh.EndTime,
		})
	}

	return responses.Doctor{
		ID:                doctor.ID.Hex(),
		UserID:            doctor.UserID.Hex(),
		Name:              doctor.Name,
		Specialty:         doctor.Specialty,
		Fees:              doctor.Fees,
		SlotDuration:      doctor.SlotDuration,
		WorkingHours:      workingHours,
		Status:            string(doctor.Status),
		ProfilePictureURL: doctor.ProfilePictureURL,
		CreatedAt:         doctor.CreatedAt,
		UpdatedAt:         doctor.UpdatedAt,
	}
}

func BuildDoctorsResponse(doctors []models.Doctor) []responses.Doctor {
	result := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		result = append(result, BuildDoctorResponse(&doctors[i]))
	}
	return result
}

func buildDoctorSummaryResponse(doctor *models.DoctorSummary) *responses.DoctorSummary {
	if doctor == nil {
		return nil
	}
	return &responses.DoctorSummary{
		ID:        doctor.ID.Hex(),
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		Fees:      doctor.Fees,
	}
}

func buildPatientSummaryResponse(patient *models.PatientSummary) *responses.PatientSummary {
	if patient == nil {
		return nil
	}
	return &responses.PatientSummary{
		ID:    patient.ID.Hex(),
		Name:  patient.Name,
		Email: patient.Email,
	}
}

func BuildSlotResponse(slot *models.Slot) responses.Slot {
	return responses.Slot{
		ID:        slot.ID.Hex(),
		DoctorID:  slot.DoctorID.Hex(),
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Date:      slot.Date,
		IsBooked:  slot.IsBooked,
	}
}

func BuildSlotsResponse(slots []models.Slot) []responses.Slot {
	result := make([]responses.Slot, 0, len(slots))
	for i := range slots {
		result = append(result, BuildSlotResponse(&slots[i]))
	}
	return result
}

func BuildAvailableSlotsResponse(slots []models.SlotWithDoctor) []responses.Slot {
	result := make([]responses.Slot, 0, len(slots))
	for i := range slots {
		slot := BuildSlotResponse(&slots[i].Slot)
		slot.Doctor = buildDoctorSummaryResponse(slots[i].Doctor)
		result = append(result, slot)
	}
	return result
}

func BuildAppointmentResponse(appointment *models.AppointmentDetail) *responses.Appointment {
	return &responses.Appointment{
		ID:          appointment.ID.Hex(),
		PatientID:   appointment.PatientID.Hex(),
		DoctorID:    appointment.DoctorID.Hex(),
		SlotID:      appointment.SlotID.Hex(),
		Doctor:      buildDoctorSummaryResponse(appointment.Doctor),
		Patient:     buildPatientSummaryResponse(appointment.Patient),
		StartTime:   appointment.StartTime,
		EndTime:     appointment.EndTime,
		Status:      string(appointment.Status),
		Reason:      appointment.Reason,
		CancelledAt: appointment.CancelledAt,
		CreatedAt:   appointment.CreatedAt,
	}
}

func BuildAppointmentsResponse(appointments []models.AppointmentDetail) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, *BuildAppointmentResponse(&appointments[i]))
	}
	return result
}
