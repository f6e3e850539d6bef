package utils

import (
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get(constvars.URLQueryParamPage)
	pageSizeStr := r.URL.Query().Get(constvars.URLQueryParamLimit)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}
	if page > constvars.MaxPage {
		page = constvars.MaxPage
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = constvars.DefaultPageLimit
	}
	if pageSize > constvars.MaxPageLimit {
		pageSize = constvars.MaxPageLimit
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func BuildFindDoctorsRequest(r *http.Request) *requests.FindDoctors {
	pagination := BuildPaginationRequest(r)
	query := r.URL.Query()
	return &requests.FindDoctors{
		Name:      query.Get(constvars.URLQueryParamName),
		Specialty: query.Get(constvars.URLQueryParamSpecialty),
		Page:      pagination.Page,
		Limit:     pagination.PageSize,
	}
}

func BuildSearchAvailableSlotsRequest(r *http.Request) *requests.SearchAvailableSlots {
	query := r.URL.Query()
	request := &requests.SearchAvailableSlots{
		DoctorID:  query.Get(constvars.URLQueryParamDoctorID),
		Specialty: query.Get(constvars.URLQueryParamSpecialty),
		Date:      query.Get(constvars.URLQueryParamDate),
	}
	SanitizeSearchAvailableSlotsRequest(request)
	return request
}
