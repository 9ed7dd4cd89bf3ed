package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/darkstate/cms/internal/core/ports"
)

type ServicesHandler struct {
	service ports.ServicesService
}

func NewServicesHandler(service ports.ServicesService) *ServicesHandler {
	return &ServicesHandler{service: service}
}

func (h *ServicesHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.GetPage(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: page})
}

type createServiceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
	Active      *bool    `json:"active"`
	Position    *int     `json:"order"`
}

func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	service, err := h.service.Create(r.Context(), ports.CreateServiceInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response{Success: true, Message: "Service created successfully", Data: service})
}

type updateServiceRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Features    []string `json:"features"`
	Icon        *string  `json:"icon"`
	Active      *bool    `json:"active"`
	Position    *int     `json:"order"`
}

func (h *ServicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateServiceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	service, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), ports.ServicePatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Service updated successfully", service)
}

func (h *ServicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Service deleted successfully"})
}

func (h *ServicesHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	service, err := h.service.ToggleActive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Service status toggled successfully", service)
}

func (h *ServicesHandler) GetHeader(w http.ResponseWriter, r *http.Request) {
	header, err := h.service.GetHeader(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: header})
}

type servicesHeaderRequest struct {
	Subtitle    *string `json:"subtitle"`
	MainTitle   *string `json:"mainTitle"`
	Description *string `json:"description"`
}

func (h *ServicesHandler) UpdateHeader(w http.ResponseWriter, r *http.Request) {
	var req servicesHeaderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	header, err := h.service.UpdateHeader(r.Context(), ports.ServicesHeaderPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Header content updated successfully", header)
}

func (h *ServicesHandler) GetCTA(w http.ResponseWriter, r *http.Request) {
	cta, err := h.service.GetCTA(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: cta})
}

type servicesCTARequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ButtonText  *string `json:"buttonText"`
}

func (h *ServicesHandler) UpdateCTA(w http.ResponseWriter, r *http.Request) {
	var req servicesCTARequest
	if !decodeBody(w, r, &req) {
		return
	}

	cta, err := h.service.UpdateCTA(r.Context(), ports.ServicesCTAPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "CTA content updated successfully", cta)
}
