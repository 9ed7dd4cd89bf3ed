package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/darkstate/cms/internal/core/ports"
)

type CareerHandler struct {
	service ports.CareerService
}

func NewCareerHandler(service ports.CareerService) *CareerHandler {
	return &CareerHandler{service: service}
}

func (h *CareerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	career, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: career})
}

func (h *CareerHandler) ListExpertiseAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.service.ListExpertiseAreas(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: areas})
}

func (h *CareerHandler) GetExpertiseArea(w http.ResponseWriter, r *http.Request) {
	area, err := h.service.GetExpertiseArea(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: area})
}

type expertiseAreaRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
	Color       string   `json:"color"`
	Icon        string   `json:"icon"`
}

func (h *CareerHandler) CreateExpertiseArea(w http.ResponseWriter, r *http.Request) {
	var req expertiseAreaRequest
	if !decodeBody(w, r, &req) {
		return
	}

	area, err := h.service.CreateExpertiseArea(r.Context(), ports.ExpertiseAreaInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response{Success: true, Message: "Expertise area created successfully", Data: area})
}

type expertiseAreaPatchRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Details     []string `json:"details"`
	Color       *string  `json:"color"`
	Icon        *string  `json:"icon"`
}

func (h *CareerHandler) UpdateExpertiseArea(w http.ResponseWriter, r *http.Request) {
	var req expertiseAreaPatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	area, err := h.service.UpdateExpertiseArea(r.Context(), chi.URLParam(r, "id"), ports.ExpertiseAreaPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Expertise area updated successfully", area)
}

func (h *CareerHandler) DeleteExpertiseArea(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteExpertiseArea(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Expertise area deleted successfully"})
}

func (h *CareerHandler) ListCareerPaths(w http.ResponseWriter, r *http.Request) {
	paths, err := h.service.ListCareerPaths(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: paths})
}

func (h *CareerHandler) GetCareerPath(w http.ResponseWriter, r *http.Request) {
	path, err := h.service.GetCareerPath(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: path})
}

type careerPathRequest struct {
	Title       string   `json:"title"`
	Level       string   `json:"level"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Growth      string   `json:"growth"`
	Icon        string   `json:"icon"`
	Shape       string   `json:"shape"`
}

func (h *CareerHandler) CreateCareerPath(w http.ResponseWriter, r *http.Request) {
	var req careerPathRequest
	if !decodeBody(w, r, &req) {
		return
	}

	path, err := h.service.CreateCareerPath(r.Context(), ports.CareerPathInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response{Success: true, Message: "Career path created successfully", Data: path})
}

type careerPathPatchRequest struct {
	Title       *string  `json:"title"`
	Level       *string  `json:"level"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
	Growth      *string  `json:"growth"`
	Icon        *string  `json:"icon"`
	Shape       *string  `json:"shape"`
}

func (h *CareerHandler) UpdateCareerPath(w http.ResponseWriter, r *http.Request) {
	var req careerPathPatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	path, err := h.service.UpdateCareerPath(r.Context(), chi.URLParam(r, "id"), ports.CareerPathPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Career path updated successfully", path)
}

func (h *CareerHandler) DeleteCareerPath(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCareerPath(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Career path deleted successfully"})
}

func (h *CareerHandler) ListBenefits(w http.ResponseWriter, r *http.Request) {
	benefits, err := h.service.ListBenefits(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: benefits})
}

func (h *CareerHandler) GetBenefit(w http.ResponseWriter, r *http.Request) {
	benefit, err := h.service.GetBenefit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: benefit})
}

type benefitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Accent      string `json:"accent"`
}

func (h *CareerHandler) CreateBenefit(w http.ResponseWriter, r *http.Request) {
	var req benefitRequest
	if !decodeBody(w, r, &req) {
		return
	}

	benefit, err := h.service.CreateBenefit(r.Context(), ports.BenefitInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response{Success: true, Message: "Benefit created successfully", Data: benefit})
}

type benefitPatchRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Accent      *string `json:"accent"`
}

func (h *CareerHandler) UpdateBenefit(w http.ResponseWriter, r *http.Request) {
	var req benefitPatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	benefit, err := h.service.UpdateBenefit(r.Context(), chi.URLParam(r, "id"), ports.BenefitPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Benefit updated successfully", benefit)
}

func (h *CareerHandler) DeleteBenefit(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBenefit(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Benefit deleted successfully"})
}
