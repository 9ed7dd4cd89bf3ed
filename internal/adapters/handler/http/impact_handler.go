package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/darkstate/cms/internal/core/ports"
)

type ImpactHandler struct {
	service ports.ImpactService
}

func NewImpactHandler(service ports.ImpactService) *ImpactHandler {
	return &ImpactHandler{service: service}
}

func (h *ImpactHandler) Get(w http.ResponseWriter, r *http.Request) {
	impact, err := h.service.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: impact})
}

type impactContentRequest struct {
	MainHeading         *string `json:"mainHeading"`
	MainDescription     *string `json:"mainDescription"`
	OverviewDescription *string `json:"overviewDescription"`
}

func (h *ImpactHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var req impactContentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	impact, err := h.service.UpdateContent(r.Context(), ports.ImpactContentPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Impact content updated successfully", impact)
}

type impactStatRequest struct {
	Icon        string `json:"icon"`
	Number      string `json:"number"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (h *ImpactHandler) AddStat(w http.ResponseWriter, r *http.Request) {
	var req impactStatRequest
	if !decodeBody(w, r, &req) {
		return
	}

	impact, err := h.service.AddStat(r.Context(), ports.ImpactStatInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response{Success: true, Message: "Stat added successfully", Data: impact})
}

func (h *ImpactHandler) DeleteStat(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteStat(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Stat deleted successfully"})
}

type successStoryRequest struct {
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Result      string   `json:"result"`
	Year        string   `json:"year"`
	Description string   `json:"description"`
	Metrics     []string `json:"metrics"`
	Image       string   `json:"image"`
}

func (h *ImpactHandler) AddStory(w http.ResponseWriter, r *http.Request) {
	var req successStoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	impact, err := h.service.AddStory(r.Context(), ports.SuccessStoryInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response{Success: true, Message: "Success story added successfully", Data: impact})
}

func (h *ImpactHandler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteStory(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Success story deleted successfully"})
}

type keyAchievementRequest struct {
	Category     string   `json:"category"`
	Achievements []string `json:"achievements"`
}

func (h *ImpactHandler) AddAchievement(w http.ResponseWriter, r *http.Request) {
	var req keyAchievementRequest
	if !decodeBody(w, r, &req) {
		return
	}

	impact, err := h.service.AddAchievement(r.Context(), ports.KeyAchievementInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response{Success: true, Message: "Achievement added successfully", Data: impact})
}

func (h *ImpactHandler) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAchievement(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Achievement deleted successfully"})
}

type testimonialRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
	Image    string `json:"image"`
}

func (h *ImpactHandler) AddTestimonial(w http.ResponseWriter, r *http.Request) {
	var req testimonialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	impact, err := h.service.AddTestimonial(r.Context(), ports.TestimonialInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response{Success: true, Message: "Testimonial added successfully", Data: impact})
}

func (h *ImpactHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTestimonial(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Testimonial deleted successfully"})
}

type impactAreaRequest struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Stats       string `json:"stats"`
}

func (h *ImpactHandler) AddArea(w http.ResponseWriter, r *http.Request) {
	var req impactAreaRequest
	if !decodeBody(w, r, &req) {
		return
	}

	impact, err := h.service.AddArea(r.Context(), ports.ImpactAreaInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response{Success: true, Message: "Impact area added successfully", Data: impact})
}

func (h *ImpactHandler) DeleteArea(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteArea(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Impact area deleted successfully"})
}
