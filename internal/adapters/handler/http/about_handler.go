package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/darkstate/cms/internal/core/ports"
)

type AboutHandler struct {
	service ports.AboutService
}

func NewAboutHandler(service ports.AboutService) *AboutHandler {
	return &AboutHandler{service: service}
}

func (h *AboutHandler) Get(w http.ResponseWriter, r *http.Request) {
	about, err := h.service.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: about})
}

type aboutHeaderRequest struct {
	Subtitle    *string `json:"subtitle"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (h *AboutHandler) UpdateHeader(w http.ResponseWriter, r *http.Request) {
	var req aboutHeaderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	header, err := h.service.UpdateHeader(r.Context(), ports.AboutHeaderPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Header updated successfully", header)
}

type aboutMissionRequest struct {
	Title           *string `json:"title"`
	Content         *string `json:"content"`
	SubsectionTitle *string `json:"subsectionTitle"`
}

func (h *AboutHandler) UpdateMission(w http.ResponseWriter, r *http.Request) {
	var req aboutMissionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	mission, err := h.service.UpdateMission(r.Context(), ports.AboutMissionPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Mission updated successfully", mission)
}

type addCarouselImageRequest struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

func (h *AboutHandler) AddCarouselImage(w http.ResponseWriter, r *http.Request) {
	var req addCarouselImageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	about, err := h.service.AddCarouselImage(r.Context(), ports.AddCarouselImageInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Carousel image added successfully", about.CarouselImages)
}

type carouselStatusRequest struct {
	Active *bool `json:"active"`
}

func (h *AboutHandler) SetCarouselImageStatus(w http.ResponseWriter, r *http.Request) {
	var req carouselStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Active == nil {
		writeError(w, r, domain.NewValidationError("Active status is required"))
		return
	}

	image, err := h.service.SetCarouselImageStatus(r.Context(), chi.URLParam(r, "id"), *req.Active)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Carousel image status updated successfully", image)
}

func (h *AboutHandler) DeleteCarouselImage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCarouselImage(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Carousel image deleted successfully"})
}

type addFeatureRequest struct {
	Feature string `json:"feature"`
}

func (h *AboutHandler) AddFeature(w http.ResponseWriter, r *http.Request) {
	var req addFeatureRequest
	if !decodeBody(w, r, &req) {
		return
	}

	features, err := h.service.AddFeature(r.Context(), req.Feature)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Feature added successfully", features)
}

func (h *AboutHandler) RemoveFeature(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, r, domain.NewValidationError("Invalid feature index"))
		return
	}

	features, err := h.service.RemoveFeature(r.Context(), index)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Feature removed successfully", features)
}

type aboutStatRequest struct {
	Number *string `json:"number"`
	Label  *string `json:"label"`
}

func (h *AboutHandler) UpdateStat(w http.ResponseWriter, r *http.Request) {
	var req aboutStatRequest
	if !decodeBody(w, r, &req) {
		return
	}

	stat, err := h.service.UpdateStat(r.Context(), chi.URLParam(r, "id"), ports.AboutStatPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Stat updated successfully", stat)
}
