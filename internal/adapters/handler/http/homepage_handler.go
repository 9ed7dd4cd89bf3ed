package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/darkstate/cms/internal/core/ports"
)

type HomepageHandler struct {
	service ports.HomepageService
}

func NewHomepageHandler(service ports.HomepageService) *HomepageHandler {
	return &HomepageHandler{service: service}
}

func (h *HomepageHandler) Get(w http.ResponseWriter, r *http.Request) {
	homepage, err := h.service.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: homepage})
}

type homepageContentRequest struct {
	BrandName   *string `json:"brandName"`
	Tagline     *string `json:"tagline"`
	MainHeading *string `json:"mainHeading"`
	Description *string `json:"description"`
	CtaButton   *string `json:"ctaButton"`
}

func (h *HomepageHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var req homepageContentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	homepage, err := h.service.UpdateContent(r.Context(), ports.HomepageContentPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Homepage content updated successfully", homepage)
}

type socialLinksRequest struct {
	Linkedin *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
	Email    *string `json:"email"`
}

func (h *HomepageHandler) UpdateSocialLinks(w http.ResponseWriter, r *http.Request) {
	var req socialLinksRequest
	if !decodeBody(w, r, &req) {
		return
	}

	links, err := h.service.UpdateSocialLinks(r.Context(), ports.SocialLinksPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Social links updated successfully", links)
}

type displaySettingsRequest struct {
	ImageRotationInterval    *int  `json:"imageRotationInterval"`
	AnimationDuration        *int  `json:"animationDuration"`
	EnableFloatingAnimations *bool `json:"enableFloatingAnimations"`
	AutoRotateImages         *bool `json:"autoRotateImages"`
	MaintenanceMode          *bool `json:"maintenanceMode"`
}

func (h *HomepageHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req displaySettingsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), ports.DisplaySettingsPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Display settings updated successfully", settings)
}

type addImageRequest struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Active *bool  `json:"active"`
}

func (h *HomepageHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	var req addImageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	images, err := h.service.AddImage(r.Context(), ports.AddBackgroundImageInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Background image added successfully", images)
}

type updateImageRequest struct {
	URL    *string `json:"url"`
	Alt    *string `json:"alt"`
	Active *bool   `json:"active"`
}

func (h *HomepageHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	var req updateImageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	image, err := h.service.UpdateImage(r.Context(), chi.URLParam(r, "id"), ports.BackgroundImagePatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Background image updated successfully", image)
}

func (h *HomepageHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.DeleteImage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Background image deleted successfully", images)
}
