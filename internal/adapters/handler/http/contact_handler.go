package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/darkstate/cms/internal/core/ports"
)

type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.service.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: contact})
}

func (h *ContactHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	contact, err := h.service.GetPublic(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: contact})
}

type contactInfoRequest struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Info    string `json:"info"`
	SubInfo string `json:"subInfo"`
	Icon    string `json:"icon"`
	Active  *bool  `json:"active"`
}

func (h *ContactHandler) AddInfo(w http.ResponseWriter, r *http.Request) {
	var req contactInfoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	info, err := h.service.AddInfo(r.Context(), ports.ContactInfoInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response{Success: true, Message: "Contact info added successfully", Data: info})
}

type contactInfoPatchRequest struct {
	Type    *string `json:"type"`
	Title   *string `json:"title"`
	Info    *string `json:"info"`
	SubInfo *string `json:"subInfo"`
	Icon    *string `json:"icon"`
	Active  *bool   `json:"active"`
}

func (h *ContactHandler) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	var req contactInfoPatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	info, err := h.service.UpdateInfo(r.Context(), chi.URLParam(r, "id"), ports.ContactInfoPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Contact info updated successfully", info)
}

type toggleRequest struct {
	Active *bool `json:"active"`
}

// ToggleInfo honours an explicit active value and flips the current one when
// the body omits it.
func (h *ContactHandler) ToggleInfo(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	info, err := h.service.ToggleInfo(r.Context(), chi.URLParam(r, "id"), req.Active)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Contact info status updated successfully", info)
}

func (h *ContactHandler) DeleteInfo(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteInfo(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Contact info deleted successfully"})
}

type officeDetailsRequest struct {
	Address     *string `json:"address"`
	Description *string `json:"description"`
	MapURL      *string `json:"mapUrl"`
}

func (h *ContactHandler) UpdateOffice(w http.ResponseWriter, r *http.Request) {
	var req officeDetailsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	office, err := h.service.UpdateOffice(r.Context(), ports.OfficeDetailsPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Office details updated successfully", office)
}

type contactLinkRequest struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Active   *bool  `json:"active"`
}

func (h *ContactHandler) AddLink(w http.ResponseWriter, r *http.Request) {
	var req contactLinkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	link, err := h.service.AddLink(r.Context(), ports.ContactLinkInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response{Success: true, Message: "Social link added successfully", Data: link})
}

type contactLinkPatchRequest struct {
	Platform *string `json:"platform"`
	URL      *string `json:"url"`
	Active   *bool   `json:"active"`
}

func (h *ContactHandler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	var req contactLinkPatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	link, err := h.service.UpdateLink(r.Context(), chi.URLParam(r, "id"), ports.ContactLinkPatch(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Social link updated successfully", link)
}

func (h *ContactHandler) ToggleLink(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	link, err := h.service.ToggleLink(r.Context(), chi.URLParam(r, "id"), req.Active)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Social link status updated successfully", link)
}

func (h *ContactHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteLink(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Social link deleted successfully"})
}
