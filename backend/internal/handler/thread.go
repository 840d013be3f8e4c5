package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) AddThread(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	payload, err := decodePayload(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.thread.Add(r.Context(), payload, user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedThreadData{AddedThread: added}))
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := mux.Vars(r)["threadId"]

	detail, err := h.thread.GetDetail(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(api.ThreadData{Thread: api.ThreadDetailResponse{
		Id:       detail.Id,
		Title:    detail.Title,
		Body:     detail.Body,
		BodyHTML: h.renderer.Render(detail.Body),
		Date:     detail.Date,
		Username: detail.Username,
		Comments: detail.Comments,
	}}))
}
