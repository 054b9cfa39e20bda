package handlers

import (
	"net/http"

	"hirehub/internal/middleware"
	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/utils"

	"github.com/go-chi/chi/v5"
)

type InterviewHandler struct {
	service *services.InterviewService
}

func NewInterviewHandler(service *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{service: service}
}

func (handler *InterviewHandler) ScheduleInterviewHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.ScheduleInterviewRequest](request)
	interview, err := handler.service.Schedule(request.Context(), callerOf(request), services.ScheduleInput{
		ApplicationID: req.ApplicationID,
		ScheduledAt:   req.ScheduledAt,
		Mode:          req.Mode,
		Location:      req.Location,
		InterviewerID: req.Interviewer,
	})
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusCreated, interview)
}

// UpdateInterviewHandler decodes only the patchable fields; anything else
// in the body is ignored.
func (handler *InterviewHandler) UpdateInterviewHandler(writer http.ResponseWriter, request *http.Request) {
	var patch models.InterviewPatch
	if err := decodeJSON(request, &patch); err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	interview, err := handler.service.Update(request.Context(), callerOf(request), chi.URLParam(request, "id"), patch)
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, interview)
}

func (handler *InterviewHandler) CancelInterviewHandler(writer http.ResponseWriter, request *http.Request) {
	if _, err := handler.service.Cancel(request.Context(), callerOf(request), chi.URLParam(request, "id")); err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, models.MessageResponse{Message: "Interview cancelled successfully"})
}

func (handler *InterviewHandler) GetInterviewHandler(writer http.ResponseWriter, request *http.Request) {
	interview, err := handler.service.GetDetails(request.Context(), callerOf(request), chi.URLParam(request, "id"))
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, interview)
}

func (handler *InterviewHandler) MyInterviewsHandler(writer http.ResponseWriter, request *http.Request) {
	interviews, err := handler.service.ListMine(request.Context(), callerOf(request))
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, interviews)
}
