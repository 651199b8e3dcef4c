package delivery

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ytfetch/internal/app"
	"ytfetch/internal/app/models"
	"ytfetch/internal/auth"
	"ytfetch/internal/middleware"
	"ytfetch/internal/utils/logger"
	"ytfetch/internal/utils/responses"
)

type Delivery struct {
	downloaderUsecase app.DownloaderUsecase
	userUsecase       app.UserUsecase
}

func CreateDelivery(downloaderUsecase app.DownloaderUsecase, userUsecase app.UserUsecase) *Delivery {
	return &Delivery{
		downloaderUsecase: downloaderUsecase,
		userUsecase:       userUsecase,
	}
}

func (d *Delivery) Register(w http.ResponseWriter, r *http.Request) {
	const funcName = "Delivery.Register"

	req := models.CredentialsRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := d.userUsecase.Register(r.Context(), req.Username, req.Password); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, models.MessageResponse{
		Success: true,
		Message: "user created",
	}, http.StatusCreated)
}

func (d *Delivery) Login(w http.ResponseWriter, r *http.Request) {
	const funcName = "Delivery.Login"

	req := models.CredentialsRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := d.userUsecase.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	responses.DoJSONResponse(w, models.MessageResponse{
		Success: true,
		Message: "user logged in",
	}, http.StatusOK)
}

func (d *Delivery) Me(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	responses.DoJSONResponse(w, models.UserOut{Username: username}, http.StatusOK)
}

func (d *Delivery) GetTasks(w http.ResponseWriter, r *http.Request) {
	const funcName = "Delivery.GetTasks"

	username, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tasks, err := d.downloaderUsecase.ListTasks(r.Context(), username)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, tasks, http.StatusOK)
}

func (d *Delivery) Download(w http.ResponseWriter, r *http.Request) {
	const funcName = "Delivery.Download"

	username, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	req := models.DownloadRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := d.downloaderUsecase.Download(r.Context(), username, req.URL)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	switch result.Outcome {
	case models.OutcomeAlreadyDone:
		responses.DoJSONResponse(w, models.MessageResponse{
			Success: true,
			Message: "Item have been downloaded",
		}, http.StatusOK)

	case models.OutcomeAssociated:
		responses.DoJSONResponse(w, models.MessageResponse{
			Success: true,
			Message: "Item exists for queried item. Associated user's data to the item",
		}, http.StatusCreated)

	default:
		responses.DoJSONResponse(w, models.MessageResponse{
			Success: true,
			Message: fmt.Sprintf("Queueing download task for Youtube %s", result.VideoID),
		}, http.StatusCreated)
	}
}

func (d *Delivery) Retrieve(w http.ResponseWriter, r *http.Request) {
	const funcName = "Delivery.Retrieve"

	username, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	taskID, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid task id")
		return
	}

	link, err := d.downloaderUsecase.RetrieveLink(r.Context(), username, taskID)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusCreated)
	if _, err := w.Write([]byte(link)); err != nil {
		logger.Error("failed to write response",
			zap.String("function", funcName),
			zap.Error(err),
		)
	}
}
