package workers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/communication"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/logger"
)

// Handler handles all worker directory API calls
type Handler struct {
	WorkerRepository WorkerRepositoryInterface
	DirectoryCache   DirectoryCacheInterface
	Logger           logger.Interface
	ResponseManager  *communication.ResponseManager
}

// managerID extracts the manager scope the upstream auth layer put on the request
func managerID(request *http.Request) string {
	return request.Header.Get("X-Manager-ID")
}

// WorkerAdd is the route for adding a worker to the directory
func (handler *Handler) WorkerAdd(writer http.ResponseWriter, request *http.Request) {
	worker := Worker{}

	err := json.NewDecoder(request.Body).Decode(&worker)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	worker.ManagerID = managerID(request)

	v := validator.New()
	err = v.Struct(worker)
	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, e.Error(), e)
			return
		}
	}

	err = handler.WorkerRepository.Add(request.Context(), &worker)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Persisting worker in database did not work", err)
		return
	}

	err = handler.DirectoryCache.Invalidate(request.Context(), worker.ManagerID)
	if err != nil {
		handler.Logger.Error("Problem invalidating directory cache", err)
	}

	handler.ResponseManager.Respond(writer, &worker)
}

// GetAllWorkers is the route for fetching the worker directory and its job titles
func (handler *Handler) GetAllWorkers(writer http.ResponseWriter, request *http.Request) {
	manager := managerID(request)

	entry, err := handler.DirectoryCache.Get(request.Context(), manager)
	if err == nil {
		handler.ResponseManager.Respond(writer, entry)
		return
	}

	workers, err := handler.WorkerRepository.FindAllByManager(request.Context(), manager)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Problem fetching workers", err)
		return
	}

	entry = &DirectoryCacheEntry{
		Workers:   workers,
		JobTitles: JobTitles(workers),
	}

	err = handler.DirectoryCache.Add(request.Context(), manager, entry)
	if err != nil {
		handler.Logger.Error("Problem caching worker directory", err)
	}

	handler.ResponseManager.Respond(writer, entry)
}

// WorkerDelete is the route for removing a worker from the directory
func (handler *Handler) WorkerDelete(writer http.ResponseWriter, request *http.Request) {
	manager := managerID(request)
	workerID := mux.Vars(request)["workerID"]

	err := handler.WorkerRepository.Remove(request.Context(), workerID, manager)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusNotFound, "Couldn't find worker", err)
		return
	}

	err = handler.DirectoryCache.Invalidate(request.Context(), manager)
	if err != nil {
		handler.Logger.Error("Problem invalidating directory cache", err)
	}

	handler.ResponseManager.RespondWithNoContent(writer)
}
