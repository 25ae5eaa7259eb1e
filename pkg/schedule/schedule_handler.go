package schedule

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/communication"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/logger"
)

const monthLayout = "2006-01"

// Handler handles all schedule API calls
type Handler struct {
	Services        *ServiceManager
	Renderer        Renderer
	Logger          logger.Interface
	ResponseManager *communication.ResponseManager
}

// service resolves the per-request schedule service. The manager scope is
// put on the request by the upstream auth layer, the viewing mode comes
// from the query like the original page's view parameter.
func (handler *Handler) service(request *http.Request) *ScheduleService {
	scopeID := request.Header.Get("X-Manager-ID")

	mode := ModeAdmin
	if request.URL.Query().Get("view") == string(ModeWorker) {
		mode = ModeWorker
	}

	return handler.Services.Get(scopeID, mode)
}

// blockCreate is the request body for adding a block
type blockCreate struct {
	Type      BlockType `json:"type" validate:"required"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Row       int       `json:"row"`
	Employee  Employee  `json:"employee"`
	JobTitle  string    `json:"jobTitle" validate:"required"`
}

// ScheduleGet is the route for loading a month of blocks and its rendered grid
func (handler *Handler) ScheduleGet(writer http.ResponseWriter, request *http.Request) {
	service := handler.service(request)

	month, err := time.Parse(monthLayout, request.URL.Query().Get("month"))
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Malformed month", err)
		return
	}

	jobTitle := request.URL.Query().Get("jobTitle")
	if jobTitle == "" {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Missing job title", nil)
		return
	}

	err = service.LoadBlocks(request.Context(), month, jobTitle)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Problem loading schedule", err)
		return
	}

	var selected *time.Time
	if raw := request.URL.Query().Get("selectedDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err == nil {
			selected = &parsed
		}
	}

	blocks := service.Blocks()

	handler.ResponseManager.Respond(writer, map[string]interface{}{
		"blocks": blocks,
		"grid":   handler.Renderer.Render(blocks, month, selected, service.Mode()),
		"dirty":  service.Dirty(),
	})
}

// BlockAdd is the route for creating a block
func (handler *Handler) BlockAdd(writer http.ResponseWriter, request *http.Request) {
	service := handler.service(request)

	body := blockCreate{}
	err := json.NewDecoder(request.Body).Decode(&body)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	v := validator.New()
	err = v.Struct(body)
	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, e.Error(), e)
			return
		}
	}

	block := NewBlock(body.Type, body.StartDate, body.EndDate, body.StartTime, body.EndTime, body.Row, body.Employee, body.JobTitle)

	err = service.AddBlock(request.Context(), block)
	if err != nil {
		handler.respondMutationError(writer, err)
		return
	}

	handler.ResponseManager.RespondWithStatus(writer, &block, http.StatusCreated)
}

// blockMove is the request body for moving a block
type blockMove struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// BlockMove is the route a drop lands on
func (handler *Handler) BlockMove(writer http.ResponseWriter, request *http.Request) {
	service := handler.service(request)
	blockID := mux.Vars(request)["blockID"]

	body := blockMove{}
	err := json.NewDecoder(request.Body).Decode(&body)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	err = service.MoveBlock(request.Context(), blockID, body.Row, body.Column)
	if err != nil {
		handler.respondMutationError(writer, err)
		return
	}

	handler.ResponseManager.RespondWithNoContent(writer)
}

// blockDates is the request body for editing a block's date span
type blockDates struct {
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
}

// BlockUpdate is the route for editing a block's dates
func (handler *Handler) BlockUpdate(writer http.ResponseWriter, request *http.Request) {
	service := handler.service(request)
	blockID := mux.Vars(request)["blockID"]

	body := blockDates{}
	err := json.NewDecoder(request.Body).Decode(&body)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	err = service.UpdateBlockDates(request.Context(), blockID, body.StartDate, body.EndDate)
	if err != nil {
		handler.respondMutationError(writer, err)
		return
	}

	handler.ResponseManager.RespondWithNoContent(writer)
}

// BlockDelete is the route for deleting a block
func (handler *Handler) BlockDelete(writer http.ResponseWriter, request *http.Request) {
	service := handler.service(request)
	blockID := mux.Vars(request)["blockID"]

	err := service.DeleteBlock(request.Context(), blockID)
	if err != nil {
		handler.respondMutationError(writer, err)
		return
	}

	handler.ResponseManager.RespondWithNoContent(writer)
}

// ScheduleDeleteAll is the route for clearing the whole scoped schedule
func (handler *Handler) ScheduleDeleteAll(writer http.ResponseWriter, request *http.Request) {
	service := handler.service(request)

	err := service.DeleteAll(request.Context())
	if err != nil {
		handler.respondMutationError(writer, err)
		return
	}

	handler.ResponseManager.RespondWithNoContent(writer)
}

// ScheduleExport is the route for downloading the loaded month as a workbook
func (handler *Handler) ScheduleExport(writer http.ResponseWriter, request *http.Request) {
	service := handler.service(request)

	file, err := ExportBlocks(service.Blocks())
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Problem building export", err)
		return
	}

	buffer := bytes.Buffer{}
	err = file.Write(&buffer)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Problem writing export", err)
		return
	}

	filename := ExportFilename(service.JobTitle(), service.Month())
	writer.Header().Set("Content-Disposition", "attachment; filename="+filename)

	handler.ResponseManager.RespondWithBinary(writer, buffer.Bytes(),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// ScheduleImport is the route for uploading a workbook of blocks
func (handler *Handler) ScheduleImport(writer http.ResponseWriter, request *http.Request) {
	service := handler.service(request)

	file, _, err := request.FormFile("file")
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Missing file upload", err)
		return
	}
	defer func() { _ = file.Close() }()

	blocks, err := ImportBlocks(file, service.JobTitle())
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Invalid schedule spreadsheet", err)
		return
	}

	err = service.AddImported(request.Context(), blocks)
	if err != nil {
		handler.respondMutationError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, blocks)
}

// ScheduleRetry is the route for re-persisting blocks with failed saves
func (handler *Handler) ScheduleRetry(writer http.ResponseWriter, request *http.Request) {
	service := handler.service(request)

	err := service.RetryDirty(request.Context())
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadGateway,
			"Problem re-persisting schedule changes", err)
		return
	}

	handler.ResponseManager.Respond(writer, map[string]interface{}{"dirty": service.Dirty()})
}

func (handler *Handler) respondMutationError(writer http.ResponseWriter, err error) {
	switch err.(type) {
	case *ValidationError, *OutOfRangeError:
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Invalid block", err)
		return
	}

	switch err {
	case ErrReadOnly:
		handler.ResponseManager.RespondWithError(writer, http.StatusForbidden, "Schedule is read-only", err)
	case ErrBlockNotFound:
		handler.ResponseManager.RespondWithError(writer, http.StatusNotFound, "Couldn't find block", err)
	case ErrOverlap:
		handler.ResponseManager.RespondWithError(writer, http.StatusConflict, "Block overlaps another block", err)
	default:
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Problem applying schedule change", err)
	}
}
