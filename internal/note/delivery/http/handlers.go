package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "ai-notes/pkg/errors"
	"ai-notes/pkg/response"
)

// renderBindError renders request binding failures as 400.
func (h *handler) renderBindError(c *gin.Context, err error) {
	if _, ok := pkgErrors.AsHTTPError(err); ok {
		response.Error(c, err)
		return
	}
	response.ValidationError(c, err)
}

// List godoc
// @Summary     List notes
// @Description Returns notes ordered by last update, optionally filtered by a search term.
// @Tags        Notes
// @Produce     json
// @Param       q      query string false "Filter by title, content or tag"
// @Param       limit  query int    false "Page size (default: 50, max: 200)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a note
// @Description Creates a note. Event date and time are normalized; with auto_schedule the missing ones are inferred from the text.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Note data"
// @Success     201 {object} noteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newNoteResp(output.Note))
}

// Search godoc
// @Summary     Search notes
// @Description Case-insensitive match on title, content and tags. A blank query returns no notes.
// @Tags        Notes
// @Produce     json
// @Param       q     query string false "Search term"
// @Param       limit query int    false "Max results (default: 50, max: 200)"
// @Success     200 {object} searchResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// Stats godoc
// @Summary     Note statistics
// @Tags        Notes
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, statsResp{TotalNotes: output.TotalNotes, Driver: output.Driver})
}

// Detail godoc
// @Summary     Get note detail
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Note ID"
// @Success     200 {object} noteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newNoteResp(output.Note))
}

// Update godoc
// @Summary     Update a note
// @Description Partial update. Only fields present in the body change; null clears tags, event_date and event_time.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Note ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} noteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newNoteResp(output.Note))
}

// Delete godoc
// @Summary     Delete a note
// @Tags        Notes
// @Param       id path string true "Note ID"
// @Success     204 "No Content"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// Generate godoc
// @Summary     Draft a note with the LLM
// @Description Extracts title, content and tags from free text and infers the event date and time. Nothing is stored.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Free text"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "LLM failure"
// @Failure     503 {object} response.Resp "LLM not configured"
// @Router      /api/v1/notes/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// GenerateAndSave godoc
// @Summary     Draft and store a note with the LLM
// @Description Like generate, then stores the note. Explicit event_date and event_time override the inferred ones.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body generateAndSaveReq true "Free text"
// @Success     201 {object} generateAndSaveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "LLM failure"
// @Failure     503 {object} response.Resp "LLM not configured"
// @Router      /api/v1/notes/generate-and-save [POST]
func (h *handler) GenerateAndSave(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateAndSaveReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.GenerateAndSave(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateAndSave: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newGenerateAndSaveResp(output))
}

// Translate godoc
// @Summary     Translate a note
// @Description Translates the stored title and content, or the overrides given in the body. Blank parts are skipped.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       id   path string       true "Note ID"
// @Param       body body translateReq true "Target language"
// @Success     200 {object} translateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "LLM failure"
// @Failure     503 {object} response.Resp "LLM not configured"
// @Router      /api/v1/notes/{id}/translate [POST]
func (h *handler) Translate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranslateReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.Translate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Translate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTranslateResp(output))
}

// Infer godoc
// @Summary     Infer event date and time
// @Description Runs the date/time inference engine over free text. reference defaults to now in the configured timezone.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body inferReq true "Text and optional RFC3339 reference"
// @Success     200 {object} inferResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/notes/infer [POST]
func (h *handler) Infer(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInferReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Infer(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newInferResp(output))
}
