package http

import (
	"github.com/gin-gonic/gin"

	"adaptive-response-engine/internal/session"
	"adaptive-response-engine/pkg/response"
)

// Create godoc
// @Summary     Open a session
// @Description Creates an isolated conversation with its own agents rotation and memory.
// @Tags        Sessions
// @Produce     json
// @Success     200 {object} createResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Create(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(out))
}

// ProcessTurn godoc
// @Summary     Submit a primary utterance
// @Description Runs the turn pipeline and returns the selected agent's reply. Audio is base64 encoded when speak is set and synthesis is configured.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body processTurnReq true "Utterance"
// @Success     200 {object} turnResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Failure     422 {object} response.Resp "Trivial Utterance"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/sessions/{id}/turns [POST]
func (h *handler) ProcessTurn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTurnReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ProcessTurn(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.ProcessTurn: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTurnResp(out))
}

// ProcessSpeech godoc
// @Summary     Submit recorded speech
// @Description Transcribes the uploaded audio and runs the transcript through the turn pipeline.
// @Tags        Sessions
// @Accept      multipart/form-data
// @Produce     json
// @Param       id       path     string true  "Session ID"
// @Param       audio    formData file   true  "Recorded utterance"
// @Param       language formData string false "Language name or tag hint"
// @Param       speak    formData bool   false "Synthesize the reply"
// @Success     200 {object} turnResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Failure     422 {object} response.Resp "Trivial Utterance"
// @Failure     501 {object} response.Resp "Speech Recognition Not Configured"
// @Failure     502 {object} response.Resp "Speech Recognition Failed"
// @Router      /api/v1/sessions/{id}/speech [POST]
func (h *handler) ProcessSpeech(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSpeechReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ProcessSpeech(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.ProcessSpeech: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTurnResp(out))
}

// Context godoc
// @Summary     Get conversation context
// @Description Returns the last max_turns turns, active threads, last agent and last primary intent.
// @Tags        Sessions
// @Produce     json
// @Param       id        path  string true  "Session ID"
// @Param       max_turns query int    false "Turns to include (default: prompt window)"
// @Success     200 {object} contextResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Router      /api/v1/sessions/{id}/context [GET]
func (h *handler) Context(c *gin.Context) {
	ctx := c.Request.Context()

	id, maxTurns, err := h.processContextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Context(ctx, session.ContextInput{SessionID: id, MaxTurns: maxTurns})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newContextResp(out))
}

// Close godoc
// @Summary     Close a session
// @Description Drops the session and its conversation memory.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Router      /api/v1/sessions/{id} [DELETE]
func (h *handler) Close(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Close(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
