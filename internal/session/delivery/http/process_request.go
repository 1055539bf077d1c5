package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "adaptive-response-engine/pkg/errors"
)

// maxAudioBytes caps uploaded utterances.
const maxAudioBytes = 10 << 20

// processTurnReq binds the turn body and URI param.
func (h *handler) processTurnReq(c *gin.Context) (processTurnReq, error) {
	var req processTurnReq
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errMissingSessionID
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// processSpeechReq reads the multipart "audio" file plus optional language and speak fields.
func (h *handler) processSpeechReq(c *gin.Context) (processSpeechReq, error) {
	var req processSpeechReq
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errMissingSessionID
	}
	if err := c.ShouldBind(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fh, err := c.FormFile("audio")
	if err != nil {
		return req, errMissingAudio
	}
	f, err := fh.Open()
	if err != nil {
		return req, errMissingAudio
	}
	defer f.Close()

	req.Audio, err = io.ReadAll(io.LimitReader(f, maxAudioBytes))
	if err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// processContextReq parses max_turns; absent means the session default (-1).
func (h *handler) processContextReq(c *gin.Context) (string, int, error) {
	id := c.Param("id")
	if id == "" {
		return "", 0, errMissingSessionID
	}
	raw, ok := c.GetQuery("max_turns")
	if !ok {
		return id, -1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return id, 0, errInvalidMaxTurns
	}
	return id, n, nil
}
