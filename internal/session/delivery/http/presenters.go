package http

import (
	"encoding/base64"

	"adaptive-response-engine/internal/conversation"
	"adaptive-response-engine/internal/session"
)

// --- Request DTOs ---

type processTurnReq struct {
	SessionID string `json:"-"` // populated from URI param
	Text      string `json:"text"     binding:"required,max=4000"`
	Language  string `json:"language" binding:"max=32"`
	Speak     bool   `json:"speak"`
}

func (r processTurnReq) toInput() session.ProcessTurnInput {
	return session.ProcessTurnInput{
		SessionID: r.SessionID,
		Text:      r.Text,
		Language:  r.Language,
		Speak:     r.Speak,
	}
}

type processSpeechReq struct {
	SessionID string `form:"-"`
	Language  string `form:"language"`
	Speak     bool   `form:"speak"`
	Audio     []byte `form:"-"`
}

func (r processSpeechReq) toInput() session.ProcessSpeechInput {
	return session.ProcessSpeechInput{
		SessionID:    r.SessionID,
		Audio:        r.Audio,
		LanguageHint: r.Language,
		Speak:        r.Speak,
	}
}

// --- Response DTOs ---

type agentResp struct {
	Name  string `json:"name"`
	Voice string `json:"voice,omitempty"`
}

type createResp struct {
	SessionID string      `json:"session_id"`
	Agents    []agentResp `json:"agents"`
}

func (h *handler) newCreateResp(out session.CreateOutput) createResp {
	agents := make([]agentResp, len(out.Agents))
	for i, a := range out.Agents {
		agents[i] = agentResp{Name: a.Name, Voice: a.Voice}
	}
	return createResp{SessionID: out.SessionID, Agents: agents}
}

type turnResp struct {
	SessionID  string `json:"session_id"`
	Transcript string `json:"transcript,omitempty"`
	Language   string `json:"language"`
	Speaker    string `json:"speaker"`
	Strategy   string `json:"strategy"`
	Intent     string `json:"intent"`
	Text       string `json:"text"`
	Attempts   int    `json:"attempts"`
	Fallback   string `json:"fallback,omitempty"`
	Repeated   bool   `json:"repeated"`
	Audio      string `json:"audio,omitempty"` // base64
	AudioType  string `json:"audio_type,omitempty"`
}

func (h *handler) newTurnResp(out session.ProcessTurnOutput) turnResp {
	resp := turnResp{
		SessionID:  out.SessionID,
		Transcript: out.Transcript,
		Language:   out.Language,
		Speaker:    out.Speaker,
		Strategy:   string(out.Strategy),
		Intent:     string(out.Intent),
		Text:       out.Text,
		Attempts:   out.Attempts,
		Fallback:   string(out.Fallback),
		Repeated:   out.Repeated,
	}
	if len(out.Audio) > 0 {
		resp.Audio = base64.StdEncoding.EncodeToString(out.Audio)
		resp.AudioType = out.AudioMIMEType
	}
	return resp
}

type contextResp struct {
	SessionID string                `json:"session_id"`
	Context   conversation.Snapshot `json:"context"`
	Rendered  string                `json:"rendered"`
}

func (h *handler) newContextResp(out session.ContextOutput) contextResp {
	return contextResp{
		SessionID: out.SessionID,
		Context:   out.Snapshot,
		Rendered:  out.Rendered,
	}
}
