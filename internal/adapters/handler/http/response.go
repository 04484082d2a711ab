package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

var errTrailingData = errors.New("unexpected data after JSON body")

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error" example:"哎呀，这个活动链接不存在或已失效。"`
}

// MessageResponse is the body of a successful vote.
type MessageResponse struct {
	Message string `json:"message" example:"投票成功！感谢你的参与。"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// decodeJSON reads exactly one JSON value from the body into v.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}

	switch err := dec.Decode(&struct{}{}); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	default:
		return errTrailingData
	}
}

// writeDecodeError answers a body decodeJSON rejected: 413 when the body
// went past the size limit, 400 otherwise.
func writeDecodeError(w http.ResponseWriter, r *http.Request, messages *Messages, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, messages.For(r, MsgRequestTooLarge))
		return
	}
	writeError(w, http.StatusBadRequest, messages.For(r, MsgMalformedRequest))
}
