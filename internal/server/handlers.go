package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shahar-caura/triage/internal/session"
	"github.com/shahar-caura/triage/internal/triage"
)

// emptyTicketMessage is shown when a blank ticket is submitted.
const emptyTicketMessage = "Please enter a valid ticket description."

// Pinger reports whether the model backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) ([]string, error)
	BaseURL() string
}

// Handlers implements the generated StrictServerInterface.
type Handlers struct {
	Version    string
	StartTime  time.Time
	Logger     *slog.Logger
	Classifier *triage.Classifier
	Backend    Pinger // optional
}

var _ StrictServerInterface = (*Handlers)(nil)

func (h *Handlers) GetHealth(ctx context.Context, _ GetHealthRequestObject) (GetHealthResponseObject, error) {
	resp := GetHealth200JSONResponse{
		Status:        "ok",
		Version:       h.Version,
		UptimeSeconds: int(time.Since(h.StartTime).Seconds()),
	}
	if h.Backend != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		bs := &BackendStatus{Url: h.Backend.BaseURL()}
		if models, err := h.Backend.Ping(ctx); err != nil {
			msg := err.Error()
			bs.Error = &msg
		} else {
			bs.Reachable = true
			bs.Models = &models
		}
		resp.Backend = bs
	}
	return resp, nil
}

func (h *Handlers) ListModels(_ context.Context, _ ListModelsRequestObject) (ListModelsResponseObject, error) {
	return ListModels200JSONResponse(toModelList(h.Classifier.Catalog())), nil
}

func (h *Handlers) ListExamples(_ context.Context, _ ListExamplesRequestObject) (ListExamplesResponseObject, error) {
	return ListExamples200JSONResponse{Examples: triage.Examples}, nil
}

func (h *Handlers) Classify(ctx context.Context, request ClassifyRequestObject) (ClassifyResponseObject, error) {
	req := triage.Request{Ticket: request.Body.Ticket, Model: deref(request.Body.Model)}
	if err := req.Validate(); err != nil {
		return Classify400JSONResponse{Code: http.StatusBadRequest, Message: emptyTicketMessage}, nil
	}

	model, err := h.Classifier.Catalog().Resolve(req.Model)
	if err != nil {
		return Classify400JSONResponse{Code: http.StatusBadRequest, Message: err.Error()}, nil
	}
	req.Model = model

	sess := sessionFrom(ctx)
	if sess == nil {
		return nil, errors.New("classify: request carries no session")
	}
	if err := sess.TryBegin(); err != nil {
		return Classify409JSONResponse{Code: http.StatusConflict, Message: err.Error()}, nil
	}
	defer sess.End()

	res, err := h.Classifier.Classify(ctx, req)
	switch {
	case errors.Is(err, triage.ErrEmptyTicket):
		return Classify400JSONResponse{Code: http.StatusBadRequest, Message: emptyTicketMessage}, nil
	case errors.Is(err, triage.ErrUnknownModel):
		return Classify400JSONResponse{Code: http.StatusBadRequest, Message: err.Error()}, nil
	case err != nil:
		return Classify502JSONResponse{
			Code:    http.StatusBadGateway,
			Message: fmt.Sprintf("Error during classification: %s", err),
		}, nil
	}

	entry := sess.Append(model, req.Ticket, res.Reasoning)
	h.Logger.Info("history appended", "session", sess.ID, "seq", entry.Seq, "level", res.Level)
	return Classify200JSONResponse(h.toHistoryEntry(entry)), nil
}

func (h *Handlers) Extract(_ context.Context, request ExtractRequestObject) (ExtractResponseObject, error) {
	model := deref(request.Body.Model)
	return Extract200JSONResponse{
		Level: Level(h.Classifier.Extract(request.Body.Text, model)),
		Model: model,
	}, nil
}

// ListHistory returns the caller's entries, most recent first. A caller that
// has never classified anything has no session and an empty history.
func (h *Handlers) ListHistory(ctx context.Context, request ListHistoryRequestObject) (ListHistoryResponseObject, error) {
	var entries []session.Entry
	if sess := sessionFrom(ctx); sess != nil {
		entries = sess.Entries()
	}
	total := len(entries)
	if limit := request.Params.Limit; limit != nil && *limit < len(entries) {
		entries = entries[:*limit]
	}

	out := make([]HistoryEntry, len(entries))
	for i, e := range entries {
		out[i] = h.toHistoryEntry(e)
	}
	return ListHistory200JSONResponse{Entries: out, Total: total}, nil
}

func (h *Handlers) GetHistoryEntry(ctx context.Context, request GetHistoryEntryRequestObject) (GetHistoryEntryResponseObject, error) {
	notFound := GetHistoryEntry404JSONResponse{Code: http.StatusNotFound, Message: "history entry not found"}

	sess := sessionFrom(ctx)
	if sess == nil {
		return notFound, nil
	}
	e, err := sess.Get(request.Seq)
	if errors.Is(err, session.ErrNotFound) {
		return notFound, nil
	}
	if err != nil {
		return nil, err
	}
	return GetHistoryEntry200JSONResponse(h.toHistoryEntry(e)), nil
}

// toHistoryEntry re-derives the tier from the stored model output.
func (h *Handlers) toHistoryEntry(e session.Entry) HistoryEntry {
	return HistoryEntry{
		Seq:       e.Seq,
		Model:     e.Model,
		Ticket:    e.Ticket,
		Preview:   e.Preview(),
		Level:     Level(h.Classifier.Extract(e.RawResult, e.Model)),
		Reasoning: e.RawResult,
		CreatedAt: e.CreatedAt,
	}
}

func toModelList(cat triage.Catalog) ModelList {
	out := ModelList{Default: cat.Default, Models: make([]Model, len(cat.Models))}
	for i, m := range cat.Models {
		out.Models[i] = Model{Name: m.Name, Policy: ModelPolicy(m.Policy)}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// writeError renders an ErrorResponse outside the generated handlers:
// validation failures, parameter binding and body decoding errors.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Code: status, Message: message})
}

func badRequest(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, err.Error())
}
