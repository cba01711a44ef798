package api

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/pitchlab/callgrader/internal/api/middleware"
	"github.com/pitchlab/callgrader/internal/enrich"
	"github.com/pitchlab/callgrader/internal/grader"
	"github.com/pitchlab/callgrader/internal/models"
	"github.com/rs/zerolog"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// GradeResponse pairs the full packet with its flat enriched record so the
// persistence collaborator gets both in one round trip.
type GradeResponse struct {
	Packet models.GradePacket `json:"packet"`
	Record enrich.FlatRecord  `json:"record"`
}

type Handler struct {
	grader *grader.Grader
	logger *zerolog.Logger
}

func NewHandler(g *grader.Grader, logger *zerolog.Logger) *Handler {
	return &Handler{
		grader: g,
		logger: logger,
	}
}

// POST /api/v1/grade
// Body: GradeRequest
// Returns: GradeResponse
func (h *Handler) Grade(req *restful.Request, resp *restful.Response) {
	var gradeRequest models.GradeRequest
	if err := req.ReadEntity(&gradeRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("session_id", gradeRequest.SessionID).
		Int("turns", len(gradeRequest.Turns)).
		Msg("Start grading")

	ctx := req.Request.Context()
	transcript := models.Transcript{
		SessionID: gradeRequest.SessionID,
		Turns:     gradeRequest.Turns,
	}

	packet := h.grader.Grade(ctx, transcript, gradeRequest.PolicySnippets)
	record := enrich.Enrich(transcript, packet)

	h.logger.Info().
		Str("session_id", packet.SessionID).
		Int("final", packet.Scores.Final).
		Str("band", string(packet.Scores.Band)).
		Msg("Grading complete")

	resp.WriteHeaderAndEntity(http.StatusOK, GradeResponse{
		Packet: packet,
		Record: record,
	})
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}
