package handler

import (
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/snowflake128/internal/generator"
	"github.com/weiawesome/snowflake128/internal/service"
	"github.com/weiawesome/snowflake128/pkg/log"
	"github.com/weiawesome/snowflake128/pkg/response"
	"github.com/weiawesome/snowflake128/pkg/snowflake"
)

// GenerateRequest is the body of POST /api/v1/ids.
type GenerateRequest struct {
	Kind   string `json:"kind"`
	Entity string `json:"entity"`
	Count  int    `json:"count" binding:"omitempty,min=1,max=1000"`
}

// GenerateResponse lists freshly generated IDs.
type GenerateResponse struct {
	Kind string   `json:"kind"`
	IDs  []string `json:"ids"`
}

// ParseResponse is the decoded form of an ID. Snowflake-only and
// scheme-specific fields are omitted when they do not apply.
type ParseResponse struct {
	ID            string     `json:"id"`
	Kind          string     `json:"kind"`
	TimestampMs   int64      `json:"timestamp_ms,omitempty"`
	Time          *time.Time `json:"time,omitempty"`
	EntityType    *uint32    `json:"entity_type,omitempty"`
	EntityName    string     `json:"entity_name,omitempty"`
	Counter       *uint32    `json:"counter,omitempty"`
	APIVersion    *uint32    `json:"api_version,omitempty"`
	NodeID        *uint32    `json:"node_id,omitempty"`
	UUIDVersion   int32      `json:"uuid_version,omitempty"`
	UUIDVariant   string     `json:"uuid_variant,omitempty"`
	RandomPayload string     `json:"random_payload,omitempty"`
	IDLength      int32      `json:"id_length,omitempty"`
	Alphabet      string     `json:"alphabet,omitempty"`
}

// ValidateResponse reports whether an ID is well formed.
type ValidateResponse struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Handler handles HTTP requests for the ID service.
type Handler struct {
	idService service.IDService
	ready     func() error
}

// NewHandler creates a new HTTP handler. ready, if not nil, backs the
// health check; a non-nil error reports the service unavailable.
func NewHandler(idService service.IDService, ready func() error) *Handler {
	return &Handler{
		idService: idService,
		ready:     ready,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/kinds", h.ListKinds)

		ids := api.Group("/ids")
		{
			ids.POST("", h.GenerateIDs)
			ids.GET("/:id", h.ParseID)
			ids.GET("/:id/validate", h.ValidateID)
		}
	}
}

// writeServiceError maps a service error to a response.
func writeServiceError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrUnknownKind):
		response.BadRequest(c, response.CodeUnknownKind, err.Error())
	case errors.Is(err, service.ErrUnknownEntity), errors.Is(err, snowflake.ErrFieldRange):
		response.BadRequest(c, response.CodeUnknownType, err.Error())
	case errors.Is(err, service.ErrInvalidCount):
		response.BadRequest(c, response.CodeInvalidCount, err.Error())
	case errors.Is(err, generator.ErrInvalidID):
		response.BadRequest(c, response.CodeInvalidID, err.Error())
	case errors.Is(err, service.ErrUnavailable):
		response.ServiceUnavailable(c, err.Error())
	default:
		l := log.Ctx(c.Request.Context())
		l.Error().Err(err).Msg(msg)
		response.InternalError(c, msg)
	}
}

// GenerateIDs generates one or more IDs.
func (h *Handler) GenerateIDs(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		l.Warn().Err(err).Msg("failed to bind generate request")
		response.BadRequest(c, response.CodeBadRequest, err.Error())
		return
	}
	if req.Kind == "" {
		req.Kind = generator.KindSnowflake
	}
	if req.Count == 0 {
		req.Count = 1
	}

	ids, err := h.idService.GenerateBatch(ctx, req.Kind, req.Entity, req.Count)
	if err != nil {
		writeServiceError(c, err, "failed to generate ids")
		return
	}

	response.Created(c, GenerateResponse{Kind: req.Kind, IDs: ids})
}

// ParseID decodes an ID. The kind query parameter defaults to snowflake.
func (h *Handler) ParseID(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	parsed, err := h.idService.Parse(ctx, c.Query("kind"), id)
	if err != nil {
		writeServiceError(c, err, "failed to parse id")
		return
	}

	resp := ParseResponse{
		ID:            id,
		Kind:          parsed.Kind,
		TimestampMs:   parsed.TimestampMs,
		UUIDVersion:   parsed.UUIDVersion,
		UUIDVariant:   parsed.UUIDVariant,
		RandomPayload: parsed.RandomPayload,
		IDLength:      parsed.IDLength,
		Alphabet:      parsed.Alphabet,
	}
	if parsed.TimestampMs != 0 {
		t := time.UnixMilli(parsed.TimestampMs).UTC()
		resp.Time = &t
	}
	if parsed.Kind == generator.KindSnowflake {
		resp.EntityType = &parsed.EntityType
		resp.EntityName = parsed.EntityName
		resp.Counter = &parsed.Counter
		resp.APIVersion = &parsed.APIVersion
		resp.NodeID = &parsed.NodeID
	}

	response.Success(c, resp)
}

// ValidateID checks whether an ID is well formed.
func (h *Handler) ValidateID(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	kind := c.DefaultQuery("kind", generator.KindSnowflake)

	valid, reason, err := h.idService.Validate(ctx, kind, id)
	if err != nil {
		writeServiceError(c, err, "failed to validate id")
		return
	}

	response.Success(c, ValidateResponse{ID: id, Kind: kind, Valid: valid, Reason: reason})
}

// ListKinds lists the ID kinds this instance serves.
func (h *Handler) ListKinds(c *gin.Context) {
	response.Success(c, gin.H{"kinds": h.idService.Kinds()})
}

// Health reports whether the instance can issue IDs.
func (h *Handler) Health(c *gin.Context) {
	if h.ready != nil {
		if err := h.ready(); err != nil {
			response.ServiceUnavailable(c, err.Error())
			return
		}
	}
	response.Success(c, gin.H{"status": "ok"})
}
