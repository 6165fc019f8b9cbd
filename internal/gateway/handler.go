// Package gateway exposes the chat API: a single JSON endpoint that hands
// the query to the routing agent and decorates the answer with a derived
// chart when the text contains plottable data.
package gateway

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pulsar/internal/agent"
	"pulsar/internal/chart"
	"pulsar/internal/tools"
	"pulsar/pkg/logging"
	"pulsar/pkg/middleware"
)

// Runner is the slice of the agent the gateway needs.
type Runner interface {
	Run(ctx context.Context, instruction, tenantID string) (agent.Result, error)
}

type ChatHandler struct {
	Agent  Runner
	Logger logging.Logger
}

type ChatRequest struct {
	Query    string `json:"query" binding:"required"`
	TenantID string `json:"tenant_id" binding:"required"`
}

type ChatResponse struct {
	Answer   string        `json:"answer"`
	ToolUsed *string       `json:"tool_used"`
	Chart    *chart.Series `json:"chart,omitempty"`
}

func NewChatHandler(a Runner, logger logging.Logger) *ChatHandler {
	return &ChatHandler{Agent: a, Logger: logger}
}

func RegisterRoutes(router gin.IRoutes, handler *ChatHandler) {
	router.POST("/api/chat", handler.HandleChat)
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	startedAt := time.Now()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		chatRequestsTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"detail": "query and tenant_id are required"})
		return
	}
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		chatRequestsTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"detail": "query and tenant_id are required"})
		return
	}

	c.Set("tenant_id", req.TenantID)
	log := middleware.GetContextLogger(c, h.Logger)

	result, err := h.Agent.Run(c.Request.Context(), req.Query, req.TenantID)
	if err != nil {
		chatRequestsTotal.WithLabelValues("error").Inc()
		log.WithError(err).Error("Agent run failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	resp := ChatResponse{Answer: result.Answer}
	if name := toolUsed(result); name != "" {
		resp.ToolUsed = &name
	}
	if series, ok := chart.Extract(result.Answer); ok {
		resp.Chart = &series
	}

	chatRequestsTotal.WithLabelValues("ok").Inc()
	chatDuration.Observe(time.Since(startedAt).Seconds())
	log.WithFields(logging.Fields{
		"tenant_id": req.TenantID,
		"tool_used": result.ToolUsed(),
		"charted":   resp.Chart != nil,
	}).Info("Chat request served")

	c.JSON(http.StatusOK, resp)
}

// toolUsed prefers the agent's invocation record and falls back to sniffing
// the answer text for tool names, which catches replies where the model
// narrates a tool it was told about without the dispatch having fired.
func toolUsed(result agent.Result) string {
	if name := result.ToolUsed(); name != "" {
		return name
	}
	if strings.Contains(result.Answer, tools.NameIntraday) {
		return tools.NameIntraday
	}
	if strings.Contains(result.Answer, tools.NameHistorical) {
		return tools.NameHistorical
	}
	return ""
}
