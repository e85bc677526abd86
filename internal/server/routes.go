package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danmuck/rampctl/internal/label"
	"github.com/danmuck/rampctl/internal/observability"
	"github.com/danmuck/rampctl/internal/ramp"
)

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v0 := s.router.Group("/v0")
	v0.POST("/parse", s.parse)
	v0.GET("/registry/layers", s.layers)
	v0.GET("/registry/layers/:layer/protocols", s.protocols)
	v0.GET("/label", s.label)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"uptime":  time.Since(s.startedAt).String(),
		"service": "rampd",
		"version": version,
	})
}

func (s *Server) parse(c *gin.Context) {
	var req struct {
		Ramp string `json:"ramp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Ramp) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be {\"ramp\": \"...\"}"})
		return
	}

	addr, err := s.parseAny(req.Ramp)
	if err != nil {
		writeParseError(c, err)
		return
	}
	observability.CountParse("ok")
	c.JSON(http.StatusOK, s.addressBody(addr))
}

func (s *Server) layers(c *gin.Context) {
	defs := s.reg.Layers()
	out := make([]gin.H, 0, len(defs))
	for _, l := range defs {
		out = append(out, gin.H{"code": string(l.Code), "name": l.Name})
	}
	c.JSON(http.StatusOK, gin.H{"layers": out})
}

func (s *Server) protocols(c *gin.Context) {
	code := c.Param("layer")
	if len(code) != 1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown layer"})
		return
	}
	if _, ok := s.reg.Layer(code[0]); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown layer"})
		return
	}

	defs := s.reg.Protocols(code[0])
	out := make([]gin.H, 0, len(defs))
	for _, def := range defs {
		params := make([]gin.H, 0, len(def.Params))
		for _, ps := range def.Params {
			params = append(params, gin.H{"slot": ps.Slot, "pattern": ps.Pattern})
		}
		entry := gin.H{"code": string(def.Code), "name": def.Name, "params": params}
		if def.Note != "" {
			entry["note"] = def.Note
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, gin.H{"layer": code, "protocols": out})
}

func (s *Server) label(c *gin.Context) {
	raw := c.Query("ramp")
	if strings.TrimSpace(raw) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ramp query parameter required"})
		return
	}

	addr, err := s.parseAny(raw)
	if err != nil {
		writeParseError(c, err)
		return
	}
	observability.CountParse("ok")

	var out string
	switch c.DefaultQuery("style", "text") {
	case "box":
		out = label.Box(s.reg, addr)
	case "text":
		out = label.Text(s.reg, addr)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "style must be text or box"})
		return
	}
	c.String(http.StatusOK, out)
}

func (s *Server) parseAny(raw string) (ramp.Address, error) {
	if strings.HasPrefix(raw, "ramp://") {
		return ramp.ParseURI(raw, s.reg)
	}
	return ramp.Parse(raw, s.reg)
}

func (s *Server) addressBody(addr ramp.Address) gin.H {
	layer := addr.Layer()[0]
	proto := addr.Protocol()[0]
	body := gin.H{
		"person":        addr.IsPersonReference(),
		"layer":         addr.Layer(),
		"layer_name":    s.reg.LayerName(layer),
		"protocol":      addr.Protocol(),
		"protocol_name": s.reg.ProtocolName(layer, proto),
		"parameters":    addr.Parameters(),
		"canonical":     ramp.Canonical(addr),
		"uri":           ramp.URI(addr),
	}
	if meta, ok := addr.Metadata(); ok {
		body["metadata"] = meta
	}
	if note := s.reg.ProtocolNote(layer, proto); note != "" {
		body["note"] = note
	}
	return body
}

// writeParseError surfaces the structured error data; clients own the
// user-facing wording.
func writeParseError(c *gin.Context, err error) {
	var syn *ramp.SyntaxError
	if errors.As(err, &syn) {
		observability.CountParse("syntax_error")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "syntax",
			"position": syn.Pos,
			"reason":   string(syn.Reason),
		})
		return
	}

	var val *ramp.ValidationError
	if errors.As(err, &val) {
		observability.CountParse("validation_error")
		violations := make([]gin.H, 0, len(val.Violations))
		for _, v := range val.Violations {
			violations = append(violations, gin.H{
				"kind":   string(v.Kind),
				"field":  v.Field,
				"detail": v.Detail,
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "validation",
			"violations": violations,
		})
		return
	}

	observability.CountParse("error")
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}
