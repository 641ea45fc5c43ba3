package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/listing-agent/internal/config"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/rules").
			To(handler.Rules).
			Doc("Active listing rules").
			Metadata(restfulspec.KeyOpenAPITags, []string{"rules"}).
			Writes(config.RulesFile{}).
			Returns(200, "OK", config.RulesFile{}))

	ws.
		Route(ws.POST("/prompt").
			To(handler.Prompt).
			Doc("Build the listing prompt for a product").
			Metadata(restfulspec.KeyOpenAPITags, []string{"listing"}).
			Reads(PromptRequest{}).
			Writes(PromptResponse{}).
			Returns(200, "OK", PromptResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(422, "Missing product name or features", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/validate").
			To(handler.Validate).
			Doc("Validate a listing split into title, description and bullets").
			Metadata(restfulspec.KeyOpenAPITags, []string{"listing"}).
			Reads(ValidateRequest{}).
			Writes(ValidateResponse{}).
			Returns(200, "OK", ValidateResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/format").
			To(handler.Format).
			Doc("Format a pasted response as text or HTML").
			Metadata(restfulspec.KeyOpenAPITags, []string{"listing"}).
			Reads(FormatRequest{}).
			Writes(FormatResponse{}).
			Returns(200, "OK", FormatResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
