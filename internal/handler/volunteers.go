/*
# Module: handler/volunteers.go
Lambda handlers for volunteer record operations.

## Linked Modules
- [storage/repository](../storage/repository.go) - Repository interfaces
- [types/volunteer](../types/volunteer.go) - Volunteer data structures
- [handler/respond](./respond.go) - Response helpers
- [errs](../errs/errs.go) - Error taxonomy

## Tags
http, api, lambda, volunteers

## Exports
VolunteerHandler, NewVolunteerHandler, Create, Get, List

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handler/volunteers.go" ;
    code:description "Lambda handlers for volunteer record operations" ;
    code:linksTo [
        code:name "storage/repository" ;
        code:path "../storage/repository.go" ;
        code:relationship "Repository interfaces"
    ], [
        code:name "types/volunteer" ;
        code:path "../types/volunteer.go" ;
        code:relationship "Volunteer data structures"
    ], [
        code:name "handler/respond" ;
        code:path "./respond.go" ;
        code:relationship "Response helpers"
    ], [
        code:name "errs" ;
        code:path "../errs/errs.go" ;
        code:relationship "Error taxonomy"
    ] ;
    code:exports :VolunteerHandler, :NewVolunteerHandler, :Create, :Get, :List ;
    code:tags "http", "api", "lambda", "volunteers" .
<!-- End LinkedDoc RDF -->
*/
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fenotesb/helping-hands-platform/internal/errs"
	"github.com/fenotesb/helping-hands-platform/internal/storage"
	"github.com/fenotesb/helping-hands-platform/internal/types"
)

// VolunteerHandler handles volunteer signup and lookup
type VolunteerHandler struct {
	volunteers storage.VolunteerRepository
	logger     *zap.SugaredLogger
}

// NewVolunteerHandler creates a new volunteer handler
func NewVolunteerHandler(volunteers storage.VolunteerRepository, logger *zap.SugaredLogger) *VolunteerHandler {
	return &VolunteerHandler{volunteers: volunteers, logger: logger}
}

// Create handles POST /volunteers
func (h *VolunteerHandler) Create(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body types.CreateVolunteerRequest
	if req.Body != "" {
		if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
			return ErrorResponse(http.StatusBadRequest, "Invalid JSON body"), nil
		}
	}

	if body.Name == "" || body.Email == "" {
		return ErrorResponse(http.StatusBadRequest, "name and email are required"), nil
	}

	volunteer := types.Volunteer{
		ID:                     uuid.NewString(),
		Name:                   body.Name,
		Email:                  body.Email,
		Phone:                  body.Phone,
		City:                   body.City,
		AreasOfInterest:        body.AreasOfInterest,
		Skills:                 body.Skills,
		Availability:           body.Availability,
		PreferredContactMethod: body.PreferredContactMethod,
		IsActive:               true,
		CreatedAt:              time.Now().UTC(),
	}
	if volunteer.AreasOfInterest == nil {
		volunteer.AreasOfInterest = []string{}
	}
	if volunteer.Skills == nil {
		volunteer.Skills = []string{}
	}
	if volunteer.PreferredContactMethod == "" {
		volunteer.PreferredContactMethod = "email"
	}

	if err := h.volunteers.Save(ctx, volunteer); err != nil {
		h.logger.Errorw("failed to save volunteer", "error", err)
		return ErrorResponse(errs.HTTPStatus(err), "failed to save volunteer"), nil
	}

	h.logger.Infow("volunteer created", "id", volunteer.ID)
	return JSONResponse(http.StatusCreated, types.CreatedResponse{ID: volunteer.ID}), nil
}

// Get handles GET /volunteers/{id}. The path parameter is accepted under
// either "id" or "volunteer_id" so both historical route templates work.
func (h *VolunteerHandler) Get(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	id := req.PathParameters["id"]
	if id == "" {
		id = req.PathParameters["volunteer_id"]
	}
	if id == "" {
		return ErrorResponse(http.StatusBadRequest, "id is required in path"), nil
	}

	volunteer, err := h.volunteers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return ErrorResponse(http.StatusNotFound, "Volunteer not found"), nil
		}
		h.logger.Errorw("failed to get volunteer", "id", id, "error", err)
		return ErrorResponse(errs.HTTPStatus(err), "failed to get volunteer"), nil
	}

	return JSONResponse(http.StatusOK, volunteer), nil
}

// List handles GET /volunteers, returning every record unfiltered
func (h *VolunteerHandler) List(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	volunteers, err := h.volunteers.GetAll(ctx)
	if err != nil {
		h.logger.Errorw("failed to list volunteers", "error", err)
		return ErrorResponse(errs.HTTPStatus(err), "failed to list volunteers"), nil
	}

	return JSONResponse(http.StatusOK, volunteers), nil
}
