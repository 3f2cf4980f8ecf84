package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/ntmai/folio-api/internal/application/usecase/profile"
	"github.com/ntmai/folio-api/pkg/apperror"
	"github.com/ntmai/folio-api/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

// GetAggregate returns the complete profile: bio record, projects, and
// experiences in one snapshot.
func (h *ProfileHandler) GetAggregate(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	input := profileUC.GetAggregateInput{OwnerID: ownerID}
	output, err := h.profileUseCase.ExecuteGetAggregate(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToCompleteProfileDTO(output))
}

func (h *ProfileHandler) UpsertBio(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req UpsertBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for bio update", err))
		return
	}

	input := profileUC.UpsertBioInput{
		OwnerID: ownerID,
		Bio:     req.Bio,
	}
	output, err := h.profileUseCase.ExecuteUpsertBio(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}
