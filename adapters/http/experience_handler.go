package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	expUC "github.com/ntmai/folio-api/internal/application/usecase/experience"
	"github.com/ntmai/folio-api/pkg/apperror"
	"github.com/ntmai/folio-api/pkg/logger"
)

type ExperienceHandler struct {
	createUseCase *expUC.CreateExperienceUseCase
	updateUseCase *expUC.UpdateExperienceUseCase
	deleteUseCase *expUC.DeleteExperienceUseCase
	listUseCase   *expUC.ListExperiencesUseCase
	logger        logger.Logger
}

func NewExperienceHandler(
	createUC *expUC.CreateExperienceUseCase,
	updateUC *expUC.UpdateExperienceUseCase,
	deleteUC *expUC.DeleteExperienceUseCase,
	listUC *expUC.ListExperiencesUseCase,
	log logger.Logger,
) *ExperienceHandler {
	return &ExperienceHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		listUseCase:   listUC,
		logger:        log,
	}
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience create", err))
		return
	}

	input := expUC.CreateExperienceInput{
		OwnerID:     ownerID,
		Company:     req.Company,
		Role:        req.Role,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	output, err := h.createUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToExperienceDTO(output.Experience))
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	experienceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience id", err))
		return
	}

	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience update", err))
		return
	}

	input := expUC.UpdateExperienceInput{
		ExperienceID: experienceID,
		OwnerID:      ownerID,
		Company:      req.Company,
		Role:         req.Role,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Description:  req.Description,
	}
	output, err := h.updateUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToExperienceDTO(output.Experience))
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	experienceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience id", err))
		return
	}

	input := expUC.DeleteExperienceInput{
		ExperienceID: experienceID,
		OwnerID:      ownerID,
	}
	if err := h.deleteUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	input := expUC.ListExperiencesInput{OwnerID: ownerID}
	output, err := h.listUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ExperienceDTO, len(output.Experiences))
	for i, e := range output.Experiences {
		dtos[i] = ToExperienceDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}
