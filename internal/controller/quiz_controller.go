package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/middleware"
	"github.com/datlq-dev/quizhub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService       service.QuizService
	submissionService service.QuizSubmissionService
}

func NewQuizController(quizService service.QuizService, submissionService service.QuizSubmissionService) *QuizController {
	return &QuizController{quizService: quizService, submissionService: submissionService}
}

// GetQuizzes godoc
// @Summary List quizzes with question counts
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]dto.QuizSummaryDTO
// @Router /api/quiz [get]
func (c *QuizController) GetQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.GetAllQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("GetQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

// GetQuiz godoc
// @Summary Fetch one quiz with its questions and answers
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} map[string]dto.QuizDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quiz/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	quiz, err := c.quizService.GetQuiz(quizID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

// StartQuiz godoc
// @Summary Fetch quiz questions with correct answers stripped
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} map[string]dto.QuizStartDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quiz/{id}/start [get]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	quiz, err := c.quizService.StartQuiz(quizID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("StartQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

// SubmitQuiz godoc
// @Summary Submit answers for a quiz and record the scored attempt
// @Tags Quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.QuizSubmitDTO true "Submission"
// @Success 200 {object} dto.SubmitResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req dto.QuizSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.submissionService.SubmitQuiz(middleware.UserID(ctx), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quiz not found"})
		case errors.Is(err, service.ErrQuizHasNoQuestions):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Quiz has no questions"})
		default:
			log.Error().Err(err).Uint("quizID", req.QuizID).Msg("SubmitQuiz: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		}
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAttempt godoc
// @Summary Fetch one attempt belonging to the caller
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quiz/attempts/{id} [get]
func (c *QuizController) GetAttempt(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	attempt, err := c.submissionService.GetAttempt(attemptID, middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quiz attempt not found"})
			return
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetAttempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, dto.AttemptDetailResponseDTO{Attempt: *attempt})
}

// GetHistory godoc
// @Summary List the caller's attempts, most recent first
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AttemptHistoryResponseDTO
// @Router /api/quiz/history/me [get]
func (c *QuizController) GetHistory(ctx *gin.Context) {
	attempts, err := c.submissionService.GetHistory(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("GetHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, dto.AttemptHistoryResponseDTO{Attempts: attempts})
}

// CreateQuiz godoc
// @Summary Create a quiz with nested questions
// @Tags Quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.QuizCreateDTO true "Quiz data"
// @Success 201 {object} map[string]dto.QuizDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quiz [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := c.quizService.CreateQuiz(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"quiz": quiz})
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid ID format"})
		return 0, false
	}
	return uint(val), true
}
