package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nguyentranbao-ct/dream-api/internal/config"
	"github.com/nguyentranbao-ct/dream-api/internal/models"
	"github.com/nguyentranbao-ct/dream-api/internal/repo/audiostore"
	"github.com/nguyentranbao-ct/dream-api/internal/usecase"
)

const robotsTxt = "User-agent: *\nAllow: /\nSitemap: /sitemap.xml\n"

type Controller interface {
	Root(c echo.Context) error
	Health(c echo.Context) error
	Robots(c echo.Context) error
	Sitemap(c echo.Context) error
	Diagnostics(c echo.Context) error

	SubmitLead(c echo.Context, req models.LeadRequest) (*models.CreatedResponse, error)
	AnalyzeDream(c echo.Context, req models.DreamRequest) (*models.DreamResponse, error)
	AnalyzeDreamAudio(c echo.Context, req models.AudioDreamRequest) (*models.DreamResponse, error)
	DreamHistory(c echo.Context, req models.HistoryRequest) (*models.HistoryResponse, error)
	SubmitQuiz(c echo.Context, req models.QuizRequest) (*models.CreatedResponse, error)
	SendReport(c echo.Context, req models.ReportRequest) (*models.ReportResponse, error)
}

type controller struct {
	conf               *config.Config
	leadUsecase        usecase.LeadUsecase
	dreamUsecase       usecase.DreamUsecase
	quizUsecase        usecase.QuizUsecase
	reportUsecase      usecase.ReportUsecase
	diagnosticsUsecase usecase.DiagnosticsUsecase
}

func NewHandler(
	conf *config.Config,
	leadUsecase usecase.LeadUsecase,
	dreamUsecase usecase.DreamUsecase,
	quizUsecase usecase.QuizUsecase,
	reportUsecase usecase.ReportUsecase,
	diagnosticsUsecase usecase.DiagnosticsUsecase,
) Controller {
	return &controller{
		conf:               conf,
		leadUsecase:        leadUsecase,
		dreamUsecase:       dreamUsecase,
		quizUsecase:        quizUsecase,
		reportUsecase:      reportUsecase,
		diagnosticsUsecase: diagnosticsUsecase,
	}
}

func (h *controller) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":   h.conf.AppName,
		"status": "ok",
	})
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "dream-api",
	})
}

func (h *controller) Robots(c echo.Context) error {
	return c.String(http.StatusOK, robotsTxt)
}

func (h *controller) Sitemap(c echo.Context) error {
	buf, err := renderSitemap(h.conf.FrontendURL)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationXML, buf.Bytes())
}

// Diagnostics always answers 200; problems are described in the body.
func (h *controller) Diagnostics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.diagnosticsUsecase.Diagnose(c.Request().Context()))
}

func (h *controller) SubmitLead(c echo.Context, req models.LeadRequest) (*models.CreatedResponse, error) {
	id, err := h.leadUsecase.CaptureLead(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &models.CreatedResponse{OK: true, ID: id}, nil
}

func (h *controller) AnalyzeDream(c echo.Context, req models.DreamRequest) (*models.DreamResponse, error) {
	id, insights, err := h.dreamUsecase.AnalyzeText(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &models.DreamResponse{OK: true, ID: id, Analysis: insights}, nil
}

func (h *controller) AnalyzeDreamAudio(c echo.Context, req models.AudioDreamRequest) (*models.DreamResponse, error) {
	fh := req.File
	file, err := fh.Open()
	if err != nil {
		return nil, models.NewValidationError("file", "could not read upload")
	}
	defer file.Close()

	upload := audiostore.Object{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        file,
	}

	id, insights, err := h.dreamUsecase.AnalyzeAudio(c.Request().Context(), req, upload)
	if err != nil {
		return nil, err
	}
	return &models.DreamResponse{OK: true, ID: id, Analysis: insights}, nil
}

func (h *controller) DreamHistory(c echo.Context, req models.HistoryRequest) (*models.HistoryResponse, error) {
	dreams, err := h.dreamUsecase.History(c.Request().Context(), req.Email)
	if err != nil {
		return nil, err
	}
	return &models.HistoryResponse{OK: true, Items: dreams}, nil
}

func (h *controller) SubmitQuiz(c echo.Context, req models.QuizRequest) (*models.CreatedResponse, error) {
	id, err := h.quizUsecase.SubmitQuiz(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &models.CreatedResponse{OK: true, ID: id}, nil
}

func (h *controller) SendReport(c echo.Context, req models.ReportRequest) (*models.ReportResponse, error) {
	id, err := h.reportUsecase.QueueReport(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &models.ReportResponse{OK: true, ID: id, Queued: true}, nil
}
