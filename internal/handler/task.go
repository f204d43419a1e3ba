package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/taskbook/internal/command"
	"github.com/BuzzLyutic/taskbook/internal/model"
	"github.com/BuzzLyutic/taskbook/internal/parser"
	"github.com/BuzzLyutic/taskbook/internal/repo"
	"github.com/BuzzLyutic/taskbook/internal/service"
	"github.com/BuzzLyutic/taskbook/pkg/respond"
)

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

// Routes собирает роутер со всеми эндпоинтами
func (h *TaskHandler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Post("/commands", h.Execute)
		r.Get("/tasks", h.List)
		r.Get("/stats", h.Stats)
	})
	return r
}

// requestLogger пишет каждый запрос в zap-логгер
func (h *TaskHandler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		h.logger.Info("request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type CommandRequest struct {
	Command string `json:"command"`
}

type CommandResponse struct {
	Feedback string     `json:"feedback"`
	ShowHelp bool       `json:"show_help"`
	Exit     bool       `json:"exit"`
	Tasks    []TaskView `json:"tasks"`
}

// TaskView is the JSON shape of a task in responses.
type TaskView struct {
	Index       int      `json:"index"`
	Name        string   `json:"name"`
	Priority    string   `json:"priority"`
	Email       string   `json:"email,omitempty"`
	Description string   `json:"description"`
	Done        bool     `json:"done"`
	Tags        []string `json:"tags"`
	Reminder    string   `json:"reminder,omitempty"`
}

func newTaskViews(tasks []model.Task) []TaskView {
	out := make([]TaskView, len(tasks))
	for i, t := range tasks {
		v := TaskView{
			Index:       i + 1,
			Name:        t.Name().Value(),
			Priority:    t.Priority().Value(),
			Description: t.Description().Value(),
			Done:        t.Done().IsDone(),
			Tags:        t.Tags().Names(),
		}
		if e, ok := t.Email().Get(); ok {
			v.Email = e.Value()
		}
		if r, ok := t.Reminder().Get(); ok {
			v.Reminder = r.String()
		}
		out[i] = v
	}
	return out
}

func (h *TaskHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *TaskHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength == 0 {
		respond.Error(w, http.StatusBadRequest, "empty request body")
		return
	}

	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode json", zap.Error(err))
		respond.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Command) == "" {
		respond.Error(w, http.StatusBadRequest, "command is required")
		return
	}

	res, err := h.service.Execute(r.Context(), req.Command)
	if err != nil {
		h.handleErrors(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, CommandResponse{
		Feedback: res.Feedback,
		ShowHelp: res.ShowHelp,
		Exit:     res.Exit,
		Tasks:    newTaskViews(res.Tasks),
	})
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, newTaskViews(h.service.FilteredTasks()))
}

func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.service.Statistics())
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, err error) {
	var formatErr *parser.FormatError
	switch {
	case errors.As(err, &formatErr):
		respond.ErrorWithUsage(w, http.StatusBadRequest, parser.ErrInvalidCommandFormat.Error(), formatErr.Usage)
	case errors.Is(err, model.ErrDuplicateTask):
		respond.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, parser.ErrUnknownCommand),
		errors.Is(err, command.ErrInvalidIndex),
		errors.Is(err, command.ErrNoFieldEdited):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repo.ErrIO), errors.Is(err, repo.ErrDataFormat):
		h.logger.Error("storage error", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not save data")
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}
