package handler

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/deppfellow/exercise-tracker/internal/server"
	"github.com/deppfellow/exercise-tracker/internal/service"
	"github.com/deppfellow/exercise-tracker/internal/validation"
	"github.com/labstack/echo/v4"
)

// LooseString binds a form value as is and a JSON string or number as its text.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = LooseString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected a number or string, got %s", data)
	}
	*s = LooseString(num.String())
	return nil
}

// NewUserRequest accepts a JSON number for username and keeps its text.
type NewUserRequest struct {
	Username LooseString `form:"username" json:"username" validate:"required,max=20"`
}

func (r *NewUserRequest) Validate() error {
	return validation.Struct(r)
}

// AddExerciseRequest is checked by the service, after the user is resolved.
type AddExerciseRequest struct {
	UserID      string      `form:"userId" json:"userId"`
	Description string      `form:"description" json:"description"`
	Duration    LooseString `form:"duration" json:"duration"`
	Date        string      `form:"date" json:"date"`
}

func (r *AddExerciseRequest) Validate() error {
	return nil
}

// LogRequest fields are all optional at bind time; the service decides.
type LogRequest struct {
	UserID string `query:"userId"`
	From   string `query:"from"`
	To     string `query:"to"`
	Limit  string `query:"limit"`
}

func (r *LogRequest) Validate() error {
	return nil
}

type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

type ExerciseResponse struct {
	Username    string  `json:"username"`
	ID          string  `json:"_id"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

type LogEntryResponse struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

type LogResponse struct {
	ID       string             `json:"_id"`
	Username string             `json:"username"`
	From     string             `json:"from,omitempty"`
	To       string             `json:"to,omitempty"`
	Count    int                `json:"count"`
	Log      []LogEntryResponse `json:"log"`
}

type ExerciseHandler struct {
	Handler
	userService     *service.UserService
	exerciseService *service.ExerciseService
}

func NewExerciseHandler(s *server.Server, services *service.Services) *ExerciseHandler {
	return &ExerciseHandler{
		Handler:         NewHandler(s),
		userService:     services.User,
		exerciseService: services.Exercise,
	}
}

func (h *ExerciseHandler) NewUser(c echo.Context, req *NewUserRequest) (*UserResponse, error) {
	user, err := h.userService.Register(c.Request().Context(), string(req.Username))
	if err != nil {
		return nil, err
	}

	return &UserResponse{
		Username: user.Username,
		ID:       user.ID.String(),
	}, nil
}

func (h *ExerciseHandler) AddExercise(c echo.Context, req *AddExerciseRequest) (*ExerciseResponse, error) {
	user, exercise, err := h.exerciseService.AddExercise(c.Request().Context(), service.AddExerciseInput{
		UserID:      req.UserID,
		Description: req.Description,
		Duration:    string(req.Duration),
		Date:        req.Date,
	})
	if err != nil {
		return nil, err
	}

	return &ExerciseResponse{
		Username:    user.Username,
		ID:          user.ID.String(),
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        model.CalendarString(exercise.Date),
	}, nil
}

func (h *ExerciseHandler) Log(c echo.Context, req *LogRequest) (*LogResponse, error) {
	log, err := h.exerciseService.Log(c.Request().Context(), service.LogQuery{
		UserID: req.UserID,
		From:   req.From,
		To:     req.To,
		Limit:  req.Limit,
	})
	if err != nil {
		return nil, err
	}

	resp := &LogResponse{
		ID:       log.User.ID.String(),
		Username: log.User.Username,
		Count:    len(log.Entries),
		Log:      make([]LogEntryResponse, 0, len(log.Entries)),
	}
	if log.From != nil {
		resp.From = model.CalendarString(*log.From)
	}
	if log.To != nil {
		resp.To = model.CalendarString(*log.To)
	}

	for _, e := range log.Entries {
		resp.Log = append(resp.Log, LogEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        model.CalendarString(e.Date),
		})
	}

	return resp, nil
}
